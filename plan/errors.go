package plan

import "errors"

var (
	ErrNoChip         = errors.New("plan does not name a chip")
	ErrUnknownNode    = errors.New("unknown clock")
	ErrNotConfigured  = errors.New("clock is not configured")
	ErrNotOnChip      = errors.New("clock does not exist on this chip")
	ErrUnknownChannel = errors.New("unknown peripheral channel")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrMissingSource  = errors.New("clock has no source")
	ErrBadSource      = errors.New("clock cannot use this source")
	ErrBadReference   = errors.New("clock cannot be used as a reference")
	ErrChannelInUse   = errors.New("peripheral channel is already used by a source")
	ErrCycle          = errors.New("clock tree contains a cycle")
	ErrDividerRange   = errors.New("divider out of range")
	ErrXoscRange      = errors.New("oscillator frequency out of range")
	ErrDfllMultiplier = errors.New("DFLL multiplier is zero")
	ErrDpllWindow     = errors.New("DPLL outside its operating range")
	ErrCPUFrequency   = errors.New("CPU frequency exceeds the chip maximum")
	ErrUnsupported    = errors.New("configuration cannot be generated")
)
