package dpll

import (
	"errors"

	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
)

// Operating windows of the loop.
const (
	MinInput  = 32 * freq.KHz
	MaxInput  = 3_200 * freq.KHz
	MinOutput = 96 * freq.MHz
	MaxOutput = 200 * freq.MHz
)

const (
	MaxLoopDiv     = 0x1fff
	MaxLoopDivFrac = 31
	MaxSourceDiv   = 0x7ff
)

var (
	ErrInputOutOfRange  = errors.New("dpll: reference outside 32 kHz to 3.2 MHz")
	ErrOutputOutOfRange = errors.New("dpll: output outside 96 MHz to 200 MHz")
)

// PredivFactor returns the factor the reference is divided by before it
// enters the loop. Only the XOSC0 and XOSC1 references pass through the
// divider, which divides by 2 * (div + 1).
func PredivFactor(refclk chip.OSCCTRL_DPLLCTRLB_REG_REFCLK, div uint16) uint32 {
	switch refclk {
	case chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC0, chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC1:
		return 2 * (uint32(div) + 1)
	default:
		return 1
	}
}

// InputFrequency returns the reference frequency seen by the loop.
func InputFrequency(ref freq.Hertz, prediv uint32) freq.Hertz {
	return freq.Div(ref, prediv)
}

// OutputFrequency returns ref / prediv * (ldr + 1 + frac / 32).
func OutputFrequency(ref freq.Hertz, prediv uint32, ldr uint16, frac uint8) freq.Hertz {
	if prediv == 0 {
		return 0
	}
	num := uint64(ref) * (32*(uint64(ldr)+1) + uint64(frac))
	out := num / (32 * uint64(prediv))
	if out > uint64(^freq.Hertz(0)) {
		return ^freq.Hertz(0)
	}
	return freq.Hertz(out)
}

// CheckWindows reports whether the loop can operate with the given input and
// output frequencies.
func CheckWindows(in, out freq.Hertz) error {
	var err error
	if !in.Within(MinInput, MaxInput) {
		err = ErrInputOutOfRange
	}
	if !out.Within(MinOutput, MaxOutput) {
		err = errors.Join(err, ErrOutputOutOfRange)
	}
	return err
}
