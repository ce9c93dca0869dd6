// Package freq defines the frequency type shared by the clock packages.
package freq

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Hertz is a frequency in cycles per second. All clocks of the device run
// below 2^32 Hz.
type Hertz uint32

const (
	Hz  Hertz = 1
	KHz       = 1000 * Hz
	MHz       = 1000 * KHz
)

// Div divides f by d, rounding down. Division by zero returns zero.
func Div[T constraints.Unsigned](f Hertz, d T) Hertz {
	if d == 0 {
		return 0
	}
	return Hertz(uint64(f) / uint64(d))
}

// Mul multiplies f by m, saturating at the largest representable value.
func Mul[T constraints.Unsigned](f Hertz, m T) Hertz {
	v := uint64(f) * uint64(m)
	if v > uint64(^Hertz(0)) || (m != 0 && v/uint64(m) != uint64(f)) {
		return ^Hertz(0)
	}
	return Hertz(v)
}

// Within reports whether f lies in the closed interval [lo, hi].
func (f Hertz) Within(lo, hi Hertz) bool {
	return f >= lo && f <= hi
}

func (f Hertz) String() string {
	switch {
	case f >= MHz:
		return trim(uint64(f), uint64(MHz)) + " MHz"
	case f >= KHz:
		return trim(uint64(f), uint64(KHz)) + " kHz"
	default:
		return strconv.FormatUint(uint64(f), 10) + " Hz"
	}
}

// trim formats v/unit with up to three decimals and no trailing zeros.
func trim(v, unit uint64) string {
	s := strconv.FormatUint(v/unit, 10)
	frac := v % unit
	if frac == 0 {
		return s
	}

	digits := 0
	for u := unit; u > 1; u /= 10 {
		digits++
	}
	f := strconv.FormatUint(frac, 10)
	for len(f) < digits {
		f = "0" + f
	}
	if len(f) > 3 {
		f = f[:3]
	}
	for len(f) > 0 && f[len(f)-1] == '0' {
		f = f[:len(f)-1]
	}
	if len(f) == 0 {
		return s
	}
	return s + "." + f
}
