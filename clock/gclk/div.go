package gclk

import "omibyte.io/samclock/freq"

// Div selects the division factor of a generator.
//
// A plain divider divides by its value, where 0 and 1 both leave the source
// undivided. A power-of-two divider with exponent n divides by 2^(n+1); it is
// the only way to reach the largest factors.
type Div struct {
	value uint32
	pow2  bool
}

// DivBy divides by n.
func DivBy(n uint32) Div {
	return Div{value: n}
}

// DivPow2 divides by 2^(n+1).
func DivPow2(n uint32) Div {
	return Div{value: n, pow2: true}
}

// DivMax selects the largest factor the generator supports: 2^9 for most
// generators and 2^17 for GCLK1.
func DivMax() Div {
	return Div{value: ^uint32(0), pow2: true}
}

// Raw returns the requested value before it is fitted to a generator.
func (d Div) Raw() (value uint32, pow2 bool) {
	return d.value, d.pow2
}

// DivBits returns the width of the DIV field of generator gen.
func DivBits(gen int) uint {
	if gen == 1 {
		return 16
	}
	return 8
}

// EncodeDiv fits d to the DIV field of generator gen. Values that do not fit
// saturate at the field maximum.
func EncodeDiv(gen int, d Div) (field uint16, divsel bool) {
	bits := DivBits(gen)
	if d.pow2 {
		if d.value > uint32(bits) {
			return uint16(bits), true
		}
		return uint16(d.value), true
	}

	max := uint32(1)<<bits - 1
	if d.value > max {
		return uint16(max), false
	}
	return uint16(d.value), false
}

// DivFactor returns the factor generator gen divides its source by when
// configured with d.
func DivFactor(gen int, d Div) uint32 {
	field, divsel := EncodeDiv(gen, d)
	if divsel {
		return 1 << (uint32(field) + 1)
	}
	if field == 0 {
		return 1
	}
	return uint32(field)
}

// Frequency returns the output of generator gen for a source running at src.
func Frequency(src freq.Hertz, gen int, d Div) freq.Hertz {
	return freq.Div(src, DivFactor(gen, d))
}
