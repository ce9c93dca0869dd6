// Package pclk routes generic clock generators to peripheral channels.
//
// Enabling a channel takes a reference on its generator, so the generator
// cannot be disabled while the channel is running.
package pclk

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

// ID identifies a peripheral channel at the type level.
type ID interface {
	Channel() int
}

// Token grants exclusive use of channel P.
type Token[P ID] struct {
	gclk *chip.GCLK_TYPE
}

func (t Token[P]) reg() *chip.GCLK_PCHCTRL_REG {
	if t.gclk == nil {
		panic("pclk: use of an invalid token")
	}
	var p P
	return &t.gclk.PCHCTRL[p.Channel()]
}

// Pclk is channel P running from generator G.
type Pclk[P ID, G gclk.GenNum] struct {
	token Token[P]
	freq  freq.Hertz
}

// Freq returns the frequency the peripheral receives.
func (p Pclk[P, G]) Freq() freq.Hertz {
	return p.freq
}

// Channel returns the PCHCTRL index.
func (Pclk[P, G]) Channel() int {
	var p P
	return p.Channel()
}

// Generator returns the number of the generator feeding the channel.
func (Pclk[P, G]) Generator() int {
	var g G
	return g.Num()
}

// Enable connects channel P to generator G and starts it.
func Enable[P ID, G gclk.GenNum, S any, N typelevel.Count](tok Token[P], gen typelevel.Enabled[gclk.Gclk[G, S], N]) (Pclk[P, G], typelevel.Enabled[gclk.Gclk[G, S], typelevel.Succ[N]]) {
	reg := tok.reg()

	reg.SetCHEN(false)
	for reg.GetCHEN() {
	}

	reg.SetGEN(chip.GCLK_PCHCTRL_REG_GEN(gen.Get().Num()))
	reg.SetCHEN(true)
	for !reg.GetCHEN() {
	}

	p := Pclk[P, G]{
		token: tok,
		freq:  gen.Get().Freq(),
	}
	return p, typelevel.Inc(seal.K, gen)
}

// Disable stops the channel and releases its generator.
func Disable[P ID, G gclk.GenNum, S any, N typelevel.Count](p Pclk[P, G], gen typelevel.Enabled[gclk.Gclk[G, S], typelevel.Succ[N]]) (Token[P], typelevel.Enabled[gclk.Gclk[G, S], N]) {
	reg := p.token.reg()
	reg.SetCHEN(false)
	for reg.GetCHEN() {
	}
	return p.token, typelevel.Dec(seal.K, gen)
}
