// Package clock takes over the clock controllers at boot and hands out the
// typed handles of the clock tree.
//
// At reset the CPU runs from GCLK0, which runs from the DFLL in open loop.
// New adopts that state: GCLK0 comes out enabled with the CPU as its one
// user and the DFLL comes out with GCLK0 as its one user. Everything else is
// handed out as tokens, to be configured through the packages below clock.
package clock

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/dfll"
	"omibyte.io/samclock/clock/dpll"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/mclk"
	"omibyte.io/samclock/clock/osc32k"
	"omibyte.io/samclock/clock/pclk"
	"omibyte.io/samclock/clock/xosc"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/nvm"
	"omibyte.io/samclock/typelevel"
)

// Tokens holds the tokens of every clock that is not running at reset.
type Tokens struct {
	Gclks   gclk.Tokens
	Pclks   pclk.Tokens
	Dplls   dpll.Tokens
	Xoscs   xosc.Tokens
	Xosc32k osc32k.Token
}

// Clocks is the clock tree as the device leaves reset.
type Clocks struct {
	Gclk0     typelevel.Enabled[gclk.Gclk[gclk.Gen0, dfll.OpenLoop], typelevel.One]
	Dfll      typelevel.Enabled[dfll.OpenLoop, typelevel.One]
	OscUlp32k typelevel.Enabled[osc32k.OscUlp32k, typelevel.Zero]
	Tokens    Tokens

	NVM  nvm.Controller
	MCLK mclk.Controller
}

// adopted lists the GCLK blocks New has handed out tokens for.
var adopted []*chip.GCLK_TYPE

// New takes the GCLK, OSCCTRL, OSC32KCTRL, MCLK and NVMCTRL blocks out of p.
// It enables automatic flash wait states and the bus clocks of the clock
// controllers. New panics if any of the blocks has already been taken.
func New(p *chip.Peripherals) Clocks {
	if p == nil || p.GCLK == nil || p.OSCCTRL == nil || p.OSC32KCTRL == nil || p.MCLK == nil || p.NVMCTRL == nil {
		panic("clock: peripherals already consumed")
	}
	g, o, o32, m, n := p.GCLK, p.OSCCTRL, p.OSC32KCTRL, p.MCLK, p.NVMCTRL
	p.GCLK, p.OSCCTRL, p.OSC32KCTRL, p.MCLK, p.NVMCTRL = nil, nil, nil, nil, nil

	// A copy of p still holds the blocks.
	for _, a := range adopted {
		if a == g {
			panic("clock: peripherals already consumed")
		}
	}
	adopted = append(adopted, g)

	flash := nvm.New(n)
	flash.SetAutoWaitStates(true)

	bus := mclk.New(m)
	bus.EnableClockControllers()

	gen0, dfllUsed, gens := gclk.Boot(seal.K, g, dfll.Boot(seal.K, o))
	return Clocks{
		Gclk0:     gen0,
		Dfll:      dfllUsed,
		OscUlp32k: osc32k.Boot(seal.K, o32),
		Tokens: Tokens{
			Gclks:   gens,
			Pclks:   pclk.NewTokens(seal.K, g),
			Dplls:   dpll.NewTokens(seal.K, o),
			Xoscs:   xosc.NewTokens(seal.K, o),
			Xosc32k: osc32k.NewToken(seal.K, o32),
		},
		NVM:  flash,
		MCLK: bus,
	}
}
