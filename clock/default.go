package clock

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/dfll"
	"omibyte.io/samclock/clock/dpll"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/osc32k"
	"omibyte.io/samclock/clock/pclk"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/gpio"
	"omibyte.io/samclock/typelevel"
)

type (
	dpll0Ref = pclk.Pclk[pclk.Dpll0, gclk.Gen2]
	dpll0    = dpll.Dpll[pclk.Dpll0, dpll0Ref]
)

// Frequencies of the default tree.
const (
	DefaultCPUFreq    = 120 * freq.MHz
	DefaultSercomFreq = 60 * freq.MHz
)

// Tree is the default clock tree.
type Tree struct {
	// GCLK0 runs the CPU and EIC from DPLL0 at 120 MHz.
	Gclk0 typelevel.Enabled[gclk.Gclk[gclk.Gen0, dpll0], typelevel.Two]
	// GCLK1 runs the SERCOMs from DPLL0 at 60 MHz.
	Gclk1 typelevel.Enabled[gclk.Gclk[gclk.Gen1, dpll0], typelevel.Eight]
	// GCLK2 is the 1 MHz reference of DPLL0.
	Gclk2 typelevel.Enabled[gclk.Gclk[gclk.Gen2, dfll.OpenLoop], typelevel.One]

	Dpll0     typelevel.Enabled[dpll0, typelevel.Two]
	Dfll      typelevel.Enabled[dfll.OpenLoop, typelevel.One]
	Xosc32k   typelevel.Enabled[osc32k.Xosc32k[osc32k.Crystal], typelevel.Zero]
	OscUlp32k typelevel.Enabled[osc32k.OscUlp32k, typelevel.Zero]

	Eic     pclk.Pclk[pclk.Eic, gclk.Gen0]
	Sercom0 pclk.Pclk[pclk.Sercom0, gclk.Gen1]
	Sercom1 pclk.Pclk[pclk.Sercom1, gclk.Gen1]
	Sercom2 pclk.Pclk[pclk.Sercom2, gclk.Gen1]
	Sercom3 pclk.Pclk[pclk.Sercom3, gclk.Gen1]
	Sercom4 pclk.Pclk[pclk.Sercom4, gclk.Gen1]
	Sercom5 pclk.Pclk[pclk.Sercom5, gclk.Gen1]
	Sercom6 pclk.Pclk[pclk.Sercom6, gclk.Gen1]
	Sercom7 pclk.Pclk[pclk.Sercom7, gclk.Gen1]

	// Tokens of the clocks the tree does not use. The tokens it used are
	// left zero.
	Tokens Tokens
}

// DefaultClocks builds the usual tree for a board with a 32.768 kHz crystal
// on PA00 and PA01: the RTC on XOSC32K, DPLL0 locked to DFLL/48 at 120 MHz,
// the CPU on DPLL0 and the SERCOMs on DPLL0/2.
func DefaultClocks(c Clocks, xin32 gpio.Pin[gpio.PA00], xout32 gpio.Pin[gpio.PA01]) Tree {
	toks := c.Tokens

	x32 := osc32k.FromCrystal(toks.Xosc32k, xin32, xout32).
		StartUp(chip.OSC32KCTRL_XOSC32K_REG_STARTUP_CYCLE2048).
		OnDemand(false).
		RunStandby(true).
		Enable()
	x32.Get().WaitReady()
	osc32k.SetRTCClock(x32, osc32k.Rate32k)
	toks.Xosc32k = osc32k.Token{}

	// 1 MHz reference
	gen2Config, dfllUsed := gclk.New(toks.Gclks.Gclk2, c.Dfll)
	gen2 := gen2Config.Div(gclk.DivBy(48)).Enable()
	toks.Gclks.Gclk2 = gclk.Token[gclk.Gen2]{}

	ref, gen2Used := pclk.Enable(toks.Pclks.Dpll0, gen2)
	toks.Pclks.Dpll0 = pclk.Token[pclk.Dpll0]{}

	pll := dpll.FromPclk(toks.Dplls.Dpll0, ref).
		LoopDiv(119, 0).
		RunStandby(true).
		Enable()
	pll.Get().WaitUntilReady()
	toks.Dplls.Dpll0 = dpll.Token[pclk.Dpll0]{}

	c.MCLK.SetCPUDiv(chip.MCLK_CPUDIV_REG_DIV_DIV1)
	gen0, dfllFree, pllUsed := gclk.SwapGen0(c.Gclk0, dfllUsed, pll)

	gen1Config, pllUsed2 := gclk.New(toks.Gclks.Gclk1, pllUsed)
	gen1 := gen1Config.Div(gclk.DivBy(2)).RunStandby(true).Enable()
	toks.Gclks.Gclk1 = gclk.Token[gclk.Gen1]{}

	t := Tree{
		Gclk2:     gen2Used,
		Dpll0:     pllUsed2,
		Dfll:      dfllFree,
		Xosc32k:   x32,
		OscUlp32k: c.OscUlp32k,
	}
	t.Eic, t.Gclk0 = pclk.Enable(toks.Pclks.Eic, gen0)

	s0, gen1a := pclk.Enable(toks.Pclks.Sercom0, gen1)
	s1, gen1b := pclk.Enable(toks.Pclks.Sercom1, gen1a)
	s2, gen1c := pclk.Enable(toks.Pclks.Sercom2, gen1b)
	s3, gen1d := pclk.Enable(toks.Pclks.Sercom3, gen1c)
	s4, gen1e := pclk.Enable(toks.Pclks.Sercom4, gen1d)
	s5, gen1f := pclk.Enable(toks.Pclks.Sercom5, gen1e)
	s6, gen1g := pclk.Enable(toks.Pclks.Sercom6, gen1f)
	t.Sercom7, t.Gclk1 = pclk.Enable(toks.Pclks.Sercom7, gen1g)
	t.Sercom0, t.Sercom1, t.Sercom2, t.Sercom3 = s0, s1, s2, s3
	t.Sercom4, t.Sercom5, t.Sercom6 = s4, s5, s6

	toks.Pclks.Eic = pclk.Token[pclk.Eic]{}
	toks.Pclks.Sercom0 = pclk.Token[pclk.Sercom0]{}
	toks.Pclks.Sercom1 = pclk.Token[pclk.Sercom1]{}
	toks.Pclks.Sercom2 = pclk.Token[pclk.Sercom2]{}
	toks.Pclks.Sercom3 = pclk.Token[pclk.Sercom3]{}
	toks.Pclks.Sercom4 = pclk.Token[pclk.Sercom4]{}
	toks.Pclks.Sercom5 = pclk.Token[pclk.Sercom5]{}
	toks.Pclks.Sercom6 = pclk.Token[pclk.Sercom6]{}
	toks.Pclks.Sercom7 = pclk.Token[pclk.Sercom7]{}
	t.Tokens = toks
	return t
}
