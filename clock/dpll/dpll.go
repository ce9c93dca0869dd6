// Package dpll drives the two fractional digital phase locked loops.
//
// A DPLL takes its reference either from a peripheral channel (Dpll0 or
// Dpll1, fed by a generator) or directly from one of the external
// oscillators. The loop only works with references between MinInput and
// MaxInput and outputs between MinOutput and MaxOutput. Enable panics when a
// configuration falls outside those windows; CheckWindows reports the same
// condition as an error.
package dpll

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/pclk"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

// Num identifies a DPLL at the type level. It is implemented by pclk.Dpll0
// and pclk.Dpll1, whose channels carry the generator reference.
type Num interface {
	pclk.ID
	DpllIndex() int
}

// Reference is implemented by the oscillators that can drive a DPLL without a
// generator in between.
type Reference interface {
	Freq() freq.Hertz
	DpllRefClk() chip.OSCCTRL_DPLLCTRLB_REG_REFCLK
}

// Token grants exclusive use of DPLL D.
type Token[D Num] struct {
	oscctrl *chip.OSCCTRL_TYPE
}

func (t Token[D]) regs() *chip.OSCCTRL_DPLL_TYPE {
	if t.oscctrl == nil {
		panic("dpll: use of an invalid token")
	}
	var d D
	return &t.oscctrl.DPLL[d.DpllIndex()]
}

func (t Token[D]) waitSync() {
	r := t.regs()
	for r.DPLLSYNCBUSY.GetENABLE() || r.DPLLSYNCBUSY.GetDPLLRATIO() {
	}
}

// Tokens holds the tokens of both loops.
type Tokens struct {
	Dpll0 Token[pclk.Dpll0]
	Dpll1 Token[pclk.Dpll1]
}

func NewTokens(k seal.Key, o *chip.OSCCTRL_TYPE) Tokens {
	k.Check()
	return Tokens{
		Dpll0: Token[pclk.Dpll0]{o},
		Dpll1: Token[pclk.Dpll1]{o},
	}
}

// Config is DPLL D configured with a reference of type R.
type Config[D Num, R any] struct {
	token      Token[D]
	ref        R
	refFreq    freq.Hertz
	refclk     chip.OSCCTRL_DPLLCTRLB_REG_REFCLK
	srcDiv     uint16
	ldr        uint16
	frac       uint8
	filter     chip.OSCCTRL_DPLLCTRLB_REG_FILTER
	lockBypass bool
	wakeUpFast bool
	onDemand   bool
	runStandby bool
}

// FromPclk uses the generator delivered on the DPLL's own peripheral channel
// as reference.
func FromPclk[D Num, G gclk.GenNum](tok Token[D], ref pclk.Pclk[D, G]) Config[D, pclk.Pclk[D, G]] {
	return Config[D, pclk.Pclk[D, G]]{
		token:   tok,
		ref:     ref,
		refFreq: ref.Freq(),
		refclk:  chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_GCLK,
	}
}

// FromXosc uses an external oscillator as reference and takes a reference on
// it.
func FromXosc[D Num, S Reference, N typelevel.Count](tok Token[D], src typelevel.Enabled[S, N]) (Config[D, S], typelevel.Enabled[S, typelevel.Succ[N]]) {
	c := Config[D, S]{
		token:   tok,
		ref:     src.Get(),
		refFreq: src.Get().Freq(),
		refclk:  src.Get().DpllRefClk(),
	}
	return c, typelevel.Inc(seal.K, src)
}

// SourceDiv sets the reference pre-divider, which divides by 2 * (div + 1).
// It only exists on the path from XOSC0 and XOSC1.
func (c Config[D, R]) SourceDiv(div uint16) Config[D, R] {
	if PredivFactor(c.refclk, 0) == 1 {
		panic("dpll: source divider requires an XOSC0 or XOSC1 reference")
	}
	if div > MaxSourceDiv {
		div = MaxSourceDiv
	}
	c.srcDiv = div
	return c
}

// LoopDiv sets the loop division ratio. The output is the input multiplied
// by ldr + 1 + frac/32. Values out of range saturate.
func (c Config[D, R]) LoopDiv(ldr uint16, frac uint8) Config[D, R] {
	if ldr > MaxLoopDiv {
		ldr = MaxLoopDiv
	}
	if frac > MaxLoopDivFrac {
		frac = MaxLoopDivFrac
	}
	c.ldr = ldr
	c.frac = frac
	return c
}

// LockBypass makes the output available regardless of the lock state.
func (c Config[D, R]) LockBypass(enable bool) Config[D, R] {
	c.lockBypass = enable
	return c
}

// WakeUpFast outputs the clock as soon as the startup time has elapsed.
func (c Config[D, R]) WakeUpFast(enable bool) Config[D, R] {
	c.wakeUpFast = enable
	return c
}

func (c Config[D, R]) Filter(f chip.OSCCTRL_DPLLCTRLB_REG_FILTER) Config[D, R] {
	c.filter = f
	return c
}

func (c Config[D, R]) OnDemand(enable bool) Config[D, R] {
	c.onDemand = enable
	return c
}

func (c Config[D, R]) RunStandby(enable bool) Config[D, R] {
	c.runStandby = enable
	return c
}

// InputFreq returns the frequency entering the loop after the pre-divider.
func (c Config[D, R]) InputFreq() freq.Hertz {
	return InputFrequency(c.refFreq, PredivFactor(c.refclk, c.srcDiv))
}

// Freq returns the output frequency.
func (c Config[D, R]) Freq() freq.Hertz {
	return OutputFrequency(c.refFreq, PredivFactor(c.refclk, c.srcDiv), c.ldr, c.frac)
}

// Enable starts the loop. It panics if the input or the output frequency is
// outside the operating window.
func (c Config[D, R]) Enable() typelevel.Enabled[Dpll[D, R], typelevel.Zero] {
	if err := CheckWindows(c.InputFreq(), c.Freq()); err != nil {
		panic(err)
	}

	r := c.token.regs()
	r.DPLLCTRLB.SetREFCLK(c.refclk)
	if PredivFactor(c.refclk, 0) != 1 {
		r.DPLLCTRLB.SetDIV(c.srcDiv)
	}
	r.DPLLCTRLB.SetFILTER(c.filter)
	r.DPLLCTRLB.SetLTIME(chip.OSCCTRL_DPLLCTRLB_REG_LTIME_DEFAULT)
	r.DPLLCTRLB.SetLBYPASS(c.lockBypass)
	r.DPLLCTRLB.SetWUF(c.wakeUpFast)

	r.DPLLRATIO.SetLDR(c.ldr)
	r.DPLLRATIO.SetLDRFRAC(c.frac)
	c.token.waitSync()

	r.DPLLCTRLA.SetONDEMAND(c.onDemand)
	r.DPLLCTRLA.SetRUNSTDBY(c.runStandby)
	r.DPLLCTRLA.SetENABLE(true)
	c.token.waitSync()

	return typelevel.New(seal.K, Dpll[D, R]{config: c})
}

// Dpll is a running loop.
type Dpll[D Num, R any] struct {
	config Config[D, R]
}

func (d Dpll[D, R]) Freq() freq.Hertz {
	return d.config.Freq()
}

func (Dpll[D, R]) GclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	var n D
	return chip.GCLK_GENCTRL_REG_SRC_DPLL0 + chip.GCLK_GENCTRL_REG_SRC(n.DpllIndex())
}

// IsLocked reports whether the loop has locked.
func (d Dpll[D, R]) IsLocked() bool {
	return d.config.token.regs().DPLLSTATUS.GetLOCK()
}

// WaitUntilReady blocks until the output clock is ready.
func (d Dpll[D, R]) WaitUntilReady() {
	r := d.config.token.regs()
	for !r.DPLLSTATUS.GetCLKRDY() {
	}
}

// WaitUntilLocked blocks until the loop has locked.
func (d Dpll[D, R]) WaitUntilLocked() {
	r := d.config.token.regs()
	for !r.DPLLSTATUS.GetLOCK() {
	}
}

// Disable stops an unused loop.
func Disable[D Num, R any](e typelevel.Enabled[Dpll[D, R], typelevel.Zero]) Config[D, R] {
	c := typelevel.Unwrap(e).config
	c.token.regs().DPLLCTRLA.SetENABLE(false)
	c.token.waitSync()
	return c
}

// FreePclk returns the token and the reference channel.
func FreePclk[D Num, G gclk.GenNum](c Config[D, pclk.Pclk[D, G]]) (Token[D], pclk.Pclk[D, G]) {
	return c.token, c.ref
}

// FreeXosc returns the token and releases the oscillator.
func FreeXosc[D Num, S Reference, N typelevel.Count](c Config[D, S], src typelevel.Enabled[S, typelevel.Succ[N]]) (Token[D], typelevel.Enabled[S, N]) {
	return c.token, typelevel.Dec(seal.K, src)
}
