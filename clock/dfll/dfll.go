// Package dfll drives the 48 MHz digital frequency locked loop.
//
// The DFLL runs either in open loop, where its output is set by the
// calibration values alone, or in closed loop, where it multiplies a
// reference clock delivered through peripheral channel 0. The mode is part of
// the type: OpenLoop and ClosedLoop are distinct sources. Changing the mode of
// a running DFLL therefore means disabling it, freeing the configuration and
// building a new one.
package dfll

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/pclk"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

// NominalFreq is the open loop output frequency.
const NominalFreq = 48 * freq.MHz

const (
	MaxCoarse     = 0x3f
	MaxCoarseStep = 0x3f
)

// Token grants exclusive use of the DFLL.
type Token struct {
	oscctrl *chip.OSCCTRL_TYPE
}

func (t Token) regs() *chip.OSCCTRL_TYPE {
	if t.oscctrl == nil {
		panic("dfll: use of an invalid token")
	}
	return t.oscctrl
}

func (t Token) waitSync() {
	o := t.oscctrl
	for o.DFLLSYNC.GetENABLE() || o.DFLLSYNC.GetDFLLCTRLB() || o.DFLLSYNC.GetDFLLVAL() || o.DFLLSYNC.GetDFLLMUL() {
	}
}

func (t Token) setFlags(onDemand, runStandby bool) {
	o := t.regs()
	o.DFLLCTRLA.SetONDEMAND(onDemand)
	o.DFLLCTRLA.SetRUNSTDBY(runStandby)
}

func (t Token) enable() {
	t.regs().DFLLCTRLA.SetENABLE(true)
	t.waitSync()
}

func (t Token) disable() {
	t.regs().DFLLCTRLA.SetENABLE(false)
	t.waitSync()
}

func (t Token) waitReady() {
	o := t.regs()
	for !o.STATUS.GetDFLLRDY() {
	}
}

// Boot adopts the DFLL as the device left it at reset: enabled in open loop.
func Boot(k seal.Key, o *chip.OSCCTRL_TYPE) typelevel.Enabled[OpenLoop, typelevel.Zero] {
	c := OpenLoopConfig{
		token:    Token{oscctrl: o},
		onDemand: o.DFLLCTRLA.GetONDEMAND(),
	}
	return typelevel.New(k, OpenLoop{config: c})
}

// OpenLoopConfig is a DFLL configured for open loop operation.
type OpenLoopConfig struct {
	token      Token
	trim       bool
	coarse     uint8
	fine       uint8
	onDemand   bool
	runStandby bool
}

// InOpenLoop prepares the DFLL for open loop operation with the factory
// calibration.
func InOpenLoop(tok Token) OpenLoopConfig {
	return OpenLoopConfig{token: tok}
}

// Trim replaces the factory calibration. Coarse is limited to MaxCoarse.
func (c OpenLoopConfig) Trim(coarse, fine uint8) OpenLoopConfig {
	if coarse > MaxCoarse {
		coarse = MaxCoarse
	}
	c.trim = true
	c.coarse = coarse
	c.fine = fine
	return c
}

// OnDemand only runs the DFLL while a consumer requests it.
func (c OpenLoopConfig) OnDemand(enable bool) OpenLoopConfig {
	c.onDemand = enable
	return c
}

// RunStandby keeps the DFLL running in standby sleep.
func (c OpenLoopConfig) RunStandby(enable bool) OpenLoopConfig {
	c.runStandby = enable
	return c
}

func (c OpenLoopConfig) Freq() freq.Hertz {
	return NominalFreq
}

// Enable starts the DFLL in open loop.
func (c OpenLoopConfig) Enable() typelevel.Enabled[OpenLoop, typelevel.Zero] {
	o := c.token.regs()

	o.DFLLCTRLB.SetMODE(false)
	c.token.waitSync()

	if c.trim {
		o.DFLLVAL.SetCOARSE(c.coarse)
		o.DFLLVAL.SetFINE(c.fine)
		c.token.waitSync()
	}

	c.token.setFlags(c.onDemand, c.runStandby)
	c.token.enable()
	return typelevel.New(seal.K, OpenLoop{config: c})
}

// Free returns the token.
func (c OpenLoopConfig) Free() Token {
	return c.token
}

// OpenLoop is the DFLL running in open loop.
type OpenLoop struct {
	config OpenLoopConfig
}

func (OpenLoop) Freq() freq.Hertz {
	return NominalFreq
}

func (OpenLoop) GclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_DFLL
}

// WaitReady blocks until the output is stable.
func (d OpenLoop) WaitReady() {
	d.config.token.waitReady()
}

// DisableOpen stops an unused open loop DFLL.
func DisableOpen(e typelevel.Enabled[OpenLoop, typelevel.Zero]) OpenLoopConfig {
	c := typelevel.Unwrap(e).config
	c.token.disable()
	return c
}

// ClosedLoopConfig is a DFLL configured to track a reference delivered by
// generator G.
type ClosedLoopConfig[G gclk.GenNum] struct {
	token      Token
	ref        pclk.Pclk[pclk.Dfll48, G]
	mul        uint16
	coarseStep uint8
	fineStep   uint8
	onDemand   bool
	runStandby bool
	waitLock   bool
}

// InClosedLoop prepares the DFLL to multiply ref by mul. The step sizes bound
// the corrections applied while locking; coarseStep is limited to
// MaxCoarseStep.
func InClosedLoop[G gclk.GenNum](tok Token, ref pclk.Pclk[pclk.Dfll48, G], mul uint16, coarseStep, fineStep uint8) ClosedLoopConfig[G] {
	if coarseStep > MaxCoarseStep {
		coarseStep = MaxCoarseStep
	}
	return ClosedLoopConfig[G]{
		token:      tok,
		ref:        ref,
		mul:        mul,
		coarseStep: coarseStep,
		fineStep:   fineStep,
	}
}

func (c ClosedLoopConfig[G]) OnDemand(enable bool) ClosedLoopConfig[G] {
	c.onDemand = enable
	return c
}

func (c ClosedLoopConfig[G]) RunStandby(enable bool) ClosedLoopConfig[G] {
	c.runStandby = enable
	return c
}

// WaitLock gates the output until the loop has locked.
func (c ClosedLoopConfig[G]) WaitLock(enable bool) ClosedLoopConfig[G] {
	c.waitLock = enable
	return c
}

// Freq returns the output frequency: reference times multiplier.
func (c ClosedLoopConfig[G]) Freq() freq.Hertz {
	return ClosedLoopFrequency(c.ref.Freq(), c.mul)
}

// Enable starts the DFLL in closed loop. The multiplier and step sizes are
// written before the mode bit.
func (c ClosedLoopConfig[G]) Enable() typelevel.Enabled[ClosedLoop[G], typelevel.Zero] {
	o := c.token.regs()

	o.DFLLMUL.SetFSTEP(c.fineStep)
	c.token.waitSync()
	o.DFLLMUL.SetCSTEP(c.coarseStep)
	c.token.waitSync()
	o.DFLLMUL.SetMUL(c.mul)
	c.token.waitSync()

	o.DFLLCTRLB.SetWAITLOCK(c.waitLock)
	o.DFLLCTRLB.SetMODE(true)
	c.token.waitSync()

	c.token.setFlags(c.onDemand, c.runStandby)
	c.token.enable()
	return typelevel.New(seal.K, ClosedLoop[G]{config: c})
}

// Free returns the token and the reference channel.
func (c ClosedLoopConfig[G]) Free() (Token, pclk.Pclk[pclk.Dfll48, G]) {
	return c.token, c.ref
}

// ClosedLoop is the DFLL locked to a reference from generator G.
type ClosedLoop[G gclk.GenNum] struct {
	config ClosedLoopConfig[G]
}

func (d ClosedLoop[G]) Freq() freq.Hertz {
	return d.config.Freq()
}

func (ClosedLoop[G]) GclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_DFLL
}

// Multiplier returns the configured multiplication factor.
func (d ClosedLoop[G]) Multiplier() uint16 {
	return d.config.mul
}

// WaitReady blocks until the output is stable.
func (d ClosedLoop[G]) WaitReady() {
	d.config.token.waitReady()
}

// WaitLocked blocks until both the coarse and the fine loop have locked.
func (d ClosedLoop[G]) WaitLocked() {
	o := d.config.token.regs()
	for !o.STATUS.GetDFLLLCKC() || !o.STATUS.GetDFLLLCKF() {
	}
}

// DisableClosed stops an unused closed loop DFLL.
func DisableClosed[G gclk.GenNum](e typelevel.Enabled[ClosedLoop[G], typelevel.Zero]) ClosedLoopConfig[G] {
	c := typelevel.Unwrap(e).config
	c.token.disable()
	return c
}

// ClosedLoopFrequency returns the output of the DFLL locked to ref with
// multiplier mul.
func ClosedLoopFrequency(ref freq.Hertz, mul uint16) freq.Hertz {
	return freq.Mul(ref, mul)
}
