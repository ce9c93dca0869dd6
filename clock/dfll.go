package clock

import (
	"omibyte.io/samclock/clock/dfll"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/osc32k"
	"omibyte.io/samclock/clock/pclk"
	"omibyte.io/samclock/typelevel"
)

// EnterClosedLoop switches the DFLL that runs the CPU to closed loop
// operation on ref. GCLK0 runs from OSCULP32K while the DFLL is stopped and
// returns to the DFLL once it has locked.
func EnterClosedLoop[G gclk.GenNum, N typelevel.Count](
	gen0 typelevel.Enabled[gclk.Gclk[gclk.Gen0, dfll.OpenLoop], typelevel.One],
	open typelevel.Enabled[dfll.OpenLoop, typelevel.One],
	ulp typelevel.Enabled[osc32k.OscUlp32k, N],
	ref pclk.Pclk[pclk.Dfll48, G],
	mul uint16,
	coarseStep, fineStep uint8,
) (
	typelevel.Enabled[gclk.Gclk[gclk.Gen0, dfll.ClosedLoop[G]], typelevel.One],
	typelevel.Enabled[dfll.ClosedLoop[G], typelevel.One],
	typelevel.Enabled[osc32k.OscUlp32k, N],
) {
	gen0Ulp, unused, ulpUsed := gclk.SwapGen0(gen0, open, ulp)

	tok := dfll.DisableOpen(unused).Free()
	closed := dfll.InClosedLoop(tok, ref, mul, coarseStep, fineStep).Enable()
	closed.Get().WaitLocked()

	gen0Closed, ulpFree, closedUsed := gclk.SwapGen0(gen0Ulp, ulpUsed, closed)
	return gen0Closed, closedUsed, ulpFree
}

// EnterOpenLoop returns the DFLL that runs the CPU to open loop operation
// and gives back its reference channel.
func EnterOpenLoop[G gclk.GenNum, N typelevel.Count](
	gen0 typelevel.Enabled[gclk.Gclk[gclk.Gen0, dfll.ClosedLoop[G]], typelevel.One],
	closed typelevel.Enabled[dfll.ClosedLoop[G], typelevel.One],
	ulp typelevel.Enabled[osc32k.OscUlp32k, N],
) (
	typelevel.Enabled[gclk.Gclk[gclk.Gen0, dfll.OpenLoop], typelevel.One],
	typelevel.Enabled[dfll.OpenLoop, typelevel.One],
	typelevel.Enabled[osc32k.OscUlp32k, N],
	pclk.Pclk[pclk.Dfll48, G],
) {
	gen0Ulp, unused, ulpUsed := gclk.SwapGen0(gen0, closed, ulp)

	tok, ref := dfll.DisableClosed(unused).Free()
	open := dfll.InOpenLoop(tok).Enable()
	open.Get().WaitReady()

	gen0Open, ulpFree, openUsed := gclk.SwapGen0(gen0Ulp, ulpUsed, open)
	return gen0Open, openUsed, ulpFree, ref
}
