// Package mclk controls the main clock: the CPU clock divider and the bus
// clocks of the peripherals.
package mclk

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
)

// Controller owns the MCLK block.
type Controller struct {
	mclk *chip.MCLK_TYPE
}

func New(m *chip.MCLK_TYPE) Controller {
	return Controller{mclk: m}
}

func (c Controller) regs() *chip.MCLK_TYPE {
	if c.mclk == nil {
		panic("mclk: use of an invalid controller")
	}
	return c.mclk
}

// EnableClockControllers turns on the bus clocks of the clock controllers
// and of PORT and EIC.
func (c Controller) EnableClockControllers() {
	m := c.regs()
	m.APBAMASK.SetOSCCTRL(true)
	m.APBAMASK.SetGCLK(true)
	m.APBAMASK.SetOSC32KCTRL(true)
	m.APBBMASK.SetPORT(true)
	m.APBAMASK.SetEIC(true)
}

// SetCPUDiv sets the division of GCLK0 for the CPU and waits until the new
// clock is running. div must be a power of two up to 128.
func (c Controller) SetCPUDiv(div chip.MCLK_CPUDIV_REG_DIV) {
	if div == 0 || div&(div-1) != 0 {
		panic("mclk: CPU divider must be a power of two")
	}
	m := c.regs()
	m.CPUDIV.SetDIV(div)
	for !m.INTFLAG.GetCKRDY() {
	}
}

// CPUFreq returns the CPU frequency for a GCLK0 frequency of gen0.
func (c Controller) CPUFreq(gen0 freq.Hertz) freq.Hertz {
	return freq.Div(gen0, uint32(c.regs().CPUDIV.GetDIV()))
}
