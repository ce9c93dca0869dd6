// Package nvm sizes the flash wait states for the CPU clock.
package nvm

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
)

// MaxWaitStates is the largest value the RWS field holds.
const MaxWaitStates = 15

// Flash access limits for VDD above 2.7 V. Entry n is the highest CPU
// frequency that works with n wait states.
var waitStateLimits = [...]freq.Hertz{
	24 * freq.MHz,
	51 * freq.MHz,
	77 * freq.MHz,
	101 * freq.MHz,
	119 * freq.MHz,
	120 * freq.MHz,
}

// WaitStatesFor returns the number of wait states the flash needs at CPU
// frequency f. Frequencies above the supported range get MaxWaitStates.
func WaitStatesFor(f freq.Hertz) uint8 {
	for n, limit := range waitStateLimits {
		if f <= limit {
			return uint8(n)
		}
	}
	return MaxWaitStates
}

// Controller owns the flash wait state configuration.
type Controller struct {
	nvmctrl *chip.NVMCTRL_TYPE
}

func New(n *chip.NVMCTRL_TYPE) Controller {
	return Controller{nvmctrl: n}
}

func (c Controller) regs() *chip.NVMCTRL_TYPE {
	if c.nvmctrl == nil {
		panic("nvm: use of an invalid controller")
	}
	return c.nvmctrl
}

// SetAutoWaitStates lets the controller pick the wait states from the
// performance level.
func (c Controller) SetAutoWaitStates(enable bool) {
	c.regs().CTRLA.SetAUTOWS(enable)
}

func (c Controller) AutoWaitStates() bool {
	return c.regs().CTRLA.GetAUTOWS()
}

// SetWaitStates sets a fixed number of wait states and turns automatic
// selection off.
func (c Controller) SetWaitStates(n uint8) {
	if n > MaxWaitStates {
		panic("nvm: wait states out of range")
	}
	r := c.regs()
	r.CTRLA.SetAUTOWS(false)
	r.CTRLA.SetRWS(n)
}

func (c Controller) WaitStates() uint8 {
	return c.regs().CTRLA.GetRWS()
}

// Prepare sets the wait states for a CPU frequency of f.
func (c Controller) Prepare(f freq.Hertz) {
	c.SetWaitStates(WaitStatesFor(f))
}
