package mclk

import (
	"testing"

	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
)

func TestCPUDiv(t *testing.T) {
	p := chip.NewSimulated()
	c := New(p.MCLK)

	if got := c.CPUFreq(48 * freq.MHz); got != 48*freq.MHz {
		t.Errorf("CPUFreq at reset = %v, want 48 MHz", got)
	}

	c.SetCPUDiv(chip.MCLK_CPUDIV_REG_DIV_DIV4)
	if got := c.CPUFreq(120 * freq.MHz); got != 30*freq.MHz {
		t.Errorf("CPUFreq = %v, want 30 MHz", got)
	}
}

func TestCPUDivPowerOfTwo(t *testing.T) {
	p := chip.NewSimulated()
	c := New(p.MCLK)

	defer func() {
		if recover() == nil {
			t.Errorf("divider 3 accepted")
		}
	}()
	c.SetCPUDiv(3)
}

func TestEnableClockControllers(t *testing.T) {
	p := chip.NewSimulated()
	m := p.MCLK
	m.APBAMASK = 0
	m.APBBMASK = 0

	New(m).EnableClockControllers()

	if !m.APBAMASK.GetOSCCTRL() || !m.APBAMASK.GetGCLK() || !m.APBAMASK.GetOSC32KCTRL() || !m.APBAMASK.GetEIC() {
		t.Errorf("APBAMASK = %#x", uint32(m.APBAMASK))
	}
	if !m.APBBMASK.GetPORT() {
		t.Errorf("APBBMASK = %#x", uint32(m.APBBMASK))
	}
}
