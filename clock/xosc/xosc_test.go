package xosc

import (
	"testing"

	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/gpio"
	"omibyte.io/samclock/internal/seal"
)

func TestCrystalCurrent(t *testing.T) {
	tests := []struct {
		f     freq.Hertz
		want  CrystalCurrent
		imult uint8
		iptat uint8
	}{
		{8 * freq.MHz, CurrentBase, 3, 2},
		{12 * freq.MHz, CurrentLow, 4, 3},
		{16 * freq.MHz, CurrentLow, 4, 3},
		{24 * freq.MHz, CurrentMed, 5, 3},
		{32 * freq.MHz, CurrentHigh, 6, 3},
	}

	for _, test := range tests {
		c := CrystalFor(test.f)
		if c != test.want {
			t.Errorf("CrystalFor(%v) = %d, want %d", test.f, c, test.want)
		}
		if c.IMULT() != test.imult || c.IPTAT() != test.iptat {
			t.Errorf("%v: IMULT %d IPTAT %d, want %d %d", test.f, c.IMULT(), c.IPTAT(), test.imult, test.iptat)
		}
	}
}

func TestCrystal(t *testing.T) {
	p := chip.NewSimulated()
	o := p.OSCCTRL
	pins := gpio.New(p)

	p2 := &o.XOSCCTRL[1]
	config := FromCrystal(NewTokens(seal.K, o).Xosc1, pins.PB22, pins.PB23, 12*freq.MHz, CrystalSettings{
		StartUp:         chip.OSCCTRL_XOSCCTRL_REG_STARTUP_CYCLE1024,
		Current:         CurrentLow,
		AutoLoopControl: true,
	})
	x := config.OnDemand(false).ClockFailureDetector(2).SwitchBack(true).Enable()

	if !p2.GetENABLE() || !p2.GetXTALEN() || p2.GetONDEMAND() {
		t.Errorf("XOSCCTRL1 = %#x", uint32(*p2))
	}
	if got := p2.GetSTARTUP(); got != chip.OSCCTRL_XOSCCTRL_REG_STARTUP_CYCLE1024 {
		t.Errorf("STARTUP = %d", got)
	}
	if p2.GetIMULT() != 4 || p2.GetIPTAT() != 3 || !p2.GetENALC() {
		t.Errorf("crystal current not applied: %#x", uint32(*p2))
	}
	if !p2.GetCFDEN() || p2.GetCFDPRESC() != 2 || !p2.GetSWBEN() {
		t.Errorf("failure detector not applied: %#x", uint32(*p2))
	}
	if o.XOSCCTRL[0].GetENABLE() {
		t.Errorf("XOSC0 enabled")
	}

	if got := x.Get().GclkSrc(); got != chip.GCLK_GENCTRL_REG_SRC_XOSC1 {
		t.Errorf("GclkSrc = %d, want XOSC1", got)
	}
	if got := x.Get().DpllRefClk(); got != chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC1 {
		t.Errorf("DpllRefClk = %d, want XOSC1", got)
	}
	if got := x.Get().Freq(); got != 12*freq.MHz {
		t.Errorf("Freq = %v", got)
	}

	if x.Get().IsReady() {
		t.Errorf("ready before STATUS.XOSCRDY1")
	}
	o.STATUS = chip.OSCCTRL_STATUS_REG(0x2)
	x.Get().WaitReady()

	config = Disable(x)
	if p2.GetENABLE() {
		t.Errorf("XOSC1 still enabled")
	}
	tok, xin, xout := FreeCrystal(config)
	if tok.Num() != 1 {
		t.Errorf("token for XOSC%d", tok.Num())
	}
	if g, n := xin.ID(); g != 1 || n != 22 {
		t.Errorf("XIN = P%c%02d", 'A'+g, n)
	}
	if g, n := xout.ID(); g != 1 || n != 23 {
		t.Errorf("XOUT = P%c%02d", 'A'+g, n)
	}
}

func TestClock(t *testing.T) {
	p := chip.NewSimulated()
	o := p.OSCCTRL
	pins := gpio.New(p)

	x := FromClock(NewTokens(seal.K, o).Xosc0, pins.PA14, 16*freq.MHz).RunStandby(true).Enable()

	r := &o.XOSCCTRL[0]
	if !r.GetENABLE() || r.GetXTALEN() || !r.GetRUNSTDBY() {
		t.Errorf("XOSCCTRL0 = %#x", uint32(*r))
	}
	if got := x.Get().GclkSrc(); got != chip.GCLK_GENCTRL_REG_SRC_XOSC0 {
		t.Errorf("GclkSrc = %d, want XOSC0", got)
	}
	if x.Get().Failed() {
		t.Errorf("failure reported")
	}

	_, xin := FreeClock(Disable(x))
	if g, n := xin.ID(); g != 0 || n != 14 {
		t.Errorf("XIN = P%c%02d", 'A'+g, n)
	}
}

func TestInvalidToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("zero token accepted")
		}
	}()
	var tok Token0
	FromClock(tok, gpio.Pin[gpio.PA14]{}, 8*freq.MHz)
}
