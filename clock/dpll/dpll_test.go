package dpll

import (
	"errors"
	"testing"

	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/dfll"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/pclk"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

type testXosc struct {
	f      freq.Hertz
	refclk chip.OSCCTRL_DPLLCTRLB_REG_REFCLK
}

func (x testXosc) Freq() freq.Hertz                              { return x.f }
func (x testXosc) DpllRefClk() chip.OSCCTRL_DPLLCTRLB_REG_REFCLK { return x.refclk }

func expectPanic(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("no panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("panic %v, want %v", r, want)
		}
	}()
	f()
}

func TestFromPclk(t *testing.T) {
	p := chip.NewSimulated()
	_, dfll1, gens := gclk.Boot(seal.K, p.GCLK, dfll.Boot(seal.K, p.OSCCTRL))

	config, _ := gclk.New(gens.Gclk2, dfll1)
	gen2 := config.Div(gclk.DivBy(24)).Enable()
	ref, gen2Used := pclk.Enable(pclk.NewTokens(seal.K, p.GCLK).Dpll0, gen2)
	if gen2Used.Count() != 1 {
		t.Fatalf("GCLK2 has %d users, want 1", gen2Used.Count())
	}

	d := FromPclk(NewTokens(seal.K, p.OSCCTRL).Dpll0, ref).
		LoopDiv(59, 0).
		Filter(chip.OSCCTRL_DPLLCTRLB_REG_FILTER_FILTER3).
		LockBypass(true).
		Enable()

	if got := d.Get().Freq(); got != 120*freq.MHz {
		t.Errorf("DPLL0 = %v, want 120 MHz", got)
	}
	if got := d.Get().GclkSrc(); got != chip.GCLK_GENCTRL_REG_SRC_DPLL0 {
		t.Errorf("GclkSrc = %d, want DPLL0", got)
	}

	r := &p.OSCCTRL.DPLL[0]
	if got := r.DPLLCTRLB.GetREFCLK(); got != chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_GCLK {
		t.Errorf("REFCLK = %d, want GCLK", got)
	}
	if got := r.DPLLRATIO.GetLDR(); got != 59 {
		t.Errorf("LDR = %d, want 59", got)
	}
	if got := r.DPLLCTRLB.GetFILTER(); got != chip.OSCCTRL_DPLLCTRLB_REG_FILTER_FILTER3 {
		t.Errorf("FILTER = %d", got)
	}
	if !r.DPLLCTRLB.GetLBYPASS() {
		t.Errorf("LBYPASS not set")
	}
	if !r.DPLLCTRLA.GetENABLE() || r.DPLLCTRLA.GetONDEMAND() {
		t.Errorf("DPLLCTRLA = %#x", uint8(r.DPLLCTRLA))
	}
	if p.OSCCTRL.DPLL[1].DPLLCTRLA.GetENABLE() {
		t.Errorf("DPLL1 enabled")
	}

	r.DPLLSTATUS = chip.OSCCTRL_DPLLSTATUS_REG(0x3)
	d.Get().WaitUntilLocked()
	d.Get().WaitUntilReady()
	if !d.Get().IsLocked() {
		t.Errorf("not locked")
	}

	config2 := Disable(d)
	if r.DPLLCTRLA.GetENABLE() {
		t.Errorf("DPLL0 still enabled")
	}
	_, ref2 := FreePclk(config2)
	if ref2.Channel() != 1 || ref2.Generator() != 2 {
		t.Errorf("reference on channel %d from GCLK%d", ref2.Channel(), ref2.Generator())
	}
	if _, gen2Free := pclk.Disable(ref2, gen2Used); gen2Free.Count() != 0 {
		t.Errorf("GCLK2 has %d users, want 0", gen2Free.Count())
	}
}

func TestFromXosc(t *testing.T) {
	p := chip.NewSimulated()
	xosc := typelevel.New(seal.K, testXosc{f: 12 * freq.MHz, refclk: chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC1})

	config, xoscUsed := FromXosc(NewTokens(seal.K, p.OSCCTRL).Dpll1, xosc)
	if xoscUsed.Count() != 1 {
		t.Fatalf("XOSC1 has %d users, want 1", xoscUsed.Count())
	}

	// 12 MHz / 6 = 2 MHz, times 60
	d := config.SourceDiv(2).LoopDiv(59, 0).OnDemand(true).Enable()
	if got := d.Get().Freq(); got != 120*freq.MHz {
		t.Errorf("DPLL1 = %v, want 120 MHz", got)
	}
	if got := d.Get().GclkSrc(); got != chip.GCLK_GENCTRL_REG_SRC_DPLL1 {
		t.Errorf("GclkSrc = %d, want DPLL1", got)
	}

	r := &p.OSCCTRL.DPLL[1]
	if got := r.DPLLCTRLB.GetREFCLK(); got != chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC1 {
		t.Errorf("REFCLK = %d, want XOSC1", got)
	}
	if got := r.DPLLCTRLB.GetDIV(); got != 2 {
		t.Errorf("DIV = %d, want 2", got)
	}

	_, xoscFree := FreeXosc(Disable(d), xoscUsed)
	if xoscFree.Count() != 0 {
		t.Errorf("XOSC1 has %d users, want 0", xoscFree.Count())
	}
}

func TestSourceDivRequiresXosc(t *testing.T) {
	p := chip.NewSimulated()
	xosc32k := typelevel.New(seal.K, testXosc{f: 32_768, refclk: chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC32})
	config, _ := FromXosc(NewTokens(seal.K, p.OSCCTRL).Dpll0, xosc32k)

	defer func() {
		if recover() == nil {
			t.Errorf("SourceDiv accepted an XOSC32K reference")
		}
	}()
	config.SourceDiv(1)
}

func TestEnableRejectsInput(t *testing.T) {
	p := chip.NewSimulated()
	xosc := typelevel.New(seal.K, testXosc{f: 8 * freq.MHz, refclk: chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC0})
	config, _ := FromXosc(NewTokens(seal.K, p.OSCCTRL).Dpll0, xosc)

	// 8 MHz / 2 = 4 MHz reaches the loop
	config = config.SourceDiv(0).LoopDiv(29, 0)
	if got := config.InputFreq(); got != 4*freq.MHz {
		t.Fatalf("input = %v, want 4 MHz", got)
	}
	expectPanic(t, ErrInputOutOfRange, func() { config.Enable() })
	if p.OSCCTRL.DPLL[0].DPLLCTRLA.GetENABLE() {
		t.Errorf("DPLL0 enabled")
	}
}

func TestEnableRejectsOutput(t *testing.T) {
	p := chip.NewSimulated()
	xosc := typelevel.New(seal.K, testXosc{f: 8 * freq.MHz, refclk: chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC0})
	config, _ := FromXosc(NewTokens(seal.K, p.OSCCTRL).Dpll0, xosc)

	// 2 MHz times 40
	config = config.SourceDiv(1).LoopDiv(39, 0)
	if got := config.Freq(); got != 80*freq.MHz {
		t.Fatalf("output = %v, want 80 MHz", got)
	}
	expectPanic(t, ErrOutputOutOfRange, func() { config.Enable() })
}

func TestLoopDivSaturates(t *testing.T) {
	p := chip.NewSimulated()
	xosc32k := typelevel.New(seal.K, testXosc{f: 32_768, refclk: chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC32})
	config, _ := FromXosc(NewTokens(seal.K, p.OSCCTRL).Dpll0, xosc32k)

	config = config.LoopDiv(0xffff, 0xff)
	want := OutputFrequency(32_768, 1, MaxLoopDiv, MaxLoopDivFrac)
	if got := config.Freq(); got != want {
		t.Errorf("Freq = %v, want %v", got, want)
	}
}
