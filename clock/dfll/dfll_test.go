package dfll

import (
	"testing"
	"unsafe"

	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/pclk"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/internal/volatile"
	"omibyte.io/samclock/typelevel"
)

type crystal32k struct{}

func (crystal32k) Freq() freq.Hertz                   { return 32_768 }
func (crystal32k) GclkSrc() chip.GCLK_GENCTRL_REG_SRC { return chip.GCLK_GENCTRL_REG_SRC_XOSC32K }

func TestBoot(t *testing.T) {
	p := chip.NewSimulated()
	d := Boot(seal.K, p.OSCCTRL)
	if got := d.Get().Freq(); got != 48*freq.MHz {
		t.Errorf("DFLL = %v, want 48 MHz", got)
	}
	if got := d.Get().GclkSrc(); got != chip.GCLK_GENCTRL_REG_SRC_DFLL {
		t.Errorf("GclkSrc = %d", got)
	}
}

func TestOpenLoop(t *testing.T) {
	p := chip.NewSimulated()
	o := p.OSCCTRL

	config := DisableOpen(Boot(seal.K, o))
	if o.DFLLCTRLA.GetENABLE() {
		t.Fatalf("DFLL still enabled")
	}

	d := InOpenLoop(config.Free()).
		Trim(0x50, 0x7f).
		OnDemand(false).
		RunStandby(true).
		Enable()

	if !o.DFLLCTRLA.GetENABLE() || o.DFLLCTRLA.GetONDEMAND() || !o.DFLLCTRLA.GetRUNSTDBY() {
		t.Errorf("DFLLCTRLA = %#x", uint8(o.DFLLCTRLA))
	}
	if o.DFLLCTRLB.GetMODE() {
		t.Errorf("closed loop mode selected")
	}
	if got := o.DFLLVAL.GetCOARSE(); got != MaxCoarse {
		t.Errorf("COARSE = %#x, want %#x", got, MaxCoarse)
	}
	if got := o.DFLLVAL.GetFINE(); got != 0x7f {
		t.Errorf("FINE = %#x, want 0x7f", got)
	}

	o.STATUS = chip.OSCCTRL_STATUS_REG(1 << 8)
	d.Get().WaitReady()
}

func TestClosedLoop(t *testing.T) {
	p := chip.NewSimulated()
	o := p.OSCCTRL

	_, src, gens := gclk.Boot(seal.K, p.GCLK, typelevel.New(seal.K, crystal32k{}))
	channels := pclk.NewTokens(seal.K, p.GCLK)

	config, _ := gclk.New(gens.Gclk3, src)
	gen3 := config.Enable()
	ref, _ := pclk.Enable(channels.Dfll48, gen3)

	open := DisableOpen(Boot(seal.K, o))
	closed := InClosedLoop(open.Free(), ref, 1465, 1, 1).WaitLock(true)

	// 32.768 kHz * 1465 is within 1 kHz of 48 MHz
	if got := closed.Freq(); got != 48_005_120 {
		t.Errorf("closed loop = %d Hz, want 48005120", got)
	}
	if diff := int64(closed.Freq()) - int64(48*freq.MHz); diff < -1000 || diff > 10_000 {
		t.Errorf("closed loop is %d Hz off 48 MHz", diff)
	}

	d := closed.Enable()
	if got := o.DFLLMUL.GetMUL(); got != 1465 {
		t.Errorf("MUL = %d, want 1465", got)
	}
	if o.DFLLMUL.GetCSTEP() != 1 || o.DFLLMUL.GetFSTEP() != 1 {
		t.Errorf("steps = (%d, %d), want (1, 1)", o.DFLLMUL.GetCSTEP(), o.DFLLMUL.GetFSTEP())
	}
	if !o.DFLLCTRLB.GetMODE() || !o.DFLLCTRLB.GetWAITLOCK() {
		t.Errorf("DFLLCTRLB = %#x", uint8(o.DFLLCTRLB))
	}
	if !o.DFLLCTRLA.GetENABLE() {
		t.Errorf("DFLL not enabled")
	}
	if d.Get().Multiplier() != 1465 {
		t.Errorf("Multiplier = %d", d.Get().Multiplier())
	}

	o.STATUS = chip.OSCCTRL_STATUS_REG(1<<8 | 1<<10 | 1<<11)
	d.Get().WaitReady()
	d.Get().WaitLocked()

	closed = DisableClosed(d)
	tok, back := closed.Free()
	if back.Channel() != 0 {
		t.Errorf("reference channel %d", back.Channel())
	}
	InOpenLoop(tok).Enable()
	if o.DFLLCTRLB.GetMODE() {
		t.Errorf("still in closed loop")
	}
}

func TestMultiplierWritesSynchronized(t *testing.T) {
	p := chip.NewSimulated()
	o := p.OSCCTRL

	_, src, gens := gclk.Boot(seal.K, p.GCLK, typelevel.New(seal.K, crystal32k{}))
	config, _ := gclk.New(gens.Gclk3, src)
	ref, _ := pclk.Enable(pclk.NewTokens(seal.K, p.GCLK).Dfll48, config.Enable())
	closed := InClosedLoop(DisableOpen(Boot(seal.K, o)).Free(), ref, 1465, 4, 8)

	// DFLLMUL reads as busy after each write until DFLLSYNC is polled.
	mul, dfllsync := unsafe.Pointer(&o.DFLLMUL), unsafe.Pointer(&o.DFLLSYNC)
	busy, writes, early := false, 0, 0
	volatile.OnStore = func(addr unsafe.Pointer) {
		if addr != mul {
			return
		}
		writes++
		if busy {
			early++
		}
		busy = true
	}
	volatile.OnLoad = func(addr unsafe.Pointer) {
		if addr == dfllsync {
			busy = false
		}
	}
	defer func() {
		volatile.OnLoad, volatile.OnStore = nil, nil
	}()

	closed.Enable()
	if writes != 3 {
		t.Errorf("%d writes to DFLLMUL, want 3", writes)
	}
	if early != 0 {
		t.Errorf("%d writes to DFLLMUL while it was synchronizing", early)
	}
	if o.DFLLMUL.GetMUL() != 1465 || o.DFLLMUL.GetCSTEP() != 4 || o.DFLLMUL.GetFSTEP() != 8 {
		t.Errorf("DFLLMUL = %#x", uint32(o.DFLLMUL))
	}
}

func TestStepLimit(t *testing.T) {
	c := InClosedLoop(Token{}, pclk.Pclk[pclk.Dfll48, gclk.Gen2]{}, 1, 0xff, 0xff)
	if c.coarseStep != MaxCoarseStep || c.fineStep != 0xff {
		t.Errorf("steps = (%d, %d)", c.coarseStep, c.fineStep)
	}
}

func TestClosedLoopFrequency(t *testing.T) {
	tests := []struct {
		ref  freq.Hertz
		mul  uint16
		want freq.Hertz
	}{
		{32_768, 1465, 48_005_120},
		{1 * freq.MHz, 48, 48 * freq.MHz},
		{1 * freq.KHz, 48_000, 48 * freq.MHz},
		{0, 1000, 0},
	}

	for _, test := range tests {
		if got := ClosedLoopFrequency(test.ref, test.mul); got != test.want {
			t.Errorf("%d * %d = %d, want %d", test.ref, test.mul, got, test.want)
		}
	}
}
