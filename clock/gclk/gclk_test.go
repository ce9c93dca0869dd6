package gclk

import (
	"testing"
	"unsafe"

	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/internal/typecheck"
	"omibyte.io/samclock/internal/volatile"
	"omibyte.io/samclock/typelevel"
)

type testSource struct {
	f   freq.Hertz
	src chip.GCLK_GENCTRL_REG_SRC
}

func (s testSource) Freq() freq.Hertz                   { return s.f }
func (s testSource) GclkSrc() chip.GCLK_GENCTRL_REG_SRC { return s.src }

type otherSource struct {
	testSource
}

func setup() (*chip.GCLK_TYPE, typelevel.Enabled[Gclk[Gen0, testSource], typelevel.One], typelevel.Enabled[testSource, typelevel.One], Tokens) {
	p := chip.NewSimulated()
	dfll := typelevel.New(seal.K, testSource{f: 48 * freq.MHz, src: chip.GCLK_GENCTRL_REG_SRC_DFLL})
	gen0, dfllUsed, tokens := Boot(seal.K, p.GCLK, dfll)
	return p.GCLK, gen0, dfllUsed, tokens
}

func TestBoot(t *testing.T) {
	_, gen0, dfll, _ := setup()

	if gen0.Count() != 1 {
		t.Errorf("GCLK0 has %d users, want 1", gen0.Count())
	}
	if dfll.Count() != 1 {
		t.Errorf("DFLL has %d users, want 1", dfll.Count())
	}
	if got := gen0.Get().Freq(); got != 48*freq.MHz {
		t.Errorf("GCLK0 = %v, want 48 MHz", got)
	}
}

func TestLifecycle(t *testing.T) {
	regs, _, dfll, tokens := setup()

	config, dfll2 := New(tokens.Gclk2, dfll)
	if dfll2.Count() != 2 {
		t.Fatalf("DFLL has %d users, want 2", dfll2.Count())
	}
	if got := regs.GENCTRL[2].GetSRC(); got != chip.GCLK_GENCTRL_REG_SRC_DFLL {
		t.Errorf("SRC = %d, want DFLL", got)
	}

	config = config.Div(DivBy(4))
	if got := regs.GENCTRL[2].GetDIV(); got != 4 {
		t.Errorf("DIV = %d, want 4", got)
	}

	gen2 := config.Enable()
	if !regs.GENCTRL[2].GetGENEN() {
		t.Errorf("GENEN not set")
	}
	if got := gen2.Get().Freq(); got != 12*freq.MHz {
		t.Errorf("GCLK2 = %v, want 12 MHz", got)
	}

	config = Disable(gen2)
	if regs.GENCTRL[2].GetGENEN() {
		t.Errorf("GENEN still set")
	}

	token, dfll1 := Free(config, dfll2)
	if dfll1.Count() != 1 {
		t.Errorf("DFLL has %d users after free, want 1", dfll1.Count())
	}

	// Attaching again with the same divider reproduces the frequency
	config, _ = New(token, dfll1)
	gen2 = config.Div(DivBy(4)).Enable()
	if got := gen2.Get().Freq(); got != 12*freq.MHz {
		t.Errorf("GCLK2 after reattach = %v, want 12 MHz", got)
	}
}

func TestDivSingleWrite(t *testing.T) {
	regs, _, dfll, tokens := setup()
	config, _ := New(tokens.Gclk3, dfll)

	// GENCTRL3 reads as busy after each write until SYNCBUSY is polled.
	genctrl, syncbusy := unsafe.Pointer(&regs.GENCTRL[3]), unsafe.Pointer(&regs.SYNCBUSY)
	busy, writes, early := false, 0, 0
	volatile.OnStore = func(addr unsafe.Pointer) {
		if addr != genctrl {
			return
		}
		writes++
		if busy {
			early++
		}
		busy = true
	}
	volatile.OnLoad = func(addr unsafe.Pointer) {
		if addr == syncbusy {
			busy = false
		}
	}
	defer func() {
		volatile.OnLoad, volatile.OnStore = nil, nil
	}()

	config.Div(DivPow2(5))
	if writes != 1 {
		t.Errorf("%d writes to GENCTRL for one divider, want 1", writes)
	}
	if early != 0 {
		t.Errorf("%d writes to GENCTRL while it was synchronizing", early)
	}
	if regs.GENCTRL[3].GetDIVSEL() != chip.GCLK_GENCTRL_REG_DIVSEL_DIV2 || regs.GENCTRL[3].GetDIV() != 5 {
		t.Errorf("DIVSEL = %d, DIV = %d", regs.GENCTRL[3].GetDIVSEL(), regs.GENCTRL[3].GetDIV())
	}
}

func TestSwap(t *testing.T) {
	regs, _, dfll, tokens := setup()
	xosc := typelevel.New(seal.K, otherSource{testSource{f: 12 * freq.MHz, src: chip.GCLK_GENCTRL_REG_SRC_XOSC0}})

	config, dfll2 := New(tokens.Gclk3, dfll)
	config = config.Div(DivBy(2))

	swapped, dfll1, xosc1 := Swap(config, dfll2, xosc)
	if dfll1.Count() != 1 || xosc1.Count() != 1 {
		t.Errorf("counts after swap: DFLL %d, XOSC %d", dfll1.Count(), xosc1.Count())
	}
	if got := regs.GENCTRL[3].GetSRC(); got != chip.GCLK_GENCTRL_REG_SRC_XOSC0 {
		t.Errorf("SRC = %d, want XOSC0", got)
	}
	if got := swapped.SourceFreq(); got != 12*freq.MHz {
		t.Errorf("source after swap = %v", got)
	}
	if got := swapped.Freq(); got != 6*freq.MHz {
		t.Errorf("GCLK3 after swap = %v, want 6 MHz", got)
	}
}

func TestDividerWidth(t *testing.T) {
	regs, _, dfll, tokens := setup()

	gen1, dfll2 := New(tokens.Gclk1, dfll)
	gen1.Div(DivBy(65535))
	if got := regs.GENCTRL[1].GetDIV(); got != 65535 {
		t.Errorf("GCLK1 DIV = %d, want 65535", got)
	}

	gen3, _ := New(tokens.Gclk3, dfll2)
	gen3 = gen3.Div(DivBy(65535))
	if got := regs.GENCTRL[3].GetDIV(); got != 255 {
		t.Errorf("GCLK3 DIV = %d, want 255", got)
	}

	gen3 = gen3.Div(DivMax())
	if got := regs.GENCTRL[3].GetDIVSEL(); got != chip.GCLK_GENCTRL_REG_DIVSEL_DIV2 {
		t.Errorf("GCLK3 DIVSEL = %d", got)
	}
	if got := gen3.Freq(); got != 48*freq.MHz/512 {
		t.Errorf("GCLK3 = %v", got)
	}
}

func TestFromGen1(t *testing.T) {
	regs, _, dfll, tokens := setup()

	config, _ := New(tokens.Gclk1, dfll)
	gen1 := config.Div(DivBy(48)).Enable()

	gen5, gen1Used := NewFromGen1(tokens.Gclk5, gen1)
	if gen1Used.Count() != 1 {
		t.Errorf("GCLK1 has %d users, want 1", gen1Used.Count())
	}
	if got := regs.GENCTRL[5].GetSRC(); got != chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1 {
		t.Errorf("SRC = %d, want GCLKGEN1", got)
	}
	if got := gen5.Div(DivBy(1000)).Freq(); got != 1*freq.KHz {
		t.Errorf("GCLK5 = %v, want 1 kHz", got)
	}

	_, gen1 = Free(gen5, gen1Used)
	if gen1.Count() != 0 {
		t.Errorf("GCLK1 still has %d users", gen1.Count())
	}
}

func TestSwapGen0(t *testing.T) {
	regs, gen0, dfll, _ := setup()
	ulp := typelevel.New(seal.K, otherSource{testSource{f: 32_768, src: chip.GCLK_GENCTRL_REG_SRC_OSCULP32K}})

	gen0b, dfll0, ulp1 := SwapGen0(gen0, dfll, ulp)
	if dfll0.Count() != 0 || ulp1.Count() != 1 || gen0b.Count() != 1 {
		t.Errorf("counts: DFLL %d, OSCULP32K %d, GCLK0 %d", dfll0.Count(), ulp1.Count(), gen0b.Count())
	}
	if got := regs.GENCTRL[0].GetSRC(); got != chip.GCLK_GENCTRL_REG_SRC_OSCULP32K {
		t.Errorf("SRC = %d, want OSCULP32K", got)
	}
	if got := gen0b.Get().Freq(); got != 32_768 {
		t.Errorf("GCLK0 = %v", got)
	}

	gen0b = DivGen0(gen0b, DivBy(2))
	if got := gen0b.Get().Freq(); got != 16_384 {
		t.Errorf("GCLK0 / 2 = %v", got)
	}
}

func TestSwapGen0FromGen1(t *testing.T) {
	regs, gen0, dfll, tokens := setup()

	config, dfll2 := New(tokens.Gclk1, dfll)
	gen1 := config.Div(DivBy(2)).Enable()

	gen0b, dfll1, gen1Used := SwapGen0FromGen1(gen0, dfll2, gen1)
	if dfll1.Count() != 1 || gen1Used.Count() != 1 || gen0b.Count() != 1 {
		t.Errorf("counts: DFLL %d, GCLK1 %d, GCLK0 %d", dfll1.Count(), gen1Used.Count(), gen0b.Count())
	}
	if got := regs.GENCTRL[0].GetSRC(); got != chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1 {
		t.Errorf("SRC = %d, want GCLKGEN1", got)
	}
	if got := gen0b.Get().Freq(); got != 24*freq.MHz {
		t.Errorf("GCLK0 = %v, want 24 MHz", got)
	}
}

func TestInvalidToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("zero token did not panic")
		}
	}()

	src := typelevel.New(seal.K, testSource{f: 1})
	New(Token[Gen4]{}, src)
}

func TestStaticRejection(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"./testdata/disablereferenced", "does not match"},
		{"./testdata/gen1fromgen1", "NotGen1"},
	}

	for _, test := range tests {
		t.Run(test.dir, func(t *testing.T) {
			errs, err := typecheck.Errors(test.dir)
			if err != nil {
				t.Fatalf("cannot load %s: %v", test.dir, err)
			}
			if !typecheck.Mentions(errs, test.want) {
				t.Errorf("errors %v do not mention %q", errs, test.want)
			}
		})
	}
}
