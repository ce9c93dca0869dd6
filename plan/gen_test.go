package plan

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"omibyte.io/samclock/internal/typecheck"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{
			path: "testdata/default.yaml",
			want: []string{
				"// Code generated by samclk from default.yaml. DO NOT EDIT.",
				"func Setup(c clock.Clocks, pins gpio.Pins) Tree {",
				"gclk2Config, dfll48m_1 := gclk.New(toks.Gclks.Gclk2, dfll48m)",
				"gclk2 := gclk2Config.Div(gclk.DivBy(48)).Enable()",
				"dpll0Ref, gclk2_1 := pclk.Enable(toks.Pclks.Dpll0, gclk2)",
				"dpll0 := dpll.FromPclk(toks.Dplls.Dpll0, dpll0Ref).LoopDiv(119, 0).Enable()",
				"gclk1 := gclk1Config.Div(gclk.DivBy(2)).RunStandby(true).Enable()",
				"xosc32k := osc32k.FromCrystal(toks.Xosc32k, pins.PA00, pins.PA01).Enable()",
				"osc32k.SetRTCClock(xosc32k, osc32k.Rate32k)",
				"gclk0_1, dfll48m_2, dpll0_2 := gclk.SwapGen0(gclk0, dfll48m_1, dpll0_1)",
				"eic, gclk0_2 := pclk.Enable(toks.Pclks.Eic, gclk0_1)",
				"sercom7, gclk1_8 := pclk.Enable(toks.Pclks.Sercom7, gclk1_7)",
				"toks.Pclks.Dpll0 = pclk.Token[pclk.Dpll0]{}",
				"typelevel.Enabled[gclk.Gclk[gclk.Gen1, dpll.Dpll[pclk.Dpll0, pclk.Pclk[pclk.Dpll0, gclk.Gen2]]], typelevel.Eight]",
				"typelevel.Enabled[dfll.OpenLoop, typelevel.One]",
			},
		},
		{
			path: "testdata/closedloop.yaml",
			want: []string{
				"dfllRef, gclk3_1 := pclk.Enable(toks.Pclks.Dfll48, gclk3)",
				"gclk0_1, dfll48m_1, osculp32k_1 := clock.EnterClosedLoop(gclk0, dfll48m, osculp32k, dfllRef, 1465, 1, 1)",
				"gclk4Config, dfll48m_2 := gclk.New(toks.Gclks.Gclk4, dfll48m_1)",
				"typelevel.Enabled[gclk.Gclk[gclk.Gen0, dfll.ClosedLoop[gclk.Gen3]], typelevel.One]",
				"typelevel.Enabled[dfll.ClosedLoop[gclk.Gen3], typelevel.Two]",
			},
		},
		{
			path: "testdata/gen1cpu.yaml",
			want: []string{
				"gclk0_1, dfll48m_2, gclk1_1 := gclk.SwapGen0FromGen1(gclk0, dfll48m_1, gclk1)",
				"dpll1Channel, gclk2_2 := pclk.Enable(toks.Pclks.Dpll1, gclk2_1)",
				"dpll1Config, xosc0_1 := dpll.FromXosc(toks.Dplls.Dpll1, xosc0)",
				"typelevel.Enabled[gclk.Gclk[gclk.Gen0, gclk.Gclk[gclk.Gen1, dpll.Dpll[pclk.Dpll0, pclk.Pclk[pclk.Dpll0, gclk.Gen2]]]], typelevel.One]",
				"pclk.Pclk[pclk.Dpll1, gclk.Gen2]",
			},
		},
		{
			path: "testdata/xosc.yaml",
			want: []string{
				"xosc1 := xosc.FromCrystal(toks.Xoscs.Xosc1, pins.PB22, pins.PB23, 12 * freq.MHz, xosc.CrystalSettings{Current: xosc.CrystalFor(12 * freq.MHz)}).Enable()",
				"dpll1Config, xosc1_1 := dpll.FromXosc(toks.Dplls.Dpll1, xosc1)",
				"dpll1 := dpll1Config.SourceDiv(2).LoopDiv(59, 0).Enable()",
				"gclk4 := gclk4Config.Div(gclk.DivPow2(0)).Enable()",
				"gclk5Config, gclk1_1 := gclk.NewFromGen1(toks.Gclks.Gclk5, gclk1)",
				"gclk0_1 := gclk.DivGen0(gclk0, gclk.DivBy(1))",
				"toks.Xoscs.Xosc1 = xosc.Token1{}",
				"pins.PB23 = gpio.Pin[gpio.PB23]{}",
				"typelevel.Enabled[xosc.Xosc[gpio.PB22, gpio.PB23, xosc.Crystal], typelevel.Two]",
				"typelevel.Enabled[dfll.OpenLoop, typelevel.Zero]",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			tree := load(t, test.path)
			src, err := Generate(tree, GenOptions{Source: filepath.Base(test.path)})
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range test.want {
				if !strings.Contains(string(src), want) {
					t.Errorf("generated code does not contain %q:\n%s", want, src)
				}
			}
			if _, err := parser.ParseFile(token.NewFileSet(), "", src, 0); err != nil {
				t.Errorf("generated code does not parse: %v", err)
			}
		})
	}
}

func TestGenerateImports(t *testing.T) {
	tree := load(t, "testdata/default.yaml")
	src, err := Generate(tree, GenOptions{})
	if err != nil {
		t.Fatal(err)
	}

	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ImportsOnly)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name.Name != "clocks" {
		t.Errorf("package %s, want clocks", f.Name.Name)
	}
	for _, spec := range f.Imports {
		// The default tree has neither external oscillators nor a closed
		// loop DFLL.
		switch spec.Path.Value {
		case `"omibyte.io/samclock/clock/xosc"`, `"omibyte.io/samclock/freq"`:
			t.Errorf("unused import %s", spec.Path.Value)
		}
	}
}

func TestGeneratedCodeCompiles(t *testing.T) {
	dir, err := filepath.Abs("testdata/gen")
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"testdata/default.yaml", "testdata/closedloop.yaml", "testdata/xosc.yaml", "testdata/gen1cpu.yaml"} {
		t.Run(path, func(t *testing.T) {
			tree := load(t, path)
			src, err := Generate(tree, GenOptions{Package: "gen"})
			if err != nil {
				t.Fatal(err)
			}

			overlay := map[string][]byte{filepath.Join(dir, "zz_clocks.go"): src}
			errs, err := typecheck.ErrorsWithOverlay(dir, overlay)
			if err != nil {
				t.Fatalf("cannot load %s: %v", dir, err)
			}
			for _, e := range errs {
				t.Errorf("%v", e)
			}
		})
	}
}
