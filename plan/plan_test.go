package plan

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"omibyte.io/samclock/clock/dpll"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/targets"
)

func load(t *testing.T, path string) *Tree {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	tree, err := Eval(p, Options{})
	if err != nil {
		t.Fatalf("eval %s: %v", path, err)
	}
	return tree
}

func evalString(src string) (*Tree, error) {
	p, err := Decode(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return Eval(p, Options{})
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("chip: atsamd51j19a\nclocks: {}\n"))
	if err == nil {
		t.Errorf("unknown key was accepted")
	}
}

func TestEvalFrequencies(t *testing.T) {
	tests := []struct {
		path  string
		clock string
		want  freq.Hertz
	}{
		{"testdata/default.yaml", "osculp32k", 32_768},
		{"testdata/default.yaml", "xosc32k", 32_768},
		{"testdata/default.yaml", "dfll", 48 * freq.MHz},
		{"testdata/default.yaml", "gclk2", 1 * freq.MHz},
		{"testdata/default.yaml", "dpll0", 120 * freq.MHz},
		{"testdata/default.yaml", "gclk0", 120 * freq.MHz},
		{"testdata/default.yaml", "gclk1", 60 * freq.MHz},
		{"testdata/closedloop.yaml", "gclk3", 32_768},
		{"testdata/closedloop.yaml", "dfll", 48_005_120},
		{"testdata/closedloop.yaml", "gclk0", 48_005_120},
		{"testdata/closedloop.yaml", "gclk4", 12_001_280},
		{"testdata/xosc.yaml", "xosc1", 12 * freq.MHz},
		{"testdata/xosc.yaml", "dpll1", 120 * freq.MHz},
		{"testdata/xosc.yaml", "gclk0", 120 * freq.MHz},
		{"testdata/xosc.yaml", "gclk4", 60 * freq.MHz},
		{"testdata/xosc.yaml", "gclk5", 1 * freq.MHz},
		{"testdata/gen1cpu.yaml", "dpll1", 100 * freq.MHz},
		{"testdata/gen1cpu.yaml", "gclk1", 60 * freq.MHz},
		{"testdata/gen1cpu.yaml", "gclk0", 60 * freq.MHz},
		{"testdata/gen1cpu.yaml", "gclk3", 25 * freq.MHz},
	}

	for _, test := range tests {
		t.Run(test.path+"/"+test.clock, func(t *testing.T) {
			tree := load(t, test.path)
			got, ok := tree.Freq(test.clock)
			if !ok {
				t.Fatalf("%s is not part of the tree", test.clock)
			}
			if got != test.want {
				t.Errorf("Freq(%q) = %v, want %v", test.clock, got, test.want)
			}
		})
	}
}

func TestEvalOrder(t *testing.T) {
	for _, path := range []string{"testdata/default.yaml", "testdata/closedloop.yaml", "testdata/xosc.yaml", "testdata/gen1cpu.yaml"} {
		tree := load(t, path)
		pos := map[string]int{}
		for i, name := range tree.Order {
			pos[name] = i
		}
		for _, name := range tree.Order {
			if src := tree.Source(name); src != "" && pos[src] > pos[name] {
				t.Errorf("%s: %s comes before its source %s", path, name, src)
			}
		}
	}
}

func TestEvalRoutes(t *testing.T) {
	tree := load(t, "testdata/default.yaml")
	if len(tree.Routes) != 9 {
		t.Fatalf("got %d routes, want 9", len(tree.Routes))
	}

	// Routes come in channel order: EIC is channel 4, SERCOM0 channel 7.
	if r := tree.Routes[0]; r.Channel != "eic" || r.Freq != 120*freq.MHz {
		t.Errorf("first route = %+v", r)
	}
	for _, r := range tree.Routes[1:] {
		if r.Generator != "gclk1" || r.Freq != 60*freq.MHz {
			t.Errorf("route %s = %s at %v, want gclk1 at 60 MHz", r.Channel, r.Generator, r.Freq)
		}
	}
	if got := tree.Routes[len(tree.Routes)-1].Channel; got != "sercom7" {
		t.Errorf("last route is %s, want sercom7", got)
	}
}

func TestEvalFreeDpllChannel(t *testing.T) {
	tree := load(t, "testdata/gen1cpu.yaml")
	if len(tree.Routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(tree.Routes))
	}
	if r := tree.Routes[0]; r.Channel != "dpll1" || r.Generator != "gclk2" || r.Freq != 1*freq.MHz {
		t.Errorf("first route = %+v, want dpll1 on gclk2 at 1 MHz", r)
	}
	if got := tree.CPUFreq(); got != 60*freq.MHz {
		t.Errorf("CPU = %v, want 60 MHz", got)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "no chip",
			src:  "generators: {}",
			want: ErrNoChip,
		},
		{
			name: "unknown chip",
			src:  "chip: atsamd99",
			want: targets.ErrChipNotFound,
		},
		{
			name: "unknown source",
			src:  "chip: atsamd51j19a\ngenerators: {gclk2: {source: pll}}",
			want: ErrUnknownNode,
		},
		{
			name: "source not configured",
			src:  "chip: atsamd51j19a\ngenerators: {gclk2: {source: xosc0}}",
			want: ErrNotConfigured,
		},
		{
			name: "generator out of range",
			src:  "chip: atsamd51j19a\ngenerators: {gclk12: {source: dfll}}",
			want: ErrUnknownNode,
		},
		{
			name: "missing source",
			src:  "chip: atsamd51j19a\ngenerators: {gclk2: {div: 2}}",
			want: ErrMissingSource,
		},
		{
			name: "gclk1 from itself",
			src:  "chip: atsamd51j19a\ngenerators: {gclk1: {source: gclk1}}",
			want: ErrBadSource,
		},
		{
			name: "gclk3 from gclk2",
			src:  "chip: atsamd51j19a\ngenerators: {gclk2: {source: dfll}, gclk3: {source: gclk2}}",
			want: ErrBadSource,
		},
		{
			name: "8 bit divider",
			src:  "chip: atsamd51j19a\ngenerators: {gclk2: {source: dfll, div: 256}}",
			want: ErrDividerRange,
		},
		{
			name: "16 bit divider",
			src:  "chip: atsamd51j19a\ngenerators: {gclk1: {source: dfll, div: 65536}}",
			want: ErrDividerRange,
		},
		{
			name: "power of two divider",
			src:  "chip: atsamd51j19a\ngenerators: {gclk2: {source: dfll, div: 9, pow2: true}}",
			want: ErrDividerRange,
		},
		{
			name: "slow crystal",
			src:  "chip: atsamd51j19a\nsources: {xosc0: {freq: 4000000}}",
			want: ErrXoscRange,
		},
		{
			name: "unknown mode",
			src:  "chip: atsamd51j19a\nsources: {dfll: {mode: fast}}",
			want: ErrUnknownMode,
		},
		{
			name: "zero multiplier",
			src:  "chip: atsamd51j19a\nsources: {dfll: {mode: closed, reference: gclk3}}\ngenerators: {gclk3: {source: osculp32k}}",
			want: ErrDfllMultiplier,
		},
		{
			name: "DFLL on an oscillator",
			src:  "chip: atsamd51j19a\nsources: {xosc32k: {}, dfll: {mode: closed, reference: xosc32k, multiplier: 1465}}",
			want: ErrBadReference,
		},
		{
			name: "DPLL on gclk0",
			src:  "chip: atsamd51j19a\nsources: {dpll0: {reference: gclk0, ldr: 2}}",
			want: ErrBadReference,
		},
		{
			name: "source divider on a generator reference",
			src:  "chip: atsamd51j19a\nsources: {dpll0: {reference: gclk2, ldr: 119, div: 1}}\ngenerators: {gclk2: {source: dfll, div: 48}}",
			want: ErrBadReference,
		},
		{
			name: "DFLL locked to itself",
			src:  "chip: atsamd51j19a\nsources: {dfll: {mode: closed, reference: gclk2, multiplier: 2}}\ngenerators: {gclk2: {source: dfll, div: 2}}",
			want: ErrCycle,
		},
		{
			name: "DPLL output too low",
			src:  "chip: atsamd51j19a\nsources: {dpll0: {reference: gclk2, ldr: 59}}\ngenerators: {gclk2: {source: dfll, div: 48}}",
			want: dpll.ErrOutputOutOfRange,
		},
		{
			name: "DPLL input too high",
			src:  "chip: atsamd51j19a\nsources: {dpll0: {reference: gclk2, ldr: 9}}\ngenerators: {gclk2: {source: dfll, div: 4}}",
			want: ErrDpllWindow,
		},
		{
			name: "CPU too fast",
			src:  "chip: atsamd51j19a\nsources: {dpll0: {reference: gclk2, ldr: 149}}\ngenerators: {gclk0: {source: dpll0}, gclk2: {source: dfll, div: 48}}",
			want: ErrCPUFrequency,
		},
		{
			name: "unknown channel",
			src:  "chip: atsamd51j19a\nchannels: {sercom9: gclk0}",
			want: ErrUnknownChannel,
		},
		{
			name: "channel owned by a DPLL",
			src:  "chip: atsamd51j19a\nsources: {dpll0: {reference: gclk2, ldr: 119}}\ngenerators: {gclk2: {source: dfll, div: 48}}\nchannels: {dpll0: gclk2}",
			want: ErrChannelInUse,
		},
		{
			name: "channel on an oscillator",
			src:  "chip: atsamd51j19a\nsources: {xosc32k: {}}\nchannels: {sercom0: xosc32k}",
			want: ErrBadSource,
		},
		{
			name: "gclk0 in standby",
			src:  "chip: atsamd51j19a\ngenerators: {gclk0: {source: dfll, runStandby: true}}",
			want: ErrUnsupported,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := evalString(test.src)
			if !errors.Is(err, test.want) {
				t.Errorf("got error %v, want %v", err, test.want)
			}
		})
	}
}

func TestEvalCollectsErrors(t *testing.T) {
	_, err := evalString("chip: atsamd51j19a\ngenerators: {gclk2: {source: pll}, gclk3: {source: dfll, div: 300}}")
	if !errors.Is(err, ErrUnknownNode) || !errors.Is(err, ErrDividerRange) {
		t.Errorf("got %v, want both problems", err)
	}
}

func TestEvalLargestDividers(t *testing.T) {
	tree, err := evalString("chip: atsamd51j19a\ngenerators: {gclk1: {source: dfll, div: 65535}, gclk2: {source: dfll, div: 8, pow2: true}}")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := tree.Freq("gclk1"); got != 48*freq.MHz/65535 {
		t.Errorf("gclk1 = %v", got)
	}
	if got, _ := tree.Freq("gclk2"); got != 48*freq.MHz/512 {
		t.Errorf("gclk2 = %v", got)
	}
}

func TestEvalVerbose(t *testing.T) {
	f, err := os.Open("testdata/default.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if _, err := Eval(p, Options{Verbosity: Debug, Output: &out}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"chip atsamd51j19a (samd51)", "dpll0     120 MHz", "sercom0   60 MHz (gclk1)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}
