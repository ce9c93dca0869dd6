package plan

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/dfll"
	"omibyte.io/samclock/clock/dpll"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/clock/osc32k"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/targets"
)

// Frequency range accepted for XOSC0 and XOSC1.
const (
	MinXoscFreq = 8 * freq.MHz
	MaxXoscFreq = 48 * freq.MHz
)

// Default DFLL step sizes for closed loop operation.
const (
	DefaultCoarseStep = 1
	DefaultFineStep   = 1
)

type kind int

const (
	kindOscUlp32k kind = iota
	kindXosc32k
	kindXosc
	kindDfll
	kindDpll
	kindGclk
)

type node struct {
	id    int64
	name  string
	kind  kind
	index int

	// source is the clock this one runs from. Oscillators and the DFLL in
	// open loop have none.
	source string
	freq   freq.Hertz

	xosc32k *Xosc32k
	xosc    *Xosc
	dfll    *Dfll
	dpll    *Dpll
	gen     *Generator
}

func (n *node) ID() int64 {
	return n.id
}

func newNode(name string, k kind, index int) *node {
	hasher := fnv.New64()
	hasher.Write([]byte(name))
	return &node{
		id:    int64(hasher.Sum64()),
		name:  name,
		kind:  k,
		index: index,
	}
}

// Route connects a peripheral channel to a generator.
type Route struct {
	Channel   string
	Generator string
	Freq      freq.Hertz

	index int
	field string
}

// Tree is a plan that has been checked against its chip.
type Tree struct {
	Plan   *Plan
	Target targets.TargetInfo

	// Order lists every clock after the clock it runs from.
	Order  []string
	Routes []Route

	nodes map[string]*node
}

// Freq returns the frequency of the named clock.
func (t *Tree) Freq(name string) (freq.Hertz, bool) {
	n, ok := t.nodes[name]
	if !ok {
		return 0, false
	}
	return n.freq, true
}

// Source returns the clock the named clock runs from, or the empty string
// for clocks without one.
func (t *Tree) Source(name string) string {
	if n, ok := t.nodes[name]; ok {
		return n.source
	}
	return ""
}

// CPUFreq returns the frequency of GCLK0.
func (t *Tree) CPUFreq() freq.Hertz {
	return t.nodes["gclk0"].freq
}

// Eval checks p against the chip it names and computes the frequency of every
// clock. All problems found at one stage are returned together.
func Eval(p *Plan, opts Options) (*Tree, error) {
	if p.Chip == "" {
		return nil, ErrNoChip
	}
	target, err := targets.All().FindByChip(p.Chip)
	if err != nil {
		return nil, err
	}
	opts.printf(Info, "chip %s (%s)\n", p.Chip, target.Series)

	t := &Tree{
		Plan:   p,
		Target: target,
		nodes:  map[string]*node{},
	}

	if err := t.addNodes(); err != nil {
		return nil, err
	}
	if err := errors.Join(t.checkSources(), t.addRoutes()); err != nil {
		return nil, err
	}
	if err := t.sort(); err != nil {
		return nil, err
	}
	opts.println(Info, "order:", strings.Join(t.Order, " "))
	if err := t.evaluate(opts); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) add(n *node) {
	t.nodes[n.name] = n
}

func (t *Tree) addNodes() error {
	var errs error
	src := t.Plan.Sources

	t.add(newNode("osculp32k", kindOscUlp32k, 0))

	if x := src.Xosc32k; x != nil {
		n := newNode("xosc32k", kindXosc32k, 0)
		n.xosc32k = x
		errs = errors.Join(errs, checkMode(n.name, x.Mode, ModeCrystal, ModeClock))
		switch x.RTC {
		case "", "32k", "1k":
		default:
			errs = errors.Join(errs, fmt.Errorf("xosc32k: rtc %q: %w", x.RTC, ErrUnknownMode))
		}
		t.add(n)
	}

	for i, x := range []*Xosc{src.Xosc0, src.Xosc1} {
		if x == nil {
			continue
		}
		n := newNode("xosc"+strconv.Itoa(i), kindXosc, i)
		n.xosc = x
		if i >= t.Target.Xoscs {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", n.name, ErrNotOnChip))
		}
		errs = errors.Join(errs, checkMode(n.name, x.Mode, ModeCrystal, ModeClock))
		if !x.Freq.Within(MinXoscFreq, MaxXoscFreq) {
			errs = errors.Join(errs, fmt.Errorf("%s: %v: %w", n.name, x.Freq, ErrXoscRange))
		}
		t.add(n)
	}

	d := src.Dfll
	if d == nil {
		d = &Dfll{Mode: ModeOpen}
	}
	n := newNode("dfll", kindDfll, 0)
	n.dfll = d
	switch d.Mode {
	case "", ModeOpen:
	case ModeClosed:
		n.source = d.Reference
		if d.Multiplier == 0 {
			errs = errors.Join(errs, fmt.Errorf("dfll: %w", ErrDfllMultiplier))
		}
	default:
		errs = errors.Join(errs, fmt.Errorf("dfll: mode %q: %w", d.Mode, ErrUnknownMode))
	}
	t.add(n)

	for i, d := range []*Dpll{src.Dpll0, src.Dpll1} {
		if d == nil {
			continue
		}
		n := newNode("dpll"+strconv.Itoa(i), kindDpll, i)
		n.dpll = d
		n.source = d.Reference
		if i >= t.Target.Dplls {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", n.name, ErrNotOnChip))
		}
		if d.LoopDiv > dpll.MaxLoopDiv || d.Frac > dpll.MaxLoopDivFrac || d.SourceDiv > dpll.MaxSourceDiv {
			errs = errors.Join(errs, fmt.Errorf("%s: ratio %d+%d/32, div %d: %w", n.name, d.LoopDiv, d.Frac, d.SourceDiv, ErrDividerRange))
		}
		t.add(n)
	}

	gens := map[string]Generator{"gclk0": {Source: "dfll"}}
	maps.Copy(gens, t.Plan.Generators)
	names := maps.Keys(gens)
	slices.Sort(names)
	for _, name := range names {
		g := gens[name]
		index, ok := generatorIndex(name)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", name, ErrUnknownNode))
			continue
		}
		if !t.Target.HasGenerator(index) {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", name, ErrNotOnChip))
			continue
		}
		n := newNode(name, kindGclk, index)
		n.gen = &g
		n.source = g.Source
		t.add(n)
	}

	return errs
}

func (t *Tree) checkSources() error {
	var errs error
	names := maps.Keys(t.nodes)
	slices.Sort(names)
	for _, name := range names {
		n := t.nodes[name]
		switch n.kind {
		case kindDfll:
			if n.dfll.Mode == ModeClosed {
				errs = errors.Join(errs, t.checkReference(n, false))
			}
		case kindDpll:
			errs = errors.Join(errs, t.checkReference(n, true))
			if n.dpll.SourceDiv != 0 && n.source != "xosc0" && n.source != "xosc1" {
				errs = errors.Join(errs, fmt.Errorf("%s: div needs xosc0 or xosc1 as reference: %w", n.name, ErrBadReference))
			}
		case kindGclk:
			errs = errors.Join(errs, t.checkGenerator(n))
		}
	}
	return errs
}

// checkReference accepts any generator but GCLK0 as the reference of n, and
// the oscillators as well when oscillators is set.
func (t *Tree) checkReference(n *node, oscillators bool) error {
	if n.source == "" {
		return fmt.Errorf("%s: %w", n.name, ErrMissingSource)
	}
	src, err := t.lookup(n.source)
	if err != nil {
		return fmt.Errorf("%s: reference %w", n.name, err)
	}
	switch {
	case src.kind == kindGclk && src.index != 0:
		return nil
	case oscillators && (src.kind == kindXosc || src.kind == kindXosc32k):
		return nil
	}
	return fmt.Errorf("%s: reference %s: %w", n.name, n.source, ErrBadReference)
}

func (t *Tree) checkGenerator(n *node) error {
	var errs error
	g := n.gen

	if n.index == 0 && g.RunStandby {
		errs = errors.Join(errs, fmt.Errorf("gclk0: runStandby: %w", ErrUnsupported))
	}

	bits := gclk.DivBits(n.index)
	if g.Pow2 && g.Div > uint32(bits) || !g.Pow2 && g.Div > 1<<bits-1 {
		errs = errors.Join(errs, fmt.Errorf("%s: div %d: %w", n.name, g.Div, ErrDividerRange))
	}

	if g.Source == "" {
		return errors.Join(errs, fmt.Errorf("%s: %w", n.name, ErrMissingSource))
	}
	src, err := t.lookup(g.Source)
	if err != nil {
		return errors.Join(errs, fmt.Errorf("%s: source %w", n.name, err))
	}
	if src.kind == kindGclk && (src.index != 1 || n.index == 1) {
		errs = errors.Join(errs, fmt.Errorf("%s: source %s: %w", n.name, src.name, ErrBadSource))
	}
	return errs
}

func (t *Tree) lookup(name string) (*node, error) {
	if n, ok := t.nodes[name]; ok {
		return n, nil
	}
	if knownNode(name) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotConfigured)
	}
	return nil, fmt.Errorf("%s: %w", name, ErrUnknownNode)
}

func (t *Tree) addRoutes() error {
	var errs error

	// Channels that feed a configured source belong to that source.
	reserved := map[string]string{}
	if n := t.nodes["dfll"]; n.dfll.Mode == ModeClosed {
		reserved["dfll48"] = "dfll"
	}
	for _, name := range []string{"dpll0", "dpll1"} {
		n, ok := t.nodes[name]
		if !ok {
			continue
		}
		if src, ok := t.nodes[n.source]; ok && src.kind == kindGclk {
			reserved[name] = name
		}
	}

	names := maps.Keys(t.Plan.Channels)
	slices.Sort(names)
	for _, name := range names {
		gen := t.Plan.Channels[name]
		ch, ok := channels[name]
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", name, ErrUnknownChannel))
			continue
		}
		if owner, ok := reserved[name]; ok {
			errs = errors.Join(errs, fmt.Errorf("%s: used by %s: %w", name, owner, ErrChannelInUse))
			continue
		}
		src, err := t.lookup(gen)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("channel %s: %w", name, err))
			continue
		}
		if src.kind != kindGclk {
			errs = errors.Join(errs, fmt.Errorf("channel %s: %s: %w", name, gen, ErrBadSource))
			continue
		}
		t.Routes = append(t.Routes, Route{
			Channel:   name,
			Generator: gen,
			index:     ch.index,
			field:     ch.field,
		})
	}

	slices.SortFunc(t.Routes, func(a, b Route) int {
		return a.index - b.index
	})
	return errs
}

// sort orders the clocks so that every clock comes after its source. Clocks
// that do not depend on each other are ordered by name.
func (t *Tree) sort() error {
	g := multi.NewDirectedGraph()
	names := maps.Keys(t.nodes)
	slices.Sort(names)
	for _, name := range names {
		g.AddNode(t.nodes[name])
	}
	for _, name := range names {
		n := t.nodes[name]
		if n.source != "" {
			g.SetLine(g.NewLine(t.nodes[n.source], n))
		}
	}

	sorted, err := topo.SortStabilized(g, func(nodes []graph.Node) {
		slices.SortFunc(nodes, func(a, b graph.Node) int {
			return strings.Compare(a.(*node).name, b.(*node).name)
		})
	})
	if err != nil {
		return errors.Join(ErrCycle, err)
	}

	t.Order = make([]string, len(sorted))
	for i, n := range sorted {
		t.Order[i] = n.(*node).name
	}
	return nil
}

func (t *Tree) evaluate(opts Options) error {
	var errs error
	for _, name := range t.Order {
		n := t.nodes[name]

		var src freq.Hertz
		if n.source != "" {
			src = t.nodes[n.source].freq
		}

		switch n.kind {
		case kindOscUlp32k, kindXosc32k:
			n.freq = osc32k.Freq
		case kindXosc:
			n.freq = n.xosc.Freq
		case kindDfll:
			if n.source == "" {
				n.freq = dfll.NominalFreq
			} else {
				n.freq = dfll.ClosedLoopFrequency(src, n.dfll.Multiplier)
			}
		case kindDpll:
			prediv := dpll.PredivFactor(refClk(n.source), n.dpll.SourceDiv)
			in := dpll.InputFrequency(src, prediv)
			n.freq = dpll.OutputFrequency(src, prediv, n.dpll.LoopDiv, n.dpll.Frac)
			if err := dpll.CheckWindows(in, n.freq); err != nil {
				errs = errors.Join(errs, fmt.Errorf("%s: input %v, output %v: %w", n.name, in, n.freq, errors.Join(ErrDpllWindow, err)))
			}
		case kindGclk:
			n.freq = gclk.Frequency(src, n.index, n.gen.div())
		}

		opts.printf(Debug, "%-9s %v\n", n.name, n.freq)
	}

	for i := range t.Routes {
		r := &t.Routes[i]
		r.Freq = t.nodes[r.Generator].freq
		opts.printf(Debug, "%-9s %v (%s)\n", r.Channel, r.Freq, r.Generator)
	}

	if cpu := t.CPUFreq(); cpu > t.Target.MaxCPUFreq {
		errs = errors.Join(errs, fmt.Errorf("gclk0: %v, maximum %v: %w", cpu, t.Target.MaxCPUFreq, ErrCPUFrequency))
	}
	return errs
}

func (g *Generator) div() gclk.Div {
	if g.Pow2 {
		return gclk.DivPow2(g.Div)
	}
	return gclk.DivBy(g.Div)
}

func refClk(name string) chip.OSCCTRL_DPLLCTRLB_REG_REFCLK {
	switch name {
	case "xosc0":
		return chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC0
	case "xosc1":
		return chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC1
	case "xosc32k":
		return chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC32
	default:
		return chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_GCLK
	}
}

func checkMode(name, mode string, valid ...string) error {
	if mode == "" || slices.Contains(valid, mode) {
		return nil
	}
	return fmt.Errorf("%s: mode %q: %w", name, mode, ErrUnknownMode)
}

// generatorIndex parses a generator name of the form gclkN.
func generatorIndex(name string) (int, bool) {
	s, ok := strings.CutPrefix(name, "gclk")
	if !ok || s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= gclk.NumGenerators {
		return 0, false
	}
	return n, true
}

func knownNode(name string) bool {
	switch name {
	case "osculp32k", "xosc32k", "xosc0", "xosc1", "dfll", "dpll0", "dpll1":
		return true
	}
	_, ok := generatorIndex(name)
	return ok
}
