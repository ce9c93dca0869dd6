package plan

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"

	"omibyte.io/samclock/freq"
)

// GenOptions controls the generated file.
type GenOptions struct {
	Package string
	Func    string
	Type    string

	// Source names the plan in the header of the generated file.
	Source string
}

func (o GenOptions) withDefaults() GenOptions {
	if o.Package == "" {
		o.Package = "clocks"
	}
	if o.Func == "" {
		o.Func = "Setup"
	}
	if o.Type == "" {
		o.Type = "Tree"
	}
	return o
}

var genImports = []string{
	"omibyte.io/samclock/clock",
	"omibyte.io/samclock/clock/dfll",
	"omibyte.io/samclock/clock/dpll",
	"omibyte.io/samclock/clock/gclk",
	"omibyte.io/samclock/clock/osc32k",
	"omibyte.io/samclock/clock/pclk",
	"omibyte.io/samclock/clock/xosc",
	"omibyte.io/samclock/freq",
	"omibyte.io/samclock/gpio",
	"omibyte.io/samclock/typelevel",
}

var countNames = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight"}

// value is a clock handle in the generated code. Every change of its user
// count moves it to a new variable.
type value struct {
	base  string
	name  string
	n     int
	field string
	typ   string
	count int
}

func (v *value) next() string {
	v.n++
	v.name = v.base + "_" + strconv.Itoa(v.n)
	return v.name
}

type channelValue struct {
	name  string
	field string
	typ   string
}

type generator struct {
	t        *Tree
	body     bytes.Buffer
	values   map[string]*value
	channels []channelValue

	// freed zeroes the tokens and pins the tree has used.
	freed []string
}

// Generate writes a Go file with a function that builds t from the clocks of
// a device fresh out of reset, and a struct type holding every handle of the
// finished tree.
func Generate(t *Tree, opts GenOptions) ([]byte, error) {
	opts = opts.withDefaults()
	g := &generator{t: t, values: map[string]*value{}}
	g.emit()

	var src bytes.Buffer
	if opts.Source != "" {
		fmt.Fprintf(&src, "// Code generated by samclk from %s. DO NOT EDIT.\n\n", opts.Source)
	} else {
		src.WriteString("// Code generated by samclk. DO NOT EDIT.\n\n")
	}
	fmt.Fprintf(&src, "package %s\n\nimport (\n", opts.Package)
	for _, path := range genImports {
		fmt.Fprintf(&src, "\t%q\n", path)
	}
	src.WriteString(")\n\n")

	fmt.Fprintf(&src, "// %s holds the clocks built by %s.\n", opts.Type, opts.Func)
	fmt.Fprintf(&src, "type %s struct {\n", opts.Type)
	for _, name := range t.Order {
		v := g.values[name]
		fmt.Fprintf(&src, "\t%s typelevel.Enabled[%s, %s]\n", v.field, v.typ, countType(v.count))
	}
	for _, ch := range g.channels {
		fmt.Fprintf(&src, "\t%s %s\n", ch.field, ch.typ)
	}
	src.WriteString("\n\tTokens clock.Tokens\n\tPins gpio.Pins\n}\n\n")

	fmt.Fprintf(&src, "// %s builds the clock tree of %s from the clocks as they leave reset.\n", opts.Func, t.Plan.Chip)
	fmt.Fprintf(&src, "func %s(c clock.Clocks, pins gpio.Pins) %s {\n", opts.Func, opts.Type)
	src.Write(g.body.Bytes())
	src.WriteString("\n")
	for _, line := range g.freed {
		fmt.Fprintf(&src, "\t%s\n", line)
	}
	fmt.Fprintf(&src, "\n\treturn %s{\n", opts.Type)
	for _, name := range t.Order {
		v := g.values[name]
		fmt.Fprintf(&src, "\t\t%s: %s,\n", v.field, v.name)
	}
	for _, ch := range g.channels {
		fmt.Fprintf(&src, "\t\t%s: %s,\n", ch.field, ch.name)
	}
	src.WriteString("\t\tTokens: toks,\n\t\tPins: pins,\n\t}\n}\n")

	return tidy(src.Bytes())
}

// tidy drops the imports src does not use and formats it.
func tidy(src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	for _, path := range genImports {
		if !astutil.UsesImport(f, path) {
			astutil.DeleteImport(fset, f, path)
		}
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, f); err != nil {
		return nil, err
	}
	return imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.body, "\t"+format+"\n", args...)
}

func (g *generator) free(format string, args ...any) {
	g.freed = append(g.freed, fmt.Sprintf(format, args...))
}

// declare starts a handle for the named clock in variable base.
func (g *generator) declare(name, base, field, typ string, count int) *value {
	v := &value{base: base, name: base, field: field, typ: typ, count: count}
	g.values[name] = v
	return v
}

// take adds a user to the named clock. It returns the variable holding the
// clock before and after.
func (g *generator) take(name string) (from, to string) {
	v := g.values[name]
	from = v.name
	v.count++
	return from, v.next()
}

func (g *generator) emit() {
	g.printf("toks := c.Tokens")
	for _, v := range []*value{
		g.declare("gclk0", "gclk0", "Gclk0", "gclk.Gclk[gclk.Gen0, dfll.OpenLoop]", 1),
		g.declare("dfll", "dfll48m", "Dfll", "dfll.OpenLoop", 1),
		g.declare("osculp32k", "osculp32k", "OscUlp32k", "osc32k.OscUlp32k", 0),
	} {
		g.printf("%s := c.%s", v.name, v.field)
	}

	for _, name := range g.t.Order {
		n := g.t.nodes[name]
		switch n.kind {
		case kindXosc32k:
			g.xosc32k(n)
		case kindXosc:
			g.xosc(n)
		case kindDfll:
			if n.source != "" {
				g.closedLoop(n)
			}
		case kindDpll:
			g.dpll(n)
		case kindGclk:
			if n.index != 0 {
				g.gclk(n)
			}
		}
	}

	g.gclk0(g.t.nodes["gclk0"])

	if len(g.t.Routes) > 0 {
		g.body.WriteString("\n")
	}
	for _, r := range g.t.Routes {
		g.route(r)
	}
}

func (g *generator) xosc32k(n *node) {
	g.body.WriteString("\n")

	var expr, mode string
	if n.xosc32k.Mode == ModeClock {
		expr = "osc32k.FromClock(toks.Xosc32k, pins.PA00)"
		mode = "osc32k.Clock"
		g.free("pins.PA00 = gpio.Pin[gpio.PA00]{}")
	} else {
		expr = "osc32k.FromCrystal(toks.Xosc32k, pins.PA00, pins.PA01)"
		mode = "osc32k.Crystal"
		g.free("pins.PA00 = gpio.Pin[gpio.PA00]{}")
		g.free("pins.PA01 = gpio.Pin[gpio.PA01]{}")
	}
	g.free("toks.Xosc32k = osc32k.Token{}")

	v := g.declare(n.name, "xosc32k", "Xosc32k", "osc32k.Xosc32k["+mode+"]", 0)
	g.printf("%s := %s.Enable()", v.name, expr)
	g.printf("%s.Get().WaitReady()", v.name)
	switch n.xosc32k.RTC {
	case "32k":
		g.printf("osc32k.SetRTCClock(%s, osc32k.Rate32k)", v.name)
	case "1k":
		g.printf("osc32k.SetRTCClock(%s, osc32k.Rate1k)", v.name)
	}
}

func (g *generator) xosc(n *node) {
	g.body.WriteString("\n")

	pins := [2][2]string{{"PA14", "PA15"}, {"PB22", "PB23"}}[n.index]
	tok := fmt.Sprintf("toks.Xoscs.Xosc%d", n.index)
	f := hertz(n.xosc.Freq)

	var expr, mode string
	if n.xosc.Mode == ModeClock {
		expr = fmt.Sprintf("xosc.FromClock(%s, pins.%s, %s)", tok, pins[0], f)
		mode = "xosc.Clock"
		g.free("pins.%s = gpio.Pin[gpio.%s]{}", pins[0], pins[0])
	} else {
		expr = fmt.Sprintf("xosc.FromCrystal(%s, pins.%s, pins.%s, %s, xosc.CrystalSettings{Current: xosc.CrystalFor(%s)})", tok, pins[0], pins[1], f, f)
		mode = "xosc.Crystal"
		g.free("pins.%s = gpio.Pin[gpio.%s]{}", pins[0], pins[0])
		g.free("pins.%s = gpio.Pin[gpio.%s]{}", pins[1], pins[1])
	}
	g.free("%s = xosc.Token%d{}", tok, n.index)

	typ := fmt.Sprintf("xosc.Xosc[gpio.%s, gpio.%s, %s]", pins[0], pins[1], mode)
	v := g.declare(n.name, n.name, fmt.Sprintf("Xosc%d", n.index), typ, 0)
	g.printf("%s := %s.Enable()", v.name, expr)
	g.printf("%s.Get().WaitReady()", v.name)
}

// closedLoop moves the DFLL to closed loop on its reference generator while
// the CPU runs from OSCULP32K.
func (g *generator) closedLoop(n *node) {
	g.body.WriteString("\n")

	ref := g.t.nodes[n.source]
	from, to := g.take(ref.name)
	g.printf("dfllRef, %s := pclk.Enable(toks.Pclks.Dfll48, %s)", to, from)
	g.free("toks.Pclks.Dfll48 = pclk.Token[pclk.Dfll48]{}")

	gen0, d, ulp := g.values["gclk0"], g.values["dfll"], g.values["osculp32k"]
	gen0From, dFrom, ulpFrom := gen0.name, d.name, ulp.name
	d.typ = "dfll.ClosedLoop[" + genType(ref.index) + "]"
	gen0.typ = "gclk.Gclk[gclk.Gen0, " + d.typ + "]"

	coarse, fine := n.dfll.CoarseStep, n.dfll.FineStep
	if coarse == 0 {
		coarse = DefaultCoarseStep
	}
	if fine == 0 {
		fine = DefaultFineStep
	}

	gen0To, dTo, ulpTo := gen0.next(), d.next(), ulp.next()
	g.printf("%s, %s, %s := clock.EnterClosedLoop(%s, %s, %s, dfllRef, %d, %d, %d)",
		gen0To, dTo, ulpTo, gen0From, dFrom, ulpFrom, n.dfll.Multiplier, coarse, fine)
}

func (g *generator) dpll(n *node) {
	g.body.WriteString("\n")

	d := n.dpll
	tok := fmt.Sprintf("toks.Dplls.Dpll%d", n.index)
	src := g.t.nodes[n.source]
	from, to := g.take(src.name)

	var cfg, refType string
	if src.kind == kindGclk {
		ref := n.name + "Ref"
		g.printf("%s, %s := pclk.Enable(toks.Pclks.Dpll%d, %s)", ref, to, n.index, from)
		g.free("toks.Pclks.Dpll%d = pclk.Token[pclk.Dpll%d]{}", n.index, n.index)
		cfg = fmt.Sprintf("dpll.FromPclk(%s, %s)", tok, ref)
		refType = fmt.Sprintf("pclk.Pclk[pclk.Dpll%d, %s]", n.index, genType(src.index))
	} else {
		cfg = n.name + "Config"
		g.printf("%s, %s := dpll.FromXosc(%s, %s)", cfg, to, tok, from)
		refType = g.values[src.name].typ
	}
	g.free("%s = dpll.Token[pclk.Dpll%d]{}", tok, n.index)

	if d.SourceDiv != 0 {
		cfg += fmt.Sprintf(".SourceDiv(%d)", d.SourceDiv)
	}
	cfg += fmt.Sprintf(".LoopDiv(%d, %d)", d.LoopDiv, d.Frac)

	typ := fmt.Sprintf("dpll.Dpll[pclk.Dpll%d, %s]", n.index, refType)
	v := g.declare(n.name, n.name, fmt.Sprintf("Dpll%d", n.index), typ, 0)
	g.printf("%s := %s.Enable()", v.name, cfg)
	g.printf("%s.Get().WaitUntilReady()", v.name)
}

func (g *generator) gclk(n *node) {
	g.body.WriteString("\n")

	src := g.t.nodes[n.source]
	srcType := g.values[src.name].typ
	from, to := g.take(src.name)

	ctor := "gclk.New"
	if src.kind == kindGclk {
		ctor = "gclk.NewFromGen1"
	}
	cfg := n.name + "Config"
	tok := fmt.Sprintf("toks.Gclks.Gclk%d", n.index)
	g.printf("%s, %s := %s(%s, %s)", cfg, to, ctor, tok, from)
	g.free("%s = gclk.Token[%s]{}", tok, genType(n.index))

	expr := cfg
	if d, ok := divExpr(n.gen); ok {
		expr += ".Div(" + d + ")"
	}
	if n.gen.RunStandby {
		expr += ".RunStandby(true)"
	}

	typ := fmt.Sprintf("gclk.Gclk[%s, %s]", genType(n.index), srcType)
	v := g.declare(n.name, n.name, fmt.Sprintf("Gclk%d", n.index), typ, 0)
	g.printf("%s := %s.Enable()", v.name, expr)
}

// gclk0 sets the divider of GCLK0 and then moves it to its planned source.
func (g *generator) gclk0(n *node) {
	gen0 := g.values["gclk0"]

	d, div := divExpr(n.gen)
	if !div && n.source == "dfll" {
		return
	}
	g.body.WriteString("\n")

	if div {
		from := gen0.name
		g.printf("%s := gclk.DivGen0(%s, %s)", gen0.next(), from, d)
	}
	if n.source == "dfll" {
		return
	}

	old, src := g.values["dfll"], g.values[n.source]
	gen0From, oldFrom, srcFrom := gen0.name, old.name, src.name
	old.count--
	src.count++
	gen0.typ = "gclk.Gclk[gclk.Gen0, " + src.typ + "]"

	swap := "gclk.SwapGen0"
	if g.t.nodes[n.source].kind == kindGclk {
		swap = "gclk.SwapGen0FromGen1"
	}
	gen0To, oldTo, srcTo := gen0.next(), old.next(), src.next()
	g.printf("%s, %s, %s := %s(%s, %s, %s)", gen0To, oldTo, srcTo, swap, gen0From, oldFrom, srcFrom)
}

func (g *generator) route(r Route) {
	// The reference channel of a DPLL that runs from an oscillator is free,
	// but its name belongs to the DPLL.
	name, field := r.Channel, r.field
	if _, ok := g.t.nodes[name]; ok {
		name, field = name+"Channel", field+"Channel"
	}

	from, to := g.take(r.Generator)
	g.printf("%s, %s := pclk.Enable(toks.Pclks.%s, %s)", name, to, r.field, from)
	g.free("toks.Pclks.%s = pclk.Token[pclk.%s]{}", r.field, r.field)

	gen := g.t.nodes[r.Generator]
	g.channels = append(g.channels, channelValue{
		name:  name,
		field: field,
		typ:   fmt.Sprintf("pclk.Pclk[pclk.%s, %s]", r.field, genType(gen.index)),
	})
}

func divExpr(gen *Generator) (string, bool) {
	switch {
	case gen.Pow2:
		return fmt.Sprintf("gclk.DivPow2(%d)", gen.Div), true
	case gen.Div != 0:
		return fmt.Sprintf("gclk.DivBy(%d)", gen.Div), true
	}
	return "", false
}

func genType(index int) string {
	return "gclk.Gen" + strconv.Itoa(index)
}

func countType(n int) string {
	if n < len(countNames) {
		return "typelevel." + countNames[n]
	}
	return "typelevel.Succ[" + countType(n-1) + "]"
}

func hertz(f freq.Hertz) string {
	switch {
	case f != 0 && f%freq.MHz == 0:
		return fmt.Sprintf("%d * freq.MHz", f/freq.MHz)
	case f != 0 && f%freq.KHz == 0:
		return fmt.Sprintf("%d * freq.KHz", f/freq.KHz)
	}
	return strconv.FormatUint(uint64(f), 10)
}
