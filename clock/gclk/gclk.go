// Package gclk drives the generic clock generators GCLK0 to GCLK11.
//
// A generator goes through three states:
//
//	Token[G] -- New --> Config[G, S] -- Enable --> Enabled[Gclk[G, S], N]
//
// and back through Disable and Free. New takes a reference on the source,
// Free gives it back. A generator can only be disabled when nothing uses it,
// which the type of Disable enforces.
//
// GCLK0 drives the CPU. It is running when the device leaves reset and is
// handed out already enabled, with the CPU as its one user. Its source can
// only be exchanged with SwapGen0 or SwapGen0FromGen1.
package gclk

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/internal/volatile"
	"omibyte.io/samclock/typelevel"
)

// NumGenerators is the number of generators on the device.
const NumGenerators = 12

// GenNum identifies a generator at the type level.
type GenNum interface {
	Num() int
	gen()
}

// NotGen1 is every generator that can use GCLK1 as its source.
type NotGen1 interface {
	GenNum
	notGen1()
}

type (
	Gen0  struct{}
	Gen1  struct{}
	Gen2  struct{}
	Gen3  struct{}
	Gen4  struct{}
	Gen5  struct{}
	Gen6  struct{}
	Gen7  struct{}
	Gen8  struct{}
	Gen9  struct{}
	Gen10 struct{}
	Gen11 struct{}
)

func (Gen0) Num() int  { return 0 }
func (Gen1) Num() int  { return 1 }
func (Gen2) Num() int  { return 2 }
func (Gen3) Num() int  { return 3 }
func (Gen4) Num() int  { return 4 }
func (Gen5) Num() int  { return 5 }
func (Gen6) Num() int  { return 6 }
func (Gen7) Num() int  { return 7 }
func (Gen8) Num() int  { return 8 }
func (Gen9) Num() int  { return 9 }
func (Gen10) Num() int { return 10 }
func (Gen11) Num() int { return 11 }

func (Gen0) gen()  {}
func (Gen1) gen()  {}
func (Gen2) gen()  {}
func (Gen3) gen()  {}
func (Gen4) gen()  {}
func (Gen5) gen()  {}
func (Gen6) gen()  {}
func (Gen7) gen()  {}
func (Gen8) gen()  {}
func (Gen9) gen()  {}
func (Gen10) gen() {}
func (Gen11) gen() {}

func (Gen0) notGen1()  {}
func (Gen2) notGen1()  {}
func (Gen3) notGen1()  {}
func (Gen4) notGen1()  {}
func (Gen5) notGen1()  {}
func (Gen6) notGen1()  {}
func (Gen7) notGen1()  {}
func (Gen8) notGen1()  {}
func (Gen9) notGen1()  {}
func (Gen10) notGen1() {}
func (Gen11) notGen1() {}

// Source is implemented by every clock that can feed a generator.
type Source interface {
	Freq() freq.Hertz
	GclkSrc() chip.GCLK_GENCTRL_REG_SRC
}

// Token grants exclusive use of generator G.
type Token[G GenNum] struct {
	gclk *chip.GCLK_TYPE
}

func (t Token[G]) regs() *chip.GCLK_GENCTRL_REG {
	if t.gclk == nil {
		panic("gclk: use of an invalid token")
	}
	var g G
	return &t.gclk.GENCTRL[g.Num()]
}

func (t Token[G]) sync() {
	var g G
	mask := chip.GCLK_SYNCBUSY_REG_GENCTRL_GCLK0 << g.Num()
	for t.gclk.SYNCBUSY.GetGENCTRL()&mask != 0 {
	}
}

// Tokens holds the tokens of the generators that are free at reset.
type Tokens struct {
	Gclk1  Token[Gen1]
	Gclk2  Token[Gen2]
	Gclk3  Token[Gen3]
	Gclk4  Token[Gen4]
	Gclk5  Token[Gen5]
	Gclk6  Token[Gen6]
	Gclk7  Token[Gen7]
	Gclk8  Token[Gen8]
	Gclk9  Token[Gen9]
	Gclk10 Token[Gen10]
	Gclk11 Token[Gen11]
}

func newTokens(g *chip.GCLK_TYPE) Tokens {
	return Tokens{
		Gclk1:  Token[Gen1]{g},
		Gclk2:  Token[Gen2]{g},
		Gclk3:  Token[Gen3]{g},
		Gclk4:  Token[Gen4]{g},
		Gclk5:  Token[Gen5]{g},
		Gclk6:  Token[Gen6]{g},
		Gclk7:  Token[Gen7]{g},
		Gclk8:  Token[Gen8]{g},
		Gclk9:  Token[Gen9]{g},
		Gclk10: Token[Gen10]{g},
		Gclk11: Token[Gen11]{g},
	}
}

// Config is a generator attached to a source of type S but not enabled.
type Config[G GenNum, S any] struct {
	token   Token[G]
	srcFreq freq.Hertz
	div     Div
}

// Div sets the division factor. Values the generator cannot represent
// saturate, see EncodeDiv.
func (c Config[G, S]) Div(d Div) Config[G, S] {
	var g G
	field, divsel := EncodeDiv(g.Num(), d)

	// DIVSEL and DIV go out in one write.
	reg := c.token.regs()
	v := chip.GCLK_GENCTRL_REG(volatile.LoadUint32((*uint32)(reg)))
	if divsel {
		v.SetDIVSEL(chip.GCLK_GENCTRL_REG_DIVSEL_DIV2)
	} else {
		v.SetDIVSEL(chip.GCLK_GENCTRL_REG_DIVSEL_DIV1)
	}
	v.SetDIV(field)
	volatile.StoreUint32((*uint32)(reg), uint32(v))
	c.token.sync()

	c.div = d
	return c
}

// ImproveDutyCycle balances the duty cycle for odd division factors.
func (c Config[G, S]) ImproveDutyCycle(enable bool) Config[G, S] {
	c.token.regs().SetIDC(enable)
	c.token.sync()
	return c
}

// RunStandby keeps the generator running in standby sleep.
func (c Config[G, S]) RunStandby(enable bool) Config[G, S] {
	c.token.regs().SetRUNSTDBY(enable)
	c.token.sync()
	return c
}

// Freq returns the output frequency the generator will have.
func (c Config[G, S]) Freq() freq.Hertz {
	var g G
	return Frequency(c.srcFreq, g.Num(), c.div)
}

// SourceFreq returns the frequency of the source.
func (c Config[G, S]) SourceFreq() freq.Hertz {
	return c.srcFreq
}

// Enable starts the generator.
func (c Config[G, S]) Enable() typelevel.Enabled[Gclk[G, S], typelevel.Zero] {
	c.token.regs().SetGENEN(true)
	c.token.sync()
	return typelevel.New(seal.K, Gclk[G, S]{config: c})
}

// Gclk is a running generator.
type Gclk[G GenNum, S any] struct {
	config Config[G, S]
}

// Num returns the generator number.
func (Gclk[G, S]) Num() int {
	var g G
	return g.Num()
}

func (gc Gclk[G, S]) Freq() freq.Hertz {
	return gc.config.Freq()
}

// Div returns the division the generator was configured with.
func (gc Gclk[G, S]) Div() Div {
	return gc.config.div
}

// New attaches generator G to src.
func New[G GenNum, S Source, N typelevel.Count](tok Token[G], src typelevel.Enabled[S, N]) (Config[G, S], typelevel.Enabled[S, typelevel.Succ[N]]) {
	reg := tok.regs()
	reg.SetSRC(src.Get().GclkSrc())
	tok.sync()

	c := Config[G, S]{
		token:   tok,
		srcFreq: src.Get().Freq(),
	}
	return c, typelevel.Inc(seal.K, src)
}

// NewFromGen1 attaches generator G to the output of GCLK1.
func NewFromGen1[G NotGen1, S any, N typelevel.Count](tok Token[G], gen1 typelevel.Enabled[Gclk[Gen1, S], N]) (Config[G, Gclk[Gen1, S]], typelevel.Enabled[Gclk[Gen1, S], typelevel.Succ[N]]) {
	reg := tok.regs()
	reg.SetSRC(chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1)
	tok.sync()

	c := Config[G, Gclk[Gen1, S]]{
		token:   tok,
		srcFreq: gen1.Get().Freq(),
	}
	return c, typelevel.Inc(seal.K, gen1)
}

// Disable stops a generator nothing depends on.
func Disable[G GenNum, S any](e typelevel.Enabled[Gclk[G, S], typelevel.Zero]) Config[G, S] {
	c := typelevel.Unwrap(e).config
	c.token.regs().SetGENEN(false)
	c.token.sync()
	return c
}

// Free detaches the generator from its source.
func Free[G GenNum, S any, N typelevel.Count](c Config[G, S], src typelevel.Enabled[S, typelevel.Succ[N]]) (Token[G], typelevel.Enabled[S, N]) {
	return c.token, typelevel.Dec(seal.K, src)
}

// Swap moves a configured generator from one source to another. The divider
// settings are kept.
func Swap[G GenNum, From any, To Source, N1, N2 typelevel.Count](c Config[G, From], from typelevel.Enabled[From, typelevel.Succ[N1]], to typelevel.Enabled[To, N2]) (Config[G, To], typelevel.Enabled[From, N1], typelevel.Enabled[To, typelevel.Succ[N2]]) {
	c.token.regs().SetSRC(to.Get().GclkSrc())
	c.token.sync()

	swapped := Config[G, To]{
		token:   c.token,
		srcFreq: to.Get().Freq(),
		div:     c.div,
	}
	return swapped, typelevel.Dec(seal.K, from), typelevel.Inc(seal.K, to)
}

// Boot adopts GCLK0 as the device left it at reset, running from src with the
// CPU as its single user, and hands out the tokens of the other generators.
func Boot[S Source, N typelevel.Count](k seal.Key, g *chip.GCLK_TYPE, src typelevel.Enabled[S, N]) (typelevel.Enabled[Gclk[Gen0, S], typelevel.One], typelevel.Enabled[S, typelevel.Succ[N]], Tokens) {
	k.Check()
	tok := Token[Gen0]{g}
	reg := tok.regs()

	div := DivBy(uint32(reg.GetDIV()))
	if reg.GetDIVSEL() == chip.GCLK_GENCTRL_REG_DIVSEL_DIV2 {
		div = DivPow2(uint32(reg.GetDIV()))
	}

	c := Config[Gen0, S]{
		token:   tok,
		srcFreq: src.Get().Freq(),
		div:     div,
	}
	gen0 := typelevel.Inc(k, typelevel.New(k, Gclk[Gen0, S]{config: c}))
	return gen0, typelevel.Inc(k, src), newTokens(g)
}

// SwapGen0 moves GCLK0 to a new source while the CPU keeps running from it.
func SwapGen0[From any, To Source, N1, N2 typelevel.Count](gen0 typelevel.Enabled[Gclk[Gen0, From], typelevel.One], from typelevel.Enabled[From, typelevel.Succ[N1]], to typelevel.Enabled[To, N2]) (typelevel.Enabled[Gclk[Gen0, To], typelevel.One], typelevel.Enabled[From, N1], typelevel.Enabled[To, typelevel.Succ[N2]]) {
	swapped := moveGen0[From, To](gen0, to.Get().GclkSrc(), to.Get().Freq())
	return swapped, typelevel.Dec(seal.K, from), typelevel.Inc(seal.K, to)
}

// SwapGen0FromGen1 moves GCLK0 to the output of GCLK1 while the CPU keeps
// running from it.
func SwapGen0FromGen1[From, S any, N1, N2 typelevel.Count](gen0 typelevel.Enabled[Gclk[Gen0, From], typelevel.One], from typelevel.Enabled[From, typelevel.Succ[N1]], gen1 typelevel.Enabled[Gclk[Gen1, S], N2]) (typelevel.Enabled[Gclk[Gen0, Gclk[Gen1, S]], typelevel.One], typelevel.Enabled[From, N1], typelevel.Enabled[Gclk[Gen1, S], typelevel.Succ[N2]]) {
	swapped := moveGen0[From, Gclk[Gen1, S]](gen0, chip.GCLK_GENCTRL_REG_SRC_GCLKGEN1, gen1.Get().Freq())
	return swapped, typelevel.Dec(seal.K, from), typelevel.Inc(seal.K, gen1)
}

func moveGen0[From, To any](gen0 typelevel.Enabled[Gclk[Gen0, From], typelevel.One], src chip.GCLK_GENCTRL_REG_SRC, f freq.Hertz) typelevel.Enabled[Gclk[Gen0, To], typelevel.One] {
	return typelevel.Map(seal.K, gen0, func(gc Gclk[Gen0, From]) Gclk[Gen0, To] {
		c := gc.config
		c.token.regs().SetSRC(src)
		c.token.sync()

		return Gclk[Gen0, To]{config: Config[Gen0, To]{
			token:   c.token,
			srcFreq: f,
			div:     c.div,
		}}
	})
}

// DivGen0 changes the division factor of GCLK0 while the CPU runs from it.
func DivGen0[S any](gen0 typelevel.Enabled[Gclk[Gen0, S], typelevel.One], d Div) typelevel.Enabled[Gclk[Gen0, S], typelevel.One] {
	return typelevel.Map(seal.K, gen0, func(gc Gclk[Gen0, S]) Gclk[Gen0, S] {
		return Gclk[Gen0, S]{config: gc.config.Div(d)}
	})
}
