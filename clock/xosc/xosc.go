// Package xosc drives the two external multipurpose oscillators.
//
// An oscillator is either driven by an external clock on its XIN pin or by a
// crystal between XIN and XOUT. The pins are taken when the oscillator is
// configured and returned when it is freed. The pins also identify the
// oscillator: XOSC0 uses PA14 and PA15, XOSC1 uses PB22 and PB23.
package xosc

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/gpio"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

// Token grants exclusive use of the oscillator with pins I and O.
type Token[I, O gpio.PinID] struct {
	oscctrl *chip.OSCCTRL_TYPE
	num     int
}

func (t Token[I, O]) reg() *chip.OSCCTRL_XOSCCTRL_REG {
	if t.oscctrl == nil {
		panic("xosc: use of an invalid token")
	}
	return &t.oscctrl.XOSCCTRL[t.num]
}

// Num returns the oscillator number.
func (t Token[I, O]) Num() int {
	return t.num
}

type (
	Token0 = Token[gpio.PA14, gpio.PA15]
	Token1 = Token[gpio.PB22, gpio.PB23]
)

// Tokens holds the tokens of both oscillators.
type Tokens struct {
	Xosc0 Token0
	Xosc1 Token1
}

func NewTokens(k seal.Key, o *chip.OSCCTRL_TYPE) Tokens {
	k.Check()
	return Tokens{
		Xosc0: Token0{oscctrl: o, num: 0},
		Xosc1: Token1{oscctrl: o, num: 1},
	}
}

// Mode is Clock or Crystal.
type Mode interface {
	mode()
}

type (
	Clock   struct{}
	Crystal struct{}
)

func (Clock) mode()   {}
func (Crystal) mode() {}

// CrystalCurrent selects the crystal drive current for a frequency band.
type CrystalCurrent uint8

const (
	CurrentBase CrystalCurrent = iota // 8 MHz
	CurrentLow                        // 8 to 16 MHz
	CurrentMed                        // 16 to 24 MHz
	CurrentHigh                       // 24 to 48 MHz
)

// IMULT returns the current multiplier for the band.
func (c CrystalCurrent) IMULT() uint8 {
	switch c {
	case CurrentLow:
		return 4
	case CurrentMed:
		return 5
	case CurrentHigh:
		return 6
	default:
		return 3
	}
}

// IPTAT returns the current reference for the band.
func (c CrystalCurrent) IPTAT() uint8 {
	if c == CurrentBase {
		return 2
	}
	return 3
}

// CrystalFor returns the current band for a crystal of frequency f.
func CrystalFor(f freq.Hertz) CrystalCurrent {
	switch {
	case f <= 8*freq.MHz:
		return CurrentBase
	case f <= 16*freq.MHz:
		return CurrentLow
	case f <= 24*freq.MHz:
		return CurrentMed
	default:
		return CurrentHigh
	}
}

// CrystalSettings are the options that only apply to crystal operation.
type CrystalSettings struct {
	StartUp    chip.OSCCTRL_XOSCCTRL_REG_STARTUP
	Current    CrystalCurrent
	LowBufGain bool

	// AutoLoopControl lets the oscillator lower its gain once it runs.
	AutoLoopControl bool
}

// Config is an oscillator in mode M that is not enabled.
type Config[I, O gpio.PinID, M Mode] struct {
	token      Token[I, O]
	xin        gpio.Pin[I]
	xout       gpio.Pin[O]
	freq       freq.Hertz
	onDemand   bool
	runStandby bool
	cfd        bool
	cfdPresc   uint8
	switchBack bool
}

// FromClock uses the external clock of frequency f on xin.
func FromClock[I, O gpio.PinID](tok Token[I, O], xin gpio.Pin[I], f freq.Hertz) Config[I, O, Clock] {
	reg := tok.reg()
	xin = xin.Disable()
	reg.SetXTALEN(false)
	return Config[I, O, Clock]{
		token: tok,
		xin:   xin,
		freq:  f,
	}
}

// FromCrystal drives a crystal of frequency f between xin and xout.
func FromCrystal[I, O gpio.PinID](tok Token[I, O], xin gpio.Pin[I], xout gpio.Pin[O], f freq.Hertz, s CrystalSettings) Config[I, O, Crystal] {
	reg := tok.reg()
	xin = xin.Disable()
	xout = xout.Disable()

	reg.SetXTALEN(true)
	reg.SetSTARTUP(s.StartUp)
	reg.SetIMULT(s.Current.IMULT())
	reg.SetIPTAT(s.Current.IPTAT())
	reg.SetLOWBUFGAIN(s.LowBufGain)
	reg.SetENALC(s.AutoLoopControl)
	return Config[I, O, Crystal]{
		token: tok,
		xin:   xin,
		xout:  xout,
		freq:  f,
	}
}

func (c Config[I, O, M]) Freq() freq.Hertz {
	return c.freq
}

// OnDemand only runs the oscillator while a consumer requests it.
func (c Config[I, O, M]) OnDemand(enable bool) Config[I, O, M] {
	c.onDemand = enable
	return c
}

// RunStandby keeps the oscillator running in standby sleep.
func (c Config[I, O, M]) RunStandby(enable bool) Config[I, O, M] {
	c.runStandby = enable
	return c
}

// ClockFailureDetector enables failure detection. The safe clock used for
// detection is divided by 2^prescaler.
func (c Config[I, O, M]) ClockFailureDetector(prescaler uint8) Config[I, O, M] {
	if prescaler > 0xf {
		prescaler = 0xf
	}
	c.cfd = true
	c.cfdPresc = prescaler
	return c
}

// SwitchBack returns to the oscillator after a detected failure has cleared.
func (c Config[I, O, M]) SwitchBack(enable bool) Config[I, O, M] {
	c.switchBack = enable
	return c
}

// Enable starts the oscillator.
func (c Config[I, O, M]) Enable() typelevel.Enabled[Xosc[I, O, M], typelevel.Zero] {
	reg := c.token.reg()
	reg.SetONDEMAND(c.onDemand)
	reg.SetRUNSTDBY(c.runStandby)
	reg.SetCFDPRESC(c.cfdPresc)
	reg.SetCFDEN(c.cfd)
	reg.SetSWBEN(c.switchBack)
	reg.SetENABLE(true)
	return typelevel.New(seal.K, Xosc[I, O, M]{config: c})
}

// FreeClock returns the token and the input pin.
func FreeClock[I, O gpio.PinID](c Config[I, O, Clock]) (Token[I, O], gpio.Pin[I]) {
	return c.token, c.xin
}

// FreeCrystal returns the token and both pins.
func FreeCrystal[I, O gpio.PinID](c Config[I, O, Crystal]) (Token[I, O], gpio.Pin[I], gpio.Pin[O]) {
	return c.token, c.xin, c.xout
}

// Xosc is a running oscillator.
type Xosc[I, O gpio.PinID, M Mode] struct {
	config Config[I, O, M]
}

func (x Xosc[I, O, M]) Freq() freq.Hertz {
	return x.config.freq
}

// Num returns the oscillator number.
func (x Xosc[I, O, M]) Num() int {
	return x.config.token.num
}

func (x Xosc[I, O, M]) GclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_XOSC0 + chip.GCLK_GENCTRL_REG_SRC(x.Num())
}

func (x Xosc[I, O, M]) DpllRefClk() chip.OSCCTRL_DPLLCTRLB_REG_REFCLK {
	return chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC0 + chip.OSCCTRL_DPLLCTRLB_REG_REFCLK(x.Num())
}

// IsReady reports whether the oscillator is stable.
func (x Xosc[I, O, M]) IsReady() bool {
	s := &x.config.token.oscctrl.STATUS
	if x.Num() == 0 {
		return s.GetXOSCRDY0()
	}
	return s.GetXOSCRDY1()
}

// WaitReady blocks until the oscillator is stable.
func (x Xosc[I, O, M]) WaitReady() {
	for !x.IsReady() {
	}
}

// Failed reports whether the clock failure detector has switched away from
// the oscillator.
func (x Xosc[I, O, M]) Failed() bool {
	s := &x.config.token.oscctrl.STATUS
	if x.Num() == 0 {
		return s.GetXOSCFAIL0()
	}
	return s.GetXOSCFAIL1()
}

// Disable stops an unused oscillator.
func Disable[I, O gpio.PinID, M Mode](e typelevel.Enabled[Xosc[I, O, M], typelevel.Zero]) Config[I, O, M] {
	c := typelevel.Unwrap(e).config
	c.token.reg().SetENABLE(false)
	return c
}
