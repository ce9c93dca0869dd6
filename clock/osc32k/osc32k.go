// Package osc32k drives the 32.768 kHz sources: the external XOSC32K
// oscillator and the always running OSCULP32K.
package osc32k

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/gpio"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

// Freq is the output frequency of both sources.
const Freq freq.Hertz = 32_768

// Rate selects the 32 kHz or the 1 kHz output of a source.
type Rate uint8

const (
	Rate32k Rate = iota
	Rate1k
)

// OscUlp32k is the ultra low power internal oscillator. It runs from reset
// and cannot be stopped.
type OscUlp32k struct {
	osc32kctrl *chip.OSC32KCTRL_TYPE
}

// Boot adopts the running OSCULP32K.
func Boot(k seal.Key, o *chip.OSC32KCTRL_TYPE) typelevel.Enabled[OscUlp32k, typelevel.Zero] {
	return typelevel.New(k, OscUlp32k{osc32kctrl: o})
}

func (OscUlp32k) Freq() freq.Hertz {
	return Freq
}

func (OscUlp32k) GclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_OSCULP32K
}

func (u OscUlp32k) rtc(r Rate) (*chip.OSC32KCTRL_TYPE, chip.OSC32KCTRL_RTCCTRL_REG_RTCSEL) {
	if r == Rate1k {
		return u.osc32kctrl, chip.OSC32KCTRL_RTCCTRL_REG_RTCSEL_ULP1K
	}
	return u.osc32kctrl, chip.OSC32KCTRL_RTCCTRL_REG_RTCSEL_ULP32K
}

// Token grants exclusive use of XOSC32K.
type Token struct {
	osc32kctrl *chip.OSC32KCTRL_TYPE
}

func NewToken(k seal.Key, o *chip.OSC32KCTRL_TYPE) Token {
	k.Check()
	return Token{osc32kctrl: o}
}

func (t Token) reg() *chip.OSC32KCTRL_XOSC32K_REG {
	if t.osc32kctrl == nil {
		panic("osc32k: use of an invalid token")
	}
	return &t.osc32kctrl.XOSC32K
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

// Config is XOSC32K in mode M, not enabled.
type Config[M Mode] struct {
	token      Token
	xin        gpio.Pin[gpio.PA00]
	xout       gpio.Pin[gpio.PA01]
	startUp    chip.OSC32KCTRL_XOSC32K_REG_STARTUP
	highSpeed  bool
	en32k      bool
	en1k       bool
	onDemand   bool
	runStandby bool
	cfd        bool
	switchBack bool
}

// FromClock uses a 32.768 kHz clock on PA00.
func FromClock(tok Token, xin gpio.Pin[gpio.PA00]) Config[Clock] {
	tok.reg()
	return Config[Clock]{token: tok, xin: xin.Disable(), en32k: true}
}

// FromCrystal drives a 32.768 kHz crystal between PA00 and PA01.
func FromCrystal(tok Token, xin gpio.Pin[gpio.PA00], xout gpio.Pin[gpio.PA01]) Config[Crystal] {
	tok.reg()
	return Config[Crystal]{token: tok, xin: xin.Disable(), xout: xout.Disable(), en32k: true}
}

// StartUp sets the start-up time.
func (c Config[M]) StartUp(s chip.OSC32KCTRL_XOSC32K_REG_STARTUP) Config[M] {
	c.startUp = s
	return c
}

// HighSpeed selects the high speed gain mode over the standard one.
func (c Config[M]) HighSpeed(enable bool) Config[M] {
	c.highSpeed = enable
	return c
}

// Outputs selects which of the 32 kHz and 1 kHz outputs run.
func (c Config[M]) Outputs(en32k, en1k bool) Config[M] {
	c.en32k = en32k
	c.en1k = en1k
	return c
}

func (c Config[M]) OnDemand(enable bool) Config[M] {
	c.onDemand = enable
	return c
}

func (c Config[M]) RunStandby(enable bool) Config[M] {
	c.runStandby = enable
	return c
}

// ClockFailureDetector enables failure detection, optionally returning to
// the oscillator once it recovers.
func (c Config[M]) ClockFailureDetector(switchBack bool) Config[M] {
	c.cfd = true
	c.switchBack = switchBack
	return c
}

// Enable starts the oscillator.
func (c Config[M]) Enable() typelevel.Enabled[Xosc32k[M], typelevel.Zero] {
	o := c.token.osc32kctrl
	reg := c.token.reg()

	if c.highSpeed {
		reg.SetCGM(chip.OSC32KCTRL_XOSC32K_REG_CGM_HS)
	} else {
		reg.SetCGM(chip.OSC32KCTRL_XOSC32K_REG_CGM_XT)
	}
	var m M
	_, crystal := any(m).(Crystal)
	reg.SetXTALEN(crystal)
	reg.SetEN32K(c.en32k)
	reg.SetEN1K(c.en1k)
	reg.SetONDEMAND(c.onDemand)
	reg.SetRUNSTDBY(c.runStandby)
	reg.SetSTARTUP(c.startUp)

	o.CFDCTRL.SetSWBACK(c.switchBack)
	o.CFDCTRL.SetCFDEN(c.cfd)

	reg.SetENABLE(true)
	return typelevel.New(seal.K, Xosc32k[M]{config: c})
}

// FreeClock returns the token and the input pin.
func FreeClock(c Config[Clock]) (Token, gpio.Pin[gpio.PA00]) {
	return c.token, c.xin
}

// FreeCrystal returns the token and both pins.
func FreeCrystal(c Config[Crystal]) (Token, gpio.Pin[gpio.PA00], gpio.Pin[gpio.PA01]) {
	return c.token, c.xin, c.xout
}

// Xosc32k is the running external 32 kHz oscillator.
type Xosc32k[M Mode] struct {
	config Config[M]
}

func (Xosc32k[M]) Freq() freq.Hertz {
	return Freq
}

func (Xosc32k[M]) GclkSrc() chip.GCLK_GENCTRL_REG_SRC {
	return chip.GCLK_GENCTRL_REG_SRC_XOSC32K
}

func (Xosc32k[M]) DpllRefClk() chip.OSCCTRL_DPLLCTRLB_REG_REFCLK {
	return chip.OSCCTRL_DPLLCTRLB_REG_REFCLK_XOSC32
}

// IsReady reports whether the oscillator is stable.
func (x Xosc32k[M]) IsReady() bool {
	return x.config.token.osc32kctrl.STATUS.GetXOSC32KRDY()
}

// WaitReady blocks until the oscillator is stable.
func (x Xosc32k[M]) WaitReady() {
	for !x.IsReady() {
	}
}

func (x Xosc32k[M]) rtc(r Rate) (*chip.OSC32KCTRL_TYPE, chip.OSC32KCTRL_RTCCTRL_REG_RTCSEL) {
	o := x.config.token.osc32kctrl
	if r == Rate1k {
		o.XOSC32K.SetEN1K(true)
		return o, chip.OSC32KCTRL_RTCCTRL_REG_RTCSEL_XOSC1K
	}
	o.XOSC32K.SetEN32K(true)
	return o, chip.OSC32KCTRL_RTCCTRL_REG_RTCSEL_XOSC32K
}

// Disable stops an unused oscillator.
func Disable[M Mode](e typelevel.Enabled[Xosc32k[M], typelevel.Zero]) Config[M] {
	c := typelevel.Unwrap(e).config
	c.token.reg().SetENABLE(false)
	return c
}

// RTCClock is a source the RTC can run from: OscUlp32k or Xosc32k.
type RTCClock interface {
	rtc(Rate) (*chip.OSC32KCTRL_TYPE, chip.OSC32KCTRL_RTCCTRL_REG_RTCSEL)
}

// SetRTCClock selects the output of src the RTC runs from, turning that
// output on if needed.
func SetRTCClock[C RTCClock, N typelevel.Count](src typelevel.Enabled[C, N], r Rate) {
	o, sel := src.Get().rtc(r)
	o.RTCCTRL.SetRTCSEL(sel)
}
