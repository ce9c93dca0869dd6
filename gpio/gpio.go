// Package gpio hands out the pins the clock sources need. Only the crystal
// pins of the device are modelled.
package gpio

import "omibyte.io/samclock/chip"

// PinID identifies a pin at the type level.
type PinID interface {
	Group() uint8
	Num() uint8
}

type (
	PA00 struct{}
	PA01 struct{}
	PA14 struct{}
	PA15 struct{}
	PB22 struct{}
	PB23 struct{}
)

func (PA00) Group() uint8 { return 0 }
func (PA00) Num() uint8   { return 0 }
func (PA01) Group() uint8 { return 0 }
func (PA01) Num() uint8   { return 1 }
func (PA14) Group() uint8 { return 0 }
func (PA14) Num() uint8   { return 14 }
func (PA15) Group() uint8 { return 0 }
func (PA15) Num() uint8   { return 15 }
func (PB22) Group() uint8 { return 1 }
func (PB22) Num() uint8   { return 22 }
func (PB23) Group() uint8 { return 1 }
func (PB23) Num() uint8   { return 23 }

// Pin is an owned pin.
type Pin[I PinID] struct {
	port *chip.PORT_TYPE
}

// Pins holds every pin this package knows about.
type Pins struct {
	PA00 Pin[PA00]
	PA01 Pin[PA01]
	PA14 Pin[PA14]
	PA15 Pin[PA15]
	PB22 Pin[PB22]
	PB23 Pin[PB23]
}

// New takes ownership of the PORT block.
func New(p *chip.Peripherals) Pins {
	if p.PORT == nil {
		panic("gpio: PORT already taken")
	}
	port := p.PORT
	p.PORT = nil

	return Pins{
		PA00: Pin[PA00]{port: port},
		PA01: Pin[PA01]{port: port},
		PA14: Pin[PA14]{port: port},
		PA15: Pin[PA15]{port: port},
		PB22: Pin[PB22]{port: port},
		PB23: Pin[PB23]{port: port},
	}
}

// ID returns the port group and pin number.
func (p Pin[I]) ID() (group, num uint8) {
	var id I
	return id.Group(), id.Num()
}

// Disable detaches the pin from the port logic: input buffer, pull and
// peripheral multiplexing off, direction input. An oscillator can then
// drive the pin.
func (p Pin[I]) Disable() Pin[I] {
	if p.port == nil {
		panic("gpio: use of an invalid pin")
	}

	group, num := p.ID()
	g := &p.port.GROUP[group]
	g.DIRCLR.SetDIRCLR(1 << num)
	g.PINCFG[num].SetPMUXEN(false)
	g.PINCFG[num].SetINEN(false)
	g.PINCFG[num].SetPULLEN(false)
	return p
}
