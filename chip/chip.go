// Package chip exposes the clock related register blocks of the SAMD51 and
// SAME5x devices.
//
// The register types and accessors are generated from registers.yaml.
package chip

//go:generate go run omibyte.io/samclock/cmd/regen -in registers.yaml -out zz_registers.go

// Peripherals holds one pointer per register block. Ownership of a block is
// transferred by copying the pointer out and clearing the field.
type Peripherals struct {
	GCLK       *GCLK_TYPE
	OSCCTRL    *OSCCTRL_TYPE
	OSC32KCTRL *OSC32KCTRL_TYPE
	MCLK       *MCLK_TYPE
	NVMCTRL    *NVMCTRL_TYPE
	PORT       *PORT_TYPE
}

var taken bool

// Take returns the device peripherals. Only the first call succeeds.
func Take() (*Peripherals, bool) {
	if taken {
		return nil, false
	}
	taken = true
	return newPeripherals(), true
}
