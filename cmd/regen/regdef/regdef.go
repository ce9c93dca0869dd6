// Package regdef describes a device register map in YAML.
package regdef

import (
	"errors"
	"fmt"
	"io"
	"math/bits"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName   = errors.New("missing name")
	ErrBadSize       = errors.New("register size must be 1, 2 or 4 bytes")
	ErrMaskOverflow  = errors.New("field mask exceeds register width")
	ErrMaskOverlap   = errors.New("field masks overlap")
	ErrValueOverflow = errors.New("enumerated value does not fit the field")
)

type Device struct {
	Name    string   `yaml:"device"`
	Package string   `yaml:"package"`
	Modules []Module `yaml:"modules"`
}

type Module struct {
	Name      string     `yaml:"name"`
	Caption   string     `yaml:"caption"`
	Base      uint64     `yaml:"base"`
	Size      uint64     `yaml:"size"`
	Registers []Register `yaml:"registers"`
	Groups    []Group    `yaml:"groups"`
}

type Group struct {
	Name      string     `yaml:"name"`
	Caption   string     `yaml:"caption"`
	At        uint64     `yaml:"offset"`
	Count     uint64     `yaml:"count"`
	Size      uint64     `yaml:"size"`
	Registers []Register `yaml:"registers"`
}

type Register struct {
	Name    string  `yaml:"name"`
	Caption string  `yaml:"caption"`
	At      uint64  `yaml:"offset"`
	Size    uint64  `yaml:"size"`
	Count   uint64  `yaml:"count"`
	RW      string  `yaml:"rw"`
	Fields  []Field `yaml:"fields"`
}

type Field struct {
	Name    string  `yaml:"name"`
	Caption string  `yaml:"caption"`
	Mask    uint64  `yaml:"mask"`
	Values  []Value `yaml:"values"`
}

type Value struct {
	Name  string `yaml:"name"`
	Value uint64 `yaml:"value"`
}

// Offsetable is implemented by everything that can be placed in a register
// block.
type Offsetable interface {
	Offset() uint64
}

func (r Register) Offset() uint64 { return r.At }
func (g Group) Offset() uint64    { return g.At }

// Decode reads and validates a device description.
func Decode(r io.Reader) (*Device, error) {
	var dev Device
	if err := yaml.NewDecoder(r).Decode(&dev); err != nil {
		return nil, err
	}
	if err := dev.Validate(); err != nil {
		return nil, err
	}
	return &dev, nil
}

func (d *Device) Validate() (err error) {
	for _, module := range d.Modules {
		if len(module.Name) == 0 {
			return ErrMissingName
		}
		for _, register := range module.Registers {
			err = errors.Join(err, validateRegister(module.Name, register))
		}
		for _, group := range module.Groups {
			if len(group.Name) == 0 {
				return fmt.Errorf("%s: %w", module.Name, ErrMissingName)
			}
			for _, register := range group.Registers {
				err = errors.Join(err, validateRegister(module.Name+"."+group.Name, register))
			}
		}
	}
	return err
}

func validateRegister(path string, register Register) error {
	if len(register.Name) == 0 {
		return fmt.Errorf("%s: %w", path, ErrMissingName)
	}

	path = path + "." + register.Name
	switch register.Size {
	case 1, 2, 4:
	default:
		return fmt.Errorf("%s: %w", path, ErrBadSize)
	}

	width := uint64(1)<<(register.Size*8) - 1
	var used uint64
	for _, field := range register.Fields {
		if field.Mask&^width != 0 {
			return fmt.Errorf("%s.%s: %w", path, field.Name, ErrMaskOverflow)
		}
		if field.Mask&used != 0 {
			return fmt.Errorf("%s.%s: %w", path, field.Name, ErrMaskOverlap)
		}
		used |= field.Mask

		limit := field.Mask >> bits.TrailingZeros64(field.Mask)
		for _, value := range field.Values {
			if value.Value&^limit != 0 {
				return fmt.Errorf("%s.%s_%s: %w", path, field.Name, value.Name, ErrValueOverflow)
			}
		}
	}
	return nil
}
