// Package generator emits the Go register layer for a regdef.Device.
package generator

import (
	"fmt"
	"go/format"
	"io"
	"log"
	"math/bits"
	"regexp"
	"strings"

	"golang.org/x/exp/slices"

	"omibyte.io/samclock/cmd/regen/regdef"
)

type Generator struct {
	dev      *regdef.Device
	source   string
	volatile string
}

func New(dev *regdef.Device, source string, volatilePkg string) *Generator {
	return &Generator{
		dev:      dev,
		source:   source,
		volatile: volatilePkg,
	}
}

// Generate returns the formatted source of the register layer.
func (g *Generator) Generate() ([]byte, error) {
	var w strings.Builder

	pkg := g.dev.Package
	if len(pkg) == 0 {
		pkg = "chip"
	}

	fmt.Fprintf(&w, "// Code generated by regen from %s. DO NOT EDIT.\n\n", g.source)
	fmt.Fprintf(&w, "package %s\n\n", pkg)
	fmt.Fprintf(&w, "import %q\n\n", g.volatile)

	g.generateBases(&w)

	for _, module := range g.dev.Modules {
		g.generateModule(&w, module)
	}

	buf, err := format.Source([]byte(w.String()))
	if err != nil {
		return []byte(w.String()), fmt.Errorf("error formatting output: %v", err)
	}
	return buf, nil
}

func (g *Generator) generateBases(w io.Writer) {
	fmt.Fprintf(w, "const (\n")
	for _, module := range g.dev.Modules {
		fmt.Fprintf(w, "%s_BASE = %#x", module.Name, module.Base)
		if len(module.Caption) > 0 {
			fmt.Fprintf(w, " // %s", module.Caption)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, ")\n\n")
}

func (g *Generator) generateModule(w io.Writer, module regdef.Module) {
	// Create the peripheral struct type
	if len(module.Caption) > 0 {
		fmt.Fprintf(w, "// %s_TYPE is the %s register block.\n", module.Name, module.Caption)
	}
	fmt.Fprintf(w, "type %s_TYPE struct {\n", module.Name)
	generateStructBody(w, module, module.Registers, module.Groups, module.Size)
	fmt.Fprintf(w, "}\n\n")

	// Cluster types follow the module so that they can be found next to it
	for _, group := range module.Groups {
		fmt.Fprintf(w, "type %s_%s_TYPE struct {\n", module.Name, group.Name)
		generateStructBody(w, module, group.Registers, nil, group.Size)
		fmt.Fprintf(w, "}\n\n")
	}

	for _, register := range module.Registers {
		generateRegister(w, module, register)
	}

	for _, group := range module.Groups {
		for _, register := range group.Registers {
			generateRegister(w, module, register)
		}
	}
}

func generateStructBody(w io.Writer, module regdef.Module, registers []regdef.Register, groups []regdef.Group, size uint64) {
	var l []regdef.Offsetable

	// Create a homogeneous list of the registers and register groups
	for _, r := range registers {
		l = append(l, r)
	}

	for _, g := range groups {
		l = append(l, g)
	}

	// Sort the list by offset
	slices.SortFunc(l, func(a, b regdef.Offsetable) int {
		return int(a.Offset()) - int(b.Offset())
	})

	offset := uint64(0)
	for _, obj := range l {
		if offset != obj.Offset() {
			n := obj.Offset() - offset
			// Insert padding bytes
			fmt.Fprintf(w, "_ [%d]byte\n", n)
			offset += n
		}

		switch obj := obj.(type) {
		case regdef.Register:
			// Create struct field
			registerTypeName := registerName(module, obj)
			if obj.Count > 0 {
				// Create a fixed-size array representing this register
				fmt.Fprintf(w, "%s [%d]%s", obj.Name, obj.Count, registerTypeName)
				offset = obj.At + (obj.Size * obj.Count)
			} else {
				fmt.Fprintf(w, "%s %s", obj.Name, registerTypeName)
				offset = obj.At + obj.Size
			}

			if len(obj.Caption) > 0 {
				fmt.Fprintf(w, " // %s", obj.Caption)
			}
			fmt.Fprintln(w)
		case regdef.Group:
			typename := fmt.Sprintf("%s_%s_TYPE", module.Name, obj.Name)
			if obj.Count > 0 {
				// Create a fixed-size array of the group type
				fmt.Fprintf(w, "%s [%d]%s", obj.Name, obj.Count, typename)
				offset = obj.At + (obj.Size * obj.Count)
			} else {
				fmt.Fprintf(w, "%s %s", obj.Name, typename)
				offset = obj.At + obj.Size
			}

			if len(obj.Caption) > 0 {
				fmt.Fprintf(w, " // %s", obj.Caption)
			}
			fmt.Fprintln(w)
		}
	}

	if offset < size {
		n := size - offset
		// Insert padding bytes
		fmt.Fprintf(w, "_ [%d]byte\n", n)
	}
}

func generateRegister(w io.Writer, module regdef.Module, register regdef.Register) {
	registerTypeName := registerName(module, register)
	intType := typeForSize(register.Size)
	fmt.Fprintf(w, "type %s %s", registerTypeName, intType)

	if len(register.Caption) > 0 {
		fmt.Fprintf(w, " // %s", register.Caption)
	}
	fmt.Fprintf(w, "\n\n")

	// Generate the functions for this register
	for _, bitfield := range register.Fields {
		if len(bitfield.Values) > 0 {
			typeName := fmt.Sprintf("%s_%s", registerTypeName, bitfield.Name)

			// Create the type for this value group
			fmt.Fprintf(w, "type %s %s\n\n", typeName, intType)

			// Create the values
			fmt.Fprintf(w, "const (\n")
			for _, value := range bitfield.Values {
				fmt.Fprintf(w, "%s_%s_%s %s = %#x\n", registerTypeName, bitfield.Name, value.Name, typeName, value.Value)
			}
			fmt.Fprintf(w, ")\n\n")
		}

		generateBitfieldFuncs(w, module, register, bitfield)
	}
}

func generateBitfieldFuncs(w io.Writer, module regdef.Module, register regdef.Register, bitfield regdef.Field) {
	typename, offset := typeForMask(bitfield.Mask)
	intType := typeForSize(register.Size)
	registerTypeName := registerName(module, register)

	if len(bitfield.Values) > 0 {
		typename = fmt.Sprintf("%s_%s", registerTypeName, bitfield.Name)
	}

	if strings.Contains(strings.ToLower(register.RW), "r") {
		fmt.Fprintf(w, "func (reg *%s) Get%s() %s {\n", registerTypeName, cleanIdentifier(bitfield.Name), typename)
		fmt.Fprintf(w, "v := volatile.Load%s((*%s)(reg))\n", title(intType), intType)
		if typename == "bool" {
			fmt.Fprintf(w, "return v&(1<<%d) != 0\n", offset)
		} else {
			fmt.Fprintf(w, "return %s((v & %#x) >> %d)\n", typename, bitfield.Mask, offset)
		}
		fmt.Fprintf(w, "}\n\n")
	}

	if strings.Contains(strings.ToLower(register.RW), "w") {
		if typename == "bool" {
			fmt.Fprintf(w, "func (reg *%s) Set%s(enable bool) {\n", registerTypeName, cleanIdentifier(bitfield.Name))
			fmt.Fprintf(w, "v := volatile.Load%s((*%s)(reg))\n", title(intType), intType)
			fmt.Fprintf(w, "if enable {\n")
			fmt.Fprintf(w, "v |= 1 << %d\n", offset)
			fmt.Fprintf(w, "} else {\n")
			fmt.Fprintf(w, "v &^= 1 << %d\n", offset)
			fmt.Fprintf(w, "}\n")
		} else {
			fmt.Fprintf(w, "func (reg *%s) Set%s(value %s) {\n", registerTypeName, cleanIdentifier(bitfield.Name), typename)
			fmt.Fprintf(w, "v := volatile.Load%s((*%s)(reg))\n", title(intType), intType)
			fmt.Fprintf(w, "v &^= %#x\n", bitfield.Mask)                                       // Unset the respective bits.
			fmt.Fprintf(w, "v |= (%s(value) << %d) & %#x\n", intType, offset, bitfield.Mask) // Set the respective bits to the specified value.
		}
		fmt.Fprintf(w, "volatile.Store%s((*%s)(reg), v)\n", title(intType), intType)
		fmt.Fprintf(w, "}\n\n")
	}
}

func registerName(module regdef.Module, register regdef.Register) string {
	return fmt.Sprintf("%s_%s_REG", module.Name, register.Name)
}

func typeForSize(size uint64) (result string) {
	switch {
	case size <= 1:
		result = "uint8"
	case size <= 2:
		result = "uint16"
	case size <= 4:
		result = "uint32"
	default:
		log.Panicf("supported type size %d", size)
	}
	return result
}

func typeForMask(mask uint64) (goType string, offset int) {
	numBits := bits.OnesCount64(mask)
	offset = bits.TrailingZeros64(mask)
	switch {
	case numBits <= 1:
		goType = "bool"
	case numBits <= 8:
		goType = "uint8"
	case numBits <= 16:
		goType = "uint16"
	default:
		goType = "uint32"
	}
	return
}

func title(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}

var identifierPattern = regexp.MustCompile(`([a-zA-Z0-9]$|[a-zA-Z0-9][_a-zA-Z0-9]*[a-zA-Z0-9])`)

func cleanIdentifier(ident string) string {
	return identifierPattern.FindStringSubmatch(ident)[0]
}
