// Package plan checks clock trees described in YAML and generates the Go
// code that builds them with the clock packages.
//
// A plan names the chip, the sources to start, the generators and the
// peripheral channels:
//
//	chip: atsamd51j19a
//	sources:
//	  xosc32k: {mode: crystal, rtc: 32k}
//	  dpll0: {reference: gclk2, ldr: 119}
//	generators:
//	  gclk0: {source: dpll0}
//	  gclk2: {source: dfll, div: 48}
//	channels:
//	  sercom0: gclk0
//
// GCLK0, the DFLL and OSCULP32K run at reset and are always part of the
// tree. GCLK0 keeps the DFLL as its source unless the plan says otherwise.
package plan

import (
	"io"

	"gopkg.in/yaml.v3"

	"omibyte.io/samclock/freq"
)

const (
	ModeCrystal = "crystal"
	ModeClock   = "clock"
	ModeOpen    = "open"
	ModeClosed  = "closed"
)

type Plan struct {
	Chip       string               `yaml:"chip"`
	Sources    Sources              `yaml:"sources"`
	Generators map[string]Generator `yaml:"generators"`
	Channels   map[string]string    `yaml:"channels"`
}

type Sources struct {
	Xosc32k *Xosc32k `yaml:"xosc32k"`
	Xosc0   *Xosc    `yaml:"xosc0"`
	Xosc1   *Xosc    `yaml:"xosc1"`
	Dfll    *Dfll    `yaml:"dfll"`
	Dpll0   *Dpll    `yaml:"dpll0"`
	Dpll1   *Dpll    `yaml:"dpll1"`
}

type Xosc32k struct {
	Mode string `yaml:"mode"`
	// RTC selects the output the RTC runs from: "32k", "1k" or empty to
	// leave the RTC alone.
	RTC string `yaml:"rtc"`
}

type Xosc struct {
	Mode string     `yaml:"mode"`
	Freq freq.Hertz `yaml:"freq"`
}

type Dfll struct {
	Mode       string `yaml:"mode"`
	Reference  string `yaml:"reference"`
	Multiplier uint16 `yaml:"multiplier"`
	CoarseStep uint8  `yaml:"coarseStep"`
	FineStep   uint8  `yaml:"fineStep"`
}

type Dpll struct {
	Reference string `yaml:"reference"`
	LoopDiv   uint16 `yaml:"ldr"`
	Frac      uint8  `yaml:"frac"`
	SourceDiv uint16 `yaml:"div"`
}

type Generator struct {
	Source     string `yaml:"source"`
	Div        uint32 `yaml:"div"`
	Pow2       bool   `yaml:"pow2"`
	RunStandby bool   `yaml:"runStandby"`
}

// Decode reads a plan. Unknown keys are an error.
func Decode(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
