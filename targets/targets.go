package targets

import (
	_ "embed"
	"errors"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"omibyte.io/samclock/freq"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var (
	ErrSeriesNotFound = errors.New("series not found")
	ErrChipNotFound   = errors.New("chip not found")
)

func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Series     string     `yaml:"series"`
	Chips      []string   `yaml:"chips"`
	MaxCPUFreq freq.Hertz `yaml:"maxCpuFreq"`
	Generators int        `yaml:"generators"`
	Dplls      int        `yaml:"dplls"`
	Xoscs      int        `yaml:"xoscs"`
	Tags       []string   `yaml:"tags"`
}

// HasGenerator reports whether the series has generator n.
func (t TargetInfo) HasGenerator(n int) bool {
	return n >= 0 && n < t.Generators
}

func (t Targets) FindBySeries(name string) (TargetInfo, error) {
	for _, target := range t {
		if target.Series == strings.ToLower(name) {
			return target, nil
		}
	}
	return TargetInfo{}, errors.Join(ErrSeriesNotFound, errors.New(name))
}

func (t Targets) FindByChip(name string) (TargetInfo, error) {
	for _, target := range t {
		if slices.Contains(target.Chips, strings.ToLower(name)) {
			return target, nil
		}
	}
	return TargetInfo{}, errors.Join(ErrChipNotFound, errors.New(name))
}

// Chips returns every known chip name in sorted order.
func (t Targets) Chips() []string {
	var chips []string
	for _, target := range t {
		chips = append(chips, target.Chips...)
	}
	slices.Sort(chips)
	return chips
}

func init() {
	var t struct {
		Elements []TargetInfo `yaml:"targets"`
	}
	if err := yaml.Unmarshal(rawTargets, &t); err != nil {
		panic(err)
	}

	targets = t.Elements
}
