package main

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/clock/gclk"
	"omibyte.io/samclock/freq"
	"omibyte.io/samclock/internal/seal"
	"omibyte.io/samclock/typelevel"
)

type source struct{}

func (source) Freq() freq.Hertz                   { return 48 * freq.MHz }
func (source) GclkSrc() chip.GCLK_GENCTRL_REG_SRC { return chip.GCLK_GENCTRL_REG_SRC_DFLL }

func main() {
	p := chip.NewSimulated()
	_, src, tokens := gclk.Boot(seal.K, p.GCLK, typelevel.New(seal.K, source{}))

	config, _ := gclk.New(tokens.Gclk2, src)
	gen2 := typelevel.Inc(seal.K, config.Enable())
	_ = gclk.Disable(gen2)
}
