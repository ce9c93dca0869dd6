package pclk

import (
	"omibyte.io/samclock/chip"
	"omibyte.io/samclock/internal/seal"
)

// Peripheral channel identities. The order matches the PCHCTRL index.
type (
	Dfll48   struct{}
	Dpll0    struct{}
	Dpll1    struct{}
	Slow     struct{}
	Eic      struct{}
	FreqmMsr struct{}
	FreqmRef struct{}
	Sercom0  struct{}
	Sercom1  struct{}
	Tc0Tc1   struct{}
	Usb      struct{}
	Evsys0   struct{}
	Evsys1   struct{}
	Evsys2   struct{}
	Evsys3   struct{}
	Evsys4   struct{}
	Evsys5   struct{}
	Evsys6   struct{}
	Evsys7   struct{}
	Evsys8   struct{}
	Evsys9   struct{}
	Evsys10  struct{}
	Evsys11  struct{}
	Sercom2  struct{}
	Sercom3  struct{}
	Tcc0Tcc1 struct{}
	Tc2Tc3   struct{}
	Can0     struct{}
	Can1     struct{}
	Tcc2Tcc3 struct{}
	Tc4Tc5   struct{}
	Pdec     struct{}
	Ac       struct{}
	Ccl      struct{}
	Sercom4  struct{}
	Sercom5  struct{}
	Sercom6  struct{}
	Sercom7  struct{}
	Tcc4     struct{}
	Tc6Tc7   struct{}
	Adc0     struct{}
	Adc1     struct{}
	Dac      struct{}
	I2s0     struct{}
	I2s1     struct{}
	Sdhc0    struct{}
	Sdhc1    struct{}
	Cm4Trace struct{}
)

func (Dfll48) Channel() int   { return 0 }
func (Dpll0) Channel() int    { return 1 }
func (Dpll1) Channel() int    { return 2 }
func (Slow) Channel() int     { return 3 }
func (Eic) Channel() int      { return 4 }
func (FreqmMsr) Channel() int { return 5 }
func (FreqmRef) Channel() int { return 6 }
func (Sercom0) Channel() int  { return 7 }
func (Sercom1) Channel() int  { return 8 }
func (Tc0Tc1) Channel() int   { return 9 }
func (Usb) Channel() int      { return 10 }
func (Evsys0) Channel() int   { return 11 }
func (Evsys1) Channel() int   { return 12 }
func (Evsys2) Channel() int   { return 13 }
func (Evsys3) Channel() int   { return 14 }
func (Evsys4) Channel() int   { return 15 }
func (Evsys5) Channel() int   { return 16 }
func (Evsys6) Channel() int   { return 17 }
func (Evsys7) Channel() int   { return 18 }
func (Evsys8) Channel() int   { return 19 }
func (Evsys9) Channel() int   { return 20 }
func (Evsys10) Channel() int  { return 21 }
func (Evsys11) Channel() int  { return 22 }
func (Sercom2) Channel() int  { return 23 }
func (Sercom3) Channel() int  { return 24 }
func (Tcc0Tcc1) Channel() int { return 25 }
func (Tc2Tc3) Channel() int   { return 26 }
func (Can0) Channel() int     { return 27 }
func (Can1) Channel() int     { return 28 }
func (Tcc2Tcc3) Channel() int { return 29 }
func (Tc4Tc5) Channel() int   { return 30 }
func (Pdec) Channel() int     { return 31 }
func (Ac) Channel() int       { return 32 }
func (Ccl) Channel() int      { return 33 }
func (Sercom4) Channel() int  { return 34 }
func (Sercom5) Channel() int  { return 35 }
func (Sercom6) Channel() int  { return 36 }
func (Sercom7) Channel() int  { return 37 }
func (Tcc4) Channel() int     { return 38 }
func (Tc6Tc7) Channel() int   { return 39 }
func (Adc0) Channel() int     { return 40 }
func (Adc1) Channel() int     { return 41 }
func (Dac) Channel() int      { return 42 }
func (I2s0) Channel() int     { return 43 }
func (I2s1) Channel() int     { return 44 }
func (Sdhc0) Channel() int    { return 45 }
func (Sdhc1) Channel() int    { return 46 }
func (Cm4Trace) Channel() int { return 47 }

func (Dpll0) DpllIndex() int { return 0 }
func (Dpll1) DpllIndex() int { return 1 }

// Tokens holds one token per peripheral channel.
type Tokens struct {
	Dfll48   Token[Dfll48]
	Dpll0    Token[Dpll0]
	Dpll1    Token[Dpll1]
	Slow     Token[Slow]
	Eic      Token[Eic]
	FreqmMsr Token[FreqmMsr]
	FreqmRef Token[FreqmRef]
	Sercom0  Token[Sercom0]
	Sercom1  Token[Sercom1]
	Tc0Tc1   Token[Tc0Tc1]
	Usb      Token[Usb]
	Evsys0   Token[Evsys0]
	Evsys1   Token[Evsys1]
	Evsys2   Token[Evsys2]
	Evsys3   Token[Evsys3]
	Evsys4   Token[Evsys4]
	Evsys5   Token[Evsys5]
	Evsys6   Token[Evsys6]
	Evsys7   Token[Evsys7]
	Evsys8   Token[Evsys8]
	Evsys9   Token[Evsys9]
	Evsys10  Token[Evsys10]
	Evsys11  Token[Evsys11]
	Sercom2  Token[Sercom2]
	Sercom3  Token[Sercom3]
	Tcc0Tcc1 Token[Tcc0Tcc1]
	Tc2Tc3   Token[Tc2Tc3]
	Can0     Token[Can0]
	Can1     Token[Can1]
	Tcc2Tcc3 Token[Tcc2Tcc3]
	Tc4Tc5   Token[Tc4Tc5]
	Pdec     Token[Pdec]
	Ac       Token[Ac]
	Ccl      Token[Ccl]
	Sercom4  Token[Sercom4]
	Sercom5  Token[Sercom5]
	Sercom6  Token[Sercom6]
	Sercom7  Token[Sercom7]
	Tcc4     Token[Tcc4]
	Tc6Tc7   Token[Tc6Tc7]
	Adc0     Token[Adc0]
	Adc1     Token[Adc1]
	Dac      Token[Dac]
	I2s0     Token[I2s0]
	I2s1     Token[I2s1]
	Sdhc0    Token[Sdhc0]
	Sdhc1    Token[Sdhc1]
	Cm4Trace Token[Cm4Trace]
}

// NewTokens hands out the channel tokens for the GCLK block g.
func NewTokens(k seal.Key, g *chip.GCLK_TYPE) Tokens {
	k.Check()
	return Tokens{
		Dfll48:   Token[Dfll48]{g},
		Dpll0:    Token[Dpll0]{g},
		Dpll1:    Token[Dpll1]{g},
		Slow:     Token[Slow]{g},
		Eic:      Token[Eic]{g},
		FreqmMsr: Token[FreqmMsr]{g},
		FreqmRef: Token[FreqmRef]{g},
		Sercom0:  Token[Sercom0]{g},
		Sercom1:  Token[Sercom1]{g},
		Tc0Tc1:   Token[Tc0Tc1]{g},
		Usb:      Token[Usb]{g},
		Evsys0:   Token[Evsys0]{g},
		Evsys1:   Token[Evsys1]{g},
		Evsys2:   Token[Evsys2]{g},
		Evsys3:   Token[Evsys3]{g},
		Evsys4:   Token[Evsys4]{g},
		Evsys5:   Token[Evsys5]{g},
		Evsys6:   Token[Evsys6]{g},
		Evsys7:   Token[Evsys7]{g},
		Evsys8:   Token[Evsys8]{g},
		Evsys9:   Token[Evsys9]{g},
		Evsys10:  Token[Evsys10]{g},
		Evsys11:  Token[Evsys11]{g},
		Sercom2:  Token[Sercom2]{g},
		Sercom3:  Token[Sercom3]{g},
		Tcc0Tcc1: Token[Tcc0Tcc1]{g},
		Tc2Tc3:   Token[Tc2Tc3]{g},
		Can0:     Token[Can0]{g},
		Can1:     Token[Can1]{g},
		Tcc2Tcc3: Token[Tcc2Tcc3]{g},
		Tc4Tc5:   Token[Tc4Tc5]{g},
		Pdec:     Token[Pdec]{g},
		Ac:       Token[Ac]{g},
		Ccl:      Token[Ccl]{g},
		Sercom4:  Token[Sercom4]{g},
		Sercom5:  Token[Sercom5]{g},
		Sercom6:  Token[Sercom6]{g},
		Sercom7:  Token[Sercom7]{g},
		Tcc4:     Token[Tcc4]{g},
		Tc6Tc7:   Token[Tc6Tc7]{g},
		Adc0:     Token[Adc0]{g},
		Adc1:     Token[Adc1]{g},
		Dac:      Token[Dac]{g},
		I2s0:     Token[I2s0]{g},
		I2s1:     Token[I2s1]{g},
		Sdhc0:    Token[Sdhc0]{g},
		Sdhc1:    Token[Sdhc1]{g},
		Cm4Trace: Token[Cm4Trace]{g},
	}
}
