//go:build !tinygo

package chip

func newPeripherals() *Peripherals {
	return NewSimulated()
}

// NewSimulated returns register blocks backed by ordinary memory and loaded
// with their reset values. Flags that hardware sets on its own, such as the
// ready and lock bits, stay clear until the caller sets them.
func NewSimulated() *Peripherals {
	p := &Peripherals{
		GCLK:       new(GCLK_TYPE),
		OSCCTRL:    new(OSCCTRL_TYPE),
		OSC32KCTRL: new(OSC32KCTRL_TYPE),
		MCLK:       new(MCLK_TYPE),
		NVMCTRL:    new(NVMCTRL_TYPE),
		PORT:       new(PORT_TYPE),
	}

	// GCLK0 runs from the DFLL at reset
	p.GCLK.GENCTRL[0].SetSRC(GCLK_GENCTRL_REG_SRC_DFLL)
	p.GCLK.GENCTRL[0].SetGENEN(true)
	p.GCLK.GENCTRL[0].SetDIV(1)

	// The DFLL runs in open loop at reset
	p.OSCCTRL.DFLLCTRLA.SetENABLE(true)
	p.OSCCTRL.DFLLCTRLA.SetONDEMAND(true)
	p.OSCCTRL.DFLLVAL.SetCOARSE(0x1f)
	p.OSCCTRL.DFLLVAL.SetFINE(0x80)

	p.OSC32KCTRL.OSCULP32K.SetEN32K(true)
	p.OSC32KCTRL.OSCULP32K.SetEN1K(true)
	p.OSC32KCTRL.XOSC32K.SetONDEMAND(true)
	p.OSC32KCTRL.XOSC32K.SetCGM(OSC32KCTRL_XOSC32K_REG_CGM_XT)

	p.MCLK.INTFLAG.SetCKRDY(true)
	p.MCLK.HSDIV = MCLK_HSDIV_REG(1)
	p.MCLK.CPUDIV.SetDIV(MCLK_CPUDIV_REG_DIV_DIV1)
	p.MCLK.APBAMASK.SetPAC(true)
	p.MCLK.APBAMASK.SetPM(true)
	p.MCLK.APBAMASK.SetMCLK(true)
	p.MCLK.APBAMASK.SetRSTC(true)
	p.MCLK.APBAMASK.SetOSCCTRL(true)
	p.MCLK.APBAMASK.SetOSC32KCTRL(true)
	p.MCLK.APBAMASK.SetSUPC(true)
	p.MCLK.APBAMASK.SetGCLK(true)
	p.MCLK.APBBMASK.SetNVMCTRL(true)
	p.MCLK.APBBMASK.SetPORT(true)

	p.NVMCTRL.CTRLA.SetRWS(0)
	p.NVMCTRL.CTRLA.SetAUTOWS(false)

	for i := range p.OSCCTRL.XOSCCTRL {
		p.OSCCTRL.XOSCCTRL[i].SetONDEMAND(true)
	}
	for i := range p.OSCCTRL.DPLL {
		p.OSCCTRL.DPLL[i].DPLLCTRLA.SetONDEMAND(true)
	}

	return p
}
