package chip

import (
	"testing"
	"unsafe"
)

func TestLayout(t *testing.T) {
	var gclk GCLK_TYPE
	var oscctrl OSCCTRL_TYPE
	var osc32k OSC32KCTRL_TYPE
	var mclk MCLK_TYPE
	var nvm NVMCTRL_TYPE
	var port PORT_TYPE

	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"GCLK.SYNCBUSY", unsafe.Offsetof(gclk.SYNCBUSY), 0x04},
		{"GCLK.GENCTRL", unsafe.Offsetof(gclk.GENCTRL), 0x20},
		{"GCLK.PCHCTRL", unsafe.Offsetof(gclk.PCHCTRL), 0x80},
		{"GCLK", unsafe.Sizeof(gclk), 0x140},
		{"OSCCTRL.STATUS", unsafe.Offsetof(oscctrl.STATUS), 0x10},
		{"OSCCTRL.XOSCCTRL", unsafe.Offsetof(oscctrl.XOSCCTRL), 0x14},
		{"OSCCTRL.DFLLCTRLA", unsafe.Offsetof(oscctrl.DFLLCTRLA), 0x1c},
		{"OSCCTRL.DFLLCTRLB", unsafe.Offsetof(oscctrl.DFLLCTRLB), 0x20},
		{"OSCCTRL.DFLLMUL", unsafe.Offsetof(oscctrl.DFLLMUL), 0x28},
		{"OSCCTRL.DFLLSYNC", unsafe.Offsetof(oscctrl.DFLLSYNC), 0x2c},
		{"OSCCTRL.DPLL", unsafe.Offsetof(oscctrl.DPLL), 0x30},
		{"OSCCTRL.DPLL[1]", unsafe.Offsetof(oscctrl.DPLL) + unsafe.Sizeof(oscctrl.DPLL[0]), 0x44},
		{"OSCCTRL.DPLL.DPLLSTATUS", unsafe.Offsetof(oscctrl.DPLL[0].DPLLSTATUS), 0x10},
		{"OSC32KCTRL.RTCCTRL", unsafe.Offsetof(osc32k.RTCCTRL), 0x10},
		{"OSC32KCTRL.XOSC32K", unsafe.Offsetof(osc32k.XOSC32K), 0x14},
		{"OSC32KCTRL.OSCULP32K", unsafe.Offsetof(osc32k.OSCULP32K), 0x1c},
		{"MCLK.CPUDIV", unsafe.Offsetof(mclk.CPUDIV), 0x05},
		{"MCLK.APBAMASK", unsafe.Offsetof(mclk.APBAMASK), 0x14},
		{"MCLK.APBDMASK", unsafe.Offsetof(mclk.APBDMASK), 0x20},
		{"NVMCTRL.STATUS", unsafe.Offsetof(nvm.STATUS), 0x12},
		{"PORT.GROUP[0].PINCFG", unsafe.Offsetof(port.GROUP[0].PINCFG), 0x40},
		{"PORT", unsafe.Sizeof(port), 0x200},
	}

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: offset %#x, want %#x", test.name, test.got, test.want)
		}
	}
}

func TestBitfields(t *testing.T) {
	var reg GCLK_GENCTRL_REG

	reg.SetSRC(GCLK_GENCTRL_REG_SRC_DPLL1)
	reg.SetDIV(0xffff)
	reg.SetGENEN(true)
	if got := uint32(reg); got != 0xffff0108 {
		t.Errorf("GENCTRL = %#x, want 0xffff0108", got)
	}

	reg.SetDIV(3)
	if got := reg.GetDIV(); got != 3 {
		t.Errorf("GetDIV() = %d, want 3", got)
	}
	if got := reg.GetSRC(); got != GCLK_GENCTRL_REG_SRC_DPLL1 {
		t.Errorf("GetSRC() = %d, want DPLL1", got)
	}

	reg.SetGENEN(false)
	if reg.GetGENEN() {
		t.Errorf("GENEN still set")
	}

	// Values wider than the field must not leak into the neighbours
	var ratio OSCCTRL_DPLLRATIO_REG
	ratio.SetLDR(0xffff)
	if got := uint32(ratio); got != 0x1fff {
		t.Errorf("DPLLRATIO = %#x, want 0x1fff", got)
	}
}

func TestSyncBusyMask(t *testing.T) {
	reg := GCLK_SYNCBUSY_REG(1 << (2 + 5))
	if reg.GetGENCTRL()&GCLK_SYNCBUSY_REG_GENCTRL_GCLK5 == 0 {
		t.Errorf("GCLK5 not busy")
	}
	if reg.GetGENCTRL()&GCLK_SYNCBUSY_REG_GENCTRL_GCLK4 != 0 {
		t.Errorf("GCLK4 busy")
	}
}

func TestSimulatedResetState(t *testing.T) {
	p := NewSimulated()
	if got := p.GCLK.GENCTRL[0].GetSRC(); got != GCLK_GENCTRL_REG_SRC_DFLL {
		t.Errorf("GCLK0 source = %d, want DFLL", got)
	}
	if !p.GCLK.GENCTRL[0].GetGENEN() {
		t.Errorf("GCLK0 disabled at reset")
	}
	if !p.OSCCTRL.DFLLCTRLA.GetENABLE() {
		t.Errorf("DFLL disabled at reset")
	}
	if !p.OSC32KCTRL.OSCULP32K.GetEN32K() {
		t.Errorf("OSCULP32K disabled at reset")
	}
}

func TestTake(t *testing.T) {
	p, ok := Take()
	if !ok || p == nil {
		t.Fatalf("first Take failed")
	}
	if _, ok := Take(); ok {
		t.Errorf("second Take succeeded")
	}
}
