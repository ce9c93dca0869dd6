//go:build tinygo

package chip

import "unsafe"

func newPeripherals() *Peripherals {
	return &Peripherals{
		GCLK:       (*GCLK_TYPE)(unsafe.Pointer(uintptr(GCLK_BASE))),
		OSCCTRL:    (*OSCCTRL_TYPE)(unsafe.Pointer(uintptr(OSCCTRL_BASE))),
		OSC32KCTRL: (*OSC32KCTRL_TYPE)(unsafe.Pointer(uintptr(OSC32KCTRL_BASE))),
		MCLK:       (*MCLK_TYPE)(unsafe.Pointer(uintptr(MCLK_BASE))),
		NVMCTRL:    (*NVMCTRL_TYPE)(unsafe.Pointer(uintptr(NVMCTRL_BASE))),
		PORT:       (*PORT_TYPE)(unsafe.Pointer(uintptr(PORT_BASE))),
	}
}
