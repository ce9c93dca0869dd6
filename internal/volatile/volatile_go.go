//go:build !tinygo

// Package volatile performs memory accesses that the compiler may not merge,
// reorder or elide. Register blocks are always accessed through it.
//
// On the host the register blocks are ordinary memory owned by the test and
// plain accesses are sufficient. OnLoad and OnStore let tests play the part
// of hardware that reacts to register accesses.
package volatile

import "unsafe"

var (
	// OnLoad is called before every load.
	OnLoad func(addr unsafe.Pointer)

	// OnStore is called after every store.
	OnStore func(addr unsafe.Pointer)
)

func loaded(addr unsafe.Pointer) {
	if OnLoad != nil {
		OnLoad(addr)
	}
}

func stored(addr unsafe.Pointer) {
	if OnStore != nil {
		OnStore(addr)
	}
}

//go:noinline
func LoadUint8(addr *uint8) uint8 {
	loaded(unsafe.Pointer(addr))
	return *addr
}

//go:noinline
func LoadUint16(addr *uint16) uint16 {
	loaded(unsafe.Pointer(addr))
	return *addr
}

//go:noinline
func LoadUint32(addr *uint32) uint32 {
	loaded(unsafe.Pointer(addr))
	return *addr
}

//go:noinline
func StoreUint8(addr *uint8, val uint8) {
	*addr = val
	stored(unsafe.Pointer(addr))
}

//go:noinline
func StoreUint16(addr *uint16, val uint16) {
	*addr = val
	stored(unsafe.Pointer(addr))
}

//go:noinline
func StoreUint32(addr *uint32, val uint32) {
	*addr = val
	stored(unsafe.Pointer(addr))
}
