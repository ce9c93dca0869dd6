//go:build tinygo

// Package volatile performs memory accesses that the compiler may not merge,
// reorder or elide. Register blocks are always accessed through it.
package volatile

import "runtime/volatile"

func LoadUint8(addr *uint8) uint8 {
	return volatile.LoadUint8(addr)
}

func LoadUint16(addr *uint16) uint16 {
	return volatile.LoadUint16(addr)
}

func LoadUint32(addr *uint32) uint32 {
	return volatile.LoadUint32(addr)
}

func StoreUint8(addr *uint8, val uint8) {
	volatile.StoreUint8(addr, val)
}

func StoreUint16(addr *uint16, val uint16) {
	volatile.StoreUint16(addr, val)
}

func StoreUint32(addr *uint32, val uint32) {
	volatile.StoreUint32(addr, val)
}
