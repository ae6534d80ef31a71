// Package virtio implements the legacy (version 1) VirtIO MMIO transport
// for a single block device (spec §4.3), grounded on
// original_source/kernel/src/virtio.rs and cross-checked against the
// register layout tinyrange-cc's device-side emulator
// (internal/devices/virtio/mmio.go) exposes from the other end of the
// same wire.
package virtio

import (
	"sync/atomic"
	"unsafe"
)

// MMIO register offsets from the device's base address (legacy VirtIO
// MMIO transport, version 1).
const (
	regMagic         = 0x00
	regVersion       = 0x04
	regDeviceID      = 0x08
	regQueueSel      = 0x30
	regQueueNumMax   = 0x34
	regQueueNum      = 0x38
	regQueueAlign    = 0x3c
	regQueuePFN      = 0x40
	regQueueReady    = 0x44
	regQueueNotify   = 0x50
	regDeviceStatus  = 0x70
	regDeviceConfig  = 0x100
)

const (
	magicValue     = 0x74726976 // "virt"
	legacyVersion  = 1
	deviceIDBlock  = 2
)

// Device status bits the driver ORs into regDeviceStatus as the device
// initialization handshake progresses (spec §4.3, "device handshake").
const (
	statusAck      uint32 = 1
	statusDriver   uint32 = 2
	statusDriverOK uint32 = 4
	statusFeatOK   uint32 = 8
)

// mmio is a thin volatile-access wrapper around one device's MMIO
// register window. Every field access goes through it rather than a bare
// pointer dereference so every read/write in this package states, in one
// place, that it must not be reordered or cached. Each access is a
// sync/atomic load or store, which the compiler neither elides nor reorders.
type mmio struct {
	base uintptr
}

func (m mmio) read32(offset uintptr) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(m.base + offset)))
}

func (m mmio) write32(offset uintptr, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(m.base+offset)), v)
}

func (m mmio) read64(offset uintptr) uint64 {
	return atomic.LoadUint64((*uint64)(unsafe.Pointer(m.base + offset)))
}

func (m mmio) write64(offset uintptr, v uint64) {
	atomic.StoreUint64((*uint64)(unsafe.Pointer(m.base+offset)), v)
}

func (m mmio) fetchOr32(offset uintptr, v uint32) {
	m.write32(offset, m.read32(offset)|v)
}
