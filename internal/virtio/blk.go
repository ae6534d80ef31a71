package virtio

import (
	"fmt"
	"unsafe"

	"sv39kernel/internal/defs"
	"sv39kernel/internal/mem"
	"sv39kernel/internal/util"
)

// QueueSize is the descriptor count of the single virtqueue this driver
// uses (spec §4.3). Fixed at 16, matching the reference firmware's
// expectations for a minimal legacy block device.
const QueueSize = 16

const (
	descFlagNext  uint16 = 1
	descFlagWrite uint16 = 2
)

const (
	blkTypeIn  uint32 = 0
	blkTypeOut uint32 = 1
)

// Descriptor_t is one entry of the virtqueue descriptor table (spec §4.3).
type Descriptor_t struct {
	Addr  uint64
	Len   uint32
	Flags uint16
	Next  uint16
}

// Available_t is the driver-owned ring telling the device which
// descriptor chains are ready to process.
type Available_t struct {
	Flags uint16
	Index uint16
	Ring  [QueueSize]uint16
}

// UsedElem_t is one entry of the device-owned used ring.
type UsedElem_t struct {
	ID  uint32
	Len uint32
}

// Used_t is the device-owned ring reporting completed descriptor chains.
type Used_t struct {
	Flags uint16
	Index uint16
	Ring  [QueueSize]UsedElem_t
}

// virtqLayout is the fixed, page-aligned memory layout the legacy
// transport requires: descriptor table and available ring share the
// first page-rounded region, the used ring starts on the next page
// boundary (spec §4.3, "virtqueue (descriptor table, avail ring, used
// ring)").
type virtqLayout struct {
	Descriptors [QueueSize]Descriptor_t
	Available   Available_t
}

var usedRingOffset = util.Roundup(mem.Pa_t(unsafe.Sizeof(virtqLayout{})), mem.PageSize)

// Virtq_t is a driver-side handle onto one virtqueue: the physical base of
// its descriptor/avail/used memory, plus the bookkeeping the driver needs
// to notice device-side completions (spec §4.3).
type Virtq_t struct {
	base          mem.Pa_t
	index         uint32
	lastUsedIndex uint16
}

func (v *Virtq_t) descriptors() *[QueueSize]Descriptor_t {
	return (*[QueueSize]Descriptor_t)(mem.Ptr(v.base))
}

func (v *Virtq_t) available() *Available_t {
	return (*Available_t)(mem.Ptr(v.base + mem.Pa_t(unsafe.Offsetof(virtqLayout{}.Available))))
}

func (v *Virtq_t) used() *Used_t {
	return (*Used_t)(mem.Ptr(v.base + mem.Pa_t(usedRingOffset)))
}

// BlockRequest_t is the header+payload+status buffer handed to the device
// across three chained descriptors (spec §4.3).
type BlockRequest_t struct {
	Type     uint32
	Reserved uint32
	Sector   uint64
	Data     [defs.SectorSize]byte
	Status   uint8
}

// Driver_t drives one legacy VirtIO MMIO block device end to end: the
// handshake, the single virtqueue, and synchronous sector read/write.
// Grounded on original_source/kernel/src/virtio.rs's BlockDeviceDriver.
type Driver_t struct {
	regs     mmio
	vq       *Virtq_t
	req      *BlockRequest_t
	capacity uint64 // bytes
}

// NewDriver performs the full VirtIO MMIO handshake against the device
// mapped at base (spec §4.3): magic/version/device-id sanity checks,
// ACK/DRIVER/FEATURES_OK, virtqueue setup, DRIVER_OK, then reads the
// device's advertised capacity.
func NewDriver(base uintptr) (*Driver_t, error) {
	regs := mmio{base: base}

	if magic := regs.read32(regMagic); magic != magicValue {
		return nil, fmt.Errorf("virtio: invalid magic %#x", magic)
	}
	if version := regs.read32(regVersion); version != legacyVersion {
		return nil, fmt.Errorf("virtio: invalid version %d, want legacy version %d", version, legacyVersion)
	}
	if id := regs.read32(regDeviceID); id != deviceIDBlock {
		return nil, fmt.Errorf("virtio: invalid device id %d, want block device (%d)", id, deviceIDBlock)
	}

	regs.write32(regDeviceStatus, 0)
	regs.fetchOr32(regDeviceStatus, statusAck)
	regs.fetchOr32(regDeviceStatus, statusDriver)
	// Feature negotiation is skipped outright: this driver only ever
	// speaks the legacy baseline feature set the original does.
	regs.fetchOr32(regDeviceStatus, statusFeatOK)

	vq := initQueue(regs, 0)
	regs.write32(regDeviceStatus, statusAck|statusDriver|statusFeatOK|statusDriverOK)

	capacitySectors := regs.read64(regDeviceConfig)
	capacity := capacitySectors * defs.SectorSize

	reqPages := util.Roundup(mem.Pa_t(unsafe.Sizeof(BlockRequest_t{})), mem.PageSize) / mem.PageSize
	reqAddr := mem.AllocPages(int(reqPages))

	return &Driver_t{
		regs:     regs,
		vq:       vq,
		req:      (*BlockRequest_t)(mem.Ptr(reqAddr)),
		capacity: capacity,
	}, nil
}

func initQueue(regs mmio, index uint32) *Virtq_t {
	pages := util.Roundup(mem.Pa_t(usedRingOffset)+mem.Pa_t(unsafe.Sizeof(Used_t{})), mem.PageSize) / mem.PageSize
	base := mem.AllocPages(int(pages))

	regs.write32(regQueueSel, index)
	regs.write32(regQueueNum, QueueSize)
	regs.write32(regQueueAlign, 0)
	regs.write64(regQueuePFN, uint64(base))

	return &Virtq_t{base: base, index: index}
}

// Capacity returns the device's advertised size in bytes.
func (d *Driver_t) Capacity() uint64 {
	return d.capacity
}

func (d *Driver_t) kick(descIndex uint16) {
	avail := d.vq.available()
	slot := avail.Index % QueueSize
	avail.Ring[slot] = descIndex
	avail.Index++
	d.regs.write32(regQueueNotify, d.vq.index)
	// last_used_index now names the used-ring count we expect once this
	// request completes; busy() spins until the device's real index
	// catches up to it.
	d.vq.lastUsedIndex++
}

func (d *Driver_t) busy() bool {
	return d.vq.lastUsedIndex != d.vq.used().Index
}

// ReadWrite performs one synchronous, polled sector transfer (spec §4.3):
// three chained descriptors (header, 512-byte data, status byte), kicked
// and then spun on until the device reports completion. For a read, buf
// must be at least defs.SectorSize bytes long; a write copies at most
// defs.SectorSize bytes from buf, zero-filling the rest of the sector.
func (d *Driver_t) ReadWrite(buf []byte, sector uint64, write bool) error {
	if !write && len(buf) < defs.SectorSize {
		return &defs.IOError{Kind: defs.NotEnoughSpaceForRead, Have: len(buf)}
	}
	if sector >= d.capacity/defs.SectorSize {
		return &defs.IOError{
			Kind:     defs.InvalidSector,
			Sector:   sector,
			Capacity: d.capacity / defs.SectorSize,
		}
	}

	req := d.req
	*req = BlockRequest_t{Sector: sector}
	if write {
		req.Type = blkTypeOut
		copy(req.Data[:], buf)
	} else {
		req.Type = blkTypeIn
	}

	reqAddr := mem.Pa_t(uintptr(unsafe.Pointer(req)))
	descs := d.vq.descriptors()
	descs[0] = Descriptor_t{
		Addr:  uint64(reqAddr),
		Len:   uint32(unsafe.Sizeof(req.Type) + unsafe.Sizeof(req.Reserved) + unsafe.Sizeof(req.Sector)),
		Flags: descFlagNext,
		Next:  1,
	}
	dataFlags := descFlagNext
	if !write {
		dataFlags |= descFlagWrite
	}
	descs[1] = Descriptor_t{
		Addr:  uint64(reqAddr) + uint64(unsafe.Offsetof(req.Data)),
		Len:   defs.SectorSize,
		Flags: dataFlags,
		Next:  2,
	}
	descs[2] = Descriptor_t{
		Addr:  uint64(reqAddr) + uint64(unsafe.Offsetof(req.Status)),
		Len:   uint32(unsafe.Sizeof(req.Status)),
		Flags: descFlagWrite,
	}

	d.kick(0)
	for d.busy() {
	}

	if req.Status != 0 {
		kind := defs.ReadFail
		if write {
			kind = defs.WriteFail
		}
		return &defs.IOError{Kind: kind, Sector: sector, Status: req.Status}
	}

	if !write {
		copy(buf, req.Data[:])
	}
	return nil
}
