package virtio

import (
	"runtime"
	"testing"
	"unsafe"

	"sv39kernel/internal/mem"
)

// TestReadDescriptorChainLayout checks property #7: a read's three
// descriptors are a 16-byte header with NEXT, a 512-byte device-writable
// body with NEXT|WRITE, and a 1-byte device-writable status, in that
// order and chained 0->1->2.
func TestReadDescriptorChainLayout(t *testing.T) {
	vq := &Virtq_t{base: mem.Pa_t(allocTestVirtq(t))}
	// A real device advances the used index on completion; preset it so
	// the polled wait ends right after the kick.
	vq.used().Index = 1
	regs := make([]byte, 0x100)
	d := &Driver_t{
		regs:     mmio{base: uintptr(unsafe.Pointer(&regs[0]))},
		vq:       vq,
		req:      &BlockRequest_t{},
		capacity: 4 * 512,
	}
	if err := d.ReadWrite(make([]byte, 512), 0, false); err != nil {
		t.Fatalf("ReadWrite: %v", err)
	}
	runtime.KeepAlive(regs)

	descs := vq.descriptors()
	if descs[0].Len != 16 {
		t.Fatalf("header descriptor length = %d, want 16", descs[0].Len)
	}
	if descs[0].Flags != descFlagNext || descs[0].Next != 1 {
		t.Fatalf("header descriptor flags/next = %#x/%d, want NEXT/1", descs[0].Flags, descs[0].Next)
	}
	if descs[1].Len != 512 {
		t.Fatalf("data descriptor length = %d, want 512", descs[1].Len)
	}
	if descs[1].Flags != descFlagNext|descFlagWrite || descs[1].Next != 2 {
		t.Fatalf("data descriptor flags/next = %#x/%d, want NEXT|WRITE/2", descs[1].Flags, descs[1].Next)
	}
	if descs[2].Len != 1 {
		t.Fatalf("status descriptor length = %d, want 1", descs[2].Len)
	}
	if descs[2].Flags != descFlagWrite {
		t.Fatalf("status descriptor flags = %#x, want WRITE", descs[2].Flags)
	}
}

// allocTestVirtq backs a Virtq_t with real Go-owned memory, the same
// trick internal/vm's tests use for any code that dereferences a "physical
// address" through unsafe.Pointer.
func allocTestVirtq(t *testing.T) (base uintptr) {
	t.Helper()
	buf := make([]byte, 8192)
	return uintptr(unsafe.Pointer(&buf[0]))
}
