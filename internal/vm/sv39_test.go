package vm

import (
	"testing"
	"unsafe"

	"sv39kernel/internal/mem"
)

// backRealMemory points the global bump allocator at a real Go-owned
// buffer so that MapPage's internal zeroing and this test's own PTE
// dereferences land on addressable memory, the same trick a hosted unit
// test for bare-metal page-table code needs regardless of language.
func backRealMemory(t *testing.T, pages int) {
	t.Helper()
	buf := make([]byte, (pages+4)*mem.PageSize)
	base := mem.Pa_t(uintptr(unsafe.Pointer(&buf[0])))
	aligned := base + (mem.PageSize - base%mem.PageSize)
	mem.Global.Init(aligned, aligned+mem.Pa_t(pages*mem.PageSize))
}

func TestMapThenWalkRoundTrips(t *testing.T) {
	backRealMemory(t, 16)
	root := mem.AllocPages(1)
	vaddr := Vaddr_t(0x1000)
	paddr := mem.AllocPages(1)
	flags := AllFlags()

	MapPage(root, vaddr, paddr, flags)

	pte, ok := Walk(root, vaddr, false)
	if !ok {
		t.Fatal("expected walk to find the freshly mapped leaf")
	}
	if pte.Frame() != paddr {
		t.Fatalf("frame = %#x, want %#x", pte.Frame(), paddr)
	}
	if !pte.Valid() {
		t.Fatal("expected leaf PTE to be valid")
	}
	raw := PageFlags_t{
		Read:    uint64(*pte)&pteR != 0,
		Write:   uint64(*pte)&pteW != 0,
		Execute: uint64(*pte)&pteX != 0,
		User:    uint64(*pte)&pteU != 0,
	}
	if raw != flags {
		t.Fatalf("permission bits = %+v, want %+v", raw, flags)
	}
}

func TestRemapPanics(t *testing.T) {
	backRealMemory(t, 16)
	root := mem.AllocPages(1)
	vaddr := Vaddr_t(0x2000)
	paddr := mem.AllocPages(1)
	MapPage(root, vaddr, paddr, AllFlags())

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on remap of a valid leaf")
		}
	}()
	MapPage(root, vaddr, paddr, AllFlags())
}

func TestMapMisalignedPanics(t *testing.T) {
	backRealMemory(t, 16)
	root := mem.AllocPages(1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on misaligned virtual address")
		}
	}()
	MapPage(root, Vaddr_t(0x1001), mem.AllocPages(1), AllFlags())
}

func TestWalkWithoutCreateReturnsNoMapping(t *testing.T) {
	backRealMemory(t, 16)
	root := mem.AllocPages(1)
	_, ok := Walk(root, Vaddr_t(0x3000), false)
	if ok {
		t.Fatal("expected no mapping for an untouched address")
	}
}
