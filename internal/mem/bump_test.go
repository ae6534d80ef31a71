package mem

import "testing"

func freshAllocator(size Pa_t) *BumpAllocator_t {
	// Tests never dereference these addresses as real memory — Alloc only
	// hands out numbers here — so any non-zero base works.
	b := &BumpAllocator_t{}
	base := Pa_t(0x1000)
	b.Init(base, base+size)
	return b
}

func TestAllocPagesAligned(t *testing.T) {
	b := freshAllocator(64 * PageSize)
	a := b.Alloc(PageSize, PageSize)
	if a%PageSize != 0 {
		t.Fatalf("alloc result %#x not page-aligned", a)
	}
}

func TestAllocPagesNonOverlapping(t *testing.T) {
	b := freshAllocator(64 * PageSize)
	first := b.Alloc(PageSize, PageSize)
	second := b.Alloc(PageSize, PageSize)
	if second < first+PageSize {
		t.Fatalf("second allocation %#x overlaps first %#x (+%#x)", second, first, PageSize)
	}
}

func TestAllocOutOfMemoryPanics(t *testing.T) {
	b := freshAllocator(PageSize)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on OOM")
		}
	}()
	b.Alloc(PageSize, PageSize)
	b.Alloc(PageSize, PageSize)
}

func TestAllocBeforeInitPanics(t *testing.T) {
	b := &BumpAllocator_t{}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when allocator not initialized")
		}
	}()
	b.Alloc(8, 8)
}
