// Package mem implements the kernel's physical memory primitives: a single
// global bump allocator (spec §4.1) and the page-aligned frame helper every
// other subsystem allocates through. Grounded on biscuit's mem package for
// naming (Pa_t, PGSIZE) and on original_source/kernel/src/allocator.rs for
// the exact bump-allocation semantics: monotonic next pointer, panic on
// exhaustion, no-op (logged) dealloc.
package mem

import (
	"sync"

	"sv39kernel/internal/kprint"
	"sv39kernel/internal/util"
)

// Pa_t is a physical address: a raw machine pointer identifying a byte in
// physical memory (spec §3).
type Pa_t uintptr

const (
	// PageShift is the base-2 exponent of the page size.
	PageShift = 12
	// PageSize is the size of a single page in bytes.
	PageSize = 1 << PageShift
)

// region is the allocator's mutable state: the next free address and the
// end of the heap. A nil region means Init has not run yet, mirroring the
// Rust original's Option<Mutable>.
type region struct {
	next Pa_t
	end  Pa_t
}

// BumpAllocator_t is a scoped-lock bump allocator over a fixed heap region.
// There is exactly one instance in the kernel (Global, below); Init
// populates it once, and alloc only ever advances.
type BumpAllocator_t struct {
	mu sync.Mutex
	r  *region
}

// Global is the kernel's single physical page allocator instance.
var Global = &BumpAllocator_t{}

// Init populates the allocator with the heap bounds [start, end). It is the
// only supported way to bring the allocator out of its zero state; calling
// it again simply replaces the region, matching the Rust original's
// Mutex<Option<Mutable>>::replace.
func (b *BumpAllocator_t) Init(start, end Pa_t) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.r = &region{next: start, end: end}
}

// Alloc rounds next up to align, panics if the allocation would run past
// end ("Out of Memory!" per the original), advances next, and returns the
// old address. Allocation order is strictly monotonic.
func (b *BumpAllocator_t) Alloc(size, align Pa_t) Pa_t {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.r == nil {
		panic("mem: allocator not initialized")
	}
	addr := util.Roundup(b.r.next, align)
	if addr+size > b.r.end || addr+size < addr {
		panic("mem: out of memory")
	}
	b.r.next = addr + size
	return addr
}

// AllocZeroed is Alloc followed by explicit zeroing, for callers that need
// a freshly scrubbed region (page tables, Virtqs).
func (b *BumpAllocator_t) AllocZeroed(size, align Pa_t) Pa_t {
	addr := b.Alloc(size, align)
	Zero(addr, size)
	return addr
}

// Dealloc is a no-op: the bump allocator never frees. Logged so the
// condition is visible without changing behavior, matching the original's
// `println!("Dealloc called lol")`.
func (b *BumpAllocator_t) Dealloc(addr, size Pa_t) {
	kprint.Printf("mem: dealloc called for %#x (%d bytes) — bump allocator never frees\n", addr, size)
}

// AllocPages allocates n page-aligned, zeroed frames totaling n*PageSize
// bytes. This is the only supported path for paging and DMA structures
// (spec §4.1).
func AllocPages(n int) Pa_t {
	return Global.AllocZeroed(Pa_t(n*PageSize), PageSize)
}
