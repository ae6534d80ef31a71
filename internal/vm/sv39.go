// Package vm builds and walks Sv39 three-level page tables (spec §3, §4.2).
// Grounded on biscuit's vm package for the walk-and-create-if-missing
// shape (this package keeps no address-space type: callers pass the root
// page table's physical address directly) and on
// original_source/kernel/src/memory.rs for the exact bit layout and walk
// algorithm.
package vm

import (
	"fmt"
	"unsafe"

	"sv39kernel/internal/mem"
)

// Vaddr_t is a 64-bit Sv39 virtual address: bits [63:39] must be zero, and
// bits [38:12] split into three 9-bit level indices L2/L1/L0 (spec §3).
type Vaddr_t uint64

// Aligned reports whether the address is page-aligned.
func (v Vaddr_t) Aligned() bool {
	return v&0xFFF == 0
}

// indexAtLevel returns the 9-bit page-table index for the given level
// (0 = L0, nearest the offset; 2 = L2, the root).
func (v Vaddr_t) indexAtLevel(level int) uint64 {
	return (uint64(v) >> (12 + level*9)) & 0x1FF
}

func (v Vaddr_t) String() string {
	return fmt.Sprintf("(Virt: %#x)", uint64(v))
}

// Pte_t is one 64-bit Sv39 page table entry: bit 0 is V (valid), bits 1–4
// are R/W/X/U, and bits [53:10] are the physical page number split into
// PPN[2] (26 bits), PPN[1] (9 bits), PPN[0] (9 bits) (spec §3).
type Pte_t uint64

const (
	pteV = 1 << 0
	pteR = 1 << 1
	pteW = 1 << 2
	pteX = 1 << 3
	pteU = 1 << 4
)

// Valid reports whether the V bit is set.
func (p Pte_t) Valid() bool { return p&pteV != 0 }

// Frame returns the physical frame this PTE references: (pte >> 10) << 12
// (spec §3).
func (p Pte_t) Frame() mem.Pa_t {
	return mem.Pa_t((uint64(p) >> 10) << 12)
}

// pteFromPaddr builds a (not-yet-valid) PTE pointing at the given
// page-aligned physical frame.
func pteFromPaddr(paddr mem.Pa_t) Pte_t {
	return Pte_t((uint64(paddr) >> 12) << 10)
}

func (p Pte_t) setValid() Pte_t { return p | pteV }

func (p Pte_t) withFlags(f PageFlags_t) Pte_t { return p | Pte_t(f.asRaw()) }

// PageFlags_t is a configuration carrier with four independent
// permission booleans (spec §3).
type PageFlags_t struct {
	Read, Write, Execute, User bool
}

// KernelAllFlags is the {R,W,X} preset used for the kernel identity map.
func KernelAllFlags() PageFlags_t { return PageFlags_t{Read: true, Write: true, Execute: true} }

// AllFlags is the {R,W,X,U} preset used for user image pages.
func AllFlags() PageFlags_t { return PageFlags_t{Read: true, Write: true, Execute: true, User: true} }

func (f PageFlags_t) asRaw() uint64 {
	var flags uint64
	if f.Read {
		flags |= pteR
	}
	if f.Write {
		flags |= pteW
	}
	if f.Execute {
		flags |= pteX
	}
	if f.User {
		flags |= pteU
	}
	return flags
}

// pteSlot returns a pointer to the index-th PTE in the page table page
// rooted at table.
func pteSlot(table mem.Pa_t, index uint64) *Pte_t {
	base := (*[512]Pte_t)(unsafe.Pointer(uintptr(table)))
	return &base[index]
}

// walk descends from L2 to L1, consulting the PTE at each level. If a
// non-leaf entry is invalid and create is true, it allocates a fresh
// zeroed page-table frame and installs a valid non-leaf PTE (permission
// bits zero) pointing at it. At L0 it returns the leaf slot. Spec §4.2.
func walk(root mem.Pa_t, vaddr Vaddr_t, create bool) (*Pte_t, bool) {
	table := root
	for level := 2; level >= 1; level-- {
		index := vaddr.indexAtLevel(level)
		pte := pteSlot(table, index)
		switch {
		case pte.Valid():
			table = pte.Frame()
		case create:
			next := mem.AllocPages(1)
			*pte = pteFromPaddr(next).setValid()
			table = next
		default:
			return nil, false
		}
	}
	return pteSlot(table, vaddr.indexAtLevel(0)), true
}

// MapPage installs a leaf mapping from vaddr to paddr with the given
// permissions. Both addresses must be page-aligned; remapping an
// already-valid leaf panics, as does either address being misaligned
// (spec §4.2).
func MapPage(root mem.Pa_t, vaddr Vaddr_t, paddr mem.Pa_t, flags PageFlags_t) {
	if !vaddr.Aligned() {
		panic("vm: virtual address not page-aligned")
	}
	if paddr%mem.PageSize != 0 {
		panic("vm: physical address not page-aligned")
	}
	pte, ok := walk(root, vaddr, true)
	if !ok {
		panic("vm: walk unexpectedly failed to create a mapping")
	}
	if pte.Valid() {
		panic("vm: remap of already-valid leaf PTE")
	}
	*pte = pteFromPaddr(paddr).withFlags(flags).setValid()
}

// Walk exposes walk for callers (currently the tests) that need to
// inspect a mapping without creating one.
func Walk(root mem.Pa_t, vaddr Vaddr_t, create bool) (*Pte_t, bool) {
	return walk(root, vaddr, create)
}
