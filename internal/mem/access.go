package mem

import "unsafe"

// Ptr converts a physical address into a raw pointer. On the virt machine
// class this kernel runs entirely in physical address space until a
// process's own Sv39 table is installed, exactly as the Rust original's
// Paddr(*mut u8) does — there is no separate "direct map" indirection.
func Ptr(addr Pa_t) unsafe.Pointer {
	return unsafe.Pointer(uintptr(addr))
}

// Bytes returns a byte slice viewing size bytes starting at addr.
func Bytes(addr Pa_t, size Pa_t) []byte {
	return unsafe.Slice((*byte)(Ptr(addr)), int(size))
}

// Zero clears size bytes starting at addr.
func Zero(addr Pa_t, size Pa_t) {
	b := Bytes(addr, size)
	for i := range b {
		b[i] = 0
	}
}
