package proc

import (
	"unsafe"

	"sv39kernel/internal/arch/riscv64"
)

// userEntryAddr returns the text address of the userspace-entry
// trampoline, the value seeded into a freshly created process's ra slot
// (spec §4.6).
func userEntryAddr() uintptr {
	fn := riscv64.UserEntryTrampoline
	return **(**uintptr)(unsafe.Pointer(&fn))
}
