package trap

import (
	"unsafe"

	"sv39kernel/internal/arch/riscv64"
)

// trapVectorAddr returns the entry address of the assembly trap vector,
// the value Install writes into stvec. A Go function value is a pointer
// to a structure whose first word is the code pointer; since
// riscv64.TrapVector is a plain top-level func with no closure state,
// dereferencing that word gives the text address stvec needs.
func trapVectorAddr() uintptr {
	fn := riscv64.TrapVector
	return **(**uintptr)(unsafe.Pointer(&fn))
}
