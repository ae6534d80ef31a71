// Package riscv64 holds every piece of this kernel that is irreducibly
// assembly: the SBI ecall stub, CSR accessors, the trap entry vector, the
// context-switch routine, and the userspace-entry trampoline (spec §9,
// "Naked trampolines"). Everything here manipulates sp, sscratch, sepc, or
// the callee-save register window in ways no high-level construct
// preserves; the rest of the kernel treats these as opaque C-ABI
// functions, exactly as biscuit's and gopheros's lowest layers do. The
// asm-backed declarations live in asm_riscv64.go (real, riscv64-only) and
// fake_other.go (host-test stand-ins); this file holds what is pure Go on
// every platform.
package riscv64

import "unsafe"

// TrapFrame is the 256-byte packed register file the trap entry stub
// saves to the kernel stack (spec §3, §4.5): x1 through x31 in index
// order (x2's slot holds whatever sp was in the middle of the entry stub,
// not meaningful on its own) followed by the trapping sp, fetched
// separately from sscratch after the swap. x0 is hard-wired zero and is
// never saved.
type TrapFrame struct {
	X1, X2, X3, X4, X5, X6, X7, X8, X9, X10, X11, X12, X13, X14, X15, X16,
	X17, X18, X19, X20, X21, X22, X23, X24, X25, X26, X27, X28, X29, X30, X31 uint64
	SP uint64
}

// Handler is the high-level trap handler the assembly entry stub calls
// with a pointer to the saved register file (spec §4.5 step 4). It is a
// package-level variable rather than a hardcoded symbol so internal/trap
// can install itself without this package importing it back.
var Handler func(frame *TrapFrame)

// dispatchTrap is called by name from trap_riscv64.s once the register
// file has been saved to the stack; it exists so the assembly stub never
// has to know about the Handler indirection.
func dispatchTrap(frame *TrapFrame) {
	if Handler == nil {
		panic("riscv64: trap entered before a handler was installed")
	}
	Handler(frame)
}

// KernelStackTop computes the address one past the end of a process's
// inline kernel stack, the value written into sscratch before switching
// into it.
func KernelStackTop(stack *[8192]byte) uintptr {
	return uintptr(unsafe.Pointer(stack)) + uintptr(len(stack))
}
