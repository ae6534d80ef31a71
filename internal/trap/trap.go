// Package trap implements the kernel's single trap entry path: it reads
// the cause of a trap, dispatches ecall-from-U-mode to the syscall
// handler, and panics with a decoded description for everything else
// (spec §4.5). Grounded on original_source/kernel/src/trap.rs for the
// cause table and panic-on-everything-else policy.
package trap

import (
	"fmt"

	"sv39kernel/internal/arch/riscv64"
)

// Install wires this package's Dispatch into the assembly trap vector and
// points stvec at it. Called once during boot.
func Install() {
	riscv64.Handler = Dispatch
	riscv64.WriteStvec(trapVectorAddr())
}

// Dispatch is the high-level trap handler the assembly entry stub calls
// with a pointer to the saved register file (spec §4.5, "High-level
// dispatch"). For an ecall from U-mode it runs the syscall, advances sepc
// past the ecall that trapped and returns (so the stub's sret resumes the
// user process); for every other cause it panics.
func Dispatch(frame *riscv64.TrapFrame) {
	scause := riscv64.ReadScause()
	sepc := riscv64.ReadSepc()
	stval := riscv64.ReadStval()

	if scause == causeEcallFromU {
		Syscall(frame)
		riscv64.WriteSepc(sepc + 4)
		return
	}

	panic(fmt.Sprintf("trap: %s at sepc=%#x (stval=%#x)", CauseString(scause), sepc, stval))
}

