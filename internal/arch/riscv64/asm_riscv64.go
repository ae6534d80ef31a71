package riscv64

// Ecall issues the SBI trap: eid in a7, fid in a6, arg0..arg5 in a0..a5;
// firmware returns {errcode, value} in a0, a1. Implemented in
// sbi_riscv64.s.
//
//go:noescape
func Ecall(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid uint64) (errcode, value uint64)

// SwitchContext performs the cooperative context switch (spec §4.6): it
// saves the callee-save register window (ra, s0-s11) for the currently
// running process onto its kernel stack, stores that stack pointer into
// *prevSP, loads *nextSP into sp, and restores the callee-save window for
// the process resuming there. Implemented in switch_riscv64.s.
//
//go:noescape
func SwitchContext(prevSP, nextSP *uint64)

// TrapVector is the entry point installed into stvec; its address, not a
// call to it, is what the rest of the kernel needs. Implemented in
// trap_riscv64.s.
func TrapVector()

// UserEntryTrampoline is reached exclusively via the `ret` at the end of
// the very first SwitchContext into a freshly created process (spec §4.6):
// it sets sepc to USER_BASE and sstatus to SPIE-set/SPP-clear, then sret's
// into U-mode. Implemented in userentry_riscv64.s.
func UserEntryTrampoline()

// WriteStvec installs the trap vector's address into the stvec CSR.
//
//go:noescape
func WriteStvec(addr uintptr)

// ReadScause, ReadSepc, ReadStval read the trap-diagnosis CSRs (spec
// §4.5 step "Read scause, sepc, stval").
//
//go:noescape
func ReadScause() uint64

//go:noescape
func ReadSepc() uint64

//go:noescape
func ReadStval() uint64

// WriteSepc advances sepc so sret resumes after the faulting ecall
// (spec §4.5, "the dispatcher must advance sepc by 4").
//
//go:noescape
func WriteSepc(v uint64)

// ReadSscratch and WriteSscratch manipulate the scratch CSR the trap
// vector and scheduler use to stash the kernel/user stack pointer.
//
//go:noescape
func ReadSscratch() uint64

//go:noescape
func WriteSscratch(v uint64)

// WriteSatp writes the SATP CSR surrounded by sfence.vma on each side
// (spec §4.6 step 1).
//
//go:noescape
func WriteSatp(v uint64)
