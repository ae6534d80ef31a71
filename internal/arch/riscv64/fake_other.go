//go:build !riscv64

package riscv64

// This file exists only so the rest of the kernel links on a development
// host for `go test`. None of these are ever called there: code that
// needs a real CSR or trampoline address is reached only from the
// riscv64 build, and tests exercise the surrounding logic against fakes
// of their own instead.

const notOnHost = "riscv64: not available outside a riscv64 build"

func Ecall(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid uint64) (uint64, uint64) {
	panic(notOnHost)
}

func SwitchContext(prevSP, nextSP *uint64) { panic(notOnHost) }

func TrapVector() { panic(notOnHost) }

func UserEntryTrampoline() { panic(notOnHost) }

func WriteStvec(addr uintptr) { panic(notOnHost) }

func ReadScause() uint64 { panic(notOnHost) }

func ReadSepc() uint64 { panic(notOnHost) }

func ReadStval() uint64 { panic(notOnHost) }

func WriteSepc(v uint64) { panic(notOnHost) }

func ReadSscratch() uint64 { panic(notOnHost) }

func WriteSscratch(v uint64) { panic(notOnHost) }

func WriteSatp(v uint64) { panic(notOnHost) }
