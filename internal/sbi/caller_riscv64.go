//go:build riscv64

package sbi

import "sv39kernel/internal/arch/riscv64"

// defaultCaller issues a real `ecall` trap, implemented in
// internal/arch/riscv64/sbi_riscv64.s.
type defaultCaller struct{}

func (defaultCaller) Call(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid uint64) (uint64, uint64) {
	return riscv64.Ecall(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid)
}
