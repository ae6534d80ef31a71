//go:build !riscv64

package sbi

// defaultCaller is a placeholder for non-riscv64 hosts (development
// machines running `go test`): there is no ecall instruction to issue.
// Production code always runs as riscv64; a test can exercise the
// cooperative wrappers by swapping Active for a fake Caller instead of
// hitting this.
type defaultCaller struct{}

func (defaultCaller) Call(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid uint64) (uint64, uint64) {
	panic("sbi: ecall is only available on riscv64")
}
