// Package sbi implements the kernel's side of the legacy SBI console
// extensions (spec §4.5, §6): EID 1 (putchar) and EID 2 (getchar), reached
// through a single `ecall` from S-mode. Grounded on
// original_source/kernel/src/sbi.rs.
package sbi

const (
	eidPutchar = 1
	eidGetchar = 2
)

// Caller performs the raw ecall trap into firmware: EID in a7, FID in a6,
// up to six arguments in a0..a5; firmware returns {error, value} in a0, a1.
// The production Caller (riscv64 build) is a single ecall instruction;
// a test can substitute a fake so the cooperative GETCHAR wrapper in
// internal/trap can be exercised on any host.
type Caller interface {
	Call(arg0, arg1, arg2, arg3, arg4, arg5, fid, eid uint64) (errcode, value uint64)
}

// Active is the Caller the kernel issues every SBI call through.
var Active Caller = defaultCaller{}

// Putchar emits a single byte via the legacy SBI console.
func Putchar(ch byte) {
	Active.Call(uint64(ch), 0, 0, 0, 0, 0, 0, eidPutchar)
}

// Getchar polls the legacy SBI console once. ok is false when firmware
// reports no character is available (a negative error value).
func Getchar() (ch byte, ok bool) {
	errcode, _ := Active.Call(0, 0, 0, 0, 0, 0, 0, eidGetchar)
	if int64(errcode) < 0 {
		return 0, false
	}
	return byte(errcode), true
}
