package trap

import (
	"fmt"

	"sv39kernel/internal/arch/riscv64"
	"sv39kernel/internal/circbuf"
	"sv39kernel/internal/proc"
	"sv39kernel/internal/sbi"
)

// consoleInputSize bounds how far the console poll loop can run ahead of a
// GETCHAR consumer before further keypresses are dropped.
const consoleInputSize = 64

// consoleInput buffers bytes the idle loop pulls off SBI ahead of any
// process actually asking for one, so a burst of keypresses isn't lost
// between two GETCHAR calls.
var consoleInput = circbuf.New(consoleInputSize)

// PollConsole drains whatever SBI currently has pending into consoleInput.
// The idle loop calls this once per pass while no process is runnable.
func PollConsole() {
	for {
		ch, ok := sbi.Getchar()
		if !ok {
			return
		}
		consoleInput.PutByte(ch)
	}
}

// Canonical syscall numbers (spec §4.5, resolving the inconsistency
// between the two numbering sites in the original source in favor of the
// common-definitions module's table).
const (
	SysPutchar = 1
	SysGetchar = 2
	SysExit    = 3
)

// Syscall dispatches on the number the user placed in a3 (x13), with up
// to three arguments in a0, a1, a2 (x10, x11, x12). The return value is
// written back into the frame's X10 slot, which the trap vector reloads
// into a0 before sret.
func Syscall(frame *riscv64.TrapFrame) {
	switch frame.X13 {
	case SysPutchar:
		sbi.Putchar(byte(frame.X10))
		frame.X10 = 0
	case SysGetchar:
		frame.X10 = uint64(getcharBlocking())
	case SysExit:
		// Process teardown was never implemented upstream either; see
		// the design notes this kernel carries forward unresolved.
		panic("trap: EXIT is not implemented")
	default:
		panic(fmt.Sprintf("trap: unknown syscall number %d", frame.X13))
	}
}

// getcharBlocking drains the buffered console input, falling through to
// SBI directly and cooperatively yielding whenever no character is ready,
// per spec §4.5's GETCHAR effect.
func getcharBlocking() byte {
	for {
		if b, ok := consoleInput.GetByte(); ok {
			return b
		}
		if ch, ok := sbi.Getchar(); ok {
			return ch
		}
		proc.Yield()
	}
}
