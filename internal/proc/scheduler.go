package proc

import (
	"fmt"
	"strings"
	"sync"

	"sv39kernel/internal/arch/riscv64"
	"sv39kernel/internal/mem"
)

// MaxProcs is the fixed capacity of the process table (spec §3): slot 0 is
// always the idle process.
const MaxProcs = 8

// satpModeSv39 is the mode field value for Sv39 paging (spec §8, testable
// property #10: satp = (8 << 60) | (frame >> 12)).
const satpModeSv39 = 8

// Scheduler_t is the kernel's single process table plus the currently
// running pid (spec §3). There is exactly one instance, Global, mirroring
// the Rust original's static mut GLOBAL_SCHEDULER.
type Scheduler_t struct {
	mu      sync.Mutex
	procs   [MaxProcs]*Process_t
	current Pid
}

// Global is the kernel's single scheduler instance.
var Global = newScheduler()

func newScheduler() *Scheduler_t {
	s := &Scheduler_t{current: IdlePid}
	s.procs[IdlePid] = newIdleProcess()
	return s
}

// findNextProcess scans (current+1) mod MaxProcs .. +MaxProcs for the next
// occupied, non-idle slot (spec §4.6). It always finds one when at least
// one non-idle process exists; if none does, it falls back to the idle
// slot, which is the only slot guaranteed present.
func (s *Scheduler_t) findNextProcess() *Process_t {
	for i := 1; i <= MaxProcs; i++ {
		p := s.procs[(int(s.current)+i)%MaxProcs]
		if p == nil || p.IsIdle() {
			continue
		}
		return p
	}
	return s.procs[IdlePid]
}

// Yield performs one cooperative reschedule (spec §4.6): if the chosen
// next process is already current, it is a no-op; otherwise it composes
// and installs SATP, preloads sscratch with the next process's kernel
// stack top, updates current, and invokes the context switch.
func Yield() {
	Global.yield()
}

func (s *Scheduler_t) yield() {
	s.mu.Lock()
	next := s.findNextProcess()
	if next.Pid == s.current {
		s.mu.Unlock()
		return
	}
	prev := s.procs[s.current]
	satp := (uint64(satpModeSv39) << 60) | (uint64(next.PageTable) / mem.PageSize)
	riscv64.WriteSatp(satp)
	riscv64.WriteSscratch(uint64(next.stackTop()))
	s.current = next.Pid
	s.mu.Unlock()

	riscv64.SwitchContext(&prev.SP, &next.SP)
}

// CurrentPID reports the pid of the process currently running.
func CurrentPID() Pid {
	Global.mu.Lock()
	defer Global.mu.Unlock()
	return Global.current
}

// findFreeSlot returns the first empty table index in [1, MaxProcs), or
// -1 if the table is full (spec §4.6, "find the first empty slot (1..8);
// panic if none").
func (s *Scheduler_t) findFreeSlot() int {
	for i := 1; i < MaxProcs; i++ {
		if s.procs[i] == nil {
			return i
		}
	}
	return -1
}

// switchFrameRegisters is the slot count SwitchContext's assembly
// allocates (ra + s0-s11 + one alignment slot, spec §4.6).
const switchFrameRegisters = 14

// CreateProcess allocates a new process table slot for image (spec §4.6):
// a fresh root page table with the kernel identity map and user image
// mapped in, and a synthetic saved-register frame whose ra points at the
// userspace-entry trampoline so the first Yield into this process falls
// straight into U-mode.
func CreateProcess(image []byte) Pid {
	s := Global
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.findFreeSlot()
	if slot < 0 {
		panic("proc: no free process slots")
	}
	p := &Process_t{Pid: NewPid(slot)}
	s.procs[slot] = p

	p.PageTable = mem.AllocPages(1)
	mapKernelIdentity(p.PageTable)
	mapUserImage(p.PageTable, image)

	stackTop := p.stackTop()
	frame := stackTop - switchFrameRegisters*8
	words := (*[switchFrameRegisters]uint64)(mem.Ptr(mem.Pa_t(frame)))
	words[0] = uint64(userEntryAddr())
	p.SP = uint64(frame)

	return p.Pid
}

// Display renders the process table the way `ps` does (spec §4.6,
// "process listing"): the current pid followed by one line per slot.
func Display() string {
	Global.mu.Lock()
	defer Global.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "current: %s\n", Global.current)
	for i, p := range Global.procs {
		if p == nil {
			fmt.Fprintf(&b, "slot %d: <unallocated>\n", i)
			continue
		}
		fmt.Fprintf(&b, "slot %d: pid %s, sp %#x\n", i, p.Pid, p.SP)
	}
	return b.String()
}
