package proc

import (
	"testing"
	"unsafe"

	"sv39kernel/internal/mem"
)

// backRealMemory points the global bump allocator at a real Go-owned
// buffer, the same trick internal/vm's tests use, since CreateProcess
// allocates and writes through physical addresses via mem.Ptr.
func backRealMemory(t *testing.T, pages int) {
	t.Helper()
	buf := make([]byte, (pages+4)*mem.PageSize)
	base := mem.Pa_t(uintptr(unsafe.Pointer(&buf[0])))
	aligned := base + (mem.PageSize - base%mem.PageSize)
	mem.Global.Init(aligned, aligned+mem.Pa_t(pages*mem.PageSize))
}

func TestCreateProcessAssignsFirstFreeSlot(t *testing.T) {
	backRealMemory(t, 64)
	Global = newScheduler()

	pid := CreateProcess([]byte("hello"))
	if pid != NewPid(1) {
		t.Fatalf("first CreateProcess got pid %s, want 1", pid)
	}

	pid2 := CreateProcess([]byte("world"))
	if pid2 != NewPid(2) {
		t.Fatalf("second CreateProcess got pid %s, want 2", pid2)
	}
}

func TestCreateProcessSeedsSyntheticFrame(t *testing.T) {
	backRealMemory(t, 64)
	Global = newScheduler()

	pid := CreateProcess([]byte("x"))
	p := Global.procs[pid.AsInt()]

	frame := (*[switchFrameRegisters]uint64)(mem.Ptr(mem.Pa_t(p.SP)))
	if frame[0] != uint64(userEntryAddr()) {
		t.Fatalf("synthetic frame ra = %#x, want userEntryAddr %#x", frame[0], userEntryAddr())
	}
	for i := 1; i < switchFrameRegisters; i++ {
		if frame[i] != 0 {
			t.Fatalf("synthetic frame slot %d = %#x, want 0", i, frame[i])
		}
	}
}

func TestCreateProcessPanicsWhenTableFull(t *testing.T) {
	backRealMemory(t, 256)
	Global = newScheduler()

	for i := 1; i < MaxProcs; i++ {
		CreateProcess([]byte("p"))
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected CreateProcess to panic once the table is full")
		}
	}()
	CreateProcess([]byte("overflow"))
}
