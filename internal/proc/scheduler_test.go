package proc

import "testing"

// TestFindNextProcessRoundRobin exercises property #8 at the level that's
// safe on a development host: findNextProcess is the pure selection logic
// Yield drives; Yield itself additionally touches SATP/sscratch/context
// switch, which only exist on real riscv64 hardware.
func TestFindNextProcessRoundRobin(t *testing.T) {
	s := newScheduler()
	s.procs[1] = &Process_t{Pid: NewPid(1)}
	s.procs[3] = &Process_t{Pid: NewPid(3)}
	s.procs[5] = &Process_t{Pid: NewPid(5)}

	var visited []Pid
	for i := 0; i < 6; i++ {
		next := s.findNextProcess()
		if next.IsIdle() {
			t.Fatalf("round %d: findNextProcess returned idle while non-idle processes exist", i)
		}
		visited = append(visited, next.Pid)
		s.current = next.Pid
	}

	want := []Pid{1, 3, 5, 1, 3, 5}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestFindNextProcessFallsBackToIdleAlone(t *testing.T) {
	s := newScheduler()
	next := s.findNextProcess()
	if !next.IsIdle() {
		t.Fatalf("expected idle fallback with no other processes, got pid %s", next.Pid)
	}
}
