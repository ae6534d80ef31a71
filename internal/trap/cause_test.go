package trap

import "testing"

func TestCauseStringKnown(t *testing.T) {
	cases := map[uint64]string{
		8:                                  "environment call from U/VU-mode",
		15:                                 "store/AMO page fault",
		uint64(CauseSupervisorTimerInterrupt): "supervisor timer interrupt",
	}
	for cause, want := range cases {
		if got := CauseString(cause); got != want {
			t.Errorf("CauseString(%#x) = %q, want %q", cause, got, want)
		}
	}
}

func TestCauseStringUnknown(t *testing.T) {
	if got := CauseString(14); got != "Cause(14)" {
		t.Errorf("CauseString(14) = %q, want %q", got, "Cause(14)")
	}
}
