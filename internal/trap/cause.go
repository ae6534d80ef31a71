package trap

// Cause is a raw scause value: the low bits name an exception or
// interrupt number, and bit 63 distinguishes interrupts from synchronous
// exceptions (spec §4.5). Cause.String(), in cause_string.go, is
// generated by stringer.
type Cause uint64

//go:generate stringer -type=Cause -output=cause_string.go

// causeInterrupt is bit 63, set on every interrupt cause.
const causeInterrupt = Cause(1) << 63

// Exception causes.
const (
	CauseInstructionAddressMisaligned Cause = 0
	CauseInstructionAccessFault       Cause = 1
	CauseIllegalInstruction           Cause = 2
	CauseBreakpoint                   Cause = 3
	CauseLoadAddressMisaligned        Cause = 4
	CauseLoadAccessFault              Cause = 5
	CauseStoreAMOAddressMisaligned    Cause = 6
	CauseStoreAMOAccessFault          Cause = 7
	CauseEcallFromU                   Cause = 8
	CauseEcallFromHS                  Cause = 9
	CauseEcallFromVS                  Cause = 10
	CauseEcallFromM                   Cause = 11
	CauseInstructionPageFault         Cause = 12
	CauseLoadPageFault                Cause = 13
	CauseStoreAMOPageFault            Cause = 15
	CauseInstructionGuestPageFault    Cause = 20
	CauseLoadGuestPageFault           Cause = 21
	CauseVirtualInstruction           Cause = 22
	CauseStoreAMOGuestPageFault       Cause = 23
)

// Interrupt causes.
const (
	CauseUserSoftwareInterrupt       = causeInterrupt | 0
	CauseSupervisorSoftwareInterrupt = causeInterrupt | 1
	CauseHypervisorSoftwareInterrupt = causeInterrupt | 2
	CauseMachineSoftwareInterrupt    = causeInterrupt | 3
	CauseUserTimerInterrupt          = causeInterrupt | 4
	CauseSupervisorTimerInterrupt    = causeInterrupt | 5
	CauseHypervisorTimerInterrupt    = causeInterrupt | 6
	CauseMachineTimerInterrupt       = causeInterrupt | 7
	CauseUserExternalInterrupt       = causeInterrupt | 8
	CauseSupervisorExternalInterrupt = causeInterrupt | 9
	CauseHypervisorExternalInterrupt = causeInterrupt | 10
	CauseMachineExternalInterrupt    = causeInterrupt | 11
)

// causeEcallFromU is the scause value Dispatch checks against; kept as a
// plain untyped-friendly constant since riscv64.ReadScause returns a bare
// uint64.
const causeEcallFromU = uint64(CauseEcallFromU)

// CauseString names a raw scause value, falling back to the Cause enum's
// generated String method.
func CauseString(cause uint64) string {
	return Cause(cause).String()
}
