// Package kprint is the kernel's narrow formatted-print sink. Spec §1 treats
// the freestanding formatted-print facility itself as an external
// collaborator (it only requires a byte-sink "putchar"); this package is the
// glue around that collaborator, in the spirit of gopheros's
// kernel/kfmt/early narrow early-boot formatter: every subsystem logs
// through one small surface instead of reaching for fmt.Println directly.
package kprint

import (
	"fmt"
	"io"
)

// Sink receives every byte this kernel ever prints. cmd/kernel points it at
// the SBI console writer during boot; tests point it at a bytes.Buffer or
// leave it at the default io.Discard so unit tests stay silent.
var Sink io.Writer = io.Discard

// Printf formats and writes to Sink, ignoring the write error the same way
// the teacher's fmt.Printf call sites do — a kernel console has nowhere to
// report a print failure to.
func Printf(format string, args ...any) {
	fmt.Fprintf(Sink, format, args...)
}

// Println writes a line to Sink.
func Println(args ...any) {
	fmt.Fprintln(Sink, args...)
}
