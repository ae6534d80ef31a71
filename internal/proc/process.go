package proc

import (
	"unsafe"

	"sv39kernel/internal/mem"
	"sv39kernel/internal/vm"
)

// StackSize is the size in bytes of each process's inline kernel stack
// (spec §3).
const StackSize = 8192

// UserBase is the fixed virtual address every process's image is mapped
// at (spec §6.1).
const UserBase = 0x01000000

// KernelStart and HeapEnd bound the page range create_process identity-maps
// into every process's address space (spec §4.2, "[__kernel_start,
// __heap_end)"). These are linker-supplied symbols in the original and are
// explicitly out of this kernel's scope; the boot sequence populates them
// before the first process is created. Left at zero, CreateProcess skips
// the kernel identity map entirely, which is what every host test wants.
var (
	KernelStart mem.Pa_t
	HeapEnd     mem.Pa_t
)

// Process_t is one process table slot (spec §3): its pid, saved kernel
// stack pointer, root page table frame, and inline kernel stack. A
// Process_t with PageTable == 0 is either the idle slot or uninitialized.
type Process_t struct {
	Pid       Pid
	SP        uint64
	PageTable mem.Pa_t
	Stack     [StackSize]byte
}

func newIdleProcess() *Process_t {
	return &Process_t{Pid: IdlePid}
}

// IsIdle reports whether this slot is the idle process.
func (p *Process_t) IsIdle() bool {
	return p.Pid.IsIdle()
}

func (p *Process_t) stackTop() uintptr {
	return uintptr(unsafe.Pointer(&p.Stack[0])) + StackSize
}

// mapKernelIdentity installs the kernel's identity map into root, spanning
// [KernelStart, HeapEnd) page by page with kernel_all permissions (spec
// §4.2).
func mapKernelIdentity(root mem.Pa_t) {
	for addr := KernelStart; addr < HeapEnd; addr += mem.PageSize {
		vm.MapPage(root, vm.Vaddr_t(addr), addr, vm.KernelAllFlags())
	}
}

// mapUserImage copies image into freshly allocated pages mapped starting
// at UserBase, one page at a time, with all permissions (spec §4.2).
func mapUserImage(root mem.Pa_t, image []byte) {
	for offset := 0; offset < len(image); offset += mem.PageSize {
		page := mem.AllocPages(1)
		n := len(image) - offset
		if n > mem.PageSize {
			n = mem.PageSize
		}
		copy(mem.Bytes(page, mem.Pa_t(n)), image[offset:offset+n])
		vm.MapPage(root, vm.Vaddr_t(UserBase+offset), page, vm.AllFlags())
	}
}
