// Command kernel is the supervisor-mode entry point: it wires every
// internal package together into the boot sequence spec §2 describes —
// install the trap vector, bring up the allocator, probe the VirtIO block
// device, read the disk into RAM, parse the TAR image, create the first
// user process, and yield. BSS is not zeroed here. Grounded on
// original_source/kernel/src/main.rs.
package main

import (
	"fmt"

	"sv39kernel/internal/defs"
	"sv39kernel/internal/kprint"
	"sv39kernel/internal/mem"
	"sv39kernel/internal/proc"
	"sv39kernel/internal/sbi"
	"sv39kernel/internal/tarfs"
	"sv39kernel/internal/trap"
	"sv39kernel/internal/virtio"
)

// Physical memory layout for the virt machine class this kernel targets.
// A real boot stub supplies these as linker symbols (__kernel_start,
// __heap, __heap_end); this entry point hardcodes the equivalent of that
// layout since there is no separate boot-shim build step in this tree.
const (
	kernelStart = 0x80200000
	heapStart   = 0x80400000
	heapEnd     = 0x88000000

	virtioBlkBase = 0x10001000
)

// consoleWriter adapts the SBI legacy console to io.Writer so kprint can
// log through it the same way every other sink in this kernel does.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		sbi.Putchar(b)
	}
	return len(p), nil
}

func main() {
	kprint.Sink = consoleWriter{}

	trap.Install()
	kprint.Println("trap vector installed")

	mem.Global.Init(heapStart, heapEnd)
	proc.KernelStart = kernelStart
	proc.HeapEnd = heapEnd
	kprint.Println("allocator initialized")

	driver, err := virtio.NewDriver(virtioBlkBase)
	if err != nil {
		panic(fmt.Sprintf("kernel: virtio probe failed: %v", err))
	}
	kprint.Printf("virtio block device ready, capacity %d bytes\n", driver.Capacity())

	image := readDisk(driver)
	files, err := tarfs.Parse(image)
	if err != nil {
		panic(fmt.Sprintf("kernel: tar parse failed: %v", err))
	}
	kprint.Printf("parsed %d files from disk image\n", len(files))

	shell := findShell(files)
	pid := proc.CreateProcess(shell)
	kprint.Printf("created process %s\n", pid)

	kprint.Println(proc.Display())

	proc.Yield()

	for {
		trap.PollConsole()
		proc.Yield()
	}
}

// readDisk reads the entire device, sector by sector, into a freshly
// allocated buffer (spec §2, "read full disk into RAM").
func readDisk(driver *virtio.Driver_t) []byte {
	total := driver.Capacity()
	image := make([]byte, total)
	for sector := uint64(0); sector*defs.SectorSize < total; sector++ {
		off := sector * defs.SectorSize
		if err := driver.ReadWrite(image[off:off+defs.SectorSize], sector, false); err != nil {
			panic(fmt.Sprintf("kernel: disk read failed at sector %d: %v", sector, err))
		}
	}
	return image
}

// findShell returns the first file's data, the disk image's sole expected
// payload in this kernel's minimal boot (original_source's SHELL
// constant, §2's single first user process).
func findShell(files []tarfs.File_t) []byte {
	if len(files) == 0 {
		return nil
	}
	return files[0].Data
}
