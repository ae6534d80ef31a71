// Command mkfs builds the flat ustar disk image this kernel boots from
// (spec §4.4): every regular file under a host skeleton directory,
// encoded as consecutive 512-byte ustar header/data blocks, terminated
// by two all-zero blocks and padded out to a whole number of sectors.
// Grounded on biscuit's mkfs.go for the walk-and-copy shape; the wire
// format itself follows original_source/tarfile/src/lib.rs.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

const (
	blockSize  = 512
	sectorSize = 512

	nameOffset, nameLen   = 0, 100
	sizeOffset, sizeLen   = 124, 12
	magicOffset, magicLen = 257, 6
)

var ustarMagic = [magicLen]byte{'u', 's', 't', 'a', 'r', 0}

// addFiles walks skelDir on the host and appends a ustar header+data
// record for every regular file it finds, in walk order.
func addFiles(w *strings.Builder, skelDir string) error {
	return filepath.WalkDir(skelDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("mkfs: accessing %q: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, skelDir), string(filepath.Separator))
		if rel == "" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("mkfs: reading %q: %w", path, err)
		}

		header := make([]byte, blockSize)
		copy(header[nameOffset:nameOffset+nameLen], rel)
		copy(header[sizeOffset:sizeOffset+sizeLen], fmt.Sprintf("%011o ", len(data)))
		copy(header[magicOffset:magicOffset+magicLen], ustarMagic[:])
		w.Write(header)

		w.Write(data)
		if pad := blockSize - len(data)%blockSize; pad != blockSize {
			w.Write(make([]byte, pad))
		}
		return nil
	})
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: mkfs <output image> <skel dir>\n")
		os.Exit(1)
	}
	imagePath, skelDir := os.Args[1], os.Args[2]

	var body strings.Builder
	if err := addFiles(&body, skelDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	body.Write(make([]byte, 2*blockSize)) // terminating zero blocks

	total := roundUp(body.Len(), sectorSize)
	if err := writeImage(imagePath, body.String(), total); err != nil {
		fmt.Fprintln(os.Stderr, "mkfs:", err)
		os.Exit(1)
	}
}

func roundUp(n, align int) int {
	return (n + align - 1) / align * align
}

// writeImage lays out the image file via Ftruncate+Mmap, the same
// direct-page-cache path biscuit's own disk tooling uses instead of a
// buffered io.Writer, so large images don't require holding the whole
// thing twice in memory.
func writeImage(path string, body string, total int) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Ftruncate(int(f.Fd()), int64(total)); err != nil {
		return fmt.Errorf("ftruncate: %w", err)
	}

	mapped, err := unix.Mmap(int(f.Fd()), 0, total, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	defer unix.Munmap(mapped)

	n := copy(mapped, body)
	if n != len(body) {
		return io.ErrShortWrite
	}
	return nil
}
