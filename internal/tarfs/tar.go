// Package tarfs parses the ustar disk image this kernel boots from (spec
// §4.4): a flat sequence of 512-byte header blocks, each followed by its
// file's data blocks, terminated by two all-zero blocks. Grounded on
// original_source/tarfile/src/lib.rs and original_source/common/src/lib.rs
// for the exact field layout and the oct2int parsing rule, in biscuit's
// fs-package naming idiom (File_t, the _t suffix for concrete types).
package tarfs

import (
	"fmt"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// BlockSize is the ustar record size.
const BlockSize = 512

const (
	nameOffset, nameLen = 0, 100
	sizeOffset, sizeLen = 124, 12
	magicOffset, magicLen = 257, 6
)

var ustarMagic = [magicLen]byte{'u', 's', 't', 'a', 'r', 0}

// File_t is one parsed TAR entry: its name and a view into the image's
// backing buffer holding its data. The image outlives every File_t parsed
// from it, so Data is always a slice of the caller's original buffer
// rather than a copy (spec §9, "the disk buffer outlives the file catalog
// that borrows into it").
type File_t struct {
	Name string
	Data []byte
}

// Oct2int parses a NUL/space-terminated octal field the way the ustar
// format encodes sizes: digits accumulate until the first byte outside
// '0'..'7', and an empty or all-non-octal field is zero (testable
// property #1).
func Oct2int(field []byte) uint64 {
	var v uint64
	for _, c := range field {
		if c < '0' || c > '7' {
			break
		}
		v = v*8 + uint64(c-'0')
	}
	return v
}

// Parse walks a ustar image to the first double-zero-block terminator and
// returns every file encountered, in archive order (testable properties
// #5, #6). It does not validate checksums; the only per-header
// requirement is the "ustar\0" magic at offset 257.
func Parse(image []byte) ([]File_t, error) {
	var files []File_t
	off := 0
	for {
		if off+BlockSize > len(image) {
			return nil, fmt.Errorf("tarfs: truncated image at offset %d", off)
		}
		header := image[off : off+BlockSize]
		if isZeroBlock(header) {
			return files, nil
		}
		if string(header[magicOffset:magicOffset+magicLen]) != string(ustarMagic[:]) {
			return nil, fmt.Errorf("tarfs: bad magic at offset %d: %q", off, header[magicOffset:magicOffset+magicLen])
		}

		name, err := decodeName(header[nameOffset : nameOffset+nameLen])
		if err != nil {
			return nil, fmt.Errorf("tarfs: header at offset %d: %w", off, err)
		}
		size := Oct2int(header[sizeOffset : sizeOffset+sizeLen])
		off += BlockSize

		dataBlocks := (size + BlockSize - 1) / BlockSize
		end := off + int(dataBlocks)*BlockSize
		if end > len(image) {
			return nil, fmt.Errorf("tarfs: file %q data runs past end of image", name)
		}
		files = append(files, File_t{Name: name, Data: image[off : off+int(size)]})
		off = end
	}
}

func isZeroBlock(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// decodeName extracts the NUL-terminated name field and replaces any
// ill-formed UTF-8 with the Unicode replacement character, mirroring
// String::from_utf8_lossy on the original parser's side. A ustar name
// field is only ever 7-bit ASCII in practice, but runes.ReplaceIllFormed
// gives the same lossy guarantee without this package having to
// hand-roll UTF-8 validation.
func decodeName(field []byte) (string, error) {
	nul := len(field)
	for i, c := range field {
		if c == 0 {
			nul = i
			break
		}
	}
	raw := field[:nul]
	decoded, _, err := transform.String(runes.ReplaceIllFormed(), string(raw))
	if err != nil {
		return string(raw), nil
	}
	return decoded, nil
}
