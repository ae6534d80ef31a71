package tarfs

import (
	"bytes"
	"testing"
)

func TestOct2int(t *testing.T) {
	cases := []struct {
		field string
		want  uint64
	}{
		{"00000000007 ", 7},
		{"", 0},
		{"007", 7},
		{"  garbage", 0},
	}
	for _, c := range cases {
		if got := Oct2int([]byte(c.field)); got != c.want {
			t.Errorf("Oct2int(%q) = %d, want %d", c.field, got, c.want)
		}
	}
}

// buildHeader writes one ustar header block for name/size, matching the
// field offsets Parse reads.
func buildHeader(name string, size int) []byte {
	b := make([]byte, BlockSize)
	copy(b[nameOffset:], name)
	octal := []byte(padOctal(size))
	copy(b[sizeOffset:sizeOffset+sizeLen], octal)
	copy(b[magicOffset:magicOffset+magicLen], ustarMagic[:])
	return b
}

func padOctal(n int) string {
	s := ""
	if n == 0 {
		s = "0"
	}
	for n > 0 {
		s = string(rune('0'+n%8)) + s
		n /= 8
	}
	for len(s) < sizeLen-1 {
		s = "0" + s
	}
	return s + " "
}

func padBlocks(data []byte) []byte {
	rem := len(data) % BlockSize
	if rem == 0 {
		return data
	}
	return append(append([]byte{}, data...), make([]byte, BlockSize-rem)...)
}

func buildTar(entries ...File_t) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.Write(buildHeader(e.Name, len(e.Data)))
		buf.Write(padBlocks(e.Data))
	}
	buf.Write(make([]byte, BlockSize*2))
	return buf.Bytes()
}

func TestParseSingleFile(t *testing.T) {
	image := buildTar(File_t{Name: "./hello.txt", Data: []byte("Hello!\n")})

	files, err := Parse(image)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].Name != "./hello.txt" || string(files[0].Data) != "Hello!\n" {
		t.Fatalf("got %+v", files[0])
	}
}

func TestParseTwoFiles(t *testing.T) {
	image := buildTar(
		File_t{Name: "./hello.txt", Data: []byte("Hello!\n")},
		File_t{Name: "./meow.txt", Data: []byte("Meow!\n")},
	)

	files, err := Parse(image)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Name != "./hello.txt" || string(files[0].Data) != "Hello!\n" {
		t.Fatalf("file 0 = %+v", files[0])
	}
	if files[1].Name != "./meow.txt" || string(files[1].Data) != "Meow!\n" {
		t.Fatalf("file 1 = %+v", files[1])
	}
}
