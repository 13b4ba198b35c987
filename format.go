package xopen

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies a compression format.
type Format string

const (
	// FormatNone is the pass-through format: bytes are forwarded unchanged.
	FormatNone   Format = "none"
	FormatGzip   Format = "gzip"
	FormatBgzip  Format = "bgzip"
	FormatBzip2  Format = "bzip2"
	FormatXz     Format = "xz"
	FormatZstd   Format = "zstd"
	FormatLz4    Format = "lz4"
	FormatSnappy Format = "snappy"
	FormatBrotli Format = "brotli"
)

func (f Format) String() string { return string(f) }

// signature associates a magic-byte prefix with the format it identifies.
type signature struct {
	magic  []byte
	format Format
}

// signatures is ordered longest magic first, so a more specific signature
// always wins over a shorter one it extends. BGZF streams are gzip streams
// whose fixed header sets FEXTRA, hence the four-byte bgzip entry shadowing
// the two-byte gzip one. Brotli has no magic and cannot be sniffed.
var signatures = []signature{
	{[]byte{0xff, 0x06, 0x00, 0x00, 0x73, 0x4e, 0x61, 0x50, 0x70, 0x59}, FormatSnappy},
	{[]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, FormatXz},
	{[]byte{0x1f, 0x8b, 0x08, 0x04}, FormatBgzip},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, FormatZstd},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, FormatLz4},
	{[]byte{0x42, 0x5a, 0x68}, FormatBzip2},
	{[]byte{0x1f, 0x8b}, FormatGzip},
}

// sniffLen is the longest registered magic, the number of bytes peeked
// ahead of detection.
var sniffLen = func() int {
	n := 0
	for _, s := range signatures {
		if len(s.magic) > n {
			n = len(s.magic)
		}
	}
	return n
}()

// Detect returns the format whose magic bytes prefix the given data.
//
// Detect is pure and total: it never fails, reads nothing, and returns
// FormatNone for any input that matches no registered signature,
// including inputs shorter than every signature and the empty slice.
// A prefix shorter than a signature cannot match that signature.
func Detect(prefix []byte) Format {
	for _, s := range signatures {
		if len(prefix) >= len(s.magic) && bytes.Equal(prefix[:len(s.magic)], s.magic) {
			return s.format
		}
	}
	return FormatNone
}

// Extension mapping
var extensionMap = map[Format]string{
	FormatGzip:   ".gz",
	FormatBgzip:  ".bgz",
	FormatBzip2:  ".bz2",
	FormatXz:     ".xz",
	FormatZstd:   ".zst",
	FormatLz4:    ".lz4",
	FormatSnappy: ".sz",
	FormatBrotli: ".br",
}

// Reverse extension mapping (extension -> format)
var reverseExtensionMap = map[string]Format{
	".gz":     FormatGzip,
	".gzip":   FormatGzip,
	".bgz":    FormatBgzip,
	".bgzf":   FormatBgzip,
	".bz2":    FormatBzip2,
	".xz":     FormatXz,
	".zst":    FormatZstd,
	".zstd":   FormatZstd,
	".lz4":    FormatLz4,
	".sz":     FormatSnappy,
	".snappy": FormatSnappy,
	".br":     FormatBrotli,
}

// Extension returns the conventional file extension for the format, or
// the empty string for FormatNone and unknown formats.
func (f Format) Extension() string {
	return extensionMap[f]
}

// FormatFromPath reports the format suggested by a file name's extension.
// It is a naming convention helper only; output format selection stays
// explicit and input format detection goes by magic bytes, not names.
func FormatFromPath(name string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	f, ok := reverseExtensionMap[ext]
	return f, ok
}
