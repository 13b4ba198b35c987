//go:build !nobgzip

package xopen

import (
	"io"

	"github.com/biogo/hts/bgzf"
)

func init() {
	registerCodec(FormatBgzip, newBgzipDecoder, newBgzipEncoder)
}

// One decompression worker keeps reads synchronous and pull-based.
func newBgzipDecoder(r io.Reader) (io.ReadCloser, error) {
	return bgzf.NewReader(r, 1)
}

// Levels are gzip levels, validated eagerly at construction. Close
// writes the BGZF EOF marker block.
func newBgzipEncoder(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = -1 // gzip default
	}
	if level < -1 || level > 9 {
		return nil, ErrInvalidLevel
	}
	return bgzf.NewWriterLevel(w, level, 1)
}
