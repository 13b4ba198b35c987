//go:build !nogzip

package xopen

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func init() {
	registerCodec(FormatGzip, newGzipDecoder, newGzipEncoder)
}

// The reader is in multistream mode, so concatenated gzip members
// decode as one continuous stream.
func newGzipDecoder(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Levels follow gzip conventions, -2 (huffman only) through 9; level 0
// selects the default. Validated eagerly at construction.
func newGzipEncoder(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		return nil, ErrInvalidLevel
	}
	return gzip.NewWriterLevel(w, level)
}
