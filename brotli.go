//go:build !nobrotli

package xopen

import (
	"io"

	"github.com/andybalholm/brotli"
)

func init() {
	registerCodec(FormatBrotli, newBrotliDecoder, newBrotliEncoder)
}

// Brotli streams carry no magic signature, so this decoder is reachable
// only through NewReaderFormat.
func newBrotliDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

// Levels 1-11; level 0 selects the default. Validated eagerly at
// construction.
func newBrotliEncoder(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = brotli.DefaultCompression
	}
	if level < 1 || level > brotli.BestCompression {
		return nil, ErrInvalidLevel
	}
	return brotli.NewWriterLevel(w, level), nil
}
