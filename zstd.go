//go:build !nozstd

package xopen

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func init() {
	registerCodec(FormatZstd, newZstdDecoder, newZstdEncoder)
}

// Single-goroutine decoding keeps reads synchronous and pull-based.
func newZstdDecoder(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

// Levels 1-22 as in the zstd tool; level 0 selects the default. The
// library clamps out-of-range values silently, so the range check
// happens here, eagerly at construction. Zero frames are enabled so a
// stream closed without writes still emits a valid empty frame instead
// of nothing.
func newZstdEncoder(w io.Writer, level int) (io.WriteCloser, error) {
	opts := []zstd.EOption{
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	}
	if level != 0 {
		if level < 1 || level > 22 {
			return nil, ErrInvalidLevel
		}
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	}
	return zstd.NewWriter(w, opts...)
}
