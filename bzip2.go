//go:build !nobzip2

package xopen

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

func init() {
	registerCodec(FormatBzip2, newBzip2Decoder, newBzip2Encoder)
}

func newBzip2Decoder(r io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(r, new(bzip2.ReaderConfig))
}

// Levels 1-9; level 0 selects the default. Validated eagerly at
// construction.
func newBzip2Encoder(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = bzip2.DefaultCompression
	}
	if level < bzip2.BestSpeed || level > bzip2.BestCompression {
		return nil, ErrInvalidLevel
	}
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
}
