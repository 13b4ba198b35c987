//go:build !nolz4

package xopen

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func init() {
	registerCodec(FormatLz4, newLz4Decoder, newLz4Encoder)
}

func newLz4Decoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// Levels 0-9, 0 being the fast default. Validated eagerly at
// construction.
func newLz4Encoder(w io.Writer, level int) (io.WriteCloser, error) {
	if level < 0 || level >= len(lz4Levels) {
		return nil, ErrInvalidLevel
	}
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
		return nil, err
	}
	return zw, nil
}
