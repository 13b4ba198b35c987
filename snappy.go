//go:build !nosnappy

package xopen

import (
	"io"

	"github.com/golang/snappy"
)

func init() {
	registerCodec(FormatSnappy, newSnappyDecoder, newSnappyEncoder)
}

// The framed snappy format; raw block snappy has no framing to sniff or
// stream.
func newSnappyDecoder(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}

// Snappy has no compression levels; the level argument is ignored.
func newSnappyEncoder(w io.Writer, _ int) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}
