//go:build !noxz

package xopen

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	registerCodec(FormatXz, newXzDecoder, newXzEncoder)
}

func newXzDecoder(r io.Reader) (io.ReadCloser, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(xr), nil
}

// The xz encoder exposes no numeric preset; the level argument is
// ignored.
func newXzEncoder(w io.Writer, _ int) (io.WriteCloser, error) {
	return xz.NewWriter(w)
}
