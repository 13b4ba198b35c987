package xopen

import "io"

// newDecoderFunc wraps a compressed byte source for decompression.
type newDecoderFunc func(io.Reader) (io.ReadCloser, error)

// newEncoderFunc wraps a byte sink for compression at the given level.
// Level 0 selects the codec default; out-of-range levels fail with
// ErrInvalidLevel.
type newEncoderFunc func(io.Writer, int) (io.WriteCloser, error)

var (
	decoders = map[Format]newDecoderFunc{}
	encoders = map[Format]newEncoderFunc{}
)

// registerCodec links a codec into the dispatch tables. Each codec file
// calls it from init; building with a codec's exclusion tag (nogzip,
// nozstd, ...) leaves the format unregistered, and using it fails with
// ErrUnsupportedFormat. The signature table is not affected: detection
// works even for formats whose codec is not linked in.
func registerCodec(f Format, dec newDecoderFunc, enc newEncoderFunc) {
	decoders[f] = dec
	encoders[f] = enc
}

func newDecoder(f Format, r io.Reader) (io.ReadCloser, error) {
	if f == FormatNone {
		return io.NopCloser(r), nil
	}
	dec, ok := decoders[f]
	if !ok {
		return nil, &FormatError{Format: f, Op: "open", Err: ErrUnsupportedFormat}
	}
	rc, err := dec(r)
	if err != nil {
		return nil, &FormatError{Format: f, Op: "open", Err: err}
	}
	return rc, nil
}

func newEncoder(f Format, w io.Writer, level int) (io.WriteCloser, error) {
	if f == FormatNone {
		return nopWriteCloser{w}, nil
	}
	enc, ok := encoders[f]
	if !ok {
		return nil, &FormatError{Format: f, Op: "create", Err: ErrUnsupportedFormat}
	}
	wc, err := enc(w, level)
	if err != nil {
		return nil, &FormatError{Format: f, Op: "create", Err: err}
	}
	return wc, nil
}

// nopWriteCloser is the FormatNone encoder: unframed pass-through with
// no trailer to write on close.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
