package xopen

import (
	"bytes"
	"io"
)

// Compress compresses data in one shot with the given format and level.
// Level 0 selects the codec default.
func Compress(data []byte, f Format, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, f, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress detects the compression format of data and decompresses it
// in one shot, returning the detected format alongside the plain bytes.
// Unrecognized data comes back unchanged as FormatNone.
func Decompress(data []byte) ([]byte, Format, error) {
	r, f, err := NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, f, err
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, f, err
	}
	return out, f, nil
}

// DecompressFormat decompresses data with an explicit format instead of
// sniffing. Required for brotli, which has no magic signature.
func DecompressFormat(data []byte, f Format) ([]byte, error) {
	r, err := NewReaderFormat(bytes.NewReader(data), f)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
