package xopen

import "io"

// reader is the read-side stream handle: one codec wrapper over one
// source, plus an optional owned source (from Open) released after the
// codec.
type reader struct {
	rc     io.ReadCloser
	src    io.Closer // owned underlying source, if any
	format Format
	err    error
	closed bool
}

// Read pulls decompressed bytes, reading from the underlying source only
// as needed. A failed handle stays failed: every subsequent call returns
// the same error.
func (r *reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.closed {
		return 0, &FormatError{Format: r.format, Op: "read", Err: errClosed}
	}
	n, err := r.rc.Read(p)
	if err != nil && err != io.EOF {
		err = &FormatError{Format: r.format, Op: "read", Err: err}
		r.err = err
	}
	return n, err
}

// Close releases the codec wrapper and then the owned source, if any.
// Closing twice is a no-op.
func (r *reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.rc.Close()
	if r.src != nil {
		if cerr := r.src.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return &FormatError{Format: r.format, Op: "close", Err: err}
	}
	return nil
}
