package xopen

import "io"

// writer is the write-side stream handle: one codec wrapper over one
// sink, plus an optional owned sink (from Create).
type writer struct {
	wc     io.WriteCloser
	sink   io.Closer // owned underlying sink, if any
	format Format
	err    error
	closed bool
}

// Write forwards p through the codec to the underlying sink. Failures
// are terminal for the stream; there is no retry.
func (w *writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, &FormatError{Format: w.format, Op: "write", Err: errClosed}
	}
	n, err := w.wc.Write(p)
	if err != nil {
		err = &FormatError{Format: w.format, Op: "write", Err: err}
		w.err = err
	}
	return n, err
}

// Close flushes buffered compressed data and writes the format trailer,
// then releases the owned sink, if any. The ordering is mandatory: a
// handle that received no writes still emits a structurally valid empty
// stream. Closing twice is a no-op.
func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.wc.Close()
	if w.sink != nil {
		if cerr := w.sink.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return &FormatError{Format: w.format, Op: "close", Err: err}
	}
	return nil
}
