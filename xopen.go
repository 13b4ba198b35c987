package xopen

import (
	"bufio"
	"errors"
	"io"
	"os"
)

var (
	// ErrUnsupportedFormat is returned when the requested or detected
	// format has no codec linked into the build.
	ErrUnsupportedFormat = errors.New("xopen: unsupported compression format")

	// ErrInvalidLevel is returned when a compression level is outside
	// the chosen codec's accepted range.
	ErrInvalidLevel = errors.New("xopen: invalid compression level")

	errClosed = errors.New("xopen: stream already closed")
)

// FormatError records a failure in a codec or the underlying medium
// together with the format involved.
type FormatError struct {
	Format Format
	Op     string // "sniff", "open", "create", "read", "write" or "close"
	Err    error
}

func (e *FormatError) Error() string {
	return "xopen: " + e.Op + " " + string(e.Format) + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// Sniff detects the compression format of src from its leading magic
// bytes without decoding it. It returns a source view that replays the
// peeked bytes, so the view still yields the complete original stream,
// and the detected format. Unknown or short prefixes are FormatNone,
// never an error.
//
// If src seeks, the peek is undone in place and src itself is returned.
// Otherwise the returned view is a buffered wrapper around src.
func Sniff(src io.Reader) (io.Reader, Format, error) {
	if rs, ok := src.(io.ReadSeeker); ok {
		f, err := sniffSeek(rs)
		if err != nil {
			return nil, FormatNone, err
		}
		return rs, f, nil
	}
	br, ok := src.(*bufio.Reader)
	if !ok || br.Size() < sniffLen {
		br = bufio.NewReaderSize(src, sniffLen)
	}
	prefix, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, FormatNone, &FormatError{Format: FormatNone, Op: "sniff", Err: err}
	}
	return br, Detect(prefix), nil
}

func sniffSeek(src io.ReadSeeker) (Format, error) {
	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return FormatNone, &FormatError{Format: FormatNone, Op: "sniff", Err: err}
	}
	prefix := make([]byte, sniffLen)
	n, err := io.ReadFull(src, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return FormatNone, &FormatError{Format: FormatNone, Op: "sniff", Err: err}
	}
	if _, err := src.Seek(pos, io.SeekStart); err != nil {
		return FormatNone, &FormatError{Format: FormatNone, Op: "sniff", Err: err}
	}
	return Detect(prefix[:n]), nil
}

// NewReader sniffs the compression format of src and returns a handle
// that yields the decompressed bytes, together with the detected format.
// Streams matching no known signature pass through unchanged as
// FormatNone. Reading is lazy and forward-only; malformed compressed
// data surfaces at the failing read.
//
// The handle's Close releases the codec only. Closing src, if needed,
// stays with the caller; use Open to have the file owned by the handle.
func NewReader(src io.Reader) (io.ReadCloser, Format, error) {
	h, f, err := newReadHandle(src)
	if err != nil {
		return nil, f, err
	}
	return h, f, nil
}

func newReadHandle(src io.Reader) (*reader, Format, error) {
	view, f, err := Sniff(src)
	if err != nil {
		return nil, FormatNone, err
	}
	rc, err := newDecoder(f, view)
	if err != nil {
		return nil, f, err
	}
	return &reader{rc: rc, format: f}, f, nil
}

// NewReaderFormat is NewReader with an explicit format instead of
// sniffing. It is the only way to read brotli streams, which carry no
// magic signature.
func NewReaderFormat(src io.Reader, f Format) (io.ReadCloser, error) {
	rc, err := newDecoder(f, src)
	if err != nil {
		return nil, err
	}
	return &reader{rc: rc, format: f}, nil
}

// NewWriter returns a handle that compresses everything written to it
// into dst using the given format and level. Level 0 selects the codec
// default. FormatNone writes dst through unframed.
//
// Close flushes buffered data and writes the format trailer before
// returning; skipping it corrupts the stream. The handle never closes
// dst; use Create to have the file owned by the handle.
func NewWriter(dst io.Writer, f Format, level int) (io.WriteCloser, error) {
	wc, err := newEncoder(f, dst, level)
	if err != nil {
		return nil, err
	}
	return &writer{wc: wc, format: f}, nil
}

// Open opens the named file and decompresses it transparently. The
// returned handle owns the file: Close releases the codec first, then
// the file.
func Open(name string) (io.ReadCloser, Format, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, FormatNone, err
	}
	h, f, err := newReadHandle(file)
	if err != nil {
		file.Close()
		return nil, f, err
	}
	h.src = file
	return h, f, nil
}

// Create creates the named file and compresses everything written to it
// with the given format and level. The returned handle owns the file:
// Close writes the format trailer before releasing it.
func Create(name string, f Format, level int) (io.WriteCloser, error) {
	if f != FormatNone {
		if _, ok := encoders[f]; !ok {
			return nil, &FormatError{Format: f, Op: "create", Err: ErrUnsupportedFormat}
		}
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	wc, err := newEncoder(f, file, level)
	if err != nil {
		file.Close()
		os.Remove(name)
		return nil, err
	}
	return &writer{wc: wc, sink: file, format: f}, nil
}
