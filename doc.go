// Package xopen provides transparent reading and writing of compressed
// byte streams.
//
// Readers are opened without knowing whether the stream is plain, gzip,
// block-gzip (BGZF), bzip2, xz, zstd, lz4 or framed-snappy compressed:
// the format is detected from the stream's leading magic bytes and the
// matching decompressor is put in front of it. Writers are created with
// an explicit format and compression level and produce a correctly
// framed stream.
//
// # Quick Start
//
//	var buf bytes.Buffer
//
//	// Write a compressed stream.
//	w, _ := xopen.NewWriter(&buf, xopen.FormatGzip, 6)
//	w.Write([]byte("hello"))
//	w.Close() // flushes and writes the gzip trailer
//
//	// Read it back without naming the format.
//	r, format, _ := xopen.NewReader(&buf)
//	data, _ := io.ReadAll(r)
//	r.Close()
//	fmt.Println(format, string(data)) // gzip hello
//
// Open and Create do the same over files, with the returned handle
// owning the file. Compress and Decompress are one-shot byte-slice
// helpers.
//
// # Format Detection
//
// Detection peeks at most a few bytes (the longest registered magic
// signature) and replays them to the decompressor, so no logical bytes
// are lost; seekable sources are simply rewound. A stream matching no
// signature is passed through unchanged as FormatNone. That is a
// designed outcome, not an error: sniffing never fails. When one magic
// is a prefix of another (gzip and BGZF share 1F 8B), the longer, more
// specific signature wins.
//
// Brotli is the one supported format without a magic signature; brotli
// streams are written normally but must be read through NewReaderFormat.
//
// # Capability Tags
//
// Each codec can be excluded at build time with its tag (nogzip,
// nobgzip, nobzip2, noxz, nozstd, nolz4, nosnappy, nobrotli). Detection
// still recognizes excluded formats, but using one fails with
// ErrUnsupportedFormat rather than silently falling back.
//
// # Concurrency
//
// Handles are synchronous, pull-based and not safe for concurrent use.
// Independent handles over independent sources may be used from
// different goroutines freely.
package xopen
