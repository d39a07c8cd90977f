// Package zwrap takes a structure file stream and, if it is gzipped,
// wraps it so reads come out decompressed. Close shuts the
// decompressor and then the underlying file or http body.
// Compression is decided from the first two bytes, not the name, so
// a mirror that serves gzip without saying so still works.
package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
)

var gzMagic = [2]byte{0x1f, 0x8b}

// IsGzip says whether b starts like a gzip stream.
func IsGzip(b []byte) bool {
	return len(b) >= len(gzMagic) && b[0] == gzMagic[0] && b[1] == gzMagic[1]
}

// FpGzip is what we return. rdr is the decompressor when there is one,
// otherwise a buffered view of the original stream.
type FpGzip struct {
	fp   io.Closer
	rdr  io.Reader
	zrdr *gzip.Reader
}

// Gzipped says whether reads are being decompressed.
func (fc *FpGzip) Gzipped() bool { return fc.zrdr != nil }

// Read reads from the decompressed stream if there is one.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Close closes the decompressor, then the underlying stream. It
// should work if the source is a file or an http body.
func (fc *FpGzip) Close() error {
	var errs []error
	if fc.zrdr != nil {
		errs = append(errs, fc.zrdr.Close())
	}
	errs = append(errs, fc.fp.Close())
	return errors.Join(errs...)
}

// Wrap insists that fp is gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// WrapMaybe peeks at the start of fp and only decompresses if it
// looks like gzip. It does not need to seek, so it is happy with an
// http stream. A short or empty stream is passed through as plain.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	brdr := bufio.NewReader(fp)
	head, err := brdr.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !IsGzip(head) {
		return &FpGzip{fp: fp, rdr: brdr}, nil
	}
	zrdr, err := gzip.NewReader(brdr)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// Open opens a file by name and calls WrapMaybe on it.
func Open(fname string) (*FpGzip, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fz, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, errors.New("reading " + fname + " " + err.Error())
	}
	return fz, nil
}
