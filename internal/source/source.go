// Package source opens catalog files for decoding. Files may be stored as
// is or as zstd / lz4 frames; the format is sniffed from the first bytes.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const bufferSize = 64 * 1024

type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Reader is a buffered, decompressed catalog stream.
type Reader struct {
	*bufio.Reader
	Compression Compression
	closers     []func() error
}

// Open opens path and wraps it with NewReader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	r.closers = append(r.closers, f.Close)
	return r, nil
}

// NewReader buffers src and inserts a decompressor when src starts with a
// zstd or lz4 frame. Inputs shorter than a frame magic pass through so the
// decoder reports the truncation.
func NewReader(src io.Reader) (*Reader, error) {
	br := bufio.NewReaderSize(src, bufferSize)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("sniff catalog format: %w", err)
	}

	switch {
	case bytes.Equal(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return &Reader{
			Reader:      bufio.NewReaderSize(zr, bufferSize),
			Compression: CompressionZstd,
			closers:     []func() error{func() error { zr.Close(); return nil }},
		}, nil
	case bytes.Equal(head, lz4Magic):
		return &Reader{
			Reader:      bufio.NewReaderSize(lz4.NewReader(br), bufferSize),
			Compression: CompressionLZ4,
		}, nil
	default:
		return &Reader{Reader: br, Compression: CompressionNone}, nil
	}
}

func (r *Reader) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}
