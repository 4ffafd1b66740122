package vdf

import (
	"encoding/binary"
	"errors"
	"io"
)

// reader is a forward-only little-endian cursor that tracks its offset so
// failures can name the byte they stopped at.
type reader struct {
	r   io.Reader
	br  io.ByteReader
	off int64
	buf [8]byte
}

func newReader(r io.Reader) *reader {
	rd := &reader{r: r}
	if br, ok := r.(io.ByteReader); ok {
		rd.br = br
	}
	return rd
}

func (r *reader) fail(start int64, field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Offset: start, Field: field, Err: ErrUnexpectedEOF}
	}
	return &DecodeError{Offset: start, Field: field, Err: ErrIO, Cause: err}
}

func (r *reader) exact(dst []byte, field string) error {
	start := r.off
	n, err := io.ReadFull(r.r, dst)
	r.off += int64(n)
	if err != nil {
		return r.fail(start, field, err)
	}
	return nil
}

func (r *reader) u8(field string) (byte, error) {
	if r.br != nil {
		b, err := r.br.ReadByte()
		if err != nil {
			return 0, r.fail(r.off, field, err)
		}
		r.off++
		return b, nil
	}
	if err := r.exact(r.buf[:1], field); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

func (r *reader) u16(field string) (uint16, error) {
	if err := r.exact(r.buf[:2], field); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}

func (r *reader) u32(field string) (uint32, error) {
	if err := r.exact(r.buf[:4], field); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[:4]), nil
}

func (r *reader) u64(field string) (uint64, error) {
	if err := r.exact(r.buf[:8], field); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.buf[:8]), nil
}
