package vdf

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF = errors.New("vdf: unexpected end of input")
	ErrInvalidTag    = errors.New("vdf: invalid type tag")
	ErrIO            = errors.New("vdf: read failed")
	ErrDepthExceeded = errors.New("vdf: node nesting too deep")
	ErrStringTooLong = errors.New("vdf: string too long")
)

// InvalidTagError reports a tag byte outside the known set.
type InvalidTagError struct {
	Tag byte
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("vdf: invalid type tag 0x%02X", e.Tag)
}

func (e *InvalidTagError) Is(target error) bool {
	return target == ErrInvalidTag
}

// DecodeError is returned for every decode failure. Err is one of the
// package sentinels or an *InvalidTagError; Cause carries the transport
// error behind ErrIO.
type DecodeError struct {
	Offset int64
	Field  string
	Err    error
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %v (reading %s at offset %d)", e.Err, e.Cause, e.Field, e.Offset)
	}
	return fmt.Sprintf("%v (reading %s at offset %d)", e.Err, e.Field, e.Offset)
}

func (e *DecodeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}
