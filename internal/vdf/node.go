package vdf

import (
	"io"
	"math"

	"github.com/rs/zerolog"
)

type decoder struct {
	r      *reader
	limits Limits
	log    zerolog.Logger
}

func newDecoder(r io.Reader, opts Options) *decoder {
	return &decoder{
		r:      newReader(r),
		limits: opts.Limits.withDefaults(),
		log:    opts.logger(),
	}
}

// ReadNode decodes one node from r, stopping after the terminator that
// mode selects. Catalog files always use Standard.
func ReadNode(r io.Reader, mode Mode) (Node, error) {
	return ReadNodeWith(r, mode, Options{})
}

func ReadNodeWith(r io.Reader, mode Mode, opts Options) (Node, error) {
	return newDecoder(r, opts).readNode(mode, 1)
}

func (d *decoder) readNode(mode Mode, depth int) (Node, error) {
	if depth > d.limits.MaxDepth {
		return nil, &DecodeError{Offset: d.r.off, Field: "node", Err: ErrDepthExceeded}
	}
	end := mode.terminator()
	node := Node{}
	for {
		tagOff := d.r.off
		b, err := d.r.u8("type tag")
		if err != nil {
			return nil, err
		}
		tag := Type(b)
		if tag == end {
			return node, nil
		}
		key, err := d.readString(false, "key")
		if err != nil {
			return nil, err
		}
		val, err := d.readValue(tag, tagOff, mode, depth)
		if err != nil {
			return nil, err
		}
		node[key] = val
	}
}

// readValue decodes the payload that follows a key. tag must not be the
// terminator of mode; tagOff is where the tag byte sat.
func (d *decoder) readValue(tag Type, tagOff int64, mode Mode, depth int) (Value, error) {
	switch tag {
	case TypeNode:
		sub, err := d.readNode(mode, depth+1)
		if err != nil {
			return nil, err
		}
		return sub, nil
	case TypeString:
		s, err := d.readString(false, "string value")
		return String(s), err
	case TypeWideString:
		s, err := d.readString(true, "wstring value")
		return WideString(s), err
	case TypeInt32:
		v, err := d.r.u32("int32 value")
		return Int32(int32(v)), err
	case TypePointer:
		v, err := d.r.u32("pointer value")
		return Pointer(int32(v)), err
	case TypeColor:
		v, err := d.r.u32("color value")
		return Color(int32(v)), err
	case TypeFloat32:
		v, err := d.r.u32("float32 value")
		return Float32(math.Float32frombits(v)), err
	case TypeUint64:
		v, err := d.r.u64("uint64 value")
		return Uint64(v), err
	case TypeInt64:
		v, err := d.r.u64("int64 value")
		return Int64(int64(v)), err
	default:
		return nil, &DecodeError{Offset: tagOff, Field: "type tag", Err: &InvalidTagError{Tag: byte(tag)}}
	}
}
