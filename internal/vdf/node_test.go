package vdf

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadNodeAllScalarTypes(t *testing.T) {
	var f fixture
	f.key(TypeString, "name").cstr("Half-Life")
	f.key(TypeWideString, "wide").wstr("Ünï 🎮")
	f.key(TypeInt32, "i32").u32(uint32(0xFFFFFFFE))
	f.key(TypePointer, "ptr").u32(0x10)
	f.key(TypeColor, "color").u32(0x00FF00FF)
	f.key(TypeFloat32, "f32").u32(math.Float32bits(1.5))
	f.key(TypeUint64, "u64").u64(math.MaxUint64)
	f.key(TypeInt64, "i64").u64(uint64(0xFFFFFFFFFFFFFFFB))
	f.end()

	got, err := ReadNode(bytes.NewReader(f.bytes()), Standard)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	want := Node{
		"name":  String("Half-Life"),
		"wide":  WideString("Ünï 🎮"),
		"i32":   Int32(-2),
		"ptr":   Pointer(16),
		"color": Color(0x00FF00FF),
		"f32":   Float32(1.5),
		"u64":   Uint64(math.MaxUint64),
		"i64":   Int64(-5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNodeKeepsIntLikeTypesDistinct(t *testing.T) {
	var f fixture
	f.key(TypeInt32, "a").u32(7)
	f.key(TypePointer, "b").u32(7)
	f.key(TypeColor, "c").u32(7)
	f.end()

	got, err := ReadNode(bytes.NewReader(f.bytes()), Standard)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	if got["a"].Type() != TypeInt32 || got["b"].Type() != TypePointer || got["c"].Type() != TypeColor {
		t.Fatalf("unexpected types: %T %T %T", got["a"], got["b"], got["c"])
	}
}

func TestReadNodeDuplicateKeyKeepsLast(t *testing.T) {
	var f fixture
	f.key(TypeString, "dup").cstr("first")
	f.key(TypeInt32, "dup").u32(2)
	f.end()

	got, err := ReadNode(bytes.NewReader(f.bytes()), Standard)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	if diff := cmp.Diff(Node{"dup": Int32(2)}, got); diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNodeNestedResumesOuter(t *testing.T) {
	var f fixture
	f.key(TypeNode, "common")
	f.key(TypeInt32, "type").u32(42)
	f.end()
	f.key(TypeString, "after").cstr("x")
	f.end()
	f.raw(0xAA) // trailing byte must stay unread

	r := bytes.NewReader(f.bytes())
	got, err := ReadNode(r, Standard)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	want := Node{
		"common": Node{"type": Int32(42)},
		"after":  String("x"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 unread byte, got %d", r.Len())
	}
}

func TestReadNodeEmpty(t *testing.T) {
	got, err := ReadNode(bytes.NewReader([]byte{byte(TypeEnd)}), Standard)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil node, got %#v", got)
	}
}

func TestReadNodeInvalidTag(t *testing.T) {
	var f fixture
	f.key(TypeString, "ok").cstr("v")
	f.raw(0x09).cstr("bad").u32(1)
	f.end()

	_, err := ReadNode(bytes.NewReader(f.bytes()), Standard)
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("expected ErrInvalidTag, got %v", err)
	}
	var tagErr *InvalidTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("expected InvalidTagError, got %v", err)
	}
	if tagErr.Tag != 0x09 {
		t.Fatalf("unexpected tag: 0x%02X", tagErr.Tag)
	}
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decErr.Offset != 6 {
		t.Fatalf("unexpected offset: %d", decErr.Offset)
	}
}

func TestReadNodeAlternateMode(t *testing.T) {
	var f fixture
	f.key(TypeNode, "inner")
	f.key(TypeInt64, "v").u64(9)
	f.u8(byte(TypeEndAlt))
	f.u8(byte(TypeEndAlt))

	got, err := ReadNode(bytes.NewReader(f.bytes()), Alternate)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	if diff := cmp.Diff(Node{"inner": Node{"v": Int64(9)}}, got); diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNodeAlternateRejectsStandardTerminator(t *testing.T) {
	var f fixture
	f.key(TypeString, "k").cstr("v")
	f.end().cstr("x")

	_, err := ReadNode(bytes.NewReader(f.bytes()), Alternate)
	var tagErr *InvalidTagError
	if !errors.As(err, &tagErr) || tagErr.Tag != byte(TypeEnd) {
		t.Fatalf("expected invalid tag 0x08, got %v", err)
	}
}

func TestReadNodeStandardRejectsAlternateTerminator(t *testing.T) {
	var f fixture
	f.u8(byte(TypeEndAlt)).cstr("x")

	_, err := ReadNode(bytes.NewReader(f.bytes()), Standard)
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("expected ErrInvalidTag, got %v", err)
	}
}

func TestReadNodeDepthLimit(t *testing.T) {
	var f fixture
	for range 5 {
		f.key(TypeNode, "n")
	}
	for range 6 {
		f.end()
	}

	opts := Options{Limits: Limits{MaxDepth: 3}}
	_, err := ReadNodeWith(bytes.NewReader(f.bytes()), Standard, opts)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}

	opts.Limits.MaxDepth = 6
	if _, err := ReadNodeWith(bytes.NewReader(f.bytes()), Standard, opts); err != nil {
		t.Fatalf("read within limit: %v", err)
	}
}

func TestReadNodeTruncated(t *testing.T) {
	var f fixture
	f.key(TypeNode, "a")
	f.key(TypeWideString, "w").wstr("hi")
	f.key(TypeFloat32, "f").u32(0)
	f.end()
	f.end()
	full := f.bytes()

	for n := 0; n < len(full); n++ {
		_, err := ReadNode(bytes.NewReader(full[:n]), Standard)
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Fatalf("prefix %d: expected ErrUnexpectedEOF, got %v", n, err)
		}
	}
}

func TestReadStringLossy(t *testing.T) {
	var f fixture
	f.key(TypeString, "narrow").raw('a', 0xFF, 'b', 0)
	f.key(TypeWideString, "wide").u16('x').u16(0xD800).u16('y').u16(0)
	f.end()

	got, err := ReadNode(bytes.NewReader(f.bytes()), Standard)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	if s := string(got["narrow"].(String)); s != "a�b" {
		t.Fatalf("unexpected narrow string: %q", s)
	}
	if s := string(got["wide"].(WideString)); s != "x�y" {
		t.Fatalf("unexpected wide string: %q", s)
	}
}

func TestReadStringTooLong(t *testing.T) {
	var f fixture
	f.key(TypeString, "k").cstr(strings.Repeat("z", 64))
	f.end()

	opts := Options{Limits: Limits{MaxStringBytes: 16}}
	_, err := ReadNodeWith(bytes.NewReader(f.bytes()), Standard, opts)
	if !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong, got %v", err)
	}
}

func TestReadNodeWithoutByteReader(t *testing.T) {
	var f fixture
	f.key(TypeString, "name").cstr("Portal")
	f.end()

	got, err := ReadNode(readOnly{bytes.NewReader(f.bytes())}, Standard)
	if err != nil {
		t.Fatalf("read node: %v", err)
	}
	if diff := cmp.Diff(Node{"name": String("Portal")}, got); diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
}
