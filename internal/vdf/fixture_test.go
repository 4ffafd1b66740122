package vdf

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// fixture builds little-endian catalog bytes for tests.
type fixture struct {
	buf bytes.Buffer
}

func (f *fixture) u8(v byte) *fixture {
	f.buf.WriteByte(v)
	return f
}

func (f *fixture) u16(v uint16) *fixture {
	f.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
	return f
}

func (f *fixture) u32(v uint32) *fixture {
	f.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
	return f
}

func (f *fixture) u64(v uint64) *fixture {
	f.buf.Write(binary.LittleEndian.AppendUint64(nil, v))
	return f
}

func (f *fixture) raw(b ...byte) *fixture {
	f.buf.Write(b)
	return f
}

func (f *fixture) cstr(s string) *fixture {
	f.buf.WriteString(s)
	f.buf.WriteByte(0)
	return f
}

func (f *fixture) wstr(s string) *fixture {
	for _, unit := range utf16.Encode([]rune(s)) {
		f.u16(unit)
	}
	return f.u16(0)
}

// key writes an entry header: tag byte then the narrow key.
func (f *fixture) key(tag Type, k string) *fixture {
	return f.u8(byte(tag)).cstr(k)
}

func (f *fixture) end() *fixture {
	return f.u8(byte(TypeEnd))
}

func (f *fixture) header(version, universe uint32) *fixture {
	return f.u32(version).u32(universe)
}

func (f *fixture) appPrefix(id, size, state, lastUpdate uint32, token uint64, checksum [20]byte, change uint32) *fixture {
	f.u32(id).u32(size).u32(state).u32(lastUpdate).u64(token)
	f.raw(checksum[:]...)
	return f.u32(change)
}

func (f *fixture) packagePrefix(id uint32, checksum [20]byte, change uint32, token uint64) *fixture {
	f.u32(id)
	f.raw(checksum[:]...)
	return f.u32(change).u64(token)
}

func (f *fixture) bytes() []byte {
	return bytes.Clone(f.buf.Bytes())
}

// readOnly hides io.ByteReader so the unbuffered read path is exercised.
type readOnly struct {
	r *bytes.Reader
}

func (r readOnly) Read(p []byte) (int, error) {
	return r.r.Read(p)
}
