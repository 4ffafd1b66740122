package vdf

import "fmt"

// Type is the one-byte tag preceding every node entry.
type Type uint8

// Type tags from the binary key/value format.
const (
	TypeNode       Type = 0x00
	TypeString     Type = 0x01
	TypeInt32      Type = 0x02
	TypeFloat32    Type = 0x03
	TypePointer    Type = 0x04
	TypeWideString Type = 0x05
	TypeColor      Type = 0x06
	TypeUint64     Type = 0x07
	TypeEnd        Type = 0x08
	TypeInt64      Type = 0x0A
	TypeEndAlt     Type = 0x0B
)

func (t Type) String() string {
	switch t {
	case TypeNode:
		return "node"
	case TypeString:
		return "string"
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float32"
	case TypePointer:
		return "pointer"
	case TypeWideString:
		return "wstring"
	case TypeColor:
		return "color"
	case TypeUint64:
		return "uint64"
	case TypeEnd:
		return "end"
	case TypeInt64:
		return "int64"
	case TypeEndAlt:
		return "end_alt"
	default:
		return fmt.Sprintf("unknown(0x%02X)", uint8(t))
	}
}

// Mode selects which terminator closes a node.
type Mode uint8

const (
	// Standard nodes end with TypeEnd. Both catalog readers use it.
	Standard Mode = iota
	// Alternate nodes end with TypeEndAlt.
	Alternate
)

func (m Mode) terminator() Type {
	if m == Alternate {
		return TypeEndAlt
	}
	return TypeEnd
}

func (m Mode) String() string {
	if m == Alternate {
		return "alternate"
	}
	return "standard"
}

// Value is one decoded entry value. The concrete type is one of String,
// WideString, Int32, Pointer, Color, Uint64, Int64, Float32 or Node.
type Value interface {
	Type() Type
	isValue()
}

type (
	String     string
	WideString string
	Int32      int32
	Pointer    int32
	Color      int32
	Uint64     uint64
	Int64      int64
	Float32    float32
)

// Node is one level of the key/value tree.
type Node map[string]Value

func (String) Type() Type     { return TypeString }
func (WideString) Type() Type { return TypeWideString }
func (Int32) Type() Type      { return TypeInt32 }
func (Pointer) Type() Type    { return TypePointer }
func (Color) Type() Type      { return TypeColor }
func (Uint64) Type() Type     { return TypeUint64 }
func (Int64) Type() Type      { return TypeInt64 }
func (Float32) Type() Type    { return TypeFloat32 }
func (Node) Type() Type       { return TypeNode }

func (String) isValue()     {}
func (WideString) isValue() {}
func (Int32) isValue()      {}
func (Pointer) isValue()    {}
func (Color) isValue()      {}
func (Uint64) isValue()     {}
func (Int64) isValue()      {}
func (Float32) isValue()    {}
func (Node) isValue()       {}
