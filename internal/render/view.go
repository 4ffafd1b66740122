package render

import "github.com/danmuck/vdfctl/internal/vdf"

// AppView is the structured output shape of an app record.
type AppView struct {
	ID           uint32         `json:"id" yaml:"id" msgpack:"id"`
	Size         uint32         `json:"size" yaml:"size" msgpack:"size"`
	State        uint32         `json:"state" yaml:"state" msgpack:"state"`
	LastUpdate   uint32         `json:"last_update" yaml:"last_update" msgpack:"last_update"`
	AccessToken  uint64         `json:"access_token" yaml:"access_token" msgpack:"access_token"`
	Checksum     string         `json:"checksum" yaml:"checksum" msgpack:"checksum"`
	ChangeNumber uint32         `json:"change_number" yaml:"change_number" msgpack:"change_number"`
	Root         map[string]any `json:"root" yaml:"root" msgpack:"root"`
}

// PackageView is the structured output shape of a package record.
type PackageView struct {
	ID           uint32         `json:"id" yaml:"id" msgpack:"id"`
	Checksum     string         `json:"checksum" yaml:"checksum" msgpack:"checksum"`
	ChangeNumber uint32         `json:"change_number" yaml:"change_number" msgpack:"change_number"`
	OpaqueToken  uint64         `json:"opaque_token" yaml:"opaque_token" msgpack:"opaque_token"`
	Root         map[string]any `json:"root" yaml:"root" msgpack:"root"`
}

// LookupView is the structured output of a key-path query.
type LookupView struct {
	ID    uint32   `json:"id" yaml:"id" msgpack:"id"`
	Keys  []string `json:"keys" yaml:"keys" msgpack:"keys"`
	Found bool     `json:"found" yaml:"found" msgpack:"found"`
	Value any      `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
}

func App(id uint32, rec vdf.AppRecord) AppView {
	return AppView{
		ID:           id,
		Size:         rec.Size,
		State:        rec.State,
		LastUpdate:   rec.LastUpdate,
		AccessToken:  rec.AccessToken,
		Checksum:     rec.Checksum.String(),
		ChangeNumber: rec.ChangeNumber,
		Root:         PlainNode(rec.Root),
	}
}

func Package(id uint32, rec vdf.PackageRecord) PackageView {
	return PackageView{
		ID:           id,
		Checksum:     rec.Checksum.String(),
		ChangeNumber: rec.ChangeNumber,
		OpaqueToken:  rec.OpaqueToken,
		Root:         PlainNode(rec.Root),
	}
}

// Plain converts a decoded value to basic Go data. Pointer and Color
// collapse to int32 here; the text format keeps them apart.
func Plain(v vdf.Value) any {
	switch v := v.(type) {
	case vdf.Node:
		return PlainNode(v)
	case vdf.String:
		return string(v)
	case vdf.WideString:
		return string(v)
	case vdf.Int32:
		return int32(v)
	case vdf.Pointer:
		return int32(v)
	case vdf.Color:
		return int32(v)
	case vdf.Uint64:
		return uint64(v)
	case vdf.Int64:
		return int64(v)
	case vdf.Float32:
		return float32(v)
	default:
		return nil
	}
}

func PlainNode(n vdf.Node) map[string]any {
	out := make(map[string]any, len(n))
	for k, v := range n {
		out[k] = Plain(v)
	}
	return out
}
