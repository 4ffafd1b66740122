package render

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/danmuck/vdfctl/internal/vdf"
)

type encoder interface {
	Encode(v any) error
}

// Printer writes records in one output format. Structured formats write
// one document per call; Close flushes the yaml stream.
type Printer struct {
	w      io.Writer
	format Format
	enc    encoder
	close  func() error
}

func NewPrinter(w io.Writer, format Format) (*Printer, error) {
	p := &Printer{w: w, format: format}
	switch format {
	case FormatText:
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		p.enc = e
		p.close = e.Close
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		p.enc = e
	case FormatMsgpack:
		e := msgpack.NewEncoder(w)
		e.SetSortMapKeys(true)
		p.enc = e
	case FormatCBOR:
		mode, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return nil, fmt.Errorf("render: cbor mode: %w", err)
		}
		p.enc = mode.NewEncoder(w)
	default:
		return nil, fmt.Errorf("render: unsupported format %q", format)
	}
	return p, nil
}

func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

func (p *Printer) App(id uint32, rec vdf.AppRecord) error {
	if p.enc != nil {
		return p.enc.Encode(App(id, rec))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "app %d\n", id)
	fmt.Fprintf(&b, "  size: %d\n", rec.Size)
	fmt.Fprintf(&b, "  state: %d\n", rec.State)
	fmt.Fprintf(&b, "  last_update: %d\n", rec.LastUpdate)
	fmt.Fprintf(&b, "  access_token: %d\n", rec.AccessToken)
	fmt.Fprintf(&b, "  checksum: %s\n", rec.Checksum)
	fmt.Fprintf(&b, "  change_number: %d\n", rec.ChangeNumber)
	b.WriteString("  root:\n")
	writeNode(&b, rec.Root, 2)
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) Package(id uint32, rec vdf.PackageRecord) error {
	if p.enc != nil {
		return p.enc.Encode(Package(id, rec))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "package %d\n", id)
	fmt.Fprintf(&b, "  checksum: %s\n", rec.Checksum)
	fmt.Fprintf(&b, "  change_number: %d\n", rec.ChangeNumber)
	fmt.Fprintf(&b, "  opaque_token: %d\n", rec.OpaqueToken)
	b.WriteString("  root:\n")
	writeNode(&b, rec.Root, 2)
	_, err := io.WriteString(p.w, b.String())
	return err
}

// Lookup writes the result of a key-path query against record id.
func (p *Printer) Lookup(id uint32, keys []string, v vdf.Value, found bool) error {
	if p.enc != nil {
		view := LookupView{ID: id, Keys: keys, Found: found}
		if found {
			view.Value = Plain(v)
		}
		return p.enc.Encode(view)
	}
	var b strings.Builder
	switch n, isNode := v.(vdf.Node); {
	case !found:
		fmt.Fprintf(&b, "%d: not found\n", id)
	case isNode:
		fmt.Fprintf(&b, "%d:\n", id)
		writeNode(&b, n, 1)
	default:
		fmt.Fprintf(&b, "%d: %s\n", id, FormatValue(v))
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// FormatValue renders a value as type(value). Nodes only report their size.
func FormatValue(v vdf.Value) string {
	switch v := v.(type) {
	case vdf.Node:
		return fmt.Sprintf("node{%d keys}", len(v))
	case vdf.String:
		return "string(" + strconv.Quote(string(v)) + ")"
	case vdf.WideString:
		return "wstring(" + strconv.Quote(string(v)) + ")"
	case vdf.Int32:
		return fmt.Sprintf("int32(%d)", int32(v))
	case vdf.Pointer:
		return fmt.Sprintf("pointer(%d)", int32(v))
	case vdf.Color:
		return fmt.Sprintf("color(0x%08x)", uint32(v))
	case vdf.Uint64:
		return fmt.Sprintf("uint64(%d)", uint64(v))
	case vdf.Int64:
		return fmt.Sprintf("int64(%d)", int64(v))
	case vdf.Float32:
		return "float32(" + strconv.FormatFloat(float64(v), 'g', -1, 32) + ")"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func writeNode(b *strings.Builder, n vdf.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, k := range slices.Sorted(maps.Keys(n)) {
		if sub, ok := n[k].(vdf.Node); ok {
			fmt.Fprintf(b, "%s%s:\n", indent, strconv.Quote(k))
			writeNode(b, sub, depth+1)
			continue
		}
		fmt.Fprintf(b, "%s%s = %s\n", indent, strconv.Quote(k), FormatValue(n[k]))
	}
}
