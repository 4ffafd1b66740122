package vdf

import (
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
)

// Sentinel record ids that end the record stream.
const (
	AppSentinel     uint32 = 0
	PackageSentinel uint32 = 0xFFFFFFFF
)

// Checksum is the 20-byte digest stored with every record, kept verbatim.
type Checksum [20]byte

func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

// AppRecord is one entry of appinfo.vdf.
type AppRecord struct {
	Size         uint32
	State        uint32
	LastUpdate   uint32
	AccessToken  uint64
	Checksum     Checksum
	ChangeNumber uint32
	Root         Node
}

func (a AppRecord) Lookup(keys ...string) (Value, bool) {
	return Lookup(a.Root, keys)
}

// PackageRecord is one entry of packageinfo.vdf. OpaqueToken is an
// 8-byte field of unknown meaning, preserved as read.
type PackageRecord struct {
	Checksum     Checksum
	ChangeNumber uint32
	OpaqueToken  uint64
	Root         Node
}

func (p PackageRecord) Lookup(keys ...string) (Value, bool) {
	return Lookup(p.Root, keys)
}

type Record interface {
	AppRecord | PackageRecord
}

// Catalog is a fully decoded file: header plus records keyed by id.
type Catalog[R Record] struct {
	Version  uint32
	Universe uint32
	Records  map[uint32]R
}

type (
	AppCatalog     = Catalog[AppRecord]
	PackageCatalog = Catalog[PackageRecord]
)

func (c *Catalog[R]) Len() int {
	return len(c.Records)
}

func (c *Catalog[R]) Get(id uint32) (R, bool) {
	rec, ok := c.Records[id]
	return rec, ok
}

// IDs returns the record ids in ascending order.
func (c *Catalog[R]) IDs() []uint32 {
	return slices.Sorted(maps.Keys(c.Records))
}

func (d *decoder) readHeader() (version, universe uint32, err error) {
	if version, err = d.r.u32("version"); err != nil {
		return 0, 0, err
	}
	if universe, err = d.r.u32("universe"); err != nil {
		return 0, 0, err
	}
	d.log.Debug().
		Str("version", fmt.Sprintf("0x%08x", version)).
		Uint32("universe", universe).
		Msg("catalog header")
	return version, universe, nil
}
