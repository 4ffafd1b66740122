package vdf

import (
	"fmt"
	"io"
)

// DecodePackageCatalog reads a packageinfo.vdf stream up to and including
// the 0xFFFFFFFF id sentinel. On error no catalog is returned.
func DecodePackageCatalog(r io.Reader) (*PackageCatalog, error) {
	return DecodePackageCatalogWith(r, Options{})
}

func DecodePackageCatalogWith(r io.Reader, opts Options) (*PackageCatalog, error) {
	d := newDecoder(r, opts)
	version, universe, err := d.readHeader()
	if err != nil {
		return nil, err
	}

	cat := &PackageCatalog{
		Version:  version,
		Universe: universe,
		Records:  make(map[uint32]PackageRecord),
	}
	for {
		id, err := d.r.u32("package id")
		if err != nil {
			return nil, err
		}
		if id == PackageSentinel {
			break
		}
		rec, err := d.readPackageRecord()
		if err != nil {
			return nil, fmt.Errorf("package %d: %w", id, err)
		}
		d.log.Trace().Uint32("id", id).Uint32("change_number", rec.ChangeNumber).Int("keys", len(rec.Root)).Msg("package record")
		cat.Records[id] = rec
	}

	d.log.Debug().Int("records", len(cat.Records)).Int64("bytes", d.r.off).Msg("package catalog decoded")
	return cat, nil
}

func (d *decoder) readPackageRecord() (PackageRecord, error) {
	var (
		rec PackageRecord
		err error
	)
	if err = d.r.exact(rec.Checksum[:], "checksum"); err != nil {
		return PackageRecord{}, err
	}
	if rec.ChangeNumber, err = d.r.u32("change number"); err != nil {
		return PackageRecord{}, err
	}
	if rec.OpaqueToken, err = d.r.u64("opaque token"); err != nil {
		return PackageRecord{}, err
	}
	if rec.Root, err = d.readNode(Standard, 1); err != nil {
		return PackageRecord{}, err
	}
	return rec, nil
}
