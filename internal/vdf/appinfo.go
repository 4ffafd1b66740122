package vdf

import (
	"fmt"
	"io"
)

// DecodeAppCatalog reads an appinfo.vdf stream up to and including the
// zero id sentinel. On error no catalog is returned.
func DecodeAppCatalog(r io.Reader) (*AppCatalog, error) {
	return DecodeAppCatalogWith(r, Options{})
}

func DecodeAppCatalogWith(r io.Reader, opts Options) (*AppCatalog, error) {
	d := newDecoder(r, opts)
	version, universe, err := d.readHeader()
	if err != nil {
		return nil, err
	}

	cat := &AppCatalog{
		Version:  version,
		Universe: universe,
		Records:  make(map[uint32]AppRecord),
	}
	for {
		id, err := d.r.u32("app id")
		if err != nil {
			return nil, err
		}
		if id == AppSentinel {
			break
		}
		rec, err := d.readAppRecord()
		if err != nil {
			return nil, fmt.Errorf("app %d: %w", id, err)
		}
		d.log.Trace().Uint32("id", id).Uint32("change_number", rec.ChangeNumber).Int("keys", len(rec.Root)).Msg("app record")
		cat.Records[id] = rec
	}

	d.log.Debug().Int("records", len(cat.Records)).Int64("bytes", d.r.off).Msg("app catalog decoded")
	return cat, nil
}

func (d *decoder) readAppRecord() (AppRecord, error) {
	var (
		rec AppRecord
		err error
	)
	if rec.Size, err = d.r.u32("size"); err != nil {
		return AppRecord{}, err
	}
	if rec.State, err = d.r.u32("state"); err != nil {
		return AppRecord{}, err
	}
	if rec.LastUpdate, err = d.r.u32("last update"); err != nil {
		return AppRecord{}, err
	}
	if rec.AccessToken, err = d.r.u64("access token"); err != nil {
		return AppRecord{}, err
	}
	if err = d.r.exact(rec.Checksum[:], "checksum"); err != nil {
		return AppRecord{}, err
	}
	if rec.ChangeNumber, err = d.r.u32("change number"); err != nil {
		return AppRecord{}, err
	}
	if rec.Root, err = d.readNode(Standard, 1); err != nil {
		return AppRecord{}, err
	}
	return rec, nil
}
