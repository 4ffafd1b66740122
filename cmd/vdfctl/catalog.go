package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/danmuck/vdfctl/internal/config"
	"github.com/danmuck/vdfctl/internal/render"
	"github.com/danmuck/vdfctl/internal/source"
	"github.com/danmuck/vdfctl/internal/vdf"
)

// catalogCommand describes one subcommand over a catalog kind.
type catalogCommand[R vdf.Record] struct {
	name        string
	defaultPath func(config.Config) string
	decode      func(io.Reader, vdf.Options) (*vdf.Catalog[R], error)
	print       func(*render.Printer, uint32, R) error
	lookup      func(R, []string) (vdf.Value, bool)
}

var appCommand = catalogCommand[vdf.AppRecord]{
	name:        "app",
	defaultPath: func(c config.Config) string { return c.AppPath },
	decode:      vdf.DecodeAppCatalogWith,
	print:       (*render.Printer).App,
	lookup:      func(r vdf.AppRecord, keys []string) (vdf.Value, bool) { return r.Lookup(keys...) },
}

var packageCommand = catalogCommand[vdf.PackageRecord]{
	name:        "package",
	defaultPath: func(c config.Config) string { return c.PackagePath },
	decode:      vdf.DecodePackageCatalogWith,
	print:       (*render.Printer).Package,
	lookup:      func(r vdf.PackageRecord, keys []string) (vdf.Value, bool) { return r.Lookup(keys...) },
}

func runCatalog[R vdf.Record](e *env, cmd catalogCommand[R], args []string) error {
	var (
		path  string
		rawID string
		keys  []string
	)
	flagSet := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)
	flagSet.SetOutput(e.stderr)
	flagSet.StringVar(&path, "path", cmd.defaultPath(e.cfg), "catalog file (plain, zstd or lz4)")
	flagSet.StringVar(&rawID, "id", "", "only print the record with this id")
	flagSet.StringSliceVar(&keys, "keys", nil, "comma-separated key path to print from each record")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("%s: unexpected argument %q", cmd.name, flagSet.Arg(0))
	}
	keys = normalizeKeys(keys)

	var (
		id    uint32
		hasID = flagSet.Changed("id")
	)
	if hasID {
		v, err := strconv.ParseUint(strings.TrimSpace(rawID), 10, 32)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", rawID, err)
		}
		id = uint32(v)
	}

	cat, err := loadCatalog(e, cmd, path)
	if err != nil {
		return err
	}

	printer, err := render.NewPrinter(e.stdout, e.cfg.Format)
	if err != nil {
		return err
	}

	ids := cat.IDs()
	if hasID {
		if _, ok := cat.Get(id); !ok {
			return fmt.Errorf("%s with id %d not found", cmd.name, id)
		}
		ids = []uint32{id}
	}
	for _, rid := range ids {
		rec := cat.Records[rid]
		if len(keys) > 0 {
			v, found := cmd.lookup(rec, keys)
			err = printer.Lookup(rid, keys, v, found)
		} else {
			err = cmd.print(printer, rid, rec)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return printer.Close()
}

func loadCatalog[R vdf.Record](e *env, cmd catalogCommand[R], path string) (*vdf.Catalog[R], error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	e.log.Debug().Str("path", path).Stringer("compression", r.Compression).Msg("opened catalog")

	cat, err := cmd.decode(r, vdf.Options{Limits: e.cfg.Limits(), Logger: &e.log})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	e.log.Info().Str("kind", cmd.name).Int("records", cat.Len()).Uint32("universe", cat.Universe).Msg("catalog loaded")
	return cat, nil
}

func normalizeKeys(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
