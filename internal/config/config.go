package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/vdfctl/internal/logging"
	"github.com/danmuck/vdfctl/internal/render"
	"github.com/danmuck/vdfctl/internal/vdf"
)

const (
	DefaultAppPath     = "appinfo.vdf"
	DefaultPackagePath = "packageinfo.vdf"
)

// Config holds vdfctl settings. Command-line flags override it.
type Config struct {
	AppPath        string
	PackagePath    string
	Format         render.Format
	LogLevel       string
	MaxDepth       int
	MaxStringBytes int
}

type fileConfig struct {
	AppPath        string `toml:"app_path"`
	PackagePath    string `toml:"package_path"`
	Format         string `toml:"format"`
	LogLevel       string `toml:"log_level"`
	MaxDepth       int    `toml:"max_depth"`
	MaxStringBytes int    `toml:"max_string_bytes"`
}

func Default() Config {
	limits := vdf.DefaultLimits()
	return Config{
		AppPath:        DefaultAppPath,
		PackagePath:    DefaultPackagePath,
		Format:         render.FormatText,
		LogLevel:       "warn",
		MaxDepth:       limits.MaxDepth,
		MaxStringBytes: limits.MaxStringBytes,
	}
}

// Load reads a TOML file and applies the keys it defines over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("app_path") {
		cfg.AppPath = strings.TrimSpace(raw.AppPath)
	}
	if meta.IsDefined("package_path") {
		cfg.PackagePath = strings.TrimSpace(raw.PackagePath)
	}
	if meta.IsDefined("format") {
		f, err := render.ParseFormat(raw.Format)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Format = f
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("max_string_bytes") {
		cfg.MaxStringBytes = raw.MaxStringBytes
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.AppPath == "" {
		return fmt.Errorf("app_path must not be empty")
	}
	if cfg.PackagePath == "" {
		return fmt.Errorf("package_path must not be empty")
	}
	if _, err := render.ParseFormat(string(cfg.Format)); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("invalid log_level: %q", cfg.LogLevel)
	}
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", cfg.MaxDepth)
	}
	if cfg.MaxStringBytes <= 0 {
		return fmt.Errorf("max_string_bytes must be positive, got %d", cfg.MaxStringBytes)
	}
	return nil
}

func (c Config) Limits() vdf.Limits {
	return vdf.Limits{
		MaxDepth:       c.MaxDepth,
		MaxStringBytes: c.MaxStringBytes,
	}
}
