package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/danmuck/vdfctl/internal/config"
	"github.com/danmuck/vdfctl/internal/logging"
	"github.com/danmuck/vdfctl/internal/render"
)

// env is the resolved per-invocation state shared by the subcommands.
type env struct {
	cfg    config.Config
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

// newEnv loads the optional config file and applies global flag overrides.
func newEnv(configPath string, flagSet *pflag.FlagSet, format, logLevel string, stdout, stderr io.Writer) (*env, error) {
	cfg := config.Default()
	if path := strings.TrimSpace(configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagSet.Changed("format") {
		f, err := render.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		cfg.Format = f
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		return nil, fmt.Errorf("invalid log level: %q", cfg.LogLevel)
	}

	return &env{
		cfg:    cfg,
		log:    logging.Runtime(level, stderr),
		stdout: stdout,
		stderr: stderr,
	}, nil
}
