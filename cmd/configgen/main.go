package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/danmuck/vdfctl/internal/config"
	"github.com/danmuck/vdfctl/internal/logging"
)

const defaultPath = "vdfctl.toml"

func main() {
	output := pflag.String("output", defaultPath, "output path for config template")
	validate := pflag.Bool("validate", false, "validate an existing config file")
	input := pflag.String("input", defaultPath, "config path for validation")
	force := pflag.Bool("force", false, "overwrite existing config file")
	pflag.Parse()

	log := logging.Runtime(zerolog.InfoLevel, os.Stderr)

	if *validate {
		if _, err := config.Load(*input); err != nil {
			log.Fatal().Err(err).Msg("invalid config")
		}
		log.Info().Str("path", *input).Msg("validated vdfctl config")
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal().Err(err).Msg("write template")
	}
	log.Info().Str("path", *output).Msg("wrote vdfctl config template")
}
