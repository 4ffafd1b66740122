// vdfctl prints records from Steam's binary appinfo.vdf and
// packageinfo.vdf catalogs.
//
//	vdfctl [--config FILE] [--format FMT] app [--path FILE] [--id N] [--keys a,b]
//	vdfctl [--config FILE] [--format FMT] pkg [--path FILE] [--id N] [--keys a,b]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "vdfctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath  string
		format      string
		logLevel    string
		showVersion bool
	)
	flagSet := pflag.NewFlagSet("vdfctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to a vdfctl TOML config")
	flagSet.StringVar(&format, "format", "", "output format: text|yaml|json|msgpack|cbor")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: trace|debug|info|warn|error|off")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if showVersion {
		fmt.Fprintf(stdout, "vdfctl %s\n", version)
		return nil
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return errors.New("missing command: app or pkg")
	}

	e, err := newEnv(configPath, flagSet, format, logLevel, stdout, stderr)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "app":
		return runCatalog(e, appCommand, rest[1:])
	case "pkg", "package":
		return runCatalog(e, packageCommand, rest[1:])
	default:
		printUsage(stderr, flagSet)
		return fmt.Errorf("unknown command: %s", rest[0])
	}
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: vdfctl [flags] <app|pkg> [--path FILE] [--id N] [--keys a,b,c]\n\nFlags:\n")
	fmt.Fprint(w, flagSet.FlagUsages())
}
