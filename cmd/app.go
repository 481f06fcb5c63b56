// Package cmd implements the hw01 command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/etnz/hw01"
	"github.com/google/subcommands"
)

// Commands are the hw01 subcommands. A main package registers them.
var Commands = []subcommands.Command{
	&stocksCmd{},
	&weatherCmd{},
	&compareCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "hw01.yaml", "Path to a YAML file of flag defaults. A missing file is ignored. Env: "+EnvConfig)
var delimiter = flag.String("delimiter", ",", "Field delimiter of the CSV files (a single character, or \\t)")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose logging on stderr")

// configPath is the configuration file in use, resolved by Init.
var configPath string

// cfg holds the defaults of the subcommand flags, loaded by Init.
var cfg = DefaultConfig()

// stdout receives the results of the commands.
var stdout io.Writer = os.Stdout

// errUsage marks errors due to invalid arguments.
var errUsage = errors.New("usage error")

// Init installs the default logger and loads the configuration. It must be
// called once the global flags are parsed, before executing a subcommand.
func Init() error {
	level := slog.LevelInfo
	if *Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if _, err := comma(); err != nil {
		return err
	}

	configPath = *configFile
	if v := os.Getenv(EnvConfig); v != "" && !isFlagSet("config") {
		configPath = v
	}
	c, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = c
	slog.Debug("configuration loaded", "path", configPath)
	return nil
}

// isFlagSet reports whether a global flag was explicitly set.
func isFlagSet(name string) (set bool) {
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// comma returns the CSV delimiter.
func comma() (rune, error) {
	d := *delimiter
	if d == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(d)
	if r == utf8.RuneError || size != len(d) {
		return 0, fmt.Errorf("%w: -delimiter must be a single character, got %q", errUsage, d)
	}
	return r, nil
}

// readOptions returns the options to read CSV files.
func readOptions() hw01.ReadOptions {
	r, _ := comma()
	return hw01.ReadOptions{Comma: r}
}

// ExitStatus reports err on stderr and returns the exit status matching it.
func ExitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
