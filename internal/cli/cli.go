// Package cli wires the cobra command tree for stabctl: flag parsing,
// logging setup, and dispatch into the driver (§4.8, §6.1).
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cwbudde/stabregion/internal/catalog"
)

// CLI encapsulates stabctl's command-line interface and its persistent
// flag values.
type CLI struct {
	version string

	system      string
	algorithm   string
	parallel    bool
	verboseData bool
	logLevel    string
	initialized bool

	rootCmd *cobra.Command
}

// New builds the full command tree for the given version string.
func New(version string) *CLI {
	c := &CLI{version: version, logLevel: "info"}
	c.setupCommands()
	return c
}

// Run executes the CLI and returns any error, matching cobra's contract.
func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:     "stabctl",
		Short:   "Certified stability-region search for parameter-dependent LTI systems",
		Version: c.version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initLogging()
		},
	}

	flags := c.rootCmd.PersistentFlags()
	flags.StringVarP(&c.system, "system", "s", "", "named system/configuration key")
	flags.StringVarP(&c.algorithm, "algorithm", "a", "", "line or region (required for data)")
	flags.BoolVarP(&c.parallel, "parallel", "p", false, "no effect: line and region runs always use the worker pool")
	flags.BoolVarP(&c.verboseData, "verbose-data", "v", false, "include auxiliary trace arrays (line segments)")
	flags.StringVarP(&c.logLevel, "loglevel", "l", "info", "log verbosity: debug, info, warn, error")

	c.rootCmd.AddCommand(c.newNuCommand())
	c.rootCmd.AddCommand(c.newDataCommand())
	c.rootCmd.AddCommand(c.newCustomCommand())
}

func (c *CLI) initLogging() error {
	if c.initialized {
		return nil
	}

	level, err := parseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("stabctl: %w", err)
	}
	c.initialized = true

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level, TimeFormat: "15:04:05"})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// parseLevel resolves the -l/--loglevel flag. An unrecognized level string
// is a configuration error (§A.3), not a silent fallback to info.
func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q: want debug, info, warn, or error", name)
	}
}

// parseAlgorithm resolves the -a/--algorithm flag, returning a
// configuration error for anything but "line" or "region".
func parseAlgorithm(s string) (catalog.Algorithm, error) {
	switch s {
	case "line":
		return catalog.AlgorithmLine, nil
	case "region":
		return catalog.AlgorithmRegion, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q: want line or region", s)
	}
}
