// patterns is a terminal drag-and-drop puzzle: complete the AA-BB-AA-BB
// color sequence by dragging blocks into the empty slots with the mouse.
//
// Usage:
//
//	patterns play            - Play in the current terminal
//	patterns serve           - Start SSH server for remote play
//	patterns palette         - List the configured colors
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--fps <rate>       - Set tick rate (default: from config, 60)
//	--seed <value>     - Set RNG seed for reproducible levels
//	--log-file <path>  - Append logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Patterns - complete the AA-BB-AA-BB sequence in your terminal",
	Long: `Patterns is a mouse-driven puzzle for the terminal. Each level shows
a row of eight slots colored A A B B A A with the last two left empty.
Drag the right colored blocks into them to finish the sequence.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  palette  - Show the configured colors

Examples:
  patterns play
  patterns play --seed 42
  patterns serve --ssh :2222
  patterns palette --config ./my-patterns.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(paletteCmd)
}

// newLogger builds the logger for a command. Without --log-file the
// fallback writer is used.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}
