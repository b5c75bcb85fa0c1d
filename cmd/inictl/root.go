package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/joshuapare/inikit/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "inictl",
	Short: "Inspect and edit INI files the way the xp_ini plugin does",
	Long: `inictl reads and writes INI files through the same document layer the
xp_ini server plugin uses. Values are addressed as "section|key", sections and
keys are case-sensitive, and numbers are read with the plugin's lenient rules,
so what inictl prints is what a game script would see.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, color.RedString("Error: ")+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// newCore returns a Core that logs to stderr in verbose mode.
func newCore() (*ini.Core, error) {
	var w io.Writer = io.Discard
	if verbose && !quiet {
		w = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ini.Initialize(ini.Options{Logger: log})
}

// docID is the id every command opens its file under.
const docID = "inictl"

// openFile opens path under docID. The returned func releases the core.
func openFile(path string, settings types.Settings) (*ini.Core, func(), error) {
	core, err := newCore()
	if err != nil {
		return nil, nil, err
	}
	printVerbose("Opening file: %s\n", path)
	if err := core.OpenWith(docID, path, settings); err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return core, func() { core.Shutdown() }, nil
}
