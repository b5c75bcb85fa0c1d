package main

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/ini"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two files and show differences",
		Long: `The diff command compares two files line by line after reading both
into documents and writing them back out, so spacing around "=" and blank
lines do not count as differences. Comments and order do.

Example:
  inictl diff before.ini after.ini
  inictl diff before.ini after.ini --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

// DiffLine is one line of diff output.
type DiffLine struct {
	Op   string `json:"op"` // "=", "+" or "-"
	Text string `json:"text"`
}

func runDiff(args []string) error {
	core, err := newCore()
	if err != nil {
		return err
	}
	defer core.Shutdown()

	printVerbose("Comparing %s and %s...\n", args[0], args[1])

	before, err := normalized(core, "before", args[0])
	if err != nil {
		return err
	}
	after, err := normalized(core, "after", args[1])
	if err != nil {
		return err
	}

	lines := lineDiff(before, after)
	changed := 0
	for _, l := range lines {
		if l.Op != "=" {
			changed++
		}
	}

	if jsonOut {
		return printJSON(map[string]any{"changed": changed, "lines": lines})
	}
	if changed == 0 {
		printInfo("Files are identical\n")
		return nil
	}
	for _, l := range lines {
		switch l.Op {
		case "+":
			printInfo("%s\n", addColor("+"+l.Text))
		case "-":
			printInfo("%s\n", delColor("-"+l.Text))
		default:
			if verbose {
				printInfo(" %s\n", l.Text)
			}
		}
	}
	return nil
}

func normalized(core *ini.Core, id, path string) (string, error) {
	if err := core.Open(id, path); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	out, err := core.Render(id)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// lineDiff diffs a and b a whole line at a time.
func lineDiff(a, b string) []DiffLine {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		op := "="
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = "+"
		case diffmatchpatch.DiffDelete:
			op = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}
