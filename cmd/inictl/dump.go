package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/joshuapare/inikit/pkg/types"
)

var dumpYAML bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpYAML, "yaml", false, "Output in YAML format")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every section, key and value",
		Long: `The dump command prints the whole file. Repeated keys keep all of
their values.

Example:
  inictl dump game.ini
  inictl dump game.ini --json
  inictl dump game.ini --yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

// DumpSection is one section in dump output.
type DumpSection struct {
	Name string    `json:"name" yaml:"name"`
	Keys []DumpKey `json:"keys,omitempty" yaml:"keys,omitempty"`
}

// DumpKey is one key with every value stored under it.
type DumpKey struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

func runDump(args []string) error {
	settings := types.DefaultSettings()
	settings.MultiKey = true
	core, done, err := openFile(args[0], settings)
	if err != nil {
		return err
	}
	defer done()

	sections, err := collect(core)
	if err != nil {
		return err
	}

	switch {
	case jsonOut:
		return printJSON(sections)
	case dumpYAML:
		out, err := yaml.Marshal(sections)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	for i, s := range sections {
		if i > 0 {
			printInfo("\n")
		}
		printInfo("%s\n", sectionColor("["+s.Name+"]"))
		for _, k := range s.Keys {
			for _, v := range k.Values {
				printInfo("%s=%s\n", keyColor(k.Name), v)
			}
		}
	}
	return nil
}

// collect walks the open document into dump form.
func collect(core *ini.Core) ([]DumpSection, error) {
	names, err := core.Sections(docID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	sections := make([]DumpSection, 0, len(names))
	for _, name := range names {
		keys, err := core.Keys(docID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to list keys of [%s]: %w", name, err)
		}
		sec := DumpSection{Name: name}
		for _, key := range keys {
			values, err := core.Values(docID, name+"|"+key)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s|%s: %w", name, key, err)
			}
			if values == nil {
				values = []string{}
			}
			sec.Keys = append(sec.Keys, DumpKey{Name: key, Values: values})
		}
		sections = append(sections, sec)
	}
	return sections, nil
}
