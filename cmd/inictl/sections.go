package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newKeysCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List the sections of a file",
		Long: `The sections command lists section names in file order.

Example:
  inictl sections game.ini
  inictl sections game.ini --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
	return cmd
}

func runSections(args []string) error {
	core, done, err := openFile(args[0], types.DefaultSettings())
	if err != nil {
		return err
	}
	defer done()

	sections, err := core.Sections(docID)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	if jsonOut {
		if sections == nil {
			sections = []string{}
		}
		return printJSON(sections)
	}
	for _, s := range sections {
		printInfo("%s\n", sectionColor(s))
	}
	printVerbose("%d section(s)\n", len(sections))
	return nil
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file> <section>",
		Short: "List the keys of a section",
		Long: `The keys command lists the key names of one section in file order.

Example:
  inictl keys game.ini Combat
  inictl keys game.ini Combat --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	core, done, err := openFile(args[0], types.DefaultSettings())
	if err != nil {
		return err
	}
	defer done()

	keys, err := core.Keys(docID, args[1])
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	if jsonOut {
		if keys == nil {
			keys = []string{}
		}
		return printJSON(keys)
	}
	for _, k := range keys {
		printInfo("%s\n", keyColor(k))
	}
	return nil
}
