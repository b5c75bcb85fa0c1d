package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/types"
)

var (
	getType string
	getAll  bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getType, "type", "string", "Read the value as string, int or float")
	cmd.Flags().BoolVar(&getAll, "all", false, "Print every value of a repeated key")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <section|key>",
		Short: "Get a single value",
		Long: `The get command prints the value stored at "section|key".

Numbers are read leniently: leading digits count, anything after them is
ignored, and text with no leading digits reads as 0.

Example:
  inictl get game.ini "Combat|damage"
  inictl get game.ini "Combat|damage" --type int
  inictl get loot.ini "Chest|item" --all`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	filePath := args[0]
	addr := args[1]

	settings := types.DefaultSettings()
	settings.MultiKey = getAll
	core, done, err := openFile(filePath, settings)
	if err != nil {
		return err
	}
	defer done()

	if getAll {
		values, err := core.Values(docID, addr)
		if err != nil {
			return fmt.Errorf("failed to get value: %w", err)
		}
		if jsonOut {
			return printJSON(map[string]any{"address": addr, "values": values})
		}
		for _, v := range values {
			printInfo("%s\n", v)
		}
		return nil
	}

	var value any
	switch getType {
	case "string":
		value, err = core.String(docID, addr)
	case "int":
		value, err = core.Int(docID, addr)
	case "float":
		value, err = core.Float(docID, addr)
	default:
		return fmt.Errorf("unknown type %q (want string, int or float)", getType)
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"address": addr, "type": getType, "value": value})
	}
	printInfo("%v\n", value)
	return nil
}
