package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/joshuapare/inikit/pkg/types"
)

var (
	setType        string
	setSpaces      bool
	setNoMultiLine bool
	setMultiKey    bool
	setDryRun      bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "string", "Store the value as string, int or float")
	cmd.Flags().BoolVar(&setSpaces, "spaces", false, `Write "key = value" instead of "key=value"`)
	cmd.Flags().BoolVar(&setNoMultiLine, "no-multiline", false, "Flatten line breaks in values to spaces")
	cmd.Flags().BoolVar(&setMultiKey, "multikey", false, "Append another value to an existing key")
	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Print the result instead of saving it")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section|key> <value>",
		Short: "Set a value and save the file",
		Long: `The set command stores a value at "section|key" and saves the file.
The section is created when it does not exist.

Example:
  inictl set game.ini "Combat|damage" 20 --type int
  inictl set game.ini "Combat|speed" 1.5 --type float
  inictl set loot.ini "Chest|item" shield --multikey
  inictl set game.ini "Server|name" "My Module" --spaces --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	filePath := args[0]
	addr := args[1]
	raw := args[2]

	settings := types.DefaultSettings()
	settings.MultiKey = setMultiKey
	core, done, err := openFile(filePath, settings)
	if err != nil {
		return err
	}
	defer done()

	// Output style only; these do not change how the file was parsed.
	if err := core.SetSetting(docID, types.SettingUseSpaces, setSpaces); err != nil {
		return err
	}
	if err := core.SetSetting(docID, types.SettingMultiLine, !setNoMultiLine); err != nil {
		return err
	}

	if err := setValue(core, addr, raw); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if setDryRun {
		out, err := core.Render(docID)
		if err != nil {
			return err
		}
		printInfo("%s", out)
		return nil
	}

	if err := core.Save(docID); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	printVerbose("Saved %s\n", filePath)
	printInfo("%s %s = %s\n", okColor("set"), addr, raw)
	return nil
}

func setValue(core *ini.Core, addr, raw string) error {
	switch setType {
	case "string":
		return core.SetString(docID, addr, raw)
	case "int":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parse int %q: %w", raw, err)
		}
		return core.SetInt(docID, addr, v)
	case "float":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("parse float %q: %w", raw, err)
		}
		return core.SetFloat(docID, addr, v)
	}
	return fmt.Errorf("unknown type %q (want string, int or float)", setType)
}
