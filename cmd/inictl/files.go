package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newDeleteCmd())
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Create a new empty file",
		Long: `The create command creates an empty file. It fails if the file exists.

Example:
  inictl create new.ini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	return cmd
}

func runCreate(args []string) error {
	core, err := newCore()
	if err != nil {
		return err
	}
	if err := core.Create(args[0]); err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	printInfo("%s %s\n", okColor("created"), args[0])
	return nil
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file>",
		Short: "Delete a file",
		Long: `The delete command removes a file. It fails if the file does not exist.

Example:
  inictl delete old.ini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	core, err := newCore()
	if err != nil {
		return err
	}
	if err := core.Delete(args[0]); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	printInfo("%s %s\n", delColor("deleted"), args[0])
	return nil
}
