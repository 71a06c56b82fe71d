package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the active collection to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.transfer.ExportFile(args[0], a.store.Snapshot()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", a.store.Len(), args[0])
			return nil
		},
	}
}

func newImportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the active collection with a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			entries, err := a.transfer.ImportFile(args[0])
			if err != nil {
				return err
			}
			a.store.Replace(entries)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", len(entries), args[0])
			return nil
		},
	}
}
