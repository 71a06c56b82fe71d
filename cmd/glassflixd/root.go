package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "glassflixd",
		Short:         "Personal media tracking service",
		Long:          "glassflixd tracks what you want to watch and what you have seen, derives an upcoming-release agenda from your watchlist, and serves it all over a local HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "glassflix.toml", "path to the TOML configuration file")

	root.AddCommand(newServeCommand(&configPath))
	root.AddCommand(newExportCommand(&configPath))
	root.AddCommand(newImportCommand(&configPath))
	return root
}
