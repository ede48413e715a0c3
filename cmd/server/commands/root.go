// Package commands holds the server CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var envFiles []string

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "restful",
		Short:        "Resource-oriented HTTP service for the user directory",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before the environment")

	root.AddCommand(serveCmd(), routesCmd())
	return root
}
