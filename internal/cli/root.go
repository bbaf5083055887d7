// Package cli implements the larder command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the larder command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "larder",
		Short:         "Recipe store and serving-size tools",
		SilenceUsage:  true,
	}
	root.AddCommand(NewScaleCommand())
	root.AddCommand(NewMigrateCommand())
	root.AddCommand(NewSeedCommand())
	return root
}
