package cmd

import (
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command group.
func NewInitCmd(gc *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize python packages and projects",
		Long:  `Commands for scaffolding new Python packages and projects.`,
	}

	cmd.AddCommand(NewInitPackageCmd(gc))

	return cmd
}
