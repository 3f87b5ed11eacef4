package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration",
		Long: `Show the configuration after merging the config file and
CROCO_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			content, err := yaml.Marshal(gc.Config)
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", gc.ConfigPath)
			fmt.Fprint(out, string(content))
			return nil
		},
	}
}
