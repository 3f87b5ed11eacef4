// Package cmd provides CLI command implementations.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/crocofactory/croco-cli/internal/config"
	"github.com/crocofactory/croco-cli/internal/output"
	"github.com/crocofactory/croco-cli/internal/poetry"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is passed explicitly into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration.
	Config *config.Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// Verbose enables debug logging.
	Verbose bool

	// Runner runs package manager commands. Nil uses os/exec.
	Runner poetry.Runner

	// Now returns the current time. Nil uses time.Now.
	Now func() time.Time
}

func (g *GlobalConfig) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// NewRootCmd creates the root command for the croco CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&GlobalConfig{})
}

func newRootCmd(gc *GlobalConfig) *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "croco",
		Short: "Croco Factory developer CLI",
		Long: `croco scaffolds Python packages for Croco Factory projects.

It provides commands to:
  - Initialize a Poetry-based package in the current directory
  - Manage the author identity stamped into generated files`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, gc, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CROCO_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, gc *GlobalConfig, configFlag string, verbose, timestamps bool) error {
	logCfg := output.LogConfig{Verbose: verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	}
	output.SetupLogging(logCfg)

	loader := config.NewLoader()
	cfg, err := loader.Load(configFlag)
	if err != nil {
		return err
	}

	gc.Config = cfg
	gc.ConfigPath = loader.ConfigFileUsed()
	gc.Verbose = verbose

	output.Debug("initializing CLI",
		"config", gc.ConfigPath,
		"author", cfg.Author.Login,
		"poetry", cfg.Install.Poetry,
		"strict", cfg.Install.Strict,
	)

	return nil
}
