package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crocofactory/croco-cli/internal/config"
	oerrors "github.com/crocofactory/croco-cli/internal/errors"
	"github.com/crocofactory/croco-cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *GlobalConfig) *cobra.Command {
	var (
		forceFlag bool
		nameFlag  string
		loginFlag string
		emailFlag string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the croco CLI configuration.

Creates ~/.croco/config.yaml (or the path given by --config / CROCO_CONFIG)
with the author identity and package defaults used by 'croco init package'.

Examples:
  # Initialize configuration with your author identity
  croco config init --name "Jane Doe" --login janedoe --email jane@example.com

  # Overwrite existing configuration
  croco config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := config.DefaultConfig()
			cfg.Author = config.AuthorConfig{Name: nameFlag, Login: loginFlag, Email: emailFlag}
			return runConfigInit(c, gc, cfg, forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing configuration")
	cmd.Flags().StringVar(&nameFlag, "name", "", "Author display name")
	cmd.Flags().StringVar(&loginFlag, "login", "", "Author GitHub login")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Author email")

	return cmd
}

func runConfigInit(c *cobra.Command, gc *GlobalConfig, cfg *config.Config, force bool) error {
	path := gc.ConfigPath
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := cfg.ValidatePackage(path); err != nil {
		return err
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	// Directories 0700, files 0600.
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return writeError("could not create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return writeError("could not write", path, err)
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+path))
	if err := cfg.ValidateAuthor(path); err != nil {
		output.Warn("author identity is incomplete; edit the file before running 'croco init package'")
	}

	return nil
}

// writeError keeps the filesystem error and tags permission failures.
func writeError(action, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		err = errors.Join(oerrors.ErrPermission, err)
	}
	return fmt.Errorf("%s %s: %w", action, path, err)
}
