package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crocofactory/croco-cli/internal/output"
	"github.com/crocofactory/croco-cli/internal/poetry"
	"github.com/crocofactory/croco-cli/internal/prompt"
	"github.com/crocofactory/croco-cli/internal/scaffold"
	"github.com/crocofactory/croco-cli/internal/templates"
)

// NewInitPackageCmd creates the init package command.
func NewInitPackageCmd(gc *GlobalConfig) *cobra.Command {
	var (
		strictFlag bool
		dirFlag    string
	)

	c := &cobra.Command{
		Use:     "package",
		Aliases: []string{"_package", "pkg"},
		Short:   "Initialize the package directory",
		Long: `Initialize a Poetry-based Python package in the current directory.

The directory name is the project name; its snake_case form is the package
name. You are asked for a description and whether the package is open source.

Created files:
  pyproject.toml        Poetry manifest
  <package>/            utils, types, exceptions, globals, __init__ modules
  tests/__init__.py     Test package
  conftest.py           Pytest configuration
  LICENSE               MIT license
  README.md             Installation instructions

Existing files are overwritten. An existing package or tests directory stops
the run, leaving files created before it in place.

Examples:
  # Scaffold the package in the current directory
  croco init package

  # Stop when Poetry fails to add a dependency
  croco init package --strict`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInitPackage(c, gc, dirFlag, strictFlag)
		},
	}

	c.Flags().BoolVar(&strictFlag, "strict", false,
		"Stop when a dependency cannot be added (env: CROCO_INSTALL_STRICT)")
	c.Flags().StringVarP(&dirFlag, "dir", "d", "",
		"Project directory (defaults to the current directory)")

	return c
}

func runInitPackage(c *cobra.Command, gc *GlobalConfig, dir string, strict bool) error {
	cfg := gc.Config
	if err := cfg.Validate(gc.ConfigPath); err != nil {
		return err
	}

	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}

	policy := poetry.PolicyContinue
	if strict || cfg.Install.Strict {
		policy = poetry.PolicyHalt
	}

	output.Debug("dependency policy", "policy", policy.String(), "poetry", cfg.Install.Poetry)

	installer := &spinnerInstaller{
		inner: poetry.NewInstaller(gc.Runner,
			poetry.WithBinary(cfg.Install.Poetry),
			poetry.WithDir(absDir),
			poetry.WithPolicy(policy),
		),
	}

	out := c.OutOrStdout()
	res, err := scaffold.Run(c.Context(), scaffold.Options{
		Dir: absDir,
		Author: templates.Author{
			Name:  cfg.Author.Name,
			Login: cfg.Author.Login,
			Email: cfg.Author.Email,
		},
		Version:   cfg.Package.Version,
		Python:    cfg.Package.Python,
		Year:      gc.now().Year(),
		Asker:     prompt.New(c.InOrStdin(), out),
		Installer: installer,
	})
	if err != nil {
		if res != nil && len(res.Files) > 0 {
			fmt.Fprintf(out, "\n%s\n\n", output.FormatFailure("Stopped; files created before the failure were kept"))
			fmt.Fprint(out, renderCreated(res))
		}
		return err
	}

	for _, dep := range res.Dependencies {
		if !dep.OK() {
			fmt.Fprintln(out, output.FormatWarning(fmt.Sprintf("%s failed; add it manually", dep.Command)))
		}
	}

	fmt.Fprintf(out, "\n%s\n\n", output.FormatCheckmark(fmt.Sprintf("Initialized package %s in %s",
		output.StyleNoun.Render(res.PackageName), absDir)))
	fmt.Fprint(out, renderCreated(res))

	output.Info("package initialized",
		"package", res.PackageName,
		"open_source", res.OpenSource,
		"files", len(res.Files),
	)

	return nil
}

// renderCreated renders the files a run created as a tree.
func renderCreated(res *scaffold.Result) string {
	entries := make([]output.FileEntry, 0, len(res.Files))
	for _, f := range res.Files {
		entries = append(entries, output.FileEntry{
			Path:        f,
			Description: fileDescription(f, res.PackageName),
		})
	}
	return output.RenderFileTree(res.ProjectName, entries, output.DescriptionColumn)
}

// fileDescription returns a description for a created path.
func fileDescription(path, pkg string) string {
	descriptions := map[string]string{
		scaffold.ManifestFile:            "Poetry manifest",
		scaffold.ReadmeFile:              "Project overview",
		scaffold.LicenseFile:             "MIT license",
		scaffold.ConftestFile:            "Pytest configuration",
		scaffold.TestsDir + "/":          "Test suite",
		pkg + "/":                        "Package sources",
		pkg + "/" + scaffold.GlobalsFile: "Package globals",
		pkg + "/" + scaffold.InitFile:    "Package entry point",
	}

	if desc, ok := descriptions[path]; ok {
		return desc
	}
	if strings.HasPrefix(path, pkg+"/") {
		return "Module"
	}
	return ""
}

// spinnerInstaller shows a spinner while Poetry runs.
type spinnerInstaller struct {
	inner *poetry.Installer
}

func (s *spinnerInstaller) InstallStarter(ctx context.Context, openSource bool) ([]poetry.Result, error) {
	var results []poetry.Result
	title := fmt.Sprintf("Adding %s with poetry...", strings.Join(poetry.StarterDependencies(openSource), ", "))

	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var err error
		results, err = s.inner.InstallStarter(ctx, openSource)
		return err
	}, output.WithTitle(title))

	return results, err
}
