// Package scaffold lays out a new Python package in a project directory.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
	"github.com/crocofactory/croco-cli/internal/naming"
	"github.com/crocofactory/croco-cli/internal/output"
	"github.com/crocofactory/croco-cli/internal/poetry"
	"github.com/crocofactory/croco-cli/internal/templates"
)

// Prompt texts.
const (
	DescriptionPrompt = "Enter the package description"
	OpenSourceNotice  = "The package will be configured as open-source package"
	OpenSourcePrompt  = "Agree?"
)

// Asker collects answers from the user.
type Asker interface {
	Echo(msg string)
	Input(label string) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// DependencyInstaller adds starter development dependencies.
type DependencyInstaller interface {
	InstallStarter(ctx context.Context, openSource bool) ([]poetry.Result, error)
}

// Options configures a scaffolding run.
type Options struct {
	// Dir is the project root. Its base name is the project name.
	Dir string

	// Author is stamped into the manifest, license, and README.
	Author templates.Author

	// Version is the initial package version.
	Version string

	// Python is the minimum Python MAJOR.MINOR.
	Python string

	// Year is the copyright year.
	Year int

	// Asker collects the description and open-source choice.
	Asker Asker

	// Installer adds dependencies after the manifest is written.
	Installer DependencyInstaller
}

// Result describes a finished (or partially finished) run.
type Result struct {
	// ProjectName is the base name of the project directory.
	ProjectName string

	// PackageName is the normalized package identifier.
	PackageName string

	// OpenSource is the user's open-source choice.
	OpenSource bool

	// Files lists created paths relative to Dir, in creation order.
	Files []string

	// Dependencies lists the package manager invocations.
	Dependencies []poetry.Result

	// Warnings lists problems with the derived package name.
	Warnings []string
}

// Identity derives the project and package names from a directory.
func Identity(dir string) (projectName, packageName string, err error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", fmt.Errorf("resolving project directory: %w", err)
	}

	projectName = filepath.Base(abs)
	packageName = naming.SnakeCase(projectName)
	if packageName == "" {
		return projectName, "", oerrors.NewValidationError(
			fmt.Sprintf("cannot derive a package name from directory %q", projectName),
			abs,
			"Run the command inside a directory whose name contains letters or digits.",
		)
	}

	return projectName, packageName, nil
}

// Run scaffolds the package: manifest, dependencies, folders, then README.
// The first failing step stops the run; files written before it are kept.
func Run(ctx context.Context, opts Options) (*Result, error) {
	projectName, packageName, err := Identity(opts.Dir)
	if err != nil {
		return nil, err
	}

	res := &Result{ProjectName: projectName, PackageName: packageName}
	if lost := naming.Dropped(projectName); lost != "" {
		res.Warnings = append(res.Warnings, fmt.Sprintf("characters %q have no ASCII form and were left out of package %s", lost, packageName))
	}
	if !naming.IsIdentifier(packageName) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("package %s is not importable from Python", packageName))
	}
	for _, w := range res.Warnings {
		output.Warn(w)
	}

	description, err := opts.Asker.Input(DescriptionPrompt)
	if err != nil {
		return res, err
	}

	opts.Asker.Echo(OpenSourceNotice)
	openSource, err := opts.Asker.Confirm(OpenSourcePrompt, false)
	if err != nil {
		return res, err
	}
	res.OpenSource = openSource

	renderer := templates.NewRenderer(templates.Data{
		ProjectName: projectName,
		PackageName: packageName,
		Description: description,
		Author:      opts.Author,
		OpenSource:  openSource,
		Version:     opts.Version,
		Python:      opts.Python,
		Year:        opts.Year,
	})
	writer := NewWriter(opts.Dir, renderer)

	output.Debug("scaffolding package",
		"project", projectName,
		"package", packageName,
		"open_source", openSource,
		"dir", opts.Dir,
	)

	if err := writer.WriteManifest(); err != nil {
		res.Files = writer.Created()
		return res, err
	}

	if opts.Installer != nil {
		deps, err := opts.Installer.InstallStarter(ctx, openSource)
		res.Dependencies = deps
		if err != nil {
			res.Files = writer.Created()
			return res, err
		}
	}

	if err := writer.InitializeFolders(); err != nil {
		res.Files = writer.Created()
		return res, err
	}

	if err := writer.WriteReadme(); err != nil {
		res.Files = writer.Created()
		return res, err
	}

	res.Files = writer.Created()
	return res, nil
}
