package config

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
)

const initHint = "Run 'croco config init --name <name> --login <login> --email <email>' or set CROCO_AUTHOR_* variables."

// ValidateAuthor checks that the author identity is complete.
func (c *Config) ValidateAuthor(location string) error {
	var missing []string
	if strings.TrimSpace(c.Author.Name) == "" {
		missing = append(missing, "author.name")
	}
	if strings.TrimSpace(c.Author.Login) == "" {
		missing = append(missing, "author.login")
	}
	if strings.TrimSpace(c.Author.Email) == "" {
		missing = append(missing, "author.email")
	}
	if len(missing) > 0 {
		return oerrors.NewValidationError(
			fmt.Sprintf("missing author configuration: %s", strings.Join(missing, ", ")),
			location,
			initHint,
		)
	}

	if _, err := mail.ParseAddress(c.Author.Email); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid author.email %q: %v", c.Author.Email, err),
			location,
			initHint,
		)
	}

	if strings.ContainsAny(c.Author.Login, " /") {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid author.login %q: must not contain spaces or slashes", c.Author.Login),
			location,
			"Use your GitHub login, e.g. 'octocat'.",
		)
	}

	return nil
}

// ValidatePackage checks the package defaults.
func (c *Config) ValidatePackage(location string) error {
	if _, err := semver.StrictNewVersion(c.Package.Version); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid package.version %q: %v", c.Package.Version, err),
			location,
			"Use a semantic version such as 0.1.0.",
		)
	}

	if err := validatePython(c.Package.Python); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid package.python %q: %v", c.Package.Python, err),
			location,
			"Use a Python 3 MAJOR.MINOR version such as 3.11.",
		)
	}

	return nil
}

// Validate runs every check needed before scaffolding.
func (c *Config) Validate(location string) error {
	if err := c.ValidateAuthor(location); err != nil {
		return err
	}
	return c.ValidatePackage(location)
}

// validatePython accepts MAJOR.MINOR versions of Python 3 or later.
func validatePython(v string) error {
	if strings.Count(v, ".") != 1 {
		return fmt.Errorf("expected MAJOR.MINOR")
	}

	parsed, err := semver.NewVersion(v)
	if err != nil {
		return err
	}

	minimum, err := semver.NewConstraint(">= 3.0")
	if err != nil {
		return err
	}
	if !minimum.Check(parsed) {
		return fmt.Errorf("python 3 or later is required")
	}

	return nil
}
