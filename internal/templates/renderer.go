package templates

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
)

// Renderer renders scaffolding templates with a fixed set of values.
// Rendering has no side effects.
type Renderer struct {
	data Data
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data Data) *Renderer {
	return &Renderer{data: data}
}

// Data returns the values the renderer substitutes.
func (r *Renderer) Data() Data {
	return r.data
}

// Render renders the template of the given kind and returns its content.
func (r *Renderer) Render(kind Kind) (string, error) {
	name, ok := templateFiles[kind]
	if !ok {
		return "", oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("unknown template kind %q", kind))
	}

	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, name, r.data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	if kind == Manifest {
		if err := r.checkManifest(buf.Bytes()); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}

// pyproject is the subset of pyproject.toml checked after rendering.
type pyproject struct {
	Tool struct {
		Poetry struct {
			Name        string   `toml:"name"`
			Version     string   `toml:"version"`
			Description string   `toml:"description"`
			Authors     []string `toml:"authors"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// checkManifest parses the rendered manifest back and confirms it carries
// the values it was rendered from.
func (r *Renderer) checkManifest(content []byte) error {
	var doc pyproject
	if err := toml.Unmarshal(content, &doc); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("rendered manifest is not valid TOML: %v", err),
			Location: "pyproject.toml",
			Cause:    oerrors.ErrValidation,
		}
	}

	poetry := doc.Tool.Poetry
	if poetry.Name != r.data.PackageName || poetry.Description != r.data.Description {
		return oerrors.NewValidationError(
			"rendered manifest does not match package metadata",
			"pyproject.toml",
			"Check the project name and description for unsupported characters.",
		)
	}

	return nil
}
