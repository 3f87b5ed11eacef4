package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
	"github.com/crocofactory/croco-cli/internal/output"
	"github.com/crocofactory/croco-cli/internal/templates"
)

// Created file names.
const (
	ManifestFile = "pyproject.toml"
	ReadmeFile   = "README.md"
	LicenseFile  = "LICENSE"
	ConftestFile = "conftest.py"
	TestsDir     = "tests"
	InitFile     = "__init__.py"
	GlobalsFile  = "globals.py"
)

// emptyModules are created without content inside the package directory.
var emptyModules = []string{"utils.py", "types.py", "exceptions.py"}

// Writer creates the project tree below a root directory.
//
// Paths are joined onto root, so the process working directory is never
// changed. Directories are created exclusively and an existing directory
// stops the run with a conflict error; files are created or truncated.
// Nothing is rolled back on failure.
type Writer struct {
	root     string
	renderer *templates.Renderer
	created  []string
}

// NewWriter creates a Writer for root that renders content with r.
func NewWriter(root string, r *templates.Renderer) *Writer {
	return &Writer{root: root, renderer: r}
}

// Created returns the slash-separated paths created so far, in creation
// order. Directories carry a trailing slash.
func (w *Writer) Created() []string {
	return append([]string(nil), w.created...)
}

// WriteManifest writes pyproject.toml.
func (w *Writer) WriteManifest() error {
	return w.writeTemplate(ManifestFile, templates.Manifest)
}

// InitializeFolders creates the package and tests directories, conftest.py
// and LICENSE, in that order.
func (w *Writer) InitializeFolders() error {
	pkg := w.renderer.Data().PackageName

	if err := w.mkdir(pkg); err != nil {
		return err
	}
	for _, name := range emptyModules {
		if err := w.writeFile(filepath.Join(pkg, name), ""); err != nil {
			return err
		}
	}
	if err := w.writeTemplate(filepath.Join(pkg, GlobalsFile), templates.Globals); err != nil {
		return err
	}
	if err := w.writeTemplate(filepath.Join(pkg, InitFile), templates.PackageInit); err != nil {
		return err
	}

	if err := w.mkdir(TestsDir); err != nil {
		return err
	}
	if err := w.writeFile(filepath.Join(TestsDir, InitFile), ""); err != nil {
		return err
	}

	if err := w.writeTemplate(ConftestFile, templates.Conftest); err != nil {
		return err
	}
	return w.writeTemplate(LicenseFile, templates.License)
}

// WriteReadme writes README.md.
func (w *Writer) WriteReadme() error {
	return w.writeTemplate(ReadmeFile, templates.Readme)
}

func (w *Writer) writeTemplate(rel string, kind templates.Kind) error {
	content, err := w.renderer.Render(kind)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", rel, err)
	}
	return w.writeFile(rel, content)
}

func (w *Writer) mkdir(rel string) error {
	path := filepath.Join(w.root, rel)

	if err := os.Mkdir(path, 0o755); err != nil {
		return pathError(rel, err)
	}

	output.Debug("created directory", "path", rel)
	w.created = append(w.created, filepath.ToSlash(rel)+"/")
	return nil
}

// writeFile creates or truncates rel and syncs it before closing, so the
// file is complete on disk once writeFile returns.
func (w *Writer) writeFile(rel, content string) error {
	path := filepath.Join(w.root, rel)

	f, err := os.Create(path)
	if err != nil {
		return pathError(rel, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", rel, err)
	}

	output.Debug("created file", "path", rel, "bytes", len(content))
	w.created = append(w.created, filepath.ToSlash(rel))
	return nil
}

// pathError maps filesystem failures onto the CLI's error categories.
func pathError(rel string, err error) error {
	switch {
	case errors.Is(err, fs.ErrExist):
		return oerrors.NewConflictError(rel, err)
	case errors.Is(err, fs.ErrPermission):
		return &oerrors.DetailError{
			Type:     "permission denied",
			Message:  fmt.Sprintf("cannot create %s: %v", rel, err),
			Location: rel,
			Hint:     "Check write permissions on the project directory.",
			Cause:    errors.Join(oerrors.ErrPermission, err),
		}
	default:
		return fmt.Errorf("creating %s: %w", rel, err)
	}
}
