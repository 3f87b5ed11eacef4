// Package templates provides the embedded Python package templates and a pure renderer.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed python/*.tmpl
var pythonFS embed.FS

// Kind identifies one of the scaffolding templates.
type Kind string

const (
	// Manifest is the Poetry pyproject.toml.
	Manifest Kind = "manifest"

	// License is the MIT license text.
	License Kind = "license"

	// PackageInit is the package entry point carrying the module docstring.
	PackageInit Kind = "package-init"

	// Globals is the globals module defining PACKAGE_PATH.
	Globals Kind = "globals"

	// Conftest is the pytest configuration module.
	Conftest Kind = "conftest"

	// Readme is the README.md with installation instructions.
	Readme Kind = "readme"
)

// templateFiles maps each kind to its embedded file name.
var templateFiles = map[Kind]string{
	Manifest:    "manifest.toml.tmpl",
	License:     "license.tmpl",
	PackageInit: "package_init.py.tmpl",
	Globals:     "globals.py.tmpl",
	Conftest:    "conftest.py.tmpl",
	Readme:      "readme.md.tmpl",
}

var funcs = template.FuncMap{
	"toml":      tomlString,
	"docstring": docstring,
	"underline": underline,
}

var parsed = template.Must(template.New("python").Funcs(funcs).ParseFS(pythonFS, "python/*.tmpl"))

// Author identifies the package author.
type Author struct {
	// Name is the display name used in copyright lines and the authors list.
	Name string

	// Login is the GitHub login used to build repository URLs.
	Login string

	// Email is the contact address in the authors list.
	Email string
}

// Data contains the substitution values for every template.
type Data struct {
	// ProjectName is the raw repository directory name (e.g., "My Cool-Project").
	ProjectName string

	// PackageName is the normalized identifier (e.g., "my_cool_project").
	PackageName string

	// Description is the user-supplied package description.
	Description string

	// Author is the package author.
	Author Author

	// OpenSource selects PyPI installation instructions in the README.
	OpenSource bool

	// Version is the initial package version (e.g., "0.1.0").
	Version string

	// Python is the minimum Python MAJOR.MINOR (e.g., "3.11").
	Python string

	// Year is the copyright year.
	Year int
}

// RepositoryURL returns the GitHub URL of the project.
func (d Data) RepositoryURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", d.Author.Login, d.ProjectName)
}

// tomlString quotes s as a TOML literal string, or as an escaped basic
// string when s contains a single quote or control characters.
func tomlString(s string) string {
	literal := true
	for _, r := range s {
		if r == '\'' || r < 0x20 || r == 0x7f {
			literal = false
			break
		}
	}
	if literal {
		return "'" + s + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

var docstringEscaper = strings.NewReplacer(`\`, `\\`, `"""`, `\"\"\"`)

// docstring escapes s for a triple-quoted Python string: backslashes are
// doubled and triple quotes cannot terminate the literal.
func docstring(s string) string {
	return docstringEscaper.Replace(s)
}

// underline returns a reStructuredText underline at least as long as s.
func underline(s string) string {
	n := len([]rune(s))
	if n < 14 {
		n = 14
	}
	return strings.Repeat("~", n)
}
