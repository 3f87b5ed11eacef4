package templates

import (
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
)

func testData() Data {
	return Data{
		ProjectName: "My Cool-Project",
		PackageName: "my_cool_project",
		Description: "A demo tool",
		Author: Author{
			Name:  "Jane Doe",
			Login: "janedoe",
			Email: "jane@example.com",
		},
		OpenSource: true,
		Version:    "0.1.0",
		Python:     "3.11",
		Year:       2026,
	}
}

func TestRender_AllKinds(t *testing.T) {
	r := NewRenderer(testData())
	for kind := range templateFiles {
		t.Run(string(kind), func(t *testing.T) {
			out, err := r.Render(kind)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestRender_UnknownKind(t *testing.T) {
	_, err := NewRenderer(testData()).Render("setup-cfg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestRender_Manifest(t *testing.T) {
	out, err := NewRenderer(testData()).Render(Manifest)
	require.NoError(t, err)

	assert.Contains(t, out, "name = 'my_cool_project'")
	assert.Contains(t, out, "version = '0.1.0'")
	assert.Contains(t, out, "description = 'A demo tool'")
	assert.Contains(t, out, "authors = ['Jane Doe <jane@example.com>']")
	assert.Contains(t, out, "repository = 'https://github.com/janedoe/My Cool-Project'")
	assert.Contains(t, out, "homepage = 'https://github.com/janedoe/My Cool-Project'")
	assert.Contains(t, out, "'Programming Language :: Python :: 3.11'")
	assert.Contains(t, out, "packages = [{ include = 'my_cool_project' }]")
	assert.Contains(t, out, "python = '^3.11'")
	assert.Contains(t, out, "build-backend = 'poetry.core.masonry.api'")
}

func TestRender_ManifestDeterministic(t *testing.T) {
	first, err := NewRenderer(testData()).Render(Manifest)
	require.NoError(t, err)

	second, err := NewRenderer(testData()).Render(Manifest)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_ManifestEscapesQuotes(t *testing.T) {
	data := testData()
	data.Description = `Croco's "fast" tool`

	out, err := NewRenderer(data).Render(Manifest)
	require.NoError(t, err)

	var doc pyproject
	require.NoError(t, toml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, data.Description, doc.Tool.Poetry.Description)
}

func TestRender_ReadmeOpenSource(t *testing.T) {
	out, err := NewRenderer(testData()).Render(Readme)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# My Cool-Project\n"))
	assert.Contains(t, out, "A demo tool")
	assert.Contains(t, out, "https://github.com/janedoe/My Cool-Project/issues")
	assert.Contains(t, out, "# Installing My Cool-Project\nTo install `My Cool-Project` from PyPi")
	assert.Contains(t, out, "pip install My Cool-Project\n")
	assert.Contains(t, out, "pip install git+https://github.com/janedoe/My Cool-Project.git")
	assert.NotContains(t, out, "<TOKEN>")
}

func TestRender_ReadmeClosedSource(t *testing.T) {
	data := testData()
	data.OpenSource = false

	out, err := NewRenderer(data).Render(Readme)
	require.NoError(t, err)

	assert.Contains(t, out, "`<TOKEN>`")
	assert.Contains(t, out, "pip install git+https://<TOKEN>@github.com/janedoe/My Cool-Project.git")
	assert.NotContains(t, strings.ToLower(out), "pypi")
	assert.NotContains(t, out, "pip install My Cool-Project\n")
}

func TestRender_PackageInit(t *testing.T) {
	out, err := NewRenderer(testData()).Render(PackageInit)
	require.NoError(t, err)

	assert.Equal(t, `"""
My Cool-Project
~~~~~~~~~~~~~~~
A demo tool

:copyright: (c) 2026 by Jane Doe
:license: MIT, see LICENSE for more details.
"""
`, out)
}

func TestRender_PackageInitEscapesTripleQuotes(t *testing.T) {
	data := testData()
	data.Description = `ends with """ quotes`

	out, err := NewRenderer(data).Render(PackageInit)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, `"""`), "only the opening and closing quotes should remain")
}

func TestRender_PackageInitEscapesBackslashes(t *testing.T) {
	data := testData()
	data.Description = `Tools for C:\Users\x paths`

	out, err := NewRenderer(data).Render(PackageInit)
	require.NoError(t, err)
	assert.Contains(t, out, `Tools for C:\\Users\\x paths`)
	assert.NotContains(t, out, `C:\Users`)
}

func TestDocstring(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`a\b`, `a\\b`},
		{`say """hi"""`, `say \"\"\"hi\"\"\"`},
		{`\"""`, `\\\"\"\"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, docstring(tt.in), "docstring(%q)", tt.in)
	}
}

func TestRender_License(t *testing.T) {
	out, err := NewRenderer(testData()).Render(License)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "MIT License\n\nCopyright (c) 2026 Jane Doe\n"))
	assert.Contains(t, out, `THE SOFTWARE IS PROVIDED "AS IS"`)
}

func TestRender_FixedContent(t *testing.T) {
	r := NewRenderer(testData())

	globals, err := r.Render(Globals)
	require.NoError(t, err)
	assert.Equal(t, "import os\n\nPACKAGE_PATH = os.path.dirname(os.path.abspath(__file__))\n", globals)

	conftest, err := r.Render(Conftest)
	require.NoError(t, err)
	assert.Equal(t, "import pytest\n", conftest)
}

func TestTOMLString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "'plain'"},
		{"", "''"},
		{"it's", `"it's"`},
		{"line\nbreak", `"line\nbreak"`},
		{`back\slash 'q'`, `"back\\slash 'q'"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tomlString(tt.in))
		})
	}
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, strings.Repeat("~", 14), underline("short"))
	assert.Equal(t, strings.Repeat("~", 20), underline(strings.Repeat("x", 20)))
}
