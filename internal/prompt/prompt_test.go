package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
)

func TestInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  A demo tool  \n"), &out)

	got, err := p.Input("Enter the package description")
	require.NoError(t, err)
	assert.Equal(t, "A demo tool", got)
	assert.Equal(t, "Enter the package description: ", out.String())
}

func TestInput_RepromptsOnEmpty(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n   \nfinally\n"), &out)

	got, err := p.Input("Description")
	require.NoError(t, err)
	assert.Equal(t, "finally", got)
	assert.Equal(t, 3, strings.Count(out.String(), "Description: "))
}

func TestInput_LastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("no newline"), &bytes.Buffer{})

	got, err := p.Input("Description")
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestInput_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Input("Description")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrAborted))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"YES upper", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default false", "\n", false, false},
		{"empty uses default true", "\n", true, true},
		{"invalid then yes", "maybe\ny\n", false, true},
		{"answer without newline", "yes", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.Confirm("Agree?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_ShowsChoices(t *testing.T) {
	var out bytes.Buffer
	_, err := New(strings.NewReader("\n"), &out).Confirm("Agree?", false)
	require.NoError(t, err)
	assert.Equal(t, "Agree? [y/N]: ", out.String())
}

func TestConfirm_EOF(t *testing.T) {
	_, err := New(strings.NewReader(""), &bytes.Buffer{}).Confirm("Agree?", false)
	assert.True(t, errors.Is(err, oerrors.ErrAborted))
}

func TestEcho(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).Echo("The package will be configured as open-source package")
	assert.Equal(t, "The package will be configured as open-source package\n", out.String())
}
