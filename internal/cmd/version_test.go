package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	clearCrocoEnv(t)
	path := writeConfig(t, authorConfig)

	out, err := executeRoot(t, &GlobalConfig{}, "", "--config", path, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "croco version")
	assert.Contains(t, out, "Go:")
}
