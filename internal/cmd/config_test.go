package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crocofactory/croco-cli/internal/config"
	oerrors "github.com/crocofactory/croco-cli/internal/errors"
)

func TestConfigInit_WritesFile(t *testing.T) {
	clearCrocoEnv(t)
	path := filepath.Join(t.TempDir(), ".croco", "config.yaml")

	out, err := executeRoot(t, &GlobalConfig{}, "",
		"--config", path, "config", "init",
		"--name", "Jane Doe", "--login", "janedoe", "--email", "jane@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(content, &cfg))
	assert.Equal(t, "Jane Doe", cfg.Author.Name)
	assert.Equal(t, "janedoe", cfg.Author.Login)
	assert.Equal(t, config.DefaultVersion, cfg.Package.Version)
	assert.Equal(t, config.DefaultPython, cfg.Package.Python)
	assert.Equal(t, config.DefaultPoetry, cfg.Install.Poetry)
}

func TestConfigInit_RefusesExisting(t *testing.T) {
	clearCrocoEnv(t)
	path := writeConfig(t, authorConfig)

	_, err := executeRoot(t, &GlobalConfig{}, "", "--config", path, "config", "init", "--login", "other")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, authorConfig, string(content))
}

func TestConfigInit_Force(t *testing.T) {
	clearCrocoEnv(t)
	path := writeConfig(t, authorConfig)

	_, err := executeRoot(t, &GlobalConfig{}, "", "--config", path, "config", "init",
		"--force", "--name", "Other", "--login", "other", "--email", "other@example.com")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "login: other")
}

func TestConfigShow(t *testing.T) {
	clearCrocoEnv(t)
	path := writeConfig(t, authorConfig)

	out, err := executeRoot(t, &GlobalConfig{}, "", "--config", path, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, "login: janedoe")
	assert.Contains(t, out, "python: \"3.11\"")
	assert.Contains(t, out, "poetry: poetry")
}

func TestConfigInit_KeepsFilesystemError(t *testing.T) {
	clearCrocoEnv(t)
	blocker := writeConfig(t, "not a directory")
	path := filepath.Join(blocker, "config.yaml")
	gc := &GlobalConfig{ConfigPath: path}

	c := NewConfigInitCmd(gc)
	c.SetOut(&bytes.Buffer{})

	err := runConfigInit(c, gc, config.DefaultConfig(), false)
	require.Error(t, err)

	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr), "the os error should stay in the chain")
	assert.Contains(t, err.Error(), blocker)
	assert.False(t, errors.Is(err, oerrors.ErrPermission))
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestWriteError_TagsPermission(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/etc/croco.yaml", Err: fs.ErrPermission}
	err := writeError("could not write", "/etc/croco.yaml", cause)

	assert.True(t, errors.Is(err, oerrors.ErrPermission))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Equal(t, oerrors.ExitPermissionDenied, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "could not write /etc/croco.yaml")
}
