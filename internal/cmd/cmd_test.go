package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/crocofactory/croco-cli/internal/poetry"
	"github.com/crocofactory/croco-cli/internal/testutil"
)

// recordingRunner records package manager invocations instead of running them.
type recordingRunner struct {
	calls []string
	fail  bool
}

func (r *recordingRunner) Run(_ context.Context, _, name string, args ...string) poetry.Result {
	line := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, line)
	if r.fail {
		return poetry.Result{Command: line, ExitCode: 1, Err: errors.New("exit status 1")}
	}
	return poetry.Result{Command: line}
}

const authorConfig = `author:
  name: Jane Doe
  login: janedoe
  email: jane@example.com
`

func clearCrocoEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CROCO_CONFIG",
		"CROCO_AUTHOR_NAME", "CROCO_AUTHOR_LOGIN", "CROCO_AUTHOR_EMAIL",
		"CROCO_PACKAGE_VERSION", "CROCO_PACKAGE_PYTHON",
		"CROCO_INSTALL_POETRY", "CROCO_INSTALL_STRICT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "config.yaml", content)
}

func executeRoot(t *testing.T, gc *GlobalConfig, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(gc)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func findSubcommand(root *cobra.Command, names ...string) *cobra.Command {
	c := root
	for _, name := range names {
		var found *cobra.Command
		for _, sub := range c.Commands() {
			if sub.Name() == name {
				found = sub
				break
			}
		}
		if found == nil {
			return nil
		}
		c = found
	}
	return c
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}
