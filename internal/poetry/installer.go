package poetry

import (
	"context"
	"fmt"
	"strings"

	oerrors "github.com/crocofactory/croco-cli/internal/errors"
	"github.com/crocofactory/croco-cli/internal/output"
)

// Policy decides what happens when a dependency cannot be added.
type Policy int

const (
	// PolicyContinue logs the failure and keeps going.
	PolicyContinue Policy = iota

	// PolicyHalt stops at the first failure.
	PolicyHalt
)

// String returns the policy name.
func (p Policy) String() string {
	if p == PolicyHalt {
		return "halt"
	}
	return "continue"
}

// Starter development dependencies.
var (
	// testDependencies are always added.
	testDependencies = []string{"pytest"}

	// publishDependencies are added for open-source packages.
	publishDependencies = []string{"build", "twine"}
)

// StarterDependencies returns the development dependencies added for a package.
func StarterDependencies(openSource bool) []string {
	deps := append([]string{}, testDependencies...)
	if openSource {
		deps = append(deps, publishDependencies...)
	}
	return deps
}

// Installer adds development dependencies with Poetry.
type Installer struct {
	runner Runner
	binary string
	dir    string
	policy Policy
}

// Option configures an Installer.
type Option func(*Installer)

// WithBinary sets the Poetry executable.
func WithBinary(binary string) Option {
	return func(i *Installer) {
		if binary != "" {
			i.binary = binary
		}
	}
}

// WithDir sets the directory Poetry runs in.
func WithDir(dir string) Option {
	return func(i *Installer) {
		i.dir = dir
	}
}

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(i *Installer) {
		i.policy = p
	}
}

// NewInstaller creates an Installer. A nil runner uses ExecRunner.
func NewInstaller(runner Runner, opts ...Option) *Installer {
	if runner == nil {
		runner = ExecRunner{}
	}
	i := &Installer{
		runner: runner,
		binary: "poetry",
		policy: PolicyContinue,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// AddDev runs `poetry add -D <pkg>`.
func (i *Installer) AddDev(ctx context.Context, pkg string) Result {
	return i.runner.Run(ctx, i.dir, i.binary, "add", "-D", pkg)
}

// InstallStarter adds pytest, and build and twine when openSource is set.
// Under PolicyContinue failures are logged and every command runs; under
// PolicyHalt the first failure returns an error wrapping ErrDependency.
func (i *Installer) InstallStarter(ctx context.Context, openSource bool) ([]Result, error) {
	deps := StarterDependencies(openSource)
	log := output.StepLogger("dependencies")
	results := make([]Result, 0, len(deps))

	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := i.AddDev(ctx, dep)
		results = append(results, res)

		if res.OK() {
			log.Debug("added dependency", "package", dep, "command", res.Command)
			continue
		}

		if i.policy == PolicyHalt {
			return results, &oerrors.DetailError{
				Type:    "dependency installation failed",
				Message: fmt.Sprintf("%s failed: %v\n%s", res.Command, res.Err, strings.TrimSpace(res.Output)),
				Hint:    "Check that Poetry is installed and on PATH, or disable install.strict.",
				Cause:   oerrors.ErrDependency,
			}
		}

		log.Warn("could not add dependency, continuing",
			"package", dep,
			"command", res.Command,
			"exit_code", res.ExitCode,
			"error", res.Err,
		)
	}

	return results, nil
}
