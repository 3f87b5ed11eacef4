// Package config provides configuration loading and management.
package config

// AuthorConfig identifies the author stamped into generated files.
type AuthorConfig struct {
	// Name is the display name.
	// Env: CROCO_AUTHOR_NAME
	Name string `mapstructure:"name" yaml:"name"`

	// Login is the GitHub login used in repository URLs.
	// Env: CROCO_AUTHOR_LOGIN
	Login string `mapstructure:"login" yaml:"login"`

	// Email is the author contact address.
	// Env: CROCO_AUTHOR_EMAIL
	Email string `mapstructure:"email" yaml:"email"`
}

// PackageConfig holds defaults for generated Python packages.
type PackageConfig struct {
	// Version is the initial package version.
	// Env: CROCO_PACKAGE_VERSION, Default: 0.1.0
	Version string `mapstructure:"version" yaml:"version"`

	// Python is the minimum supported Python MAJOR.MINOR.
	// Env: CROCO_PACKAGE_PYTHON, Default: 3.11
	Python string `mapstructure:"python" yaml:"python"`
}

// InstallConfig controls how starter dependencies are added.
type InstallConfig struct {
	// Poetry is the Poetry executable name or path.
	// Env: CROCO_INSTALL_POETRY, Default: poetry
	Poetry string `mapstructure:"poetry" yaml:"poetry"`

	// Strict stops scaffolding when a dependency cannot be added.
	// Env: CROCO_INSTALL_STRICT, Default: false
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// Config represents the croco CLI configuration.
// Loaded from ~/.croco/config.yaml with environment overrides.
type Config struct {
	Author  AuthorConfig  `mapstructure:"author" yaml:"author"`
	Package PackageConfig `mapstructure:"package" yaml:"package"`
	Install InstallConfig `mapstructure:"install" yaml:"install"`
}

// Default values.
const (
	DefaultVersion = "0.1.0"
	DefaultPython  = "3.11"
	DefaultPoetry  = "poetry"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `croco config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Package: PackageConfig{
			Version: DefaultVersion,
			Python:  DefaultPython,
		},
		Install: InstallConfig{
			Poetry: DefaultPoetry,
		},
	}
}

// WithDefaults fills empty fields with default values.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Package.Version == "" {
		out.Package.Version = DefaultVersion
	}
	if out.Package.Python == "" {
		out.Package.Python = DefaultPython
	}
	if out.Install.Poetry == "" {
		out.Install.Poetry = DefaultPoetry
	}
	return &out
}
