// Package app provides the application context and dependency management
// for the portfolio CLI. It centralizes configuration, logging, and command
// wiring, following the dependency injection pattern.
package app

import (
	"github.com/rs/zerolog"

	"github.com/bamgstudio/portfolio/pkg/errors"
)

// App represents the portfolio application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapConfig("app", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// ProjectDir returns the configured project root directory.
func (a *App) ProjectDir() string {
	return a.config.ProjectDir
}

// OutputFile returns the configured output file path.
func (a *App) OutputFile() string {
	return a.config.OutputFile
}

// ManifestFile returns the configured manifest file path.
func (a *App) ManifestFile() string {
	return a.config.ManifestFile
}

// Format returns the configured output format for listings.
func (a *App) Format() string {
	return a.config.Format
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
