// Package constants provides shared constants used throughout the portfolio codebase.
// This includes default paths, file names, and file permissions that should be
// consistent across the application.
package constants

// Default path constants define where the generator looks for input and
// writes its output when no configuration overrides them.
const (
	// DefaultProjectDir is the directory scanned for per-project subdirectories
	DefaultProjectDir = "docs/project"

	// DefaultOutputFile is the path the assembled portfolio document is written to
	DefaultOutputFile = "docs/PORTFOLIO.md"

	// DefaultManifestFile is the optional document header manifest
	DefaultManifestFile = "portfolio.yaml"

	// ReadmeFileName is the file read from each project directory
	ReadmeFileName = "README.md"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
