package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubApp provides command dependencies without the full app.
type stubApp struct {
	projectDir   string
	outputFile   string
	manifestFile string
	logger       zerolog.Logger
}

func (s *stubApp) Logger() *zerolog.Logger { return &s.logger }
func (s *stubApp) ProjectDir() string      { return s.projectDir }
func (s *stubApp) OutputFile() string      { return s.outputFile }
func (s *stubApp) ManifestFile() string    { return s.manifestFile }

func newStubApp(t *testing.T) *stubApp {
	t.Helper()
	return &stubApp{
		projectDir:   t.TempDir(),
		outputFile:   filepath.Join(t.TempDir(), "PORTFOLIO.md"),
		manifestFile: filepath.Join(t.TempDir(), "portfolio.yaml"),
		logger:       zerolog.Nop(),
	}
}

func writeProject(t *testing.T, root, name, readme string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0644))
}

func TestGenerateCommand(t *testing.T) {
	app := newStubApp(t)
	writeProject(t, app.projectDir, "01-proxy", "# Proxy\nContent")
	writeProject(t, app.projectDir, "02-scanner", "# Scanner\nContent")

	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Portfolio generated: "+app.outputFile)
	assert.Contains(t, out, "Total projects: 2")
	assert.Contains(t, out, "Total size: ")

	data, err := os.ReadFile(app.outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1. [Proxy](#01-proxy)")
}

func TestGenerateCommandNoProjects(t *testing.T) {
	app := newStubApp(t)

	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No project README files found!")
	assert.NoFileExists(t, app.outputFile)
}

func TestGenerateCommandMissingRoot(t *testing.T) {
	app := newStubApp(t)
	app.projectDir = filepath.Join(app.projectDir, "does-not-exist")

	cmd := NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}

func TestGenerateCommandFlagOverrides(t *testing.T) {
	app := newStubApp(t)

	root := t.TempDir()
	writeProject(t, root, "01-proxy", "# Proxy")
	out := filepath.Join(t.TempDir(), "custom.md")

	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--project-dir", root, "--output", out})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, out)
	assert.Contains(t, buf.String(), "Portfolio generated: "+out)
}

func TestThousands(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, thousands(tt.in))
	}
}
