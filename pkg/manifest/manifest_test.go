package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/bamgstudio/portfolio/pkg/errors"
	"github.com/bamgstudio/portfolio/pkg/manifest"
)

func TestDefault(t *testing.T) {
	m := manifest.Default()
	assert.Equal(t, "DevSecOps & Cloud Security Portfolio", m.Title)
	assert.Equal(t, "BAMG Studio", m.Organization)
	assert.Len(t, m.Blurb, 3)
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns default", func(t *testing.T) {
		m, err := manifest.Load(filepath.Join(t.TempDir(), "portfolio.yaml"))
		require.NoError(t, err)
		assert.Equal(t, manifest.Default(), m)
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.yaml")
		content := `title: Platform Engineering Portfolio
organization: Acme Corp
blurb:
  - Selected infrastructure projects.
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		m, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Platform Engineering Portfolio", m.Title)
		assert.Equal(t, "Acme Corp", m.Organization)
		assert.Equal(t, []string{"Selected infrastructure projects."}, m.Blurb)
	})

	t.Run("partial override keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.yaml")
		require.NoError(t, os.WriteFile(path, []byte("organization: Acme Corp\n"), 0644))

		m, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, manifest.Default().Title, m.Title)
		assert.Equal(t, "Acme Corp", m.Organization)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: [unclosed\n"), 0644))

		_, err := manifest.Load(path)
		require.Error(t, err)

		var parseErr *pkgerrors.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("empty title rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: \"\"\n"), 0644))

		_, err := manifest.Load(path)
		require.Error(t, err)

		var cfgErr *pkgerrors.ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})
}

func TestBlurbText(t *testing.T) {
	m := manifest.Manifest{Blurb: []string{"line one", "line two"}}
	assert.Equal(t, "line one\nline two", m.BlurbText())
}
