// Package manifest loads the optional portfolio.yaml document header manifest.
// The manifest customizes the title, organization label, and descriptive blurb
// of the generated portfolio document. A missing manifest file is not an
// error; the built-in defaults are used instead.
package manifest

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/bamgstudio/portfolio/pkg/errors"
)

// Manifest describes the front matter of the generated portfolio document.
type Manifest struct {
	// Title is the H1 of the document.
	Title string `yaml:"title"`

	// Organization is the bold label in the generated blockquote.
	Organization string `yaml:"organization"`

	// Blurb is the descriptive paragraph below the generation date.
	// Lines are joined with newlines inside the blockquote.
	Blurb []string `yaml:"blurb"`
}

// Default returns the built-in document header.
func Default() Manifest {
	return Manifest{
		Title:        "DevSecOps & Cloud Security Portfolio",
		Organization: "BAMG Studio",
		Blurb: []string{
			"Comprehensive documentation for 12 enterprise-grade security,",
			"DevOps, and ML engineering projects demonstrating expertise in",
			"AWS cloud architecture, security automation, and MLOps.",
		},
	}
}

// Load reads a manifest from path. A missing file returns the default
// manifest; a present but malformed file is a ParseError.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Manifest{}, errors.WrapIO("read", path, err)
	}

	m := Default()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.WrapParse("yaml", path, err)
	}

	if strings.TrimSpace(m.Title) == "" {
		return Manifest{}, errors.NewConfigError("manifest", "title must not be empty", nil)
	}

	return m, nil
}

// BlurbText returns the blurb joined into a single newline-separated string.
func (m Manifest) BlurbText() string {
	return strings.Join(m.Blurb, "\n")
}
