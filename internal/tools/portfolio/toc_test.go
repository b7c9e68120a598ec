package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bamgstudio/portfolio/pkg/projects"
)

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"numeric prefix stripped", "01-proxy", "Proxy"},
		{"multi word", "02-vuln-scanner", "Vuln Scanner"},
		{"no prefix", "terraform-modules", "Terraform Modules"},
		{"prefix only is kept", "01", "01"},
		{"non-numeric prefix kept", "v2-gateway", "V2 Gateway"},
		{"double digit prefix", "12-mlops-pipeline", "Mlops Pipeline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayTitle(tt.input))
		})
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// The anchor is derived from the raw directory name, not the display
		// title: the numeric prefix survives and the space replacement is a
		// no-op for hyphenated names. That mismatch with renderer-generated
		// heading slugs is long-standing behavior and is pinned here.
		{"hyphenated name unchanged", "01-proxy", "01-proxy"},
		{"lowercased", "Terraform-Modules", "terraform-modules"},
		{"spaces replaced", "my project", "my-project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Anchor(tt.input))
		})
	}
}

func TestEntries(t *testing.T) {
	list := []projects.Project{
		{Name: "01-proxy", Readme: "# Proxy"},
		{Name: "02-scanner", Readme: "# Scanner"},
		{Name: "10-pipeline", Readme: "# Pipeline"},
	}

	entries := Entries(list)
	assert.Equal(t, []Entry{
		{Index: 1, Title: "Proxy", Anchor: "01-proxy"},
		{Index: 2, Title: "Scanner", Anchor: "02-scanner"},
		{Index: 3, Title: "Pipeline", Anchor: "10-pipeline"},
	}, entries)
}

func TestEntriesEmpty(t *testing.T) {
	assert.Empty(t, Entries(nil))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("01"))
	assert.True(t, isNumeric("123"))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("v2"))
	assert.False(t, isNumeric("1a"))
}
