// Package portfolio assembles per-project README files into a single
// portfolio document with a generated table of contents.
package portfolio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/utc"

	"github.com/bamgstudio/portfolio/pkg/constants"
	"github.com/bamgstudio/portfolio/pkg/errors"
	"github.com/bamgstudio/portfolio/pkg/logging"
	"github.com/bamgstudio/portfolio/pkg/manifest"
	"github.com/bamgstudio/portfolio/pkg/projects"
)

// Generator handles portfolio document generation
type Generator struct {
	projectDir string
	outputFile string
	manifest   manifest.Manifest
	now        func() utc.Time
}

// Option is a functional option for configuring the Generator
type Option func(*Generator)

// WithProjectDir sets the directory scanned for projects
func WithProjectDir(dir string) Option {
	return func(g *Generator) {
		g.projectDir = dir
	}
}

// WithOutputFile sets the path the assembled document is written to
func WithOutputFile(path string) Option {
	return func(g *Generator) {
		g.outputFile = path
	}
}

// WithManifest sets the document header manifest
func WithManifest(m manifest.Manifest) Option {
	return func(g *Generator) {
		g.manifest = m
	}
}

// WithNow overrides the clock used for the generation date stamp
func WithNow(now func() utc.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a new portfolio generator
func New(opts ...Option) *Generator {
	g := &Generator{
		projectDir: constants.DefaultProjectDir,
		outputFile: constants.DefaultOutputFile,
		manifest:   manifest.Default(),
		now:        utc.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Result summarizes one generation run.
type Result struct {
	OutputFile string
	Projects   int
	Characters int
	Written    bool
}

// Generate scans the project directory, assembles the portfolio document,
// and writes it to the output file. When no project has a README the output
// file is left untouched and Written is false; this is not an error.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	log := logging.FromContext(ctx)

	list, err := projects.Load(g.projectDir)
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		log.Info().
			Str("project_dir", g.projectDir).
			Msg("no project README files found")
		return &Result{OutputFile: g.outputFile}, nil
	}

	for _, p := range list {
		log.Debug().
			Str("project", p.Name).
			Int("bytes", p.Size()).
			Msg("including project")
	}

	doc, err := g.assemble(list)
	if err != nil {
		return nil, err
	}

	if err := g.write(doc); err != nil {
		return nil, err
	}

	log.Info().
		Str("output", g.outputFile).
		Int("projects", len(list)).
		Int("characters", len(doc)).
		Msg("portfolio generated")

	return &Result{
		OutputFile: g.outputFile,
		Projects:   len(list),
		Characters: len(doc),
		Written:    true,
	}, nil
}

// assemble builds the full document: front matter, table of contents, and
// each README verbatim behind a separator and comment marker.
func (g *Generator) assemble(list []projects.Project) (string, error) {
	m := NewMarkdownBuffer()

	m.H1(g.manifest.Title)
	m.LF()
	m.Blockquote(g.frontQuote())
	m.LF()
	m.HorizontalRule()
	m.LF()
	m.TableOfContents(Entries(list))
	m.LF()
	m.HorizontalRule()

	if err := m.Build(); err != nil {
		return "", err
	}

	for _, p := range list {
		m.ProjectSection(p.Name, p.Readme)
	}

	return m.String(), nil
}

// frontQuote renders the blockquote body: organization label, generation
// date (UTC, YYYY-MM-DD), and the descriptive blurb.
func (g *Generator) frontQuote() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** | Generated %s\n\n", g.manifest.Organization, g.now().Format("2006-01-02"))
	sb.WriteString(g.manifest.BlurbText())
	return sb.String()
}

// write creates the output file's parent directory if absent and writes the
// document, truncating any prior file.
func (g *Generator) write(doc string) error {
	dir := filepath.Dir(g.outputFile)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	if err := os.WriteFile(g.outputFile, []byte(doc), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", g.outputFile, err)
	}

	return nil
}
