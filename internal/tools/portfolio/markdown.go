package portfolio

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"
)

// Markdown wraps the markdown package with the pieces the portfolio
// document needs.
type Markdown struct {
	md        *md.Markdown
	writer    io.Writer
	buffer    *strings.Builder
	useBuffer bool
}

// NewMarkdown creates a new markdown builder
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{
		md:     md.NewMarkdown(w),
		writer: w,
	}
}

// NewMarkdownBuffer creates a new markdown builder with internal buffer
func NewMarkdownBuffer() *Markdown {
	buffer := &strings.Builder{}
	return &Markdown{
		md:        md.NewMarkdown(buffer),
		writer:    buffer,
		buffer:    buffer,
		useBuffer: true,
	}
}

// Writer returns the underlying writer
func (m *Markdown) Writer() io.Writer {
	return m.writer
}

// String returns the buffered content
func (m *Markdown) String() string {
	if m.useBuffer && m.buffer != nil {
		return m.buffer.String()
	}
	return ""
}

// H1 creates a level 1 header
func (m *Markdown) H1(text string) *Markdown {
	m.md.H1(text)
	return m
}

// H2 creates a level 2 header
func (m *Markdown) H2(text string) *Markdown {
	m.md.H2(text)
	return m
}

// PlainText adds plain text
func (m *Markdown) PlainText(text string) *Markdown {
	m.md.PlainText(text)
	return m
}

// PlainTextf adds formatted plain text
func (m *Markdown) PlainTextf(format string, args ...interface{}) *Markdown {
	m.md.PlainTextf(format, args...)
	return m
}

// LF adds a line feed
func (m *Markdown) LF() *Markdown {
	m.md.LF()
	return m
}

// Blockquote adds a blockquote
func (m *Markdown) Blockquote(text string) *Markdown {
	m.md.Blockquote(text)
	return m
}

// HorizontalRule adds a horizontal rule
func (m *Markdown) HorizontalRule() *Markdown {
	m.md.HorizontalRule()
	return m
}

// TableOfContents adds a numbered table-of-contents section. Each entry
// lands on its own line as "{index}. [{title}](#{anchor})".
func (m *Markdown) TableOfContents(entries []Entry) *Markdown {
	m.H2("Table of Contents")
	m.LF()
	for _, e := range entries {
		m.PlainTextf("%d. %s", e.Index, md.Link(e.Title, "#"+e.Anchor))
	}
	return m
}

// ProjectSection writes a project separator, identifying comment marker, and
// the README content verbatim. It writes past the builder directly to the
// writer, so the content is byte-for-byte untouched.
func (m *Markdown) ProjectSection(name, content string) *Markdown {
	fmt.Fprintf(m.writer, "\n\n---\n\n<!-- PROJECT: %s -->\n\n%s\n", name, content)
	return m
}

// Build finalizes the markdown document
func (m *Markdown) Build() error {
	return m.md.Build()
}
