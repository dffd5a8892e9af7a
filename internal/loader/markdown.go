package loader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/orgdeck/internal/outline"
)

// MarkdownLoader handles Markdown files using goldmark. goldmark finds the
// headings; the body of each heading is the raw source between it and the
// next heading, so bullets and fences reach the extractors untouched.
// A YAML or TOML front matter "title" names the deck.
type MarkdownLoader struct{}

type frontMatter struct {
	Title string `yaml:"title" toml:"title"`
}

func (l *MarkdownLoader) Load(r io.Reader, filename string) (*outline.Document, error) {
	var meta frontMatter
	src, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	tb := newTreeBuilder()
	var open *outline.Node
	bodyStart := 0

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}

		start, end := headingSpan(h, src)
		if open != nil {
			tb.setBody(open, string(src[bodyStart:start]))
		}
		open = tb.push(h.Level, headingText(h, src))
		bodyStart = end
	}
	if open != nil {
		tb.setBody(open, string(src[bodyStart:]))
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = trimExt(filename, ".markdown", ".md")
	}
	return tb.finish(title), nil
}

// headingText joins the raw lines of a heading so annotations such as
// "[CLAUDE: ...]" survive exactly as written.
func headingText(h *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	lines := h.Lines()
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.Write(bytes.TrimSpace(lines.At(i).Value(src)))
	}
	return strings.TrimSpace(buf.String())
}

// headingSpan returns the byte range of the whole heading block: the start of
// its first line and the end of its last line, including a setext underline.
func headingSpan(h *ast.Heading, src []byte) (int, int) {
	lines := h.Lines()
	start := lineStart(src, lines.At(0).Start)

	if bytes.HasPrefix(bytes.TrimLeft(src[start:], " \t"), []byte("#")) {
		return start, lineEnd(src, start)
	}
	// setext: skip the last text line and the underline after it.
	last := lineStart(src, lines.At(lines.Len()-1).Start)
	return start, lineEnd(src, lineEnd(src, last))
}

func lineStart(src []byte, pos int) int {
	if pos > len(src) {
		pos = len(src)
	}
	if i := bytes.LastIndexByte(src[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// lineEnd returns the offset just past the newline ending the line at pos.
func lineEnd(src []byte, pos int) int {
	if pos >= len(src) {
		return len(src)
	}
	if src[pos] == '\n' {
		return pos + 1
	}
	if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(src)
}
