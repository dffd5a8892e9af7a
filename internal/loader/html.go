package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/orgdeck/internal/outline"
	"golang.org/x/net/html"
)

// HTMLLoader handles HTML files. h1..h6 open headings, list items become
// bullets, <pre> becomes a fenced block and data-* attributes on a heading
// become its properties (data-template="grid").
type HTMLLoader struct{}

func (l *HTMLLoader) Load(r io.Reader, filename string) (*outline.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := trimExt(filename, ".html", ".htm")
	if t := findTitle(doc); t != "" {
		title = t
	}

	tb := newTreeBuilder()

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				h := tb.push(level, textContent(n))
				if props := dataAttributes(n); len(props) > 0 {
					h.Properties = props
				}
				return // Don't recurse into heading children (already extracted text).
			}

			// Skip non-content elements.
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "li":
				if t := textContent(n); t != "" {
					tb.line("- " + t)
				}
				return
			case "pre":
				tb.line("```" + codeLanguage(n))
				tb.line(strings.Trim(rawText(n), "\n"))
				tb.line("```")
				return
			case "p", "td", "blockquote":
				if t := textContent(n); t != "" {
					tb.line(t)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return tb.finish(title), nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// dataAttributes maps data-foo="bar" to FOO: bar.
func dataAttributes(n *html.Node) map[string]string {
	var props map[string]string
	for _, a := range n.Attr {
		key, ok := strings.CutPrefix(a.Key, "data-")
		if !ok || key == "" {
			continue
		}
		if props == nil {
			props = map[string]string{}
		}
		props[strings.ToUpper(key)] = a.Val
	}
	return props
}

// codeLanguage reads "language-x" or "lang-x" from the class of a <pre> or
// its <code> child.
func codeLanguage(pre *html.Node) string {
	nodes := []*html.Node{pre}
	for c := pre.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "code" {
			nodes = append(nodes, c)
		}
	}
	for _, n := range nodes {
		for _, a := range n.Attr {
			if a.Key != "class" {
				continue
			}
			for _, cls := range strings.Fields(a.Val) {
				if lang, ok := strings.CutPrefix(cls, "language-"); ok {
					return lang
				}
				if lang, ok := strings.CutPrefix(cls, "lang-"); ok {
					return lang
				}
			}
		}
	}
	return ""
}

// rawText concatenates text without trimming, for preformatted content.
func rawText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func textContent(n *html.Node) string {
	return strings.Join(strings.Fields(rawText(n)), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
