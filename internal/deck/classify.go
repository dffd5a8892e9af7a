package deck

import (
	"regexp"
	"strings"

	"github.com/dgallion1/orgdeck/internal/outline"
)

// kind is the classification of one heading node, computed once and then
// switched on by the builder.
type kind int

const (
	kindSkip       kind = iota // nothing to show
	kindTitle                  // heading carries the title marker
	kindTitleProp              // TEMPLATE: title
	kindEvolution              // TEMPLATE: evolution
	kindGrid                   // TEMPLATE: grid
	kindRichText               // TEMPLATE: default
	kindSection                // top-level node with children
	kindLeaf                   // top-level node with a body and no children
	kindChild                  // second-level node: code or bullets
)

func (k kind) String() string {
	switch k {
	case kindTitle:
		return "title-marker"
	case kindTitleProp:
		return "title"
	case kindEvolution:
		return "evolution"
	case kindGrid:
		return "grid"
	case kindRichText:
		return "default"
	case kindSection:
		return "section"
	case kindLeaf:
		return "leaf"
	case kindChild:
		return "child"
	}
	return "skip"
}

// Marker identifies title slides. A heading is a title slide when it contains
// "[<Prefix>:" and the Phrase, e.g. "[CLAUDE: Title type slide]".
type Marker struct {
	Prefix string
	Phrase string
}

// DefaultMarker matches headings annotated "[CLAUDE: Title type slide]".
var DefaultMarker = Marker{Prefix: "CLAUDE", Phrase: "Title type slide"}

func (m Marker) matches(heading string) bool {
	if m.Prefix == "" {
		return false
	}
	h := strings.ToLower(heading)
	return strings.Contains(h, "["+strings.ToLower(m.Prefix)+":") &&
		strings.Contains(h, strings.ToLower(m.Phrase))
}

func (m Marker) pattern() *regexp.Regexp {
	if m.Prefix == "" {
		return nil
	}
	return regexp.MustCompile(`(?i)\[` + regexp.QuoteMeta(m.Prefix) + `:[^\]]*\]`)
}

// classify decides what a node becomes. depth is 1 for top-level headings and
// 2 for their children.
func classify(n *outline.Node, depth int, m Marker) kind {
	if m.matches(n.Heading) {
		return kindTitle
	}
	if tpl, ok := n.Property("TEMPLATE"); ok {
		switch strings.ToLower(tpl) {
		case "title":
			return kindTitleProp
		case "evolution":
			return kindEvolution
		case "grid":
			return kindGrid
		case "default":
			return kindRichText
		}
	}
	if depth > 1 {
		return kindChild
	}
	if len(n.Children) > 0 {
		return kindSection
	}
	if n.HasBody() {
		return kindLeaf
	}
	return kindSkip
}

var spaces = regexp.MustCompile(`\s{2,}`)

// display strips annotation tokens from a heading for use as visible text.
func display(heading string, annot *regexp.Regexp) string {
	if annot != nil {
		heading = annot.ReplaceAllString(heading, "")
	}
	return strings.TrimSpace(spaces.ReplaceAllString(heading, " "))
}

// isInstallCommand is the heuristic that turns a title slide into a centered
// code slide.
func isInstallCommand(line string) bool {
	return strings.Contains(line, "npm") || strings.Contains(line, "install")
}
