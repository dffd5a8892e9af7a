package loader

import (
	"strings"

	"github.com/dgallion1/orgdeck/internal/outline"
)

// treeBuilder nests headings by level using a stack, the same way for every
// source format. The root sits at level 0.
type treeBuilder struct {
	root  *outline.Node
	stack []*outline.Node
	body  map[*outline.Node]*strings.Builder
}

func newTreeBuilder() *treeBuilder {
	root := &outline.Node{Level: 0}
	return &treeBuilder{
		root:  root,
		stack: []*outline.Node{root},
		body:  map[*outline.Node]*strings.Builder{},
	}
}

// push opens a new heading. Levels are kept as written; a skipped level is
// reported later by the deck builder, not silently repaired here.
func (t *treeBuilder) push(level int, heading string) *outline.Node {
	n := &outline.Node{Level: level, Heading: strings.TrimSpace(heading)}
	for len(t.stack) > 1 && t.stack[len(t.stack)-1].Level >= level {
		t.stack = t.stack[:len(t.stack)-1]
	}
	parent := t.stack[len(t.stack)-1]
	parent.Children = append(parent.Children, n)
	t.stack = append(t.stack, n)
	return n
}

// current is the innermost open heading, or the root before the first one.
func (t *treeBuilder) current() *outline.Node {
	return t.stack[len(t.stack)-1]
}

// line appends one raw body line to the innermost open heading.
func (t *treeBuilder) line(s string) {
	n := t.current()
	b, ok := t.body[n]
	if !ok {
		b = &strings.Builder{}
		t.body[n] = b
	} else {
		b.WriteByte('\n')
	}
	b.WriteString(s)
}

// setBody replaces the body of n with raw source text.
func (t *treeBuilder) setBody(n *outline.Node, s string) {
	b := &strings.Builder{}
	b.WriteString(s)
	t.body[n] = b
}

// finish flushes bodies, lifts property drawers and returns the document.
// Text before the first heading is dropped.
func (t *treeBuilder) finish(title string) *outline.Document {
	var walk func(n *outline.Node)
	walk = func(n *outline.Node) {
		if b, ok := t.body[n]; ok {
			props, rest := splitDrawer(b.String())
			n.Body = strings.Trim(rest, "\n")
			if len(props) > 0 {
				if n.Properties == nil {
					n.Properties = map[string]string{}
				}
				for k, v := range props {
					n.Properties[k] = v
				}
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range t.root.Children {
		walk(c)
	}
	return &outline.Document{Title: title, Children: t.root.Children}
}
