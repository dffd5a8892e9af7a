package outline

import "strings"

// Document is the root of a loaded outline. The root itself is never a slide.
type Document struct {
	Title    string  // Document title (from #+TITLE, <title>, or filename)
	Children []*Node // Level-1 headings
}

// Node is one heading in the outline together with its raw body.
type Node struct {
	Level      int               // Heading depth, 1 for top-level
	Heading    string            // Raw heading text, may carry [PREFIX: ...] annotations
	Body       string            // Raw text between this heading and the next one
	Properties map[string]string // Upper-cased keys from the property drawer
	Children   []*Node
}

// Property returns the value for key (case-insensitive) and whether it is set
// to a non-empty value.
func (n *Node) Property(key string) (string, bool) {
	if n == nil || len(n.Properties) == 0 {
		return "", false
	}
	v, ok := n.Properties[strings.ToUpper(key)]
	if !ok {
		for k, val := range n.Properties {
			if strings.EqualFold(k, key) {
				v, ok = val, true
				break
			}
		}
	}
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// HasBody reports whether the body has any non-whitespace content.
func (n *Node) HasBody() bool {
	return strings.TrimSpace(n.Body) != ""
}
