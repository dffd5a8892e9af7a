package deck

import (
	"fmt"

	"github.com/dgallion1/orgdeck/internal/outline"
)

// DeepHeadings selects what happens to headings below level 2.
type DeepHeadings string

const (
	DeepIgnore DeepHeadings = "ignore"
	DeepReject DeepHeadings = "reject"
)

// validate checks the whole tree before any slide is built, so a bad document
// never produces partial output.
func validate(doc *outline.Document, policy DeepHeadings) error {
	var walk func(n *outline.Node, parentLevel int, path []string) error
	walk = func(n *outline.Node, parentLevel int, path []string) error {
		path = append(path[:len(path):len(path)], n.Heading)
		switch {
		case n.Level <= parentLevel:
			return &StructureError{Path: path, Level: n.Level,
				Msg: fmt.Sprintf("heading is not deeper than its parent (level %d)", parentLevel)}
		case n.Level > parentLevel+1:
			return &StructureError{Path: path, Level: n.Level,
				Msg: fmt.Sprintf("heading level skips from %d to %d", parentLevel, n.Level)}
		case n.Level > 2 && policy == DeepReject:
			return &StructureError{Path: path, Level: n.Level,
				Msg: "headings deeper than level 2 are not supported"}
		}
		for _, c := range n.Children {
			if err := walk(c, n.Level, path); err != nil {
				return err
			}
		}
		return nil
	}

	for _, n := range doc.Children {
		if err := walk(n, 0, nil); err != nil {
			return err
		}
	}
	return nil
}
