package extract

import "strings"

// GridItem is a "- Name: description" bullet.
type GridItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Grid returns one item per bullet line containing a colon. The name is the
// text before the first colon.
func Grid(body string) []GridItem {
	items := []GridItem{}
	for _, line := range strings.Split(body, "\n") {
		text, ok := bulletText(line)
		if !ok {
			continue
		}
		name, desc, found := strings.Cut(text, ":")
		if !found {
			continue
		}
		items = append(items, GridItem{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(desc),
		})
	}
	return items
}
