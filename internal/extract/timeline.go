package extract

import (
	"regexp"
	"strings"
)

// TimelineEntry is either a dated milestone or, when Year is empty, a plain
// paragraph.
type TimelineEntry struct {
	Year string `json:"year,omitempty"`
	Text string `json:"text"`
}

// IsParagraph reports whether the entry carries no year.
func (e TimelineEntry) IsParagraph() bool { return e.Year == "" }

var yearPrefix = regexp.MustCompile(`^(\d{4}s?)\s+(.+)$`)

// Timeline converts bullet lines into timeline entries. "- 1990s The web"
// becomes {1990s, The web}; bullets without a leading year are kept as
// paragraphs.
func Timeline(body string) []TimelineEntry {
	entries := []TimelineEntry{}
	for _, line := range strings.Split(body, "\n") {
		text, ok := bulletText(line)
		if !ok || text == "" {
			continue
		}
		if m := yearPrefix.FindStringSubmatch(text); m != nil {
			entries = append(entries, TimelineEntry{Year: m[1], Text: strings.TrimSpace(m[2])})
			continue
		}
		entries = append(entries, TimelineEntry{Text: text})
	}
	return entries
}
