// Package deck turns an outline into an ordered, linked list of slides.
//
// Build classifies every level-1 and level-2 heading, extracts its payload and
// hands out collision-free filenames in document order. Link then attaches
// previous/next navigation. Assemble does both and adds the index used by the
// renderer.
package deck

import (
	"strings"

	"github.com/dgallion1/orgdeck/internal/outline"
)

// IndexEntry pairs a slide's display label with its filename.
type IndexEntry struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

// Deck is a fully built and linked slide list.
type Deck struct {
	Title  string       `json:"title"`
	Slides []Slide      `json:"-"`
	Index  []IndexEntry `json:"slides"`
	First  string       `json:"first_slide"`
}

// Assemble builds and links the slides of doc.
func Assemble(doc *outline.Document, opts Options) (*Deck, error) {
	slides, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}
	Link(slides)

	d := &Deck{
		Title:  doc.Title,
		Slides: slides,
		Index:  make([]IndexEntry, 0, len(slides)),
		First:  IndexFilename,
	}
	for _, s := range slides {
		d.Index = append(d.Index, IndexEntry{Title: Label(s), Filename: s.Head().Filename})
	}
	if len(slides) > 0 {
		d.First = slides[0].Head().Filename
	}
	return d, nil
}

// Filenames returns the slide filenames in order.
func (d *Deck) Filenames() []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Head().Filename
	}
	return out
}

// Label is the text shown for a slide in the index: its title, else its
// subtitle, else the first line of a centered command, else its slug.
func Label(s Slide) string {
	h := s.Head()
	switch {
	case h.Title != "":
		return h.Title
	case h.Subtitle != "":
		return h.Subtitle
	}
	if c, ok := s.(*CenteredCodeSlide); ok && c.Code != "" {
		first, _, _ := strings.Cut(c.Code, "\n")
		return first
	}
	return h.Slug
}
