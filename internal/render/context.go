package render

import (
	"github.com/flosch/pongo2/v6"

	"github.com/dgallion1/orgdeck/internal/deck"
)

// SlideContext flattens a slide into template variables. Every key is always
// present; absent values are nil or empty so templates can test them safely.
func SlideContext(s deck.Slide) pongo2.Context {
	h := s.Head()
	ctx := pongo2.Context{
		"template":      string(s.Template()),
		"title":         optional(h.Title),
		"subtitle":      optional(h.Subtitle),
		"slug":          h.Slug,
		"filename":      h.Filename,
		"content":       []string{},
		"code":          nil,
		"code_blocks":   []map[string]any{},
		"items":         []map[string]any{},
		"entries":       []map[string]any{},
		"html":          nil,
		"images":        images(h),
		"prev":          optional(h.Nav.Prev),
		"next":          optional(h.Nav.Next),
		"current_index": h.Nav.Index,
		"total_slides":  h.Nav.Total,
		"all_slides":    h.Nav.All,
	}
	if h.Nav.All == nil {
		ctx["all_slides"] = []string{}
	}

	switch v := s.(type) {
	case *deck.TitleSlide:
		ctx["content"] = v.Content
	case *deck.BulletsSlide:
		ctx["content"] = v.Content
	case *deck.CodeSlide:
		blocks := make([]map[string]any, 0, len(v.Blocks))
		for _, b := range v.Blocks {
			blocks = append(blocks, map[string]any{"language": b.Language, "code": b.Code})
		}
		ctx["code_blocks"] = blocks
	case *deck.CenteredCodeSlide:
		ctx["code"] = v.Code
	case *deck.GridSlide:
		items := make([]map[string]any, 0, len(v.Items))
		for _, it := range v.Items {
			items = append(items, map[string]any{"name": it.Name, "description": it.Description})
		}
		ctx["items"] = items
	case *deck.EvolutionSlide:
		entries := make([]map[string]any, 0, len(v.Entries))
		for _, e := range v.Entries {
			entries = append(entries, map[string]any{"year": optional(e.Year), "text": e.Text})
		}
		ctx["entries"] = entries
	case *deck.DefaultSlide:
		ctx["html"] = optional(v.HTML)
	}
	return ctx
}

// IndexContext builds the variables for the index page.
func IndexContext(d *deck.Deck) pongo2.Context {
	slides := make([]map[string]any, 0, len(d.Index))
	for _, e := range d.Index {
		slides = append(slides, map[string]any{"title": e.Title, "filename": e.Filename})
	}
	return pongo2.Context{
		"title":       d.Title,
		"slides":      slides,
		"first_slide": d.First,
	}
}

func images(h *deck.Header) []map[string]any {
	out := make([]map[string]any, 0, len(h.Images))
	for _, img := range h.Images {
		out = append(out, map[string]any{
			"src":            img.Src,
			"alt":            img.Alt,
			"caption_main":   img.Caption,
			"caption_italic": img.Italic,
			"caption_sub":    optional(img.Sub),
		})
	}
	return out
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
