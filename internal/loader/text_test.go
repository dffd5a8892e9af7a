package loader

import (
	"strings"
	"testing"
)

func TestTextLoader_ParagraphsBecomeSlides(t *testing.T) {
	input := "First Slide\nline one\n- line two\n\n\nSecond Slide\n\nLonely heading"
	l := &TextLoader{}
	doc, err := l.Load(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	if len(doc.Children) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(doc.Children))
	}

	first := doc.Children[0]
	if first.Heading != "First Slide" || first.Level != 1 {
		t.Errorf("unexpected heading %q level %d", first.Heading, first.Level)
	}
	if first.Body != "- line one\n- line two" {
		t.Errorf("unexpected body %q", first.Body)
	}
	if doc.Children[1].Body != "" {
		t.Errorf("expected heading-only paragraph to have no body, got %q", doc.Children[1].Body)
	}
}

func TestTextLoader_EmptyInput(t *testing.T) {
	l := &TextLoader{}
	doc, err := l.Load(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(doc.Children))
	}
}

func TestPagesToDocument(t *testing.T) {
	doc := pagesToDocument("handout", []string{"Intro\n  Point one \n", "  \n", "Summary"})
	if len(doc.Children) != 2 {
		t.Fatalf("expected blank page skipped, got %d headings", len(doc.Children))
	}
	if doc.Children[0].Heading != "Page 1" || doc.Children[0].Body != "- Intro\n- Point one" {
		t.Errorf("unexpected first page: %q / %q", doc.Children[0].Heading, doc.Children[0].Body)
	}
	if doc.Children[1].Heading != "Page 3" {
		t.Errorf("expected page numbering to follow the source, got %q", doc.Children[1].Heading)
	}
}
