package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"talk.org", "*loader.OrgLoader"},
		{"README.md", "*loader.MarkdownLoader"},
		{"x.markdown", "*loader.MarkdownLoader"},
		{"deck.HTML", "*loader.HTMLLoader"},
		{"a.htm", "*loader.HTMLLoader"},
		{"doc.docx", "*loader.DOCXLoader"},
		{"slides.pdf", "*loader.PDFLoader"},
		{"notes.txt", "*loader.TextLoader"},
	}
	for _, tt := range tests {
		l, err := ForFile(tt.filename, Options{})
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", l); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.filename, tt.want, got)
		}
		if !IsSupportedExtension(tt.filename) {
			t.Errorf("%s: expected extension to be supported", tt.filename)
		}
	}

	if _, err := ForFile("data.csv", Options{}); err == nil {
		t.Errorf("expected error for unsupported extension")
	}
	if IsSupportedExtension("data.csv") {
		t.Errorf("expected .csv to be unsupported")
	}
}

func TestForFile_PDFFallback(t *testing.T) {
	l, err := ForFile("a.pdf", Options{PDFFallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.(*PDFLoader).FallbackPdftotext {
		t.Errorf("expected fallback option to be passed through")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.org")
	if err := os.WriteFile(path, []byte("* One\n- a\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	doc, err := LoadFile(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "talk" || len(doc.Children) != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.org"), Options{}); err == nil {
		t.Errorf("expected error for missing file")
	}
}
