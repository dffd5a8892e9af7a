package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestBullets(t *testing.T) {
	got := Bullets("- alpha\n- beta\ngamma")
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBullets_IndentedAndEmpty(t *testing.T) {
	got := Bullets("\n   -   spaced out  \n\t-tight\n")
	want := []string{"spaced out", "tight"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := Bullets(""); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice for empty body, got %#v", got)
	}
	if got := Bullets("just prose\nmore prose"); len(got) != 0 {
		t.Errorf("expected no bullets, got %v", got)
	}
}

func TestLines(t *testing.T) {
	got := Lines("\n  Title  \n\n Subtitle\n")
	want := []string{"Title", "Subtitle"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCodeBlocks_TwoOrgBlocks(t *testing.T) {
	body := `Some intro.
#+begin_src python

print("hi")

#+end_src
between
#+BEGIN_SRC bash
echo one
echo two
#+END_SRC`

	blocks := CodeBlocks(body)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Language != "python" || blocks[0].Code != `print("hi")` {
		t.Errorf("unexpected first block: %+v", blocks[0])
	}
	if blocks[1].Language != "bash" || blocks[1].Code != "echo one\necho two" {
		t.Errorf("unexpected second block: %+v", blocks[1])
	}
	for _, b := range blocks {
		if strings.Contains(strings.ToLower(b.Code), "#+") {
			t.Errorf("fence marker leaked into code: %q", b.Code)
		}
	}
}

func TestCodeBlocks_MarkdownFences(t *testing.T) {
	body := "```go\nfunc main() {\n\tfmt.Println(1)\n}\n```\n\n```\nuntagged\n```\n\n```js\nconsole.log(1)\n```"
	blocks := CodeBlocks(body)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 tagged blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Language != "go" || !strings.HasPrefix(blocks[0].Code, "func main()") {
		t.Errorf("unexpected go block: %+v", blocks[0])
	}
	if !strings.Contains(blocks[0].Code, "\tfmt.Println(1)") {
		t.Errorf("expected indentation to be kept, got %q", blocks[0].Code)
	}
	if blocks[1].Language != "js" {
		t.Errorf("expected js, got %q", blocks[1].Language)
	}
}

func TestCodeBlocks_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty", "", 0},
		{"no fences", "- a\n- b", 0},
		{"unterminated", "#+begin_src go\nfmt.Println()\n", 0},
		{"no language", "#+begin_src\nx\n#+end_src", 0},
		{"closed then unterminated", "#+begin_src go\na\n#+end_src\n#+begin_src go\nb", 1},
	}
	for _, tt := range tests {
		if got := CodeBlocks(tt.body); len(got) != tt.want {
			t.Errorf("%s: expected %d blocks, got %d", tt.name, tt.want, len(got))
		}
	}
}

func TestGrid(t *testing.T) {
	body := `- Go: compiled, fast
- Python :  batteries included
- no colon here
Rust: not a bullet
- URL: https://example.com`

	got := Grid(body)
	want := []GridItem{
		{Name: "Go", Description: "compiled, fast"},
		{Name: "Python", Description: "batteries included"},
		{Name: "URL", Description: "https://example.com"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestImages(t *testing.T) {
	got := Images(`a.jpg|"Cap1";b.jpg|Cap2|Sub2`)
	if len(got) != 2 {
		t.Fatalf("expected 2 images, got %d", len(got))
	}

	first := got[0]
	if first.Src != "a.jpg" || first.Caption != "Cap1" || first.Alt != "Cap1" {
		t.Errorf("unexpected first image: %+v", first)
	}
	if !first.Italic {
		t.Errorf("expected first caption to be italic")
	}
	if first.Sub != "" {
		t.Errorf("expected no sub caption, got %q", first.Sub)
	}

	second := got[1]
	if second.Italic {
		t.Errorf("expected second caption not to be italic")
	}
	if second.Sub != "Sub2" {
		t.Errorf("expected sub caption %q, got %q", "Sub2", second.Sub)
	}
}

func TestImages_DropsMalformed(t *testing.T) {
	got := Images(`only-src.png; |caption;c.png|;;d.png| "Quoted" `)
	if len(got) != 1 {
		t.Fatalf("expected 1 image, got %d: %+v", len(got), got)
	}
	if got[0].Src != "d.png" || got[0].Caption != "Quoted" || !got[0].Italic {
		t.Errorf("unexpected image: %+v", got[0])
	}
	if len(Images("")) != 0 {
		t.Errorf("expected empty value to yield no images")
	}
}

func TestTimeline(t *testing.T) {
	got := Timeline("- 1990s The rise of X\n- just a note\n- 2007 iPhone\nnot a bullet")
	want := []TimelineEntry{
		{Year: "1990s", Text: "The rise of X"},
		{Text: "just a note"},
		{Year: "2007", Text: "iPhone"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got[0].IsParagraph() || !got[1].IsParagraph() {
		t.Errorf("paragraph detection is wrong: %+v", got)
	}
}

func TestTimeline_YearWithoutText(t *testing.T) {
	got := Timeline("- 1999")
	if len(got) != 1 || !got[0].IsParagraph() || got[0].Text != "1999" {
		t.Errorf("expected a lone year to stay a paragraph, got %+v", got)
	}
}
