package extract

import (
	"strings"
	"testing"
)

func TestRichText_Markup(t *testing.T) {
	got := RichText("Some *emphasis* and **strong** text.\n\n- one\n- two")
	for _, want := range []string{"<em>emphasis</em>", "<strong>strong</strong>", "<li>one</li>"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "<h") && strings.Contains(got, "id=") {
		t.Errorf("expected no heading ids, got %q", got)
	}
}

func TestRichText_Empty(t *testing.T) {
	if got := RichText("  \n "); got != "" {
		t.Errorf("expected empty fragment, got %q", got)
	}
}

func TestRichText_AutolinksBareURL(t *testing.T) {
	got := RichText("See https://go.dev/doc for more.")
	want := `<a href="https://go.dev/doc">https://go.dev/doc</a> for more.`
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in %q", want, got)
	}
}

func TestRichText_AutolinksQuotedURL(t *testing.T) {
	got := RichText(`He said "see https://example.com" today`)
	want := `&quot;see <a href="https://example.com">https://example.com</a>&quot; today`
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in %q", want, got)
	}
}

func TestRichText_AutolinksQueryString(t *testing.T) {
	got := RichText("Try https://a.example/?q=1&b=2 now.")
	want := `<a href="https://a.example/?q=1&amp;b=2">https://a.example/?q=1&amp;b=2</a> now.`
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in %q", want, got)
	}
}

func TestRichText_OrgLinks(t *testing.T) {
	got := RichText("Read [[https://orgmode.org][the manual]] or [[https://go.dev]].")
	if !strings.Contains(got, `<a href="https://orgmode.org">the manual</a>`) {
		t.Errorf("expected described org link, got %q", got)
	}
	if strings.Count(got, `href="https://go.dev"`) != 1 {
		t.Errorf("expected exactly one anchor for bare org link, got %q", got)
	}
}

func TestRichText_OrgVerbatim(t *testing.T) {
	got := RichText("Run =go test= or ~make~ now.")
	if !strings.Contains(got, "<code>go test</code>") || !strings.Contains(got, "<code>make</code>") {
		t.Errorf("expected code spans, got %q", got)
	}
}

func TestAutolink_Fragments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"existing anchor",
			`<p><a href="https://a.example">https://a.example</a></p>`,
			`<p><a href="https://a.example">https://a.example</a></p>`,
		},
		{
			"image src",
			`<p><img src="https://img.example/x.png" alt="x"></p>`,
			`<p><img src="https://img.example/x.png" alt="x"></p>`,
		},
		{
			"code span",
			`<p><code>curl https://api.example</code></p>`,
			`<p><code>curl https://api.example</code></p>`,
		},
		{
			"bare after anchor",
			`<p><a href="/x">x</a> then https://b.example.</p>`,
			`<p><a href="/x">x</a> then <a href="https://b.example">https://b.example</a>.</p>`,
		},
		{
			"balanced parentheses",
			`<p>See https://en.wikipedia.org/wiki/Go_(programming_language).</p>`,
			`<p>See <a href="https://en.wikipedia.org/wiki/Go_(programming_language)">https://en.wikipedia.org/wiki/Go_(programming_language)</a>.</p>`,
		},
		{
			"wrapped in parentheses",
			`<p>(docs at https://go.dev/doc)</p>`,
			`<p>(docs at <a href="https://go.dev/doc">https://go.dev/doc</a>)</p>`,
		},
		{
			"single quoted",
			`<p>&#39;https://c.example&#39;</p>`,
			`<p>&#39;<a href="https://c.example">https://c.example</a>&#39;</p>`,
		},
	}
	for _, tt := range tests {
		if got := Autolink(tt.in); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}
