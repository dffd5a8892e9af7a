package slug

import (
	"regexp"
	"testing"
)

var valid = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Why Go?  ", "why-go"},
		{"multiple   internal\tspaces", "multiple-internal-spaces"},
		{"already-slugged--text", "already-slugged-text"},
		{"--Leading and trailing--", "leading-and-trailing"},
		{"C++ & Rust: a comparison", "c-rust-a-comparison"},
		{"snake_case_name", "snake-case-name"},
		{"npm install foo", "npm-install-foo"},
		{"Café au lait", "cafe-au-lait"},
		{"Café Über", "cafe-uber"},
		{"Ærø straße", "r-strae"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestMake_AlwaysValid(t *testing.T) {
	inputs := []string{
		"Intro", "A -- B", "_x_", "1990s: the web", "tabs\t\tand\nnewlines",
		"日本語 text", "emoji 🚀 launch", "a/b\\c", "   ", "-", "__",
	}
	for _, in := range inputs {
		got := Make(in)
		if got != "" && !valid.MatchString(got) {
			t.Errorf("Make(%q) = %q does not match %s", in, got, valid)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join("intro", "Why Slides?"); got != "intro-why-slides" {
		t.Errorf("expected %q, got %q", "intro-why-slides", got)
	}
	if got := Join("", "Only Child"); got != "only-child" {
		t.Errorf("expected %q, got %q", "only-child", got)
	}
}
