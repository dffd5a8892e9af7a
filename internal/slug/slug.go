// Package slug turns display text into filename-safe identifiers.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphens    = regexp.MustCompile(`-+`)
)

// foldAccents decomposes letters and drops the combining marks, so "é" keeps
// its base letter instead of vanishing with the non-ASCII filter.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Make folds accents, lowercases text, drops everything except word characters, whitespace
// and hyphens, turns whitespace runs into a single hyphen, collapses repeated
// hyphens and trims hyphens from both ends. The result only contains
// [a-z0-9-]; underscores are treated as separators.
func Make(text string) string {
	s := strings.ToLower(foldAccents(text))
	s = disallowed.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", " ")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Join builds a child slug from an already resolved parent slug.
func Join(parent, text string) string {
	if parent == "" {
		return Make(text)
	}
	return Make(parent + "-" + text)
}
