package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Text tokens are still escaped, so the only entity a URL may carry is &amp;.
// Any other entity (&quot;, &#39;, ...) ends it.
var bareURL = regexp.MustCompile(`https?://(?:[^\s<>"'&]|&amp;)+`)

// Autolink wraps bare http(s) URLs found in the text of an HTML fragment in
// anchor tags. It works on the token stream, so URLs inside attribute values
// and text already inside <a>, <script>, <style>, <pre> or <code> are left
// untouched.
func Autolink(fragment string) string {
	var out strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	skipDepth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a truncated fragment; either way nothing is left.
			break
		}
		raw := string(z.Raw())

		switch tt {
		case html.TextToken:
			if skipDepth == 0 {
				raw = linkURLs(raw)
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if skipsAutolink(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipsAutolink(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		}
		out.WriteString(raw)
	}
	return out.String()
}

func skipsAutolink(tag string) bool {
	switch tag {
	case "a", "script", "style", "pre", "code":
		return true
	}
	return false
}

// linkURLs wraps every URL in text. Trailing sentence punctuation and an
// unbalanced closing parenthesis stay outside the anchor.
func linkURLs(text string) string {
	matches := bareURL.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		url := text[m[0]:m[1]]
		trimmed := trimURL(url)
		b.WriteString(text[last:m[0]])
		b.WriteString(`<a href="` + trimmed + `">` + trimmed + `</a>`)
		b.WriteString(url[len(trimmed):])
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func trimURL(url string) string {
	for url != "" {
		switch last := url[len(url)-1]; {
		case strings.HasSuffix(url, "&amp;"):
			return url
		case strings.IndexByte(".,;:!?", last) >= 0:
			url = url[:len(url)-1]
		case last == ')' && strings.Count(url, "(") < strings.Count(url, ")"):
			url = url[:len(url)-1]
		default:
			return url
		}
	}
	return url
}
