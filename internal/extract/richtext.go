package extract

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markup is shared across calls; goldmark engines are safe for concurrent use.
// Heading IDs, linkify and highlighting stay off: autolinking is done on the
// rendered fragment by Autolink.
var markup = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
)

var (
	orgDescLink = regexp.MustCompile(`\[\[([^\]]+)\]\[([^\]]+)\]\]`)
	orgBareLink = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	orgVerbatim = regexp.MustCompile(`(^|[\s(])[=~]([^\s=~](?:[^=~\n]*[^\s=~])?)[=~]($|[\s).,;:!?])`)
)

// orgInline rewrites the org inline forms goldmark does not know about into
// their markdown equivalents.
func orgInline(body string) string {
	body = orgDescLink.ReplaceAllString(body, "[$2]($1)")
	body = orgBareLink.ReplaceAllString(body, "<$1>")
	body = orgVerbatim.ReplaceAllString(body, "$1`$2`$3")
	return body
}

// RichText renders body to an HTML fragment and wraps bare http(s) URLs in
// anchors.
func RichText(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markup.Convert([]byte(orgInline(body)), &buf); err != nil {
		return "<p>" + html.EscapeString(strings.TrimSpace(body)) + "</p>"
	}
	return Autolink(strings.TrimSpace(buf.String()))
}
