package loader

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/dgallion1/orgdeck/internal/outline"
)

var (
	orgHeadline = regexp.MustCompile(`^(\*+)\s+(.*?)\s*$`)
	orgTags     = regexp.MustCompile(`\s+:[\w@#%:]+:$`)
	orgTitle    = regexp.MustCompile(`(?i)^#\+title:\s*(.*?)\s*$`)
	orgSrcOpen  = regexp.MustCompile(`(?i)^\s*#\+begin_(src|example)\b`)
	orgSrcClose = regexp.MustCompile(`(?i)^\s*#\+end_(src|example)\b`)
)

// OrgLoader handles org-mode outlines. Headline stars give the level, a
// property drawer right under a headline gives its properties, and every
// other line up to the next headline is body.
type OrgLoader struct{}

func (l *OrgLoader) Load(r io.Reader, filename string) (*outline.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	tb := newTreeBuilder()
	title := trimExt(filename, ".org")
	inBlock := false

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if inBlock {
			if orgSrcClose.MatchString(line) {
				inBlock = false
			}
			tb.line(line)
			continue
		}

		if m := orgHeadline.FindStringSubmatch(line); m != nil {
			tb.push(len(m[1]), orgTags.ReplaceAllString(m[2], ""))
			continue
		}

		if m := orgTitle.FindStringSubmatch(line); m != nil && len(tb.stack) == 1 {
			title = m[1]
			continue
		}

		if orgSrcOpen.MatchString(line) {
			inBlock = true
		}
		tb.line(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tb.finish(title), nil
}
