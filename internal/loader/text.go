package loader

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/orgdeck/internal/outline"
)

// TextLoader handles plain text files. Each blank-line separated paragraph is
// one top-level heading: its first line is the heading and the remaining
// lines are bullets.
type TextLoader struct{}

func (l *TextLoader) Load(r io.Reader, filename string) (*outline.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs [][]string
	var current []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tb := newTreeBuilder()
	for _, para := range paragraphs {
		tb.push(1, para[0])
		for _, line := range para[1:] {
			if !strings.HasPrefix(line, "-") {
				line = "- " + line
			}
			tb.line(line)
		}
	}

	return tb.finish(trimExt(filename, ".txt")), nil
}
