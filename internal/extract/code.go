package extract

import (
	"regexp"
	"strings"
)

// CodeBlock is one fenced region with its declared language.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

var (
	orgSrcBegin = regexp.MustCompile(`(?i)^\s*#\+begin_src\s+(\w[\w+#.-]*)`)
	orgSrcEnd   = regexp.MustCompile(`(?i)^\s*#\+end_src\s*$`)
	mdFence     = regexp.MustCompile("^\\s*(```+)\\s*([\\w+#.-]*)")
)

// CodeBlocks returns every tagged fenced region in body in document order.
// Both org source blocks and markdown backtick fences are recognised. Fences
// without a language are skipped, as are fences that never close.
func CodeBlocks(body string) []CodeBlock {
	blocks := []CodeBlock{}
	if strings.TrimSpace(body) == "" {
		return blocks
	}

	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := orgSrcBegin.FindStringSubmatch(line); m != nil {
			end := findClose(lines, i+1, orgSrcEnd.MatchString)
			if end < 0 {
				break
			}
			blocks = append(blocks, CodeBlock{Language: m[1], Code: trimBlankLines(lines[i+1 : end])})
			i = end
			continue
		}

		if m := mdFence.FindStringSubmatch(line); m != nil {
			marker := m[1]
			end := findClose(lines, i+1, func(l string) bool {
				return strings.TrimSpace(l) == marker
			})
			if end < 0 {
				break
			}
			if m[2] != "" {
				blocks = append(blocks, CodeBlock{Language: m[2], Code: trimBlankLines(lines[i+1 : end])})
			}
			i = end
		}
	}
	return blocks
}

func findClose(lines []string, from int, isClose func(string) bool) int {
	for j := from; j < len(lines); j++ {
		if isClose(lines[j]) {
			return j
		}
	}
	return -1
}

// trimBlankLines drops leading and trailing blank lines but keeps the
// indentation of the remaining ones.
func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	out := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		out = append(out, strings.TrimRight(l, " \t\r"))
	}
	return strings.Join(out, "\n")
}
