package extract

import "strings"

// bulletText reports whether line is a bullet and returns its text.
func bulletText(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "-") {
		return "", false
	}
	return strings.TrimSpace(line[1:]), true
}

// Bullets returns the text of every line whose first non-space character is a
// hyphen. Other lines are ignored.
func Bullets(body string) []string {
	if strings.TrimSpace(body) == "" {
		return []string{}
	}
	bullets := []string{}
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		if text, ok := bulletText(line); ok {
			bullets = append(bullets, text)
		}
	}
	return bullets
}

// Lines returns the trimmed, non-empty lines of body.
func Lines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
