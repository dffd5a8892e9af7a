package loader

import (
	"regexp"
	"strings"
)

var (
	drawerStart = regexp.MustCompile(`(?i)^\s*:PROPERTIES:\s*$`)
	drawerEnd   = regexp.MustCompile(`(?i)^\s*:END:\s*$`)
	drawerEntry = regexp.MustCompile(`^\s*:([^:\s]+):\s*(.*?)\s*$`)
)

// splitDrawer lifts a leading :PROPERTIES: ... :END: drawer out of body.
// Keys are upper-cased. A drawer that never closes is left in the body.
func splitDrawer(body string) (map[string]string, string) {
	lines := strings.Split(body, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) || !drawerStart.MatchString(lines[start]) {
		return nil, body
	}

	props := map[string]string{}
	for i := start + 1; i < len(lines); i++ {
		if drawerEnd.MatchString(lines[i]) {
			return props, strings.Join(lines[i+1:], "\n")
		}
		if m := drawerEntry.FindStringSubmatch(lines[i]); m != nil {
			props[strings.ToUpper(m[1])] = m[2]
		}
	}
	return nil, body
}
