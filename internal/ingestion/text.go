package ingestion

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseWhitespace trims a line and folds internal whitespace runs into
// single spaces.
func collapseWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return whitespaceRun.ReplaceAllString(s, " ")
}

// normalizeLines produces the final line sequence:
// consecutive blank lines collapse into one separator, and leading/trailing
// blanks are dropped. Text content is already collapsed by the backends.
func normalizeLines(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	blankPending := false
	for _, line := range lines {
		if line.Blank() {
			blankPending = true
			continue
		}
		if blankPending && len(out) > 0 {
			out = append(out, Line{})
		}
		blankPending = false
		out = append(out, line)
	}
	return out
}
