package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/curriculo-builder/internal/ingestion"
)

// skillDelimiter splits a skills line into individual tokens.
var skillDelimiter = regexp.MustCompile(`[;,|•·]`)

// parseSkills splits the skills section into a set-like ordered sequence:
// tokens are trimmed, empties discarded, and case-insensitive duplicates
// collapse onto the first-seen casing.
func parseSkills(lines []ingestion.Line) []string {
	var skills []string
	seen := make(map[string]bool)

	for _, line := range lines {
		if line.Blank() {
			continue
		}
		text, _ := stripBullet(line.Text)
		for _, token := range skillDelimiter.Split(text, -1) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			key := strings.ToLower(token)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, token)
		}
	}
	return skills
}
