package parsing

import (
	"regexp"
	"strings"
)

// Contact pattern matchers, applied to the unassigned header region.
var (
	emailPattern    = regexp.MustCompile(`[\w.\-+]+@[\w\-]+\.[\w.\-]+`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[\s-]?)?(?:\(?\d{2,3}\)?[\s-]?)?\d{4,5}[\s-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/\S+`)
	urlPattern      = regexp.MustCompile(`https?://\S+`)
)

// dateToken matches one date-like token: a bare year, month-name year
// ("Jan 2020", "março de 2019") or numeric month/year ("03/2019").
const dateToken = `(?:\d{1,2}/\d{4}|\pL{3,10}\.?\s+(?:de\s+)?\d{4}|\d{4})`

// ongoingToken matches the recognized "still current" end markers.
const ongoingToken = `(?:atual|presente|current|present)`

// dateRangePattern matches two date-like tokens joined by a range separator,
// the second possibly an ongoing marker. The separator set is the explicit
// configuration table for recognized range spellings. Word separators need
// whitespace on both sides; \b is useless here because it is ASCII-only and
// "até" ends on an accented letter.
var dateRangePattern = regexp.MustCompile(
	`(?i)(` + dateToken + `)(?:\s*[-–—]\s*|\s+(?:to|até|a)\s+)(` + dateToken + `|` + ongoingToken + `)`,
)

// bulletPrefixes is the explicit table of recognized bullet markers.
var bulletPrefixes = []string{"- ", "* ", "• ", "· ", "▪ ", "– ", "— "}

// stripBullet removes a leading bullet marker, reporting whether one was found.
func stripBullet(text string) (string, bool) {
	trimmed := strings.TrimLeft(text, " \t")
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	return text, false
}

// Entry title separators, tried in order: an explicit dash wins over the
// "role at organization" connectives.
var (
	dashSeparator = regexp.MustCompile(`^(.{1,120}?)\s+[-–—]\s+(.+)$`)
	atSeparator   = regexp.MustCompile(`(?i)^(.{1,120}?)\s+(?:at|@|na|no|em)\s+(.+)$`)
)

// splitTitle splits an entry title into its left and right parts.
// allowConnective enables the at/na/em fallback, which is only safe for
// experience titles ("Engenheiro na Acme"); education degrees legitimately
// contain "em" ("Bacharelado em Computação").
func splitTitle(title string, allowConnective bool) (left, right string, ok bool) {
	if m := dashSeparator.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	if allowConnective {
		if m := atSeparator.FindStringSubmatch(title); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
		}
	}
	return "", "", false
}

// educationSeparator splits education titles on spaced dashes and commas.
var educationSeparator = regexp.MustCompile(`\s+[-–—]\s+|,`)

// findDateRange scans a line for a date range and returns start, end and the
// full matched text.
func findDateRange(text string) (start, end, matched string, ok bool) {
	m := dateRangePattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), m[0], true
}

// stripMatched removes matched text from a title line along with the
// punctuation that framed it.
func stripMatched(title, matched string) string {
	title = strings.Replace(title, matched, "", 1)
	return strings.Trim(title, " \t-–—|,;:()")
}
