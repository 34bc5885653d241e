// Package parsing turns a normalized document line sequence into the
// structured resume schema. Extraction is heuristic and deterministic: it
// degrades to empty fields rather than failing, and only reports an error for
// an input with no text at all.
package parsing

import (
	"strings"

	"github.com/jonathan/curriculo-builder/internal/ingestion"
	"github.com/jonathan/curriculo-builder/internal/types"
)

// Extract consumes the line sequence and produces a Resume.
// It fails only with EmptyDocumentError when no non-blank line exists.
func Extract(lines []ingestion.Line) (*types.Resume, error) {
	hasText := false
	for _, line := range lines {
		if !line.Blank() {
			hasText = true
			break
		}
	}
	if !hasText {
		return nil, &EmptyDocumentError{}
	}

	segs := segment(lines)

	resume := &types.Resume{}
	leftover := extractContact(segs.header, &resume.Contact)

	// Summary prefers a dedicated section; header prose that matched no
	// contact pattern is the fallback so nothing is silently dropped.
	resume.Summary = joinProse(segs.byKind[SectionSummary])
	if resume.Summary == "" {
		resume.Summary = joinProse(leftover)
	}

	resume.Experiences = parseExperiences(segs.byKind[SectionExperience])
	resume.Educations = parseEducations(segs.byKind[SectionEducation])
	resume.Skills = parseSkills(segs.byKind[SectionSkills])
	resume.Projects = parseProjects(segs.byKind[SectionProjects])

	return resume, nil
}

// extractContact applies the contact pattern matchers to the header region and
// returns the lines that contributed nothing, for the summary fallback.
func extractContact(header []ingestion.Line, contact *types.Contact) []ingestion.Line {
	var leftover []ingestion.Line
	var detailParts []string
	matchedAny := false

	for _, line := range header {
		if line.Blank() {
			continue
		}
		text := line.Text
		lineMatched := false

		if m := emailPattern.FindString(text); m != "" && contact.Email == "" {
			contact.Email = m
			lineMatched = true
		}
		if m := linkedinPattern.FindString(text); m != "" && contact.LinkedIn == "" {
			contact.LinkedIn = strings.TrimRight(m, ".,;")
			lineMatched = true
		}
		if m := findWebsite(text, contact.LinkedIn); m != "" && contact.Website == "" {
			contact.Website = m
			lineMatched = true
		}
		if m := phonePattern.FindString(text); m != "" && contact.Phone == "" {
			contact.Phone = strings.TrimSpace(m)
			lineMatched = true
		}

		switch {
		case lineMatched:
			matchedAny = true
			detailParts = append(detailParts, text)
		case contact.FullName == "" && !matchedAny:
			// First line before any pattern hit is the best-effort name.
			contact.FullName = text
		default:
			detailParts = append(detailParts, text)
			leftover = append(leftover, line)
		}
	}

	contact.Location = extractLocation(strings.Join(detailParts, " "))
	return leftover
}

// findWebsite returns the first URL that is not the already-claimed LinkedIn
// profile.
func findWebsite(text, linkedin string) string {
	for _, m := range urlPattern.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;")
		if linkedin != "" && strings.Contains(m, "linkedin.com") {
			continue
		}
		return m
	}
	return ""
}

// extractLocation takes the last comma-separated fragment of the contact
// details that is not itself an email, phone or URL. Best effort.
func extractLocation(details string) string {
	if !strings.Contains(details, ",") {
		return ""
	}
	parts := strings.Split(details, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		part := strings.TrimSpace(parts[i])
		if len([]rune(part)) <= 2 {
			continue
		}
		if emailPattern.MatchString(part) || urlPattern.MatchString(part) || phonePattern.MatchString(part) {
			continue
		}
		return part
	}
	return ""
}

// joinProse whitespace-joins the non-blank lines of a region.
func joinProse(lines []ingestion.Line) string {
	var parts []string
	for _, line := range lines {
		if !line.Blank() {
			parts = append(parts, line.Text)
		}
	}
	return strings.Join(parts, " ")
}
