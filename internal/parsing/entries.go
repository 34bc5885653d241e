package parsing

import (
	"strings"

	"github.com/jonathan/curriculo-builder/internal/ingestion"
	"github.com/jonathan/curriculo-builder/internal/types"
)

// groupEntries splits a section's line range into entry blocks. Blank lines
// and heading-like lines open a new block.
func groupEntries(lines []ingestion.Line) [][]ingestion.Line {
	var entries [][]ingestion.Line
	var current []ingestion.Line

	flush := func() {
		if len(current) > 0 {
			entries = append(entries, current)
			current = nil
		}
	}

	for _, line := range lines {
		if line.Blank() {
			flush()
			continue
		}
		if line.HeadingLike {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return entries
}

// parseExperiences builds experience entries from a section range.
func parseExperiences(lines []ingestion.Line) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, block := range groupEntries(lines) {
		entries = append(entries, experienceFromBlock(block))
	}
	return entries
}

// experienceFromBlock parses one entry block: title line, optional date range
// anywhere in the block, bullet lines as achievements. Lines that fit no
// sub-pattern are kept as raw achievement statements so nothing is lost.
func experienceFromBlock(block []ingestion.Line) types.ExperienceEntry {
	var entry types.ExperienceEntry
	title := block[0].Text
	dateLine := -1

	for i, line := range block {
		start, end, matched, ok := findDateRange(line.Text)
		if !ok {
			continue
		}
		entry.StartDate = start
		entry.EndDate = end
		dateLine = i
		if i == 0 {
			title = stripMatched(title, matched)
		}
		break
	}

	if role, company, ok := splitTitle(title, true); ok {
		entry.Role = role
		entry.Company = company
	} else {
		entry.Role = strings.TrimSpace(title)
	}

	for i, line := range block[1:] {
		if i+1 == dateLine {
			rest := stripMatched(line.Text, dateRangePattern.FindString(line.Text))
			if rest != "" {
				entry.Highlights = append(entry.Highlights, rest)
			}
			continue
		}
		text, _ := stripBullet(line.Text)
		if text != "" {
			entry.Highlights = append(entry.Highlights, text)
		}
	}
	return entry
}

// parseEducations builds education entries from a section range. The title
// splits on dashes and commas into degree, institution and trailing details;
// remaining lines concatenate into the free-text details field.
func parseEducations(lines []ingestion.Line) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, block := range groupEntries(lines) {
		entries = append(entries, educationFromBlock(block))
	}
	return entries
}

func educationFromBlock(block []ingestion.Line) types.EducationEntry {
	var entry types.EducationEntry
	parts := splitEducationTitle(block[0].Text)
	entry.Degree = parts[0]
	if len(parts) > 1 {
		entry.Institution = parts[1]
	}

	var details []string
	if len(parts) > 2 {
		details = append(details, strings.Join(parts[2:], ", "))
	}
	for _, line := range block[1:] {
		text, _ := stripBullet(line.Text)
		if text != "" {
			details = append(details, text)
		}
	}
	entry.Details = strings.Join(details, " ")
	return entry
}

// splitEducationTitle splits on spaced dashes and commas, keeping non-empty
// trimmed parts. Connectives like "em" are not separators here.
func splitEducationTitle(title string) []string {
	raw := educationSeparator.Split(title, -1)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		parts = []string{strings.TrimSpace(title)}
	}
	return parts
}

// parseProjects builds project entries from a section range. The title splits
// into name and description on a dash or colon; a URL anywhere in the block
// becomes the link.
func parseProjects(lines []ingestion.Line) []types.ProjectEntry {
	var entries []types.ProjectEntry
	for _, block := range groupEntries(lines) {
		entries = append(entries, projectFromBlock(block))
	}
	return entries
}

func projectFromBlock(block []ingestion.Line) types.ProjectEntry {
	var entry types.ProjectEntry
	title := block[0].Text

	for _, line := range block {
		if m := urlPattern.FindString(line.Text); m != "" {
			entry.Link = strings.TrimRight(m, ".,;")
			break
		}
	}

	name, description := title, ""
	if left, right, ok := splitTitle(title, false); ok {
		name, description = left, right
	} else if idx := strings.Index(title, ":"); idx > 0 {
		name = strings.TrimSpace(title[:idx])
		description = strings.TrimSpace(title[idx+1:])
	}
	entry.Name = name

	parts := []string{}
	if description != "" {
		parts = append(parts, description)
	}
	for _, line := range block[1:] {
		text, _ := stripBullet(line.Text)
		if text != "" && text != entry.Link {
			parts = append(parts, text)
		}
	}
	entry.Description = strings.Join(parts, " ")
	return entry
}
