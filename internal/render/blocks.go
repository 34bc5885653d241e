package render

import (
	"strings"

	"github.com/jonathan/curriculo-builder/internal/types"
)

// BlockKind identifies one abstract unit of renderable resume content.
type BlockKind string

// Block kinds in canonical order.
const (
	BlockContact    BlockKind = "contact"
	BlockSummary    BlockKind = "summary"
	BlockExperience BlockKind = "experience"
	BlockEducation  BlockKind = "education"
	BlockSkills     BlockKind = "skills"
	BlockProjects   BlockKind = "projects"
)

// Block is one format-independent content block. Both encoders consume the
// same block sequence so section ordering and selection live in one place.
type Block struct {
	Kind    BlockKind
	Heading string

	// Contact block
	Name        string
	ContactLine string

	// Summary and skills blocks carry pre-joined text.
	Text string

	// Section blocks carry their entries; TwoColumn asks the encoder for the
	// layout's grid treatment where it applies.
	Experiences []types.ExperienceEntry
	Educations  []types.EducationEntry
	Projects    []types.ProjectEntry
	TwoColumn   bool
}

// buildBlocks produces the canonical block sequence for a resume under a
// layout: contact, summary, then the entry sections with empty ones omitted.
// The executive layout moves skills ahead of education.
func buildBlocks(resume types.Resume, layout types.LayoutDefinition) []Block {
	style := layout.Style
	twoColumn := style.Columns == types.ColumnsTwo

	blocks := []Block{{
		Kind:        BlockContact,
		Name:        resume.Contact.FullName,
		ContactLine: strings.Join(resume.ContactParts(), " | "),
	}}

	if resume.Summary != "" {
		blocks = append(blocks, Block{
			Kind:    BlockSummary,
			Heading: style.Headings.Summary,
			Text:    resume.Summary,
		})
	}

	if len(resume.Experiences) > 0 {
		blocks = append(blocks, Block{
			Kind:        BlockExperience,
			Heading:     style.Headings.Experience,
			Experiences: resume.Experiences,
			TwoColumn:   twoColumn,
		})
	}

	education := Block{
		Kind:       BlockEducation,
		Heading:    style.Headings.Education,
		Educations: resume.Educations,
		TwoColumn:  twoColumn,
	}
	skills := Block{
		Kind:    BlockSkills,
		Heading: style.Headings.Skills,
		Text:    strings.Join(resume.Skills, style.SkillsDivider),
	}

	ordered := []Block{education, skills}
	if style.SkillsFirst {
		ordered = []Block{skills, education}
	}
	for _, b := range ordered {
		if b.Kind == BlockEducation && len(b.Educations) == 0 {
			continue
		}
		if b.Kind == BlockSkills && b.Text == "" {
			continue
		}
		blocks = append(blocks, b)
	}

	if len(resume.Projects) > 0 {
		blocks = append(blocks, Block{
			Kind:     BlockProjects,
			Heading:  style.Headings.Projects,
			Projects: resume.Projects,
		})
	}

	return blocks
}

// timeframe formats an experience date range for display. An entry with any
// date present but no end date shows the ongoing marker.
func timeframe(e types.ExperienceEntry) string {
	if e.StartDate == "" && e.EndDate == "" {
		return ""
	}
	end := e.EndDate
	if end == "" {
		end = "Atual"
	}
	return e.StartDate + " - " + end
}

// experienceTitle formats the bold title line of an experience entry.
func experienceTitle(e types.ExperienceEntry) string {
	title := e.Role
	if e.Company != "" {
		title += " - " + e.Company
	}
	return title
}

// educationLine formats an education entry as a single display line.
func educationLine(e types.EducationEntry) string {
	line := e.Degree
	if e.Institution != "" {
		line += " - " + e.Institution
	}
	if e.Details != "" {
		line += " (" + e.Details + ")"
	}
	return line
}
