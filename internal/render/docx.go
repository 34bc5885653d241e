package render

import (
	"github.com/jonathan/curriculo-builder/internal/types"
)

// Half-point font sizes for the Word encoder.
const (
	docxNameSize    = 40 // 20pt
	docxHeadingSize = 26 // 13pt
)

// encodeDOCX renders the block sequence as an OOXML Word package, applying
// the same layout intent as the PDF encoder with style-based paragraphs and
// tables.
func encodeDOCX(blocks []Block, layout types.LayoutDefinition) ([]byte, error) {
	accent := rgbHex(layout.Style.Accent.R, layout.Style.Accent.G, layout.Style.Accent.B)
	fontName := "Calibri"
	if layout.Style.Typography == types.TypographySerif {
		fontName = "Times New Roman"
	}

	var b docBuilder
	for _, block := range blocks {
		switch block.Kind {
		case BlockContact:
			b.paragraph(paraProps{styleID: "Heading1", centered: true},
				textRun(block.Name, runProps{bold: true, colorHex: accent, halfSize: docxNameSize}))
			b.paragraph(paraProps{centered: true}, textRun(block.ContactLine, runProps{}))
		case BlockSummary, BlockSkills:
			docxHeading(&b, block.Heading, accent)
			b.paragraph(paraProps{}, textRun(block.Text, runProps{}))
		case BlockExperience:
			docxHeading(&b, block.Heading, accent)
			if block.TwoColumn {
				b.table(experienceRows(block.Experiences), accent, true)
			} else {
				docxExperiences(&b, block.Experiences)
			}
		case BlockEducation:
			docxHeading(&b, block.Heading, accent)
			if block.TwoColumn {
				b.table(educationRows(block.Educations), accent, true)
			} else {
				for _, entry := range block.Educations {
					b.paragraph(paraProps{}, textRun(educationLine(entry), runProps{}))
				}
			}
		case BlockProjects:
			docxHeading(&b, block.Heading, accent)
			for _, entry := range block.Projects {
				b.paragraph(paraProps{}, textRun(projectLine(entry), runProps{}))
			}
		}
	}

	data, err := writePackage(b.document(), fontName)
	if err != nil {
		return nil, &RenderError{Message: "Word backend failed", Cause: err}
	}
	return data, nil
}

func docxHeading(b *docBuilder, heading, accent string) {
	b.paragraph(paraProps{styleID: "Heading2"},
		textRun(heading, runProps{bold: true, colorHex: accent, halfSize: docxHeadingSize}))
}

func docxExperiences(b *docBuilder, entries []types.ExperienceEntry) {
	for _, entry := range entries {
		title := experienceTitle(entry)
		if tf := timeframe(entry); tf != "" {
			b.paragraph(paraProps{},
				textRun(title, runProps{bold: true}),
				textRun(" ("+tf+")", runProps{}))
		} else {
			b.paragraph(paraProps{}, textRun(title, runProps{bold: true}))
		}
		for _, highlight := range entry.Highlights {
			b.paragraph(paraProps{indent: 360}, textRun("• "+highlight, runProps{}))
		}
	}
}

// experienceRows flattens experiences into two-column grid rows.
func experienceRows(entries []types.ExperienceEntry) [][2]string {
	rows := [][2]string{{"Item", "Detalhes"}}
	for _, entry := range entries {
		details := timeframe(entry)
		for i, highlight := range entry.Highlights {
			if i == 0 && details != "" {
				details += " | "
			} else if i > 0 {
				details += "; "
			}
			details += highlight
		}
		rows = append(rows, [2]string{experienceTitle(entry), details})
	}
	return rows
}

// educationRows flattens education entries into two-column grid rows.
func educationRows(entries []types.EducationEntry) [][2]string {
	rows := [][2]string{{"Item", "Detalhes"}}
	for _, entry := range entries {
		details := entry.Institution
		if entry.Details != "" {
			if details != "" {
				details += " | "
			}
			details += entry.Details
		}
		rows = append(rows, [2]string{entry.Degree, details})
	}
	return rows
}

// projectLine formats a project entry as a single display line.
func projectLine(entry types.ProjectEntry) string {
	line := entry.Name
	if entry.Link != "" {
		line += " - " + entry.Link
	}
	if entry.Description != "" {
		line += ": " + entry.Description
	}
	return line
}
