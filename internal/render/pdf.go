package render

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/curriculo-builder/internal/types"
)

// fixedDocDate pins the embedded PDF metadata dates so repeat renders of the
// same input are byte-identical.
var fixedDocDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	pdfMargin     = 19.0 // mm
	pdfLineHeight = 5.5  // mm
)

// pdfEncoder wraps the fpdf document with the layout's typography and color.
type pdfEncoder struct {
	doc    *fpdf.Fpdf
	tr     func(string) string
	family string
	accent types.RGB
	width  float64 // usable content width
}

// encodePDF renders the block sequence as a flowed single-page-or-more PDF.
func encodePDF(blocks []Block, layout types.LayoutDefinition) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetCreationDate(fixedDocDate)
	doc.SetModificationDate(fixedDocDate)
	doc.SetTitle(layout.Name, true)
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)

	family := "Helvetica"
	if layout.Style.Typography == types.TypographySerif {
		family = "Times"
	}

	pageWidth, _ := doc.GetPageSize()
	enc := &pdfEncoder{
		doc:    doc,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
		family: family,
		accent: layout.Style.Accent,
		width:  pageWidth - 2*pdfMargin,
	}

	doc.AddPage()
	for _, block := range blocks {
		switch block.Kind {
		case BlockContact:
			enc.contact(block)
		case BlockSummary, BlockSkills:
			enc.section(block.Heading)
			enc.body(block.Text)
		case BlockExperience:
			enc.section(block.Heading)
			if block.TwoColumn {
				enc.experienceGrid(block.Experiences)
			} else {
				enc.experiences(block.Experiences)
			}
		case BlockEducation:
			enc.section(block.Heading)
			if block.TwoColumn {
				enc.educationGrid(block.Educations)
			} else {
				enc.educations(block.Educations)
			}
		case BlockProjects:
			enc.section(block.Heading)
			enc.projects(block.Projects)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Message: "PDF backend failed", Cause: err}
	}
	return buf.Bytes(), nil
}

// contact renders the centered name and contact detail line. Rendered even
// when every field is empty so the contact block area always exists.
func (e *pdfEncoder) contact(block Block) {
	e.doc.SetFont(e.family, "B", 20)
	e.doc.SetTextColor(int(e.accent.R), int(e.accent.G), int(e.accent.B))
	e.doc.CellFormat(e.width, 10, e.tr(block.Name), "", 1, "C", false, 0, "")

	e.doc.SetFont(e.family, "", 10)
	e.doc.SetTextColor(80, 80, 80)
	e.doc.CellFormat(e.width, pdfLineHeight, e.tr(block.ContactLine), "", 1, "C", false, 0, "")
	e.doc.Ln(3)
}

// section renders an accent-colored section heading with a rule underneath.
func (e *pdfEncoder) section(heading string) {
	e.doc.SetFont(e.family, "B", 13)
	e.doc.SetTextColor(int(e.accent.R), int(e.accent.G), int(e.accent.B))
	e.doc.SetDrawColor(int(e.accent.R), int(e.accent.G), int(e.accent.B))
	e.doc.CellFormat(e.width, 7, e.tr(heading), "B", 1, "L", false, 0, "")
	e.doc.Ln(1.5)
}

// body renders a plain text paragraph.
func (e *pdfEncoder) body(text string) {
	e.doc.SetFont(e.family, "", 11)
	e.doc.SetTextColor(0, 0, 0)
	e.doc.MultiCell(e.width, pdfLineHeight, e.tr(text), "", "L", false)
	e.doc.Ln(2.5)
}

func (e *pdfEncoder) experiences(entries []types.ExperienceEntry) {
	for _, entry := range entries {
		title := experienceTitle(entry)
		if tf := timeframe(entry); tf != "" {
			title += " (" + tf + ")"
		}
		e.doc.SetFont(e.family, "B", 11)
		e.doc.SetTextColor(0, 0, 0)
		e.doc.MultiCell(e.width, pdfLineHeight, e.tr(title), "", "L", false)

		e.doc.SetFont(e.family, "", 11)
		for _, highlight := range entry.Highlights {
			e.doc.MultiCell(e.width, pdfLineHeight, e.tr("• "+highlight), "", "L", false)
		}
		e.doc.Ln(1.5)
	}
	e.doc.Ln(1)
}

func (e *pdfEncoder) educations(entries []types.EducationEntry) {
	e.doc.SetFont(e.family, "", 11)
	e.doc.SetTextColor(0, 0, 0)
	for _, entry := range entries {
		e.doc.MultiCell(e.width, pdfLineHeight, e.tr(educationLine(entry)), "", "L", false)
	}
	e.doc.Ln(2.5)
}

// experienceGrid renders experiences as a two-column table: title against
// timeframe and highlights.
func (e *pdfEncoder) experienceGrid(entries []types.ExperienceEntry) {
	rows := make([][2]string, 0, len(entries))
	for _, entry := range entries {
		details := timeframe(entry)
		if len(entry.Highlights) > 0 {
			if details != "" {
				details += " | "
			}
			details += strings.Join(entry.Highlights, "; ")
		}
		rows = append(rows, [2]string{experienceTitle(entry), details})
	}
	e.grid(rows)
}

// educationGrid renders education as a two-column table: degree against
// institution and details.
func (e *pdfEncoder) educationGrid(entries []types.EducationEntry) {
	rows := make([][2]string, 0, len(entries))
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
	e.grid(rows)
}

// grid renders bordered two-column rows, balancing the row height to the
// taller of the two cells.
func (e *pdfEncoder) grid(rows [][2]string) {
	keyWidth := e.width * 0.42
	valWidth := e.width - keyWidth

	e.doc.SetFont(e.family, "", 10)
	e.doc.SetTextColor(0, 0, 0)
	e.doc.SetDrawColor(int(e.accent.R), int(e.accent.G), int(e.accent.B))

	for _, row := range rows {
		x, y := e.doc.GetX(), e.doc.GetY()
		e.doc.MultiCell(keyWidth, pdfLineHeight, e.tr(row[0]), "1", "L", false)
		keyBottom := e.doc.GetY()
		e.doc.SetXY(x+keyWidth, y)
		e.doc.MultiCell(valWidth, pdfLineHeight, e.tr(row[1]), "1", "L", false)
		if keyBottom > e.doc.GetY() {
			e.doc.SetY(keyBottom)
		}
		e.doc.SetX(pdfMargin)
	}
	e.doc.Ln(2.5)
}

// projects renders the project table with an accent header row.
func (e *pdfEncoder) projects(entries []types.ProjectEntry) {
	nameWidth := e.width * 0.38
	descWidth := e.width - nameWidth

	e.doc.SetFont(e.family, "B", 10)
	e.doc.SetTextColor(255, 255, 255)
	e.doc.SetFillColor(int(e.accent.R), int(e.accent.G), int(e.accent.B))
	e.doc.SetDrawColor(int(e.accent.R), int(e.accent.G), int(e.accent.B))
	e.doc.CellFormat(nameWidth, 6.5, e.tr("Projeto"), "1", 0, "L", true, 0, "")
	e.doc.CellFormat(descWidth, 6.5, e.tr("Descrição"), "1", 1, "L", true, 0, "")

	e.doc.SetFont(e.family, "", 10)
	e.doc.SetTextColor(0, 0, 0)
	for _, entry := range entries {
		description := entry.Description
		if entry.Link != "" {
			if description != "" {
				description += " "
			}
			description += entry.Link
		}
		x, y := e.doc.GetX(), e.doc.GetY()
		e.doc.MultiCell(nameWidth, pdfLineHeight, e.tr(entry.Name), "1", "L", false)
		nameBottom := e.doc.GetY()
		e.doc.SetXY(x+nameWidth, y)
		e.doc.MultiCell(descWidth, pdfLineHeight, e.tr(description), "1", "L", false)
		if nameBottom > e.doc.GetY() {
			e.doc.SetY(nameBottom)
		}
		e.doc.SetX(pdfMargin)
	}
}
