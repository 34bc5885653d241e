package ingestion

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowYTolerance is the maximum vertical distance, in PDF points, between
// glyphs that belong to the same text row.
const rowYTolerance = 2.0

// readPDF extracts lines from a PDF blob. Glyphs are clustered into visual
// rows by their Y coordinate, rows are ordered top to bottom, and glyphs keep
// their content-stream order within a row; multi-column pages therefore
// interleave their columns in reading order. That is a known precision limit
// of the extractor, not an error.
func readPDF(data []byte) (lines []Line, err error) {
	// The underlying parser panics on some malformed cross-reference tables;
	// map that to a corrupt-document error instead of crashing the request.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = &CorruptDocumentError{Message: fmt.Sprintf("PDF parser panic: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CorruptDocumentError{Message: "failed to open PDF", Cause: err}
	}

	var raw []Line
	var fontSizes []float64

	type pdfRow struct {
		text string
		size float64
	}
	var pages [][]pdfRow

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows := groupRows(page.Content().Text)
		pageRows := make([]pdfRow, 0, len(rows))
		for _, row := range rows {
			text, size := joinRow(row)
			if text == "" {
				continue
			}
			pageRows = append(pageRows, pdfRow{text: text, size: size})
			fontSizes = append(fontSizes, size)
		}
		pages = append(pages, pageRows)
	}

	body := medianSize(fontSizes)
	for _, pageRows := range pages {
		for _, row := range pageRows {
			raw = append(raw, Line{
				Text:        row.text,
				HeadingLike: body > 0 && row.size > body*1.1 && len([]rune(row.text)) <= 60,
			})
		}
		// Page boundary doubles as an entry separator.
		raw = append(raw, Line{})
	}

	return normalizeLines(raw), nil
}

// groupRows clusters the page's glyphs into visual rows by Y coordinate and
// orders the rows top to bottom. PDF Y grows upward, so larger Y comes first.
// Within a row the glyphs keep their content-stream order.
func groupRows(glyphs []pdf.Text) [][]pdf.Text {
	type row struct {
		y      float64
		glyphs []pdf.Text
	}

	var rows []*row
	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		var target *row
		for i := len(rows) - 1; i >= 0; i-- {
			if math.Abs(rows[i].y-g.Y) <= rowYTolerance {
				target = rows[i]
				break
			}
		}
		if target == nil {
			target = &row{y: g.Y}
			rows = append(rows, target)
		}
		target.glyphs = append(target.glyphs, g)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([][]pdf.Text, len(rows))
	for i, r := range rows {
		out[i] = r.glyphs
	}
	return out
}

// joinRow concatenates the glyphs of one row, inserting a space where the
// horizontal gap between neighbors is wide enough to be a word break.
func joinRow(glyphs []pdf.Text) (string, float64) {
	var sb strings.Builder
	var maxSize, prevEnd float64
	for i, g := range glyphs {
		if g.FontSize > maxSize {
			maxSize = g.FontSize
		}
		if i > 0 && g.X-prevEnd > g.FontSize*0.2 && !strings.HasSuffix(sb.String(), " ") {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.S)
		prevEnd = g.X + g.W
	}
	return collapseWhitespace(sb.String()), maxSize
}

// medianSize returns the median font size, used as the body-text baseline for
// heading detection. Returns 0 when the document exposed no sizes.
func medianSize(sizes []float64) float64 {
	if len(sizes) == 0 {
		return 0
	}
	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}
