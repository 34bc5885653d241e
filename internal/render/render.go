// Package render turns a resume plus a layout definition into finished
// document bytes. A single block builder fixes section order and selection;
// two independent encoders (PDF, Word) apply the layout's visual intent with
// their own primitives. Output is deterministic: the same (resume, layout,
// format) triple always produces byte-identical documents.
package render

import (
	"github.com/jonathan/curriculo-builder/internal/types"
)

// Render produces document bytes for a resume under the given layout and
// output format. Pure transform: the only side effect is the returned buffer.
func Render(resume types.Resume, layout types.LayoutDefinition, format types.Format) ([]byte, error) {
	blocks := buildBlocks(resume, layout)
	switch format {
	case types.FormatPDF:
		return encodePDF(blocks, layout)
	case types.FormatDOCX:
		return encodeDOCX(blocks, layout)
	}
	return nil, &UnsupportedFormatError{Format: string(format)}
}
