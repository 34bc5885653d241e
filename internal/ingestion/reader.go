// Package ingestion extracts an ordered sequence of text lines from uploaded
// PDF or Word binaries, tagging lines with minimal structural hints where the
// source format exposes them.
package ingestion

import (
	"archive/zip"
	"bytes"

	"github.com/jonathan/curriculo-builder/internal/types"
)

// Line is one normalized text line from a source document. A Line with empty
// Text is a blank-line separator preserved for entry grouping downstream.
type Line struct {
	Text        string
	HeadingLike bool
	Indent      int
}

// Blank reports whether the line is a blank separator.
func (l Line) Blank() bool {
	return l.Text == ""
}

var (
	pdfSignature = []byte("%PDF-")
	zipSignature = []byte("PK\x03\x04")
)

// Sniff inspects the blob's magic bytes and reports its format.
// The boolean is false when the format cannot be determined.
func Sniff(data []byte) (types.Format, bool) {
	switch {
	case bytes.HasPrefix(data, pdfSignature):
		return types.FormatPDF, true
	case bytes.HasPrefix(data, zipSignature):
		// A DOCX is a ZIP package; whether it actually carries a word/
		// document.xml part is checked when the package is opened.
		return types.FormatDOCX, true
	}
	return "", false
}

// Read extracts the line sequence from a document blob. When format is empty
// the blob is sniffed. Pure transform: no disk writes, no network.
func Read(data []byte, format types.Format) ([]Line, error) {
	if format == "" {
		sniffed, ok := Sniff(data)
		if !ok {
			return nil, &UnsupportedFormatError{Message: "could not determine document format, expected PDF or Word"}
		}
		format = sniffed
	}

	switch format {
	case types.FormatPDF:
		if !bytes.HasPrefix(data, pdfSignature) {
			return nil, &CorruptDocumentError{Message: "declared PDF is missing the %PDF- signature"}
		}
		return readPDF(data)
	case types.FormatDOCX:
		return readDOCX(data)
	}
	return nil, &UnsupportedFormatError{Message: string(format)}
}

// isWordPackage reports whether the open ZIP carries the main document part.
func isWordPackage(zr *zip.Reader) bool {
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return true
		}
	}
	return false
}
