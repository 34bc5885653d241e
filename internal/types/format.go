package types

import "strings"

// Format identifies a document encoding handled by the reader and the renderer.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat parses a user-supplied format token. The boolean reports whether
// the token names a supported format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, true
	case "docx", "doc", "word":
		return FormatDOCX, true
	}
	return "", false
}
