package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// readDOCX extracts lines from a Word (OOXML) package. Each paragraph of
// word/document.xml becomes one line; paragraph styles provide the
// heading-like hint and left indentation becomes the indent level.
func readDOCX(data []byte) ([]Line, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CorruptDocumentError{Message: "failed to open ZIP package", Cause: err}
	}
	if !isWordPackage(zr) {
		return nil, &UnsupportedFormatError{Message: "ZIP package has no word/document.xml part, not a Word document"}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, openErr := f.Open()
		if openErr != nil {
			return nil, &CorruptDocumentError{Message: "failed to open word/document.xml", Cause: openErr}
		}
		docXML, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, &CorruptDocumentError{Message: "failed to read word/document.xml", Cause: err}
		}
		break
	}

	lines, err := walkDocumentXML(docXML)
	if err != nil {
		return nil, &CorruptDocumentError{Message: "failed to parse word/document.xml", Cause: err}
	}
	return normalizeLines(lines), nil
}

// walkDocumentXML streams the main document part and flattens paragraphs
// (including those inside table cells) into lines.
func walkDocumentXML(docXML []byte) ([]Line, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))

	var lines []Line
	var para strings.Builder
	inParagraph := false
	inText := false
	headingLike := false
	indent := 0

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				para.Reset()
				headingLike = false
				indent = 0
			case "pStyle":
				if styleIsHeading(attrValue(t, "val")) {
					headingLike = true
				}
			case "ind":
				indent = indentLevel(attrValue(t, "left"), attrValue(t, "start"))
			case "t":
				inText = true
			case "tab":
				para.WriteByte('\t')
			case "br":
				para.WriteByte(' ')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					lines = append(lines, Line{
						Text:        collapseWhitespace(para.String()),
						HeadingLike: headingLike,
						Indent:      indent,
					})
				}
				inParagraph = false
			}
		case xml.CharData:
			if inParagraph && inText {
				para.Write(t)
			}
		}
	}

	return lines, nil
}

// styleIsHeading reports whether a paragraph style id marks a heading.
// Word uses "Heading1".."Heading9" internally even for localized UIs, but
// pt-BR documents occasionally carry translated style ids.
func styleIsHeading(styleID string) bool {
	lower := strings.ToLower(styleID)
	return strings.HasPrefix(lower, "heading") ||
		strings.HasPrefix(lower, "ttulo") ||
		strings.HasPrefix(lower, "título") ||
		lower == "title"
}

// indentLevel converts a paragraph indentation in twips to a coarse level
// (720 twips = half inch = one level).
func indentLevel(left, start string) int {
	raw := left
	if raw == "" {
		raw = start
	}
	if raw == "" {
		return 0
	}
	twips, err := strconv.Atoi(raw)
	if err != nil || twips <= 0 {
		return 0
	}
	return twips / 720
}

// attrValue returns the value of the named attribute, ignoring namespace.
func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
