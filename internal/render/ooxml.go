package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"
)

// zipEpoch pins every ZIP entry timestamp so repeat renders are
// byte-identical.
var zipEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const wordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// stylesXML declares the paragraph styles the document part references, with
// the layout's default font on Normal.
func stylesXML(fontName string) string {
	return xmlHeader +
		`<w:styles xmlns:w="` + wordMLNamespace + `">` +
		`<w:docDefaults><w:rPrDefault><w:rPr>` +
		`<w:rFonts w:ascii="` + escapeXML(fontName) + `" w:hAnsi="` + escapeXML(fontName) + `"/>` +
		`<w:sz w:val="22"/>` +
		`</w:rPr></w:rPrDefault></w:docDefaults>` +
		`<w:style w:type="paragraph" w:styleId="Normal" w:default="1"><w:name w:val="Normal"/></w:style>` +
		`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/></w:style>` +
		`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/></w:style>` +
		`</w:styles>`
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// writePackage assembles the OOXML ZIP container with fixed entry order and
// timestamps.
func writePackage(documentXML, fontName string) ([]byte, error) {
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML(fontName)},
		{"word/document.xml", documentXML},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		header := &zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create package part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("failed to write package part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize package: %w", err)
	}
	return buf.Bytes(), nil
}

// runProps describes the direct run formatting of one text run.
type runProps struct {
	bold     bool
	colorHex string // RRGGBB, empty for default
	halfSize int    // font size in half-points, 0 for default
}

// paraProps describes paragraph-level formatting.
type paraProps struct {
	styleID  string
	centered bool
	indent   int // twips
}

// docBuilder accumulates the body of word/document.xml.
type docBuilder struct {
	body strings.Builder
}

// run appends one formatted text run to a paragraph under construction.
func appendRun(sb *strings.Builder, text string, props runProps) {
	sb.WriteString("<w:r>")
	if props.bold || props.colorHex != "" || props.halfSize > 0 {
		sb.WriteString("<w:rPr>")
		if props.bold {
			sb.WriteString("<w:b/>")
		}
		if props.colorHex != "" {
			fmt.Fprintf(sb, `<w:color w:val="%s"/>`, props.colorHex)
		}
		if props.halfSize > 0 {
			fmt.Fprintf(sb, `<w:sz w:val="%d"/>`, props.halfSize)
		}
		sb.WriteString("</w:rPr>")
	}
	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escapeXML(text))
	sb.WriteString("</w:t></w:r>")
}

// paragraph appends a paragraph made of the given runs.
func (b *docBuilder) paragraph(props paraProps, runs ...func(*strings.Builder)) {
	b.body.WriteString("<w:p>")
	if props.styleID != "" || props.centered || props.indent > 0 {
		b.body.WriteString("<w:pPr>")
		if props.styleID != "" {
			fmt.Fprintf(&b.body, `<w:pStyle w:val="%s"/>`, props.styleID)
		}
		if props.centered {
			b.body.WriteString(`<w:jc w:val="center"/>`)
		}
		if props.indent > 0 {
			fmt.Fprintf(&b.body, `<w:ind w:left="%d"/>`, props.indent)
		}
		b.body.WriteString("</w:pPr>")
	}
	for _, run := range runs {
		run(&b.body)
	}
	b.body.WriteString("</w:p>")
}

// textRun builds a run writer for paragraph.
func textRun(text string, props runProps) func(*strings.Builder) {
	return func(sb *strings.Builder) {
		appendRun(sb, text, props)
	}
}

// table appends a bordered table. The first row is shaded with the accent
// color when headerFill is set.
func (b *docBuilder) table(rows [][2]string, accentHex string, headerFill bool) {
	b.body.WriteString("<w:tbl><w:tblPr>")
	b.body.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	b.body.WriteString("<w:tblBorders>")
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&b.body, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="%s"/>`, edge, accentHex)
	}
	b.body.WriteString("</w:tblBorders></w:tblPr>")

	for i, row := range rows {
		b.body.WriteString("<w:tr>")
		for _, cell := range row {
			b.body.WriteString("<w:tc><w:tcPr>")
			if headerFill && i == 0 {
				fmt.Fprintf(&b.body, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, accentHex)
			}
			b.body.WriteString("</w:tcPr><w:p>")
			props := runProps{}
			if headerFill && i == 0 {
				props = runProps{bold: true, colorHex: "FFFFFF"}
			}
			appendRun(&b.body, cell, props)
			b.body.WriteString("</w:p></w:tc>")
		}
		b.body.WriteString("</w:tr>")
	}
	b.body.WriteString("</w:tbl>")
	// Word requires a paragraph between a table and whatever follows.
	b.body.WriteString("<w:p/>")
}

// document wraps the accumulated body into the main document part.
func (b *docBuilder) document() string {
	return xmlHeader +
		`<w:document xmlns:w="` + wordMLNamespace + `">` +
		"<w:body>" + b.body.String() +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080"/></w:sectPr>` +
		"</w:body></w:document>"
}

// rgbHex formats an accent color as OOXML's RRGGBB value.
func rgbHex(r, g, b uint8) string {
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}
