package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordPackage builds an in-memory OOXML package around the given
// word/document.xml body.
func wordPackage(t *testing.T, body string) []byte {
	t.Helper()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestReadDOCXParagraphs(t *testing.T) {
	data := wordPackage(t, `
		<w:p><w:r><w:t>Maria Silva</w:t></w:r></w:p>
		<w:p><w:r><w:t>maria@exemplo.com</w:t></w:r></w:p>`)

	lines, err := Read(data, "")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "Maria Silva", lines[0].Text)
	assert.Equal(t, "maria@exemplo.com", lines[1].Text)
}

func TestReadDOCXHeadingStyle(t *testing.T) {
	data := wordPackage(t, `
		<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Experiência</w:t></w:r></w:p>
		<w:p><w:r><w:t>Engenheira na Acme</w:t></w:r></w:p>`)

	lines, err := Read(data, "")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.True(t, lines[0].HeadingLike)
	assert.False(t, lines[1].HeadingLike)
}

func TestReadDOCXBlankParagraphSeparators(t *testing.T) {
	data := wordPackage(t, `
		<w:p><w:r><w:t>first entry</w:t></w:r></w:p>
		<w:p/>
		<w:p/>
		<w:p><w:r><w:t>second entry</w:t></w:r></w:p>`)

	lines, err := Read(data, "")
	require.NoError(t, err)

	require.Len(t, lines, 3)
	assert.Equal(t, "first entry", lines[0].Text)
	assert.True(t, lines[1].Blank())
	assert.Equal(t, "second entry", lines[2].Text)
}

func TestReadDOCXJoinsRunsAndBreaks(t *testing.T) {
	data := wordPackage(t, `
		<w:p><w:r><w:t>Senior</w:t></w:r><w:r><w:t xml:space="preserve"> Developer</w:t></w:r>` +
		`<w:r><w:br/><w:t>Tech Corp</w:t></w:r></w:p>`)

	lines, err := Read(data, "")
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "Senior Developer Tech Corp", lines[0].Text)
}

func TestReadDOCXTableCellParagraphs(t *testing.T) {
	data := wordPackage(t, `
		<w:tbl><w:tr>
		<w:tc><w:p><w:r><w:t>Item</w:t></w:r></w:p></w:tc>
		<w:tc><w:p><w:r><w:t>Detalhes</w:t></w:r></w:p></w:tc>
		</w:tr></w:tbl>`)

	lines, err := Read(data, "")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "Item", lines[0].Text)
	assert.Equal(t, "Detalhes", lines[1].Text)
}

func TestReadDOCXIndentLevels(t *testing.T) {
	data := wordPackage(t, `
		<w:p><w:pPr><w:ind w:left="720"/></w:pPr><w:r><w:t>one level</w:t></w:r></w:p>
		<w:p><w:pPr><w:ind w:left="1440"/></w:pPr><w:r><w:t>two levels</w:t></w:r></w:p>`)

	lines, err := Read(data, "")
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Indent)
	assert.Equal(t, 2, lines[1].Indent)
}

func TestStyleIsHeading(t *testing.T) {
	tests := []struct {
		styleID string
		heading bool
	}{
		{"Heading1", true},
		{"heading3", true},
		{"Ttulo1", true},
		{"Title", true},
		{"Normal", false},
		{"ListParagraph", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.styleID, func(t *testing.T) {
			assert.Equal(t, tt.heading, styleIsHeading(tt.styleID))
		})
	}
}

func TestIndentLevel(t *testing.T) {
	assert.Equal(t, 0, indentLevel("", ""))
	assert.Equal(t, 1, indentLevel("", "720"))
	assert.Equal(t, 0, indentLevel("not a number", ""))
	assert.Equal(t, 0, indentLevel("-720", ""))
}
