package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/curriculo-builder/internal/layouts"
	"github.com/jonathan/curriculo-builder/internal/types"
)

// packagePart reads one part out of a rendered OOXML package.
func packagePart(t *testing.T, data []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("package part %s not found", name)
	return ""
}

func TestWritePackageLayout(t *testing.T) {
	layout, err := layouts.Get("moderno-azul")
	require.NoError(t, err)

	data, err := Render(sampleResume(), layout, types.FormatDOCX)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.True(t, f.Modified.Equal(zipEpoch), "part %s must carry the pinned timestamp", f.Name)
	}
	assert.Equal(t, []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	}, names)
}

func TestRenderedDocumentContent(t *testing.T) {
	layout, err := layouts.Get("moderno-azul")
	require.NoError(t, err)

	data, err := Render(sampleResume(), layout, types.FormatDOCX)
	require.NoError(t, err)

	doc := packagePart(t, data, "word/document.xml")
	assert.Contains(t, doc, "Maria Silva")
	assert.Contains(t, doc, "Experiência")
	assert.Contains(t, doc, "Senior Developer - Tech Corp")
	assert.Contains(t, doc, `<w:color w:val="1F4E79"/>`)
}

func TestRenderedStylesCarryTypography(t *testing.T) {
	serif, err := layouts.Get("classico-serifado")
	require.NoError(t, err)

	data, err := Render(sampleResume(), serif, types.FormatDOCX)
	require.NoError(t, err)

	styles := packagePart(t, data, "word/styles.xml")
	assert.Contains(t, styles, `w:ascii="Times New Roman"`)
}

func TestTwoColumnLayoutEmitsTables(t *testing.T) {
	grid, err := layouts.Get("minimalista-grade")
	require.NoError(t, err)

	data, err := Render(sampleResume(), grid, types.FormatDOCX)
	require.NoError(t, err)

	doc := packagePart(t, data, "word/document.xml")
	assert.Contains(t, doc, "<w:tbl>")
	assert.Contains(t, doc, `<w:shd w:val="clear" w:color="auto" w:fill="2E7D32"/>`)
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "R&amp;D &lt;lead&gt; &quot;core&quot;", escapeXML(`R&D <lead> "core"`))
}

func TestDocBuilderParagraph(t *testing.T) {
	var b docBuilder
	b.paragraph(paraProps{styleID: "Heading2", centered: true},
		textRun("Formação", runProps{bold: true, colorHex: "333333", halfSize: 26}))

	out := b.document()
	assert.Contains(t, out, `<w:pStyle w:val="Heading2"/>`)
	assert.Contains(t, out, `<w:jc w:val="center"/>`)
	assert.Contains(t, out, "<w:b/>")
	assert.Contains(t, out, `<w:sz w:val="26"/>`)
	assert.Contains(t, out, `<w:t xml:space="preserve">Formação</w:t>`)
}

func TestRgbHex(t *testing.T) {
	assert.Equal(t, "1F4E79", rgbHex(0x1F, 0x4E, 0x79))
	assert.Equal(t, "000000", rgbHex(0, 0, 0))
}

func TestTableTrailingParagraph(t *testing.T) {
	var b docBuilder
	b.table([][2]string{{"Item", "Detalhes"}}, "2E7D32", true)

	// Word needs a paragraph between a table and the following element.
	assert.True(t, strings.Contains(b.document(), "</w:tbl><w:p/>"))
}
