package types

// Typography selects the font family a layout renders with.
type Typography string

// Typography families available to layouts.
const (
	TypographySans  Typography = "sans"
	TypographySerif Typography = "serif"
)

// Columns selects how a layout arranges experience and education content.
type Columns string

// Column schemes available to layouts.
const (
	ColumnsSingle Columns = "single"
	ColumnsTwo    Columns = "two"
)

// RGB is an accent color applied to headings and table chrome.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// SectionHeadings holds the per-layout display titles for each resume section.
type SectionHeadings struct {
	Summary    string
	Experience string
	Education  string
	Skills     string
	Projects   string
}

// LayoutStyle is the internal style descriptor consumed only by the renderer.
type LayoutStyle struct {
	Accent        RGB
	Typography    Typography
	Columns       Columns
	Headings      SectionHeadings
	SkillsDivider string // separator used when skills render as one line
	SkillsFirst   bool   // render skills before education
}

// LayoutDefinition describes one entry of the fixed layout catalog.
// Definitions are built once at process start and never mutated.
type LayoutDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"nome"`
	Description string   `json:"descricao"`
	Tags        []string `json:"etiquetas,omitempty"`

	Style LayoutStyle `json:"-"`
}
