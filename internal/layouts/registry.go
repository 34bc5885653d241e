// Package layouts holds the fixed catalog of four layout definitions. The
// catalog is built once at init and read-only afterward, so concurrent readers
// need no synchronization.
package layouts

import "github.com/jonathan/curriculo-builder/internal/types"

// catalog is the declaration-order list of layout definitions. Not
// user-extensible at runtime.
var catalog = []types.LayoutDefinition{
	{
		ID:          "moderno-azul",
		Name:        "Moderno Azul",
		Description: "Layout moderno com destaques em azul escuro",
		Tags:        []string{"moderno", "profissional"},
		Style: types.LayoutStyle{
			Accent:     types.RGB{R: 0x1F, G: 0x4E, B: 0x79},
			Typography: types.TypographySans,
			Columns:    types.ColumnsSingle,
			Headings: types.SectionHeadings{
				Summary:    "Resumo Profissional",
				Experience: "Experiência",
				Education:  "Formação",
				Skills:     "Habilidades",
				Projects:   "Projetos",
			},
			SkillsDivider: ", ",
		},
	},
	{
		ID:          "classico-serifado",
		Name:        "Clássico Serifado",
		Description: "Layout clássico com tipografia serifada",
		Tags:        []string{"clássico", "formal"},
		Style: types.LayoutStyle{
			Accent:     types.RGB{R: 0x33, G: 0x33, B: 0x33},
			Typography: types.TypographySerif,
			Columns:    types.ColumnsSingle,
			Headings: types.SectionHeadings{
				Summary:    "Perfil",
				Experience: "Histórico Profissional",
				Education:  "Educação",
				Skills:     "Competências",
				Projects:   "Projetos",
			},
			SkillsDivider: " • ",
		},
	},
	{
		ID:          "minimalista-grade",
		Name:        "Minimalista em Grade",
		Description: "Layout minimalista em duas colunas com blocos informativos",
		Tags:        []string{"minimalista", "criativo"},
		Style: types.LayoutStyle{
			Accent:     types.RGB{R: 0x2E, G: 0x7D, B: 0x32},
			Typography: types.TypographySans,
			Columns:    types.ColumnsTwo,
			Headings: types.SectionHeadings{
				Summary:    "Sobre",
				Experience: "Experiência",
				Education:  "Formação",
				Skills:     "Competências",
				Projects:   "Projetos",
			},
			SkillsDivider: ", ",
		},
	},
	{
		ID:          "executivo-dourado",
		Name:        "Executivo Dourado",
		Description: "Layout sofisticado com destaques em dourado e foco em resultados",
		Tags:        []string{"executivo", "premium"},
		Style: types.LayoutStyle{
			Accent:     types.RGB{R: 0xA5, G: 0x7C, B: 0x00},
			Typography: types.TypographySans,
			Columns:    types.ColumnsSingle,
			Headings: types.SectionHeadings{
				Summary:    "Resumo Executivo",
				Experience: "Trajetória Profissional",
				Education:  "Formação Acadêmica",
				Skills:     "Áreas de Expertise",
				Projects:   "Resultados Relevantes",
			},
			SkillsDivider: " | ",
			SkillsFirst:   true,
		},
	},
}

// Get returns the layout definition for an identifier.
func Get(id string) (types.LayoutDefinition, error) {
	for _, def := range catalog {
		if def.ID == id {
			return def, nil
		}
	}
	return types.LayoutDefinition{}, &UnknownLayoutError{ID: id}
}

// List returns the catalog in declaration order. The returned slice is a copy;
// callers may not mutate the catalog through it.
func List() []types.LayoutDefinition {
	out := make([]types.LayoutDefinition, len(catalog))
	copy(out, catalog)
	return out
}
