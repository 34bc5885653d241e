package layouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/curriculo-builder/internal/types"
)

func TestListCatalogOrder(t *testing.T) {
	defs := List()

	require.Len(t, defs, 4)
	assert.Equal(t, "moderno-azul", defs[0].ID)
	assert.Equal(t, "classico-serifado", defs[1].ID)
	assert.Equal(t, "minimalista-grade", defs[2].ID)
	assert.Equal(t, "executivo-dourado", defs[3].ID)
}

func TestListReturnsCopy(t *testing.T) {
	defs := List()
	defs[0].ID = "mutated"

	assert.Equal(t, "moderno-azul", List()[0].ID)
}

func TestGet(t *testing.T) {
	tests := []struct {
		id         string
		accent     types.RGB
		typography types.Typography
		columns    types.Columns
	}{
		{"moderno-azul", types.RGB{R: 0x1F, G: 0x4E, B: 0x79}, types.TypographySans, types.ColumnsSingle},
		{"classico-serifado", types.RGB{R: 0x33, G: 0x33, B: 0x33}, types.TypographySerif, types.ColumnsSingle},
		{"minimalista-grade", types.RGB{R: 0x2E, G: 0x7D, B: 0x32}, types.TypographySans, types.ColumnsTwo},
		{"executivo-dourado", types.RGB{R: 0xA5, G: 0x7C, B: 0x00}, types.TypographySans, types.ColumnsSingle},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			def, err := Get(tt.id)
			require.NoError(t, err)

			assert.Equal(t, tt.id, def.ID)
			assert.Equal(t, tt.accent, def.Style.Accent)
			assert.Equal(t, tt.typography, def.Style.Typography)
			assert.Equal(t, tt.columns, def.Style.Columns)
		})
	}
}

func TestGetUnknownLayout(t *testing.T) {
	_, err := Get("neon-rosa")

	var unknown *UnknownLayoutError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "neon-rosa", unknown.ID)
}

func TestExecutiveLayoutOrdersSkillsFirst(t *testing.T) {
	def, err := Get("executivo-dourado")
	require.NoError(t, err)

	assert.True(t, def.Style.SkillsFirst)
	assert.Equal(t, " | ", def.Style.SkillsDivider)
}

func TestClassicLayoutSkillsDivider(t *testing.T) {
	def, err := Get("classico-serifado")
	require.NoError(t, err)

	assert.Equal(t, " • ", def.Style.SkillsDivider)
}
