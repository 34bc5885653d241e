package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/curriculo-builder/internal/layouts"
	"github.com/jonathan/curriculo-builder/internal/types"
)

func sampleResume() types.Resume {
	return types.Resume{
		Contact: types.Contact{
			FullName: "Maria Silva",
			Email:    "maria@exemplo.com",
			Phone:    "(11) 98765-4321",
		},
		Summary: "Engenheira de software com foco em sistemas distribuídos.",
		Experiences: []types.ExperienceEntry{{
			Role:       "Senior Developer",
			Company:    "Tech Corp",
			StartDate:  "Jan 2020",
			EndDate:    "Atual",
			Highlights: []string{"Led migration to Go"},
		}},
		Educations: []types.EducationEntry{{
			Degree:      "Bacharelado em Computação",
			Institution: "USP",
			Details:     "2015",
		}},
		Skills: []string{"Go", "SQL"},
		Projects: []types.ProjectEntry{{
			Name:        "MeuApp",
			Description: "Aplicativo de finanças",
			Link:        "https://github.com/x/meuapp",
		}},
	}
}

func kinds(blocks []Block) []BlockKind {
	out := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestBuildBlocksCanonicalOrder(t *testing.T) {
	layout, err := layouts.Get("moderno-azul")
	require.NoError(t, err)

	blocks := buildBlocks(sampleResume(), layout)

	assert.Equal(t, []BlockKind{
		BlockContact, BlockSummary, BlockExperience, BlockEducation, BlockSkills, BlockProjects,
	}, kinds(blocks))
}

func TestBuildBlocksSkillsFirstLayout(t *testing.T) {
	layout, err := layouts.Get("executivo-dourado")
	require.NoError(t, err)

	blocks := buildBlocks(sampleResume(), layout)

	assert.Equal(t, []BlockKind{
		BlockContact, BlockSummary, BlockExperience, BlockSkills, BlockEducation, BlockProjects,
	}, kinds(blocks))
}

func TestBuildBlocksOmitsEmptySections(t *testing.T) {
	layout, err := layouts.Get("moderno-azul")
	require.NoError(t, err)

	blocks := buildBlocks(types.Resume{}, layout)

	// The contact block always exists, even for a fully empty resume.
	assert.Equal(t, []BlockKind{BlockContact}, kinds(blocks))
}

func TestBuildBlocksContactLine(t *testing.T) {
	layout, err := layouts.Get("moderno-azul")
	require.NoError(t, err)

	blocks := buildBlocks(sampleResume(), layout)

	assert.Equal(t, "Maria Silva", blocks[0].Name)
	assert.Equal(t, "maria@exemplo.com | (11) 98765-4321", blocks[0].ContactLine)
}

func TestBuildBlocksSkillsDivider(t *testing.T) {
	layout, err := layouts.Get("classico-serifado")
	require.NoError(t, err)

	blocks := buildBlocks(sampleResume(), layout)

	var skillsText string
	for _, b := range blocks {
		if b.Kind == BlockSkills {
			skillsText = b.Text
		}
	}
	assert.Equal(t, "Go • SQL", skillsText)
}

func TestBuildBlocksTwoColumnLayout(t *testing.T) {
	layout, err := layouts.Get("minimalista-grade")
	require.NoError(t, err)

	for _, b := range buildBlocks(sampleResume(), layout) {
		switch b.Kind {
		case BlockExperience, BlockEducation:
			assert.True(t, b.TwoColumn, "section %s should use the grid treatment", b.Kind)
		}
	}
}

func TestTimeframe(t *testing.T) {
	tests := []struct {
		name     string
		entry    types.ExperienceEntry
		expected string
	}{
		{"start and end", types.ExperienceEntry{StartDate: "Jan 2020", EndDate: "Dez 2023"}, "Jan 2020 - Dez 2023"},
		{"ongoing marker kept", types.ExperienceEntry{StartDate: "Jan 2020", EndDate: "Atual"}, "Jan 2020 - Atual"},
		{"missing end defaults to ongoing", types.ExperienceEntry{StartDate: "Jan 2020"}, "Jan 2020 - Atual"},
		{"no dates", types.ExperienceEntry{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeframe(tt.entry))
		})
	}
}

func TestExperienceTitle(t *testing.T) {
	assert.Equal(t, "Senior Developer - Tech Corp",
		experienceTitle(types.ExperienceEntry{Role: "Senior Developer", Company: "Tech Corp"}))
	assert.Equal(t, "Consultora",
		experienceTitle(types.ExperienceEntry{Role: "Consultora"}))
}

func TestEducationLine(t *testing.T) {
	assert.Equal(t, "Bacharelado - USP (2015)",
		educationLine(types.EducationEntry{Degree: "Bacharelado", Institution: "USP", Details: "2015"}))
	assert.Equal(t, "Bacharelado",
		educationLine(types.EducationEntry{Degree: "Bacharelado"}))
}
