package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		ok       bool
	}{
		{"pdf", "pdf", FormatPDF, true},
		{"pdf uppercase", "PDF", FormatPDF, true},
		{"docx", "docx", FormatDOCX, true},
		{"doc alias", "doc", FormatDOCX, true},
		{"word alias", "word", FormatDOCX, true},
		{"surrounding whitespace", "  pdf  ", FormatPDF, true},
		{"unknown", "odt", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestExperienceEntryOngoing(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
		ongoing bool
	}{
		{"atual", "Atual", true},
		{"presente", "presente", true},
		{"current", "Current", true},
		{"present with whitespace", " present ", true},
		{"real date", "Dez 2023", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ExperienceEntry{EndDate: tt.endDate}
			assert.Equal(t, tt.ongoing, entry.Ongoing())
		})
	}
}

func TestResumeContactParts(t *testing.T) {
	resume := Resume{Contact: Contact{
		FullName: "Maria Silva",
		Email:    "maria@exemplo.com",
		Location: "São Paulo",
		Website:  "https://maria.dev",
	}}

	parts := resume.ContactParts()
	assert.Equal(t, []string{"maria@exemplo.com", "São Paulo", "https://maria.dev"}, parts)
}

func TestResumeContactPartsEmpty(t *testing.T) {
	assert.Empty(t, Resume{}.ContactParts())
}
