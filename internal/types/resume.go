// Package types provides type definitions for the structured resume data shared
// by the extraction and rendering pipelines.
package types

import "strings"

// Contact represents the contact block of a resume.
// All fields are optional; extraction fills what it can recognize.
type Contact struct {
	FullName string `json:"nome_completo,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"telefone,omitempty"`
	Location string `json:"localizacao,omitempty"`
	Website  string `json:"site,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExperienceEntry represents one professional experience.
// Dates are free text: unparseable ranges keep the raw string rather than being dropped.
type ExperienceEntry struct {
	Role       string   `json:"cargo"`
	Company    string   `json:"empresa,omitempty"`
	StartDate  string   `json:"data_inicio,omitempty"`
	EndDate    string   `json:"data_fim,omitempty"`
	Highlights []string `json:"conquistas,omitempty"`
}

// Ongoing reports whether the end date is an "ongoing" marker rather than a real date.
func (e ExperienceEntry) Ongoing() bool {
	switch strings.ToLower(strings.TrimSpace(e.EndDate)) {
	case "atual", "presente", "current", "present":
		return true
	}
	return false
}

// EducationEntry represents one education item. The source material is too
// heterogeneous to model beyond degree, institution and a free-text details field.
type EducationEntry struct {
	Degree      string `json:"curso"`
	Institution string `json:"instituicao,omitempty"`
	Details     string `json:"detalhes,omitempty"`
}

// ProjectEntry represents one project. Link is not validated for reachability.
type ProjectEntry struct {
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Resume is the schema root shared by both pipelines. All collections default
// to empty; a fully empty Resume is valid and represents a partial extraction,
// not an error.
type Resume struct {
	Contact     Contact           `json:"contato"`
	Summary     string            `json:"resumo_profissional,omitempty"`
	Experiences []ExperienceEntry `json:"experiencias,omitempty"`
	Educations  []EducationEntry  `json:"formacoes,omitempty"`
	Skills      []string          `json:"competencias,omitempty"`
	Projects    []ProjectEntry    `json:"projetos,omitempty"`
}

// ContactParts returns the non-empty contact detail fields (name excluded) in
// display order. Both render backends join these with a separator.
func (r Resume) ContactParts() []string {
	parts := make([]string, 0, 5)
	for _, p := range []string{
		r.Contact.Email,
		r.Contact.Phone,
		r.Contact.Location,
		r.Contact.LinkedIn,
		r.Contact.Website,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
