package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/curriculo-builder/internal/ingestion"
)

// SectionKind identifies one semantic resume section.
type SectionKind string

// Recognized section kinds. Declaration order is the tie-break when a single
// line matches keywords of more than one section.
const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionProjects   SectionKind = "projects"
)

// sectionMatcher pairs a section kind with its heading keyword pattern.
// Matchers are evaluated in order; the first match wins.
type sectionMatcher struct {
	kind    SectionKind
	pattern *regexp.Regexp
}

// sectionMatchers is the curated heading keyword table (pt-BR and English).
// New synonyms are added here without touching segmentation logic.
var sectionMatchers = []sectionMatcher{
	{SectionSummary, keywordPattern(
		"resumo profissional", "resumo", "summary", "perfil", "objetivo",
	)},
	{SectionExperience, keywordPattern(
		"experiência", "experiencia", "experience", "histórico profissional",
		"historico profissional", "work history", "trajetória", "trajetoria", "carreira",
	)},
	{SectionEducation, keywordPattern(
		"formação acadêmica", "formacao academica", "formação", "formacao",
		"educação", "educacao", "education", "academic",
	)},
	{SectionSkills, keywordPattern(
		"competências", "competencias", "habilidades", "skills",
	)},
	{SectionProjects, keywordPattern(
		"projetos", "projects", "realizações", "realizacoes",
	)},
}

// keywordPattern builds a case-insensitive whole-word alternation for a
// keyword set. Multi-word keywords must come before their single-word prefixes.
func keywordPattern(keywords ...string) *regexp.Regexp {
	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)(?:^|[^\pL])(?:` + strings.Join(escaped, "|") + `)(?:[^\pL]|$)`)
}

// maxHeadingRunes bounds how long a line may be and still count as a section
// heading when the reader gave no heading-like hint. Keyword mentions inside
// running prose stay prose.
const maxHeadingRunes = 48

// detectSection reports which section a line opens, if any.
func detectSection(line ingestion.Line) (SectionKind, bool) {
	if !line.HeadingLike && len([]rune(line.Text)) > maxHeadingRunes {
		return "", false
	}
	for _, m := range sectionMatchers {
		if m.pattern.MatchString(line.Text) {
			return m.kind, true
		}
	}
	return "", false
}

// segments holds the contiguous line ranges produced by segmentation.
// header collects everything before the first detected heading.
type segments struct {
	header []ingestion.Line
	byKind map[SectionKind][]ingestion.Line
}

// segment scans the line sequence and assigns each line to the most recently
// opened section. Heading lines themselves only switch the current section.
func segment(lines []ingestion.Line) segments {
	segs := segments{byKind: make(map[SectionKind][]ingestion.Line)}
	var current SectionKind

	for _, line := range lines {
		if !line.Blank() {
			if kind, ok := detectSection(line); ok {
				current = kind
				continue
			}
		}
		if current == "" {
			segs.header = append(segs.header, line)
			continue
		}
		segs.byKind[current] = append(segs.byKind[current], line)
	}
	return segs
}
