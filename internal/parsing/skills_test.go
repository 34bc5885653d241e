package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			"comma separated",
			[]string{"Go, Python, SQL"},
			[]string{"Go", "Python", "SQL"},
		},
		{
			"mixed delimiters",
			[]string{"Go; Python | SQL • Docker"},
			[]string{"Go", "Python", "SQL", "Docker"},
		},
		{
			"bulleted lines",
			[]string{"- Go", "- Kubernetes"},
			[]string{"Go", "Kubernetes"},
		},
		{
			"case-insensitive dedupe keeps first casing",
			[]string{"Go, go, GO, Python"},
			[]string{"Go", "Python"},
		},
		{
			"empty tokens dropped",
			[]string{"Go, , ,SQL"},
			[]string{"Go", "SQL"},
		},
		{
			"no lines",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseSkills(textLines(tt.lines...)))
		})
	}
}
