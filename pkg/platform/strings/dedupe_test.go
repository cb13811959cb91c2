package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "trims whitespace",
			input:    []string{"  rust ", "go  "},
			expected: []string{"rust", "go"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"ddd", "cqrs", "ddd", "mongo", "cqrs"},
			expected: []string{"ddd", "cqrs", "mongo"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"api", "", "  ", "rest"},
			expected: []string{"api", "rest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
