package utils_test

import (
	"testing"

	"github.com/maqala/maqala/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestCompressAllWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "collapses runs of spaces",
			input:    "a   b    c",
			expected: "a b c",
		},
		{
			name:     "newlines become spaces",
			input:    "line one\nline two",
			expected: "line one line two",
		},
		{
			name:     "trims the ends",
			input:    "  padded  ",
			expected: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, utils.CompressAllWhitespace(tt.input))
		})
	}
}

func TestCompressWhitespacePreserveNewlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps newlines",
			input:    "line  one\nline   two",
			expected: "line one\nline two",
		},
		{
			name:     "normalizes windows line endings",
			input:    "a\r\nb",
			expected: "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, utils.CompressWhitespacePreserveNewlines(tt.input))
		})
	}
}
