package utils_test

import (
	"testing"

	"github.com/maqala/maqala/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
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
			name:     "lowercases latin text",
			input:    "Free MONEY",
			expected: "free money",
		},
		{
			name:     "strips arabic diacritics",
			input:    "مجاناً",
			expected: "مجانا",
		},
		{
			name:     "compresses whitespace",
			input:    "click   here   now",
			expected: "click here now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := utils.NewTextNormalizer()
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		substr   string
		expected bool
	}{
		{
			name:     "exact substring",
			s:        "this is free money for you",
			substr:   "free money",
			expected: true,
		},
		{
			name:     "case difference",
			s:        "FREE MONEY here",
			substr:   "free money",
			expected: true,
		},
		{
			name:     "diacritics do not hide the match",
			s:        "احصل على آيفون مجاناً",
			substr:   "مجانا",
			expected: true,
		},
		{
			name:     "no match",
			s:        "a perfectly fine comment",
			substr:   "free money",
			expected: false,
		},
		{
			name:     "empty substring",
			s:        "anything",
			substr:   "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := utils.NewTextNormalizer()
			assert.Equal(t, tt.expected, n.Contains(tt.s, tt.substr))
		})
	}
}
