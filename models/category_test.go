package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Category
	}{
		{"known name", "CLOTHS", Cloths},
		{"another known name", "TOOLS", Tools},
		{"unknown name falls back", "SPACESHIPS", Unknown},
		{"match is case-sensitive", "cloths", Unknown},
		{"empty name falls back", "", Unknown},
		{"unknown is itself a member", "UNKNOWN", Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseCategory(tc.input))
		})
	}
}

func TestCategoryName(t *testing.T) {
	for _, category := range Categories {
		assert.Equal(t, category, ParseCategory(category.Name()), "name must round-trip")
	}
}
