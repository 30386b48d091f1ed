package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumnName(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{"spaces to underscore", "Pfizer Available", "pfizer_available"},
		{"already canonical", "moderna_available", "moderna_available"},
		{"surrounding whitespace", "  Total Shipped  ", "total_shipped"},
		{"mixed separators", "JJ - Available", "jj_available"},
		{"run of separators", "Provider   /  Type", "provider_type"},
		{"trailing separator", "Supply?", "supply"},
		{"leading separator", "# Doses", "doses"},
		{"digits kept", "Week 12 Count", "week_12_count"},
		{"empty", "", ""},
		{"only separators", " -- ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeColumnName(tc.raw))
		})
	}
}

func TestNormalizeColumnName_Idempotent(t *testing.T) {
	inputs := []string{
		"Pfizer Available",
		"moderna_available",
		"  Total Shipped  ",
		"Provider / Type",
		"jj_available",
		"",
	}

	for _, raw := range inputs {
		once := NormalizeColumnName(raw)
		twice := NormalizeColumnName(once)
		assert.Equal(t, once, twice, "normalizing %q twice changed the result", raw)
	}
}

func TestNormalizeColumnNames_PreservesOrder(t *testing.T) {
	got := NormalizeColumnNames([]string{"Provider Type", "Pfizer Available", "Total Shipped"})
	assert.Equal(t, []string{"provider_type", "pfizer_available", "total_shipped"}, got)
}
