// internal/duration/duration_test.go
package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgarage/garage-backend/internal/models"
)

func TestParseToHours(t *testing.T) {
	tests := []struct {
		spec  string
		hours float64
	}{
		{"3 hours", 3},
		{"1 hour", 1},
		{"2-3 hours", 2.5},
		{"1-2 hours", 1.5},
		{"1 day", 8},
		{"2 days", 16},
		{"6+ hours", 6},
		{"  2 Hours ", 2},
	}

	for _, tt := range tests {
		got, err := ParseToHours(tt.spec)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.hours, got, tt.spec)
	}
}

func TestParseToHoursInvalidFallsBack(t *testing.T) {
	for _, spec := range []string{"", "soon", "a few hours", "2 weeks"} {
		got, err := ParseToHours(spec)
		assert.ErrorIs(t, err, ErrInvalidSpec, spec)
		assert.Equal(t, DefaultHours, got, spec)
	}
}

func TestSumHours(t *testing.T) {
	assert.Zero(t, SumHours(nil))
	assert.Zero(t, SumHours([]models.CartItem{}))

	items := []models.CartItem{
		{InstallationDuration: "2-3 hours"},
		{InstallationDuration: "1 day"},
	}
	assert.Equal(t, 10.5, SumHours(items))
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{0, "0 hours"},
		{1, "1 hour"},
		{2.5, "3 hours"},
		{7.4, "7 hours"},
		{8, "1 day"},
		{10.5, "1 day 3 hours"},
		{16, "2 days"},
		{17, "2 days 1 hour"},
		{15.9, "2 days"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHours(tt.total))
	}
}

func TestFormatHoursIdempotentOnSameTotal(t *testing.T) {
	total := SumHours([]models.CartItem{
		{InstallationDuration: "2-3 hours"},
		{InstallationDuration: "1 day"},
	})

	first := FormatHours(total)
	second := FormatHours(total)
	assert.Equal(t, first, second)
}
