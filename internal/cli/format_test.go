package cli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{42.5, "42.50"},
		{1000, "1,000.00"},
		{72000, "72,000.00"},
		{1234567.891, "1,234,567.89"},
		{-1500, "-1,500.00"},
		{math.Inf(1), "∞"},
		{math.Inf(-1), "-∞"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.in), "in=%v", tt.in)
	}
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "60.000000%", FormatWeight(0.6))
	assert.Equal(t, "0.065000%", FormatWeight(0.00065))
	assert.Equal(t, "100.000000%", FormatWeight(1))
	assert.Equal(t, "n/a", FormatWeight(math.NaN()))
	assert.Equal(t, "∞", FormatWeight(math.Inf(1)))
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "0.50", FormatMonths(0.5))
	assert.Equal(t, "6.00", FormatMonths(6))
	assert.Equal(t, "∞", FormatMonths(math.Inf(1)))
	assert.Equal(t, "n/a", FormatMonths(math.NaN()))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-1,234", FormatNumber(-1234))
}
