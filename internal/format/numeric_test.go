package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"10", 10},
		{"  42", 42},
		{"\t-7", -7},
		{"+15", 15},
		{"12abc", 12},
		{"3.9", 3},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"0x1F", 0},
		{"99999999999999999999", math.MaxInt64},
		{"-99999999999999999999", math.MinInt64},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLeadingInt(tt.in))
		})
	}
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{" -2.25", -2.25},
		{"3", 3},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1e", 1},
		{"2.5e-1x", 0.25},
		{"7.5 meters", 7.5},
		{"abc", 0},
		{"", 0},
		{".", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseLeadingFloat(tt.in), 1e-12)
		})
	}

	assert.True(t, math.IsInf(ParseLeadingFloat("inf"), 1))
	assert.True(t, math.IsInf(ParseLeadingFloat("-Infinity"), -1))
	assert.True(t, math.IsNaN(ParseLeadingFloat("NaN")))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.5", FormatFloat(1.5, 64))
	assert.Equal(t, "0.1", FormatFloat(0.1, 64))
	assert.Equal(t, "-3", FormatFloat(-3, 64))
	assert.Equal(t, "1.1", FormatFloat(Widen(1.1), 64))
}

func TestWiden(t *testing.T) {
	assert.Equal(t, 1.1, Widen(1.1))
	assert.Equal(t, 0.25, Widen(0.25))
	assert.Equal(t, float64(float32(16777217)), Widen(16777217))
}
