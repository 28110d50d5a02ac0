package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStreamOffset(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
	}{
		{
			name:     "fractional_seconds",
			value:    "PT12.5S",
			expected: 12.5,
		},
		{
			name:     "whole_seconds",
			value:    "PT3S",
			expected: 3,
		},
		{
			name:     "zero",
			value:    "PT0S",
			expected: 0,
		},
		{
			name:     "large_offset",
			value:    "PT3600S",
			expected: 3600,
		},
		{
			name:     "malformed_degrades_to_zero",
			value:    "not-a-time",
			expected: 0,
		},
		{
			name:     "empty_degrades_to_zero",
			value:    "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStreamOffset(tt.value))
		})
	}
}

func TestParseStreamOffsetSentinel(t *testing.T) {
	result := ParseStreamOffset("end")
	assert.True(t, math.IsInf(result, 1), "sentinel must parse as +Inf, got %v", result)
}

func TestFormatStreamOffset(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{name: "sub_minute", seconds: 12.5, expected: "0:12.5"},
		{name: "over_a_minute", seconds: 83.2, expected: "1:23.2"},
		{name: "zero", seconds: 0, expected: "0:00.0"},
		{name: "rounds_into_minutes_column", seconds: 59.96, expected: "1:00.0"},
		{name: "rounds_within_same_minute", seconds: 61.24, expected: "1:01.2"},
		{name: "sentinel", seconds: math.Inf(1), expected: "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatStreamOffset(tt.seconds))
		})
	}
}
