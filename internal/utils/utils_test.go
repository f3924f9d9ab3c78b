package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSafeUint64ToInt64 tests the SafeUint64ToInt64 function.
func TestSafeUint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    uint64
		expected int64
	}{
		{
			name:     "zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "small value",
			input:    1024,
			expected: 1024,
		},
		{
			name:     "max int64",
			input:    math.MaxInt64,
			expected: math.MaxInt64,
		},
		{
			name:     "overflow clamps to max int64",
			input:    math.MaxInt64 + 1,
			expected: math.MaxInt64,
		},
		{
			name:     "max uint64 clamps to max int64",
			input:    math.MaxUint64,
			expected: math.MaxInt64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SafeUint64ToInt64(tt.input))
		})
	}
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "html with charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "form urlencoded",
			contentType: "application/x-www-form-urlencoded",
			expected:    true,
		},
		{
			name:        "binary",
			contentType: "application/octet-stream",
			expected:    false,
		},
		{
			name:        "unsupported charset",
			contentType: "text/html; charset=koi8-r",
			expected:    false,
		},
		{
			name:        "empty",
			contentType: "",
			expected:    false,
		},
		{
			name:        "malformed",
			contentType: ";;;",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}
