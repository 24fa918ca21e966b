package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ab12-34__56", "123456"},
		{"(592) 555-1234", "5925551234"},
		{"+592 555 1234", "5925551234"},
		{"", ""},
		{"no digits at all", ""},
		{"123456789012345678901234567890", "12345678901234567890"}, // truncated to 20
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhoneNumber(tt.input), "input %q", tt.input)
	}
}
