package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: "2024-01-05", want: "2024-01-05"},
		{name: "timestamp input truncated at T", input: "2024-01-05T15:30:00.000Z", want: "2024-01-05"},
		{name: "midnight timestamp keeps its calendar day", input: "2024-03-01T00:00:00", want: "2024-03-01"},
		{name: "surrounding whitespace", input: "  2024-01-05 ", want: "2024-01-05"},
		{name: "empty stays empty", input: "", want: ""},
		{name: "garbage", input: "05/01/2024", wantErr: true},
		{name: "impossible day", input: "2024-02-31", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().Format(DateLayout), Today())
}

func TestDateInRange(t *testing.T) {
	assert.True(t, DateInRange("2024-01-05", "2024-01-01", "2024-01-31"))
	assert.True(t, DateInRange("2024-01-01", "2024-01-01", "2024-01-31"))
	assert.True(t, DateInRange("2024-01-31", "2024-01-01", "2024-01-31"))
	assert.False(t, DateInRange("2023-12-31", "2024-01-01", "2024-01-31"))
	assert.False(t, DateInRange("2024-02-01", "2024-01-01", "2024-01-31"))
}
