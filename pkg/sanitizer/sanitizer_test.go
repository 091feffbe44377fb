package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase name",
			input: "mario rossi",
			want:  "Mario Rossi",
		},
		{
			name:  "uppercase name",
			input: "MARIO ROSSI",
			want:  "Mario Rossi",
		},
		{
			name:  "mixed case",
			input: "mArIo RoSsI",
			want:  "Mario Rossi",
		},
		{
			name:  "internal spacing preserved",
			input: "mario   rossi",
			want:  "Mario   Rossi",
		},
		{
			name:  "accented characters",
			input: "niccolò d'angelo",
			want:  "Niccolò D'angelo",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "single word",
			input: "mario",
			want:  "Mario",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapitalizeWords(tt.input))
		})
	}
}

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  via Roma 15  ",
			want:  "via Roma 15",
		},
		{
			name:  "collapse tabs and newlines",
			input: "via\t\nRoma",
			want:  "via Roma",
		},
		{
			name:  "only whitespace",
			input: " \t \n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimAndNormalize(tt.input))
		})
	}
}
