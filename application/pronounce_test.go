package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePronounceInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   PronounceRequest
		wantOK bool
	}{
		{
			name:   "accent prefix consumed",
			input:  "uk schedule",
			want:   PronounceRequest{Accent: "uk", Text: "schedule"},
			wantOK: true,
		},
		{
			name:   "accent prefix is case insensitive",
			input:  "AU good day mate",
			want:   PronounceRequest{Accent: "au", Text: "good day mate"},
			wantOK: true,
		},
		{
			name:   "no accent defaults to us",
			input:  "hello world",
			want:   PronounceRequest{Accent: "us", Text: "hello world"},
			wantOK: true,
		},
		{
			name:   "lone accent token is text not accent",
			input:  "uk",
			want:   PronounceRequest{Accent: "us", Text: "uk"},
			wantOK: true,
		},
		{
			name:   "unsupported accent token stays in text",
			input:  "fr bonjour",
			want:   PronounceRequest{Accent: "us", Text: "fr bonjour"},
			wantOK: true,
		},
		{
			name:   "extra whitespace collapsed",
			input:  "  in   namaste   friend  ",
			want:   PronounceRequest{Accent: "in", Text: "namaste friend"},
			wantOK: true,
		},
		{
			name:   "empty input rejected",
			input:  "",
			wantOK: false,
		},
		{
			name:   "whitespace only rejected",
			input:  "   \t ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePronounceInput(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
