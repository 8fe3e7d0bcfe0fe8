package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBot(t *testing.T) {
	assert.False(t, IsBot(SubmitRequest{}))
	assert.True(t, IsBot(SubmitRequest{Honeypot: "http://spam.example"}))
	// Whitespace still counts: the field is invisible, so any value at all
	// means something automated filled it.
	assert.True(t, IsBot(SubmitRequest{Honeypot: "   "}))
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  SubmitRequest
		want []string
	}{
		{
			name: "all present",
			req:  SubmitRequest{Name: "Jane", Email: "jane@example.com", Country: "Kenya"},
			want: nil,
		},
		{
			name: "all missing",
			req:  SubmitRequest{},
			want: []string{"name", "email", "country"},
		},
		{
			name: "whitespace only counts as missing",
			req:  SubmitRequest{Name: "  ", Email: "jane@example.com", Country: "\t"},
			want: []string{"name", "country"},
		},
		{
			name: "missing email only",
			req:  SubmitRequest{Name: "Jane", Country: "Kenya"},
			want: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissingFields(tt.req))
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"a@b.c", true},
		{"  padded@example.com  ", true},
		{"UPPER@EXAMPLE.COM", true},
		{"first.last+tag@sub.example.co.ke", true},
		{"plainaddress", false},
		{"no@dot", false},
		{"trailing@dot.", false},
		{"@example.com", false},
		{"jane@", false},
		{"two@@example.com", false},
		{"spa ce@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}
