package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommentStyle(t *testing.T) {
	tests := []struct {
		token    string
		expected CommentStyle
	}{
		{"c", CStyle},
		{"JS", CStyle},
		{"python", PythonStyle},
		{"Py", PythonStyle},
		{"clj", LispStyle},
		{"LSP", LispStyle},
		{"lisp", LispStyle},
		{"unknown", DefaultStyle},
		{"", DefaultStyle},
		{"./src", DefaultStyle},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCommentStyle(tt.token))
		})
	}
}

func TestCommentStyle_Marker(t *testing.T) {
	assert.Equal(t, "//", CStyle.Marker())
	assert.Equal(t, "//", DefaultStyle.Marker())
	assert.Equal(t, ";", LispStyle.Marker())
	assert.Equal(t, "#", PythonStyle.Marker())
}
