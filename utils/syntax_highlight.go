package utils

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
)

// LanguageForStyle picks the chroma lexer used to highlight comments of a style.
func LanguageForStyle(style models.CommentStyle) string {
	switch style {
	case models.PythonStyle:
		return "python"
	case models.LispStyle:
		return "common-lisp"
	default:
		return "c"
	}
}

// HighlightLine renders a single line with chroma's terminal256 formatter.
// An empty theme returns the line untouched.
func HighlightLine(line string, language string, theme string) (string, error) {
	if theme == "" {
		return line, nil
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, line, language, "terminal256", theme); err != nil {
		return "", err
	}

	// lexers that ensure a trailing newline would otherwise break the report layout
	return strings.TrimRight(buf.String(), "\n"), nil
}
