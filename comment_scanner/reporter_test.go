package comment_scanner

import (
	"bytes"
	"testing"

	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
	"github.com/stretchr/testify/assert"
)

func TestReporter_PlainOutput(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out, true, "", models.PythonStyle)

	reporter.Report([]models.ScannedFile{
		{
			Path: "/project/a.py",
			CommentLines: []models.MatchedLine{
				{Contents: "# hello", Number: 1},
				{Contents: "# world", Number: 3},
			},
		},
		{Path: "/project/b.py"},
	})

	expected := "\n=========== RESULTS ===========\n\n" +
		"There are 2 comments in  \"a.py\"\n" +
		"# hello - at line 1\n" +
		"# world - at line 3\n" +
		"\n\n" +
		"There are 0 comments in  \"b.py\"\n" +
		"\n\n"
	assert.Equal(t, expected, out.String())
}

func TestReporter_NoFilesPrintsOnlyBanner(t *testing.T) {
	var out bytes.Buffer
	NewReporter(&out, true, "", models.CStyle).Report(nil)

	assert.Equal(t, "\n=========== RESULTS ===========\n\n", out.String())
}

func TestReporter_ColoredOutput(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out, false, "", models.CStyle)

	reporter.Describe(models.ScannedFile{
		Path:         "b.js",
		CommentLines: []models.MatchedLine{{Contents: "// note", Number: 1}},
	})

	assert.Contains(t, out.String(), "\x1b[93m \"b.js\"\x1b[0m")
	assert.Contains(t, out.String(), "// note - at line \x1b[33m1\x1b[0m")
}

func TestReporter_NoColorDisablesTheme(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out, true, "monokai", models.CStyle)

	reporter.Describe(models.ScannedFile{
		Path:         "b.js",
		CommentLines: []models.MatchedLine{{Contents: "// note", Number: 7}},
	})

	assert.Equal(t, "There are 1 comments in  \"b.js\"\n// note - at line 7\n", out.String())
}

func TestReporter_ThemeHighlightsContents(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out, false, "monokai", models.PythonStyle)

	reporter.Describe(models.ScannedFile{
		Path:         "a.py",
		CommentLines: []models.MatchedLine{{Contents: "# hello", Number: 1}},
	})

	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "\x1b[38;5;")
	assert.NotContains(t, out.String(), "\n - at line")
}
