package comment_scanner

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
	"github.com/meysamhadeli/cmtscan/logger"
	"github.com/meysamhadeli/cmtscan/utils"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

const resultsBanner = "\n=========== RESULTS ===========\n\n"

// Reporter prints scan results as plain text with ANSI highlighting.
type Reporter struct {
	out        io.Writer
	fileName   lipgloss.Style
	lineNumber lipgloss.Style
	theme      string
	language   string
}

// NewReporter creates a reporter for out. Colors are always emitted as ANSI
// codes unless noColor is set. A non-empty theme highlights comment text with chroma.
func NewReporter(out io.Writer, noColor bool, theme string, style models.CommentStyle) *Reporter {
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
		theme = ""
	} else {
		renderer.SetColorProfile(termenv.ANSI)
	}

	return &Reporter{
		out:        out,
		fileName:   renderer.NewStyle().Foreground(lipgloss.Color("11")),
		lineNumber: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		theme:      theme,
		language:   utils.LanguageForStyle(style),
	}
}

// Report prints the banner followed by every file in scan order.
func (r *Reporter) Report(files []models.ScannedFile) {
	fmt.Fprint(r.out, resultsBanner)
	for _, file := range files {
		r.Describe(file)
		fmt.Fprint(r.out, "\n\n")
	}
}

// Describe prints the summary line of one file and each of its comment lines.
func (r *Reporter) Describe(file models.ScannedFile) {
	name := r.fileName.Render(fmt.Sprintf(" %q", filepath.Base(file.Path)))
	fmt.Fprintf(r.out, "There are %d comments in %s\n", len(file.CommentLines), name)

	for _, line := range file.CommentLines {
		contents, err := utils.HighlightLine(line.Contents, r.language, r.theme)
		if err != nil {
			logger.L().Warn("highlighting failed", zap.String("theme", r.theme), zap.Error(err))
			contents = line.Contents
		}
		fmt.Fprintf(r.out, "%s - at line %s\n", contents, r.lineNumber.Render(fmt.Sprint(line.Number)))
	}
}
