package comment_tally

import (
	"fmt"
	"io"

	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
	"github.com/meysamhadeli/cmtscan/comment_tally/contracts"
	"github.com/meysamhadeli/cmtscan/constants/lipgloss"
)

// commentTally accumulates counts for one run
type commentTally struct {
	out          io.Writer
	fileCount    int
	commentCount int
	cache        *models.CachePerformance
}

// NewCommentTally creates a tally that prints its summary to out
func NewCommentTally(out io.Writer) contracts.ICommentTally {
	return &commentTally{out: out}
}

// AddFile accumulates the counts of one scanned file.
func (ct *commentTally) AddFile(file models.ScannedFile) {
	ct.fileCount++
	ct.commentCount += len(file.CommentLines)
}

// RecordCache adds the run's cache lookups to the summary. Without it the
// summary has no cache segment.
func (ct *commentTally) RecordCache(performance models.CachePerformance) {
	ct.cache = &performance
}

func (ct *commentTally) GetCurrentTally() (files int, comments int) {
	return ct.fileCount, ct.commentCount
}

func (ct *commentTally) SummaryText(style models.CommentStyle) string {
	text := fmt.Sprintf("Files: %d - Comments: %d - Style: %s (%s)", ct.fileCount, ct.commentCount, style, style.Marker())
	if ct.cache != nil {
		text += fmt.Sprintf(" - Cache: %d hits / %d misses (%.1f%%)", ct.cache.Hits, ct.cache.Misses, ct.cache.HitRate())
	}
	return text
}

func (ct *commentTally) DisplaySummary(style models.CommentStyle) {
	fmt.Fprintln(ct.out, lipgloss.BoxStyle.Render(ct.SummaryText(style)))
}
