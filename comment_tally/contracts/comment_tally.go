package contracts

import "github.com/meysamhadeli/cmtscan/comment_scanner/models"

type ICommentTally interface {
	AddFile(file models.ScannedFile)
	RecordCache(performance models.CachePerformance)
	GetCurrentTally() (files int, comments int)
	SummaryText(style models.CommentStyle) string
	DisplaySummary(style models.CommentStyle)
}
