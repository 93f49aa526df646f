package contracts

import "github.com/meysamhadeli/cmtscan/comment_scanner/models"

type ICommentScanner interface {
	ScanPath(path string, style models.CommentStyle) ([]models.ScannedFile, error)
	ScanFile(path string, style models.CommentStyle) (models.ScannedFile, error)
	CachePerformance() (models.CachePerformance, bool)
	GetCacheStats() (map[string]interface{}, error)
	ClearCache() error
}
