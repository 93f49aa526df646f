package comment_scanner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/meysamhadeli/cmtscan/comment_scanner/contracts"
	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
	"github.com/meysamhadeli/cmtscan/logger"
	"go.uber.org/zap"
)

// ErrInvalidText is returned when an entry's contents are not valid UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// ErrUnreadableFile wraps every failure to read an entry as text. It aborts the whole run.
var ErrUnreadableFile = errors.New("couldn't read file")

// entryErrorMarker is written to the output when a single entry cannot be listed.
const entryErrorMarker = "error"

// CommentScanner extracts single-line comments from the entries of a directory.
type CommentScanner struct {
	out          io.Writer
	cacheManager *CacheManager
}

// NewCommentScanner initializes a scanner writing entry errors to out.
// A nil cacheManager disables caching.
func NewCommentScanner(out io.Writer, cacheManager *CacheManager) contracts.ICommentScanner {
	return &CommentScanner{
		out:          out,
		cacheManager: cacheManager,
	}
}

// ExtractComments returns every line of contents whose trimmed text starts with the style's marker.
// Lines are split on '\n' only and numbered from 1.
func ExtractComments(contents string, style models.CommentStyle) []models.MatchedLine {
	marker := style.Marker()
	var lines []models.MatchedLine

	for index, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			lines = append(lines, models.MatchedLine{Contents: trimmed, Number: index + 1})
		}
	}

	return lines
}

// ScanPath scans a directory's immediate entries, or a single file when path is not a directory.
func (scanner *CommentScanner) ScanPath(path string, style models.CommentStyle) ([]models.ScannedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var files []models.ScannedFile
	if info.IsDir() {
		files, err = scanner.scanDirectory(path, style)
	} else {
		var file models.ScannedFile
		file, err = scanner.ScanFile(path, style)
		files = []models.ScannedFile{file}
	}
	if err != nil {
		return nil, err
	}

	if performance, enabled := scanner.CachePerformance(); enabled {
		logger.L().Debug("cache lookups",
			zap.Int64("hits", performance.Hits),
			zap.Int64("misses", performance.Misses),
			zap.Float64("hit_rate", performance.HitRate()),
		)
	}

	return files, nil
}

func (scanner *CommentScanner) scanDirectory(dir string, style models.CommentStyle) ([]models.ScannedFile, error) {
	directory, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed reading the directory: %w", err)
	}
	defer directory.Close()

	// ReadDir returns whatever it managed to list alongside the error
	entries, err := directory.ReadDir(-1)
	if err != nil {
		logger.L().Warn("directory listing incomplete", zap.String("dir", dir), zap.Error(err))
		fmt.Fprint(scanner.out, entryErrorMarker)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var files []models.ScannedFile
	for _, entry := range entries {
		if _, err := entry.Info(); err != nil {
			logger.L().Warn("skipping entry", zap.String("entry", entry.Name()), zap.Error(err))
			fmt.Fprint(scanner.out, entryErrorMarker)
			continue
		}

		file, err := scanner.ScanFile(filepath.Join(dir, entry.Name()), style)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

// ScanFile reads one file fully and extracts its comment lines.
// The file is opened before the cache is consulted, so an unreadable file
// fails even when a cached result exists.
func (scanner *CommentScanner) ScanFile(path string, style models.CommentStyle) (models.ScannedFile, error) {
	handle, err := os.Open(path)
	if err != nil {
		return models.ScannedFile{}, fmt.Errorf("%w %s: %w", ErrUnreadableFile, path, err)
	}
	defer handle.Close()

	if scanner.cacheManager != nil {
		if cached, found := scanner.cacheManager.GetScanCache(path, style); found {
			logger.L().Debug("cache hit", zap.String("path", path))
			return cached, nil
		}
	}

	content, err := io.ReadAll(handle)
	if err != nil {
		return models.ScannedFile{}, fmt.Errorf("%w %s: %w", ErrUnreadableFile, path, err)
	}
	if !utf8.Valid(content) {
		return models.ScannedFile{}, fmt.Errorf("%w %s: %w", ErrUnreadableFile, path, ErrInvalidText)
	}

	file := models.ScannedFile{
		Path:         path,
		CommentLines: ExtractComments(string(content), style),
	}

	logger.L().Debug("scanned file",
		zap.String("path", path),
		zap.Int("comments", len(file.CommentLines)),
		zap.String("marker", style.Marker()),
	)

	if scanner.cacheManager != nil {
		if err := scanner.cacheManager.SetScanCache(path, style, file); err != nil {
			logger.L().Warn("failed to cache scan result", zap.String("path", path), zap.Error(err))
		}
	}

	return file, nil
}

// CachePerformance returns the lookups made so far, and false when caching is off.
func (scanner *CommentScanner) CachePerformance() (models.CachePerformance, bool) {
	if scanner.cacheManager == nil {
		return models.CachePerformance{}, false
	}
	return scanner.cacheManager.Performance(), true
}

// GetCacheStats reports the cache state, or cache_enabled=false when caching is off.
func (scanner *CommentScanner) GetCacheStats() (map[string]interface{}, error) {
	if scanner.cacheManager == nil {
		return map[string]interface{}{"cache_enabled": false}, nil
	}
	return scanner.cacheManager.GetCacheStats()
}

func (scanner *CommentScanner) ClearCache() error {
	if scanner.cacheManager == nil {
		return nil
	}
	return scanner.cacheManager.ClearCache()
}
