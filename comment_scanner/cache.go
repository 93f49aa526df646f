package comment_scanner

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
	"github.com/zeebo/xxh3"
)

// DefaultCacheMaxAge is how long an entry survives before it is pruned on open.
const DefaultCacheMaxAge = 7 * 24 * time.Hour

// CacheEntry represents a cached scan result with the metadata used to validate it
type CacheEntry struct {
	Data      models.ScannedFile
	Timestamp time.Time
	FileSize  int64
	ModTime   time.Time
	Marker    string
}

// FileCache stores one gob file per (path, marker) pair
type FileCache struct {
	cacheDir string
	mutex    sync.RWMutex
}

// CacheManager provides high-level caching operations for scan results
type CacheManager struct {
	fileCache *FileCache
	lookups   lookupCounter
}

// DefaultCacheDir returns <user cache dir>/cmtscan.
// The cache must never live inside a scanned directory, where it would be read as an entry.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache directory: %w", err)
	}
	return filepath.Join(base, "cmtscan"), nil
}

// NewCacheManager creates a cache manager rooted at cacheDir, or at DefaultCacheDir when empty.
// Expired entries are pruned before it returns.
func NewCacheManager(cacheDir string) (*CacheManager, error) {
	if cacheDir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		cacheDir = dir
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cacheManager := &CacheManager{
		fileCache: &FileCache{cacheDir: cacheDir},
	}

	if err := cacheManager.CleanExpiredCache(DefaultCacheMaxAge); err != nil {
		return nil, err
	}

	return cacheManager, nil
}

// generateCacheKey creates a unique cache file name for a file scanned with a marker
func (fc *FileCache) generateCacheKey(filePath string, marker string) string {
	if abs, err := filepath.Abs(filePath); err == nil {
		filePath = abs
	}
	return fmt.Sprintf("%x.cache", xxh3.HashString(filePath+"|"+marker))
}

func (fc *FileCache) getCachePath(cacheKey string) string {
	return filepath.Join(fc.cacheDir, cacheKey)
}

// isFileChanged checks if a file has been modified since it was cached
func (fc *FileCache) isFileChanged(filePath string, entry *CacheEntry) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return true, err
	}

	if !fileInfo.ModTime().Equal(entry.ModTime) || fileInfo.Size() != entry.FileSize {
		return true, nil
	}

	return false, nil
}

// Get retrieves a scan result if present and still valid
func (fc *FileCache) Get(filePath string, marker string) (models.ScannedFile, bool) {
	fc.mutex.RLock()
	defer fc.mutex.RUnlock()

	cachePath := fc.getCachePath(fc.generateCacheKey(filePath, marker))

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return models.ScannedFile{}, false
	}

	var entry CacheEntry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
		return models.ScannedFile{}, false
	}

	if entry.Marker != marker {
		return models.ScannedFile{}, false
	}

	changed, err := fc.isFileChanged(filePath, &entry)
	if err != nil || changed {
		os.Remove(cachePath)
		return models.ScannedFile{}, false
	}

	return entry.Data, true
}

// Set stores a scan result together with the file's current metadata
func (fc *FileCache) Set(filePath string, marker string, file models.ScannedFile) error {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	entry := CacheEntry{
		Data:      file,
		Timestamp: time.Now(),
		FileSize:  fileInfo.Size(),
		ModTime:   fileInfo.ModTime(),
		Marker:    marker,
	}

	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(entry); err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	cachePath := fc.getCachePath(fc.generateCacheKey(filePath, marker))
	if err := os.WriteFile(cachePath, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// GetScanCache retrieves a cached scan result and records the hit or miss
func (cm *CacheManager) GetScanCache(filePath string, style models.CommentStyle) (models.ScannedFile, bool) {
	file, found := cm.fileCache.Get(filePath, style.Marker())
	cm.lookups.record(found)
	if !found {
		return models.ScannedFile{}, false
	}
	return file, true
}

// SetScanCache stores a scan result
func (cm *CacheManager) SetScanCache(filePath string, style models.CommentStyle, file models.ScannedFile) error {
	return cm.fileCache.Set(filePath, style.Marker(), file)
}

// GetCacheStats returns storage statistics of the cache directory
func (cm *CacheManager) GetCacheStats() (map[string]interface{}, error) {
	files, err := os.ReadDir(cm.fileCache.cacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	var totalSize int64
	var count int
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}
		totalSize += info.Size()
		count++
	}

	return map[string]interface{}{
		"cache_enabled": true,
		"cache_dir":     cm.fileCache.cacheDir,
		"cache_files":   count,
		"total_size":    totalSize,
	}, nil
}

// ClearCache removes all cache entries
func (cm *CacheManager) ClearCache() error {
	cm.fileCache.mutex.Lock()
	defer cm.fileCache.mutex.Unlock()

	files, err := os.ReadDir(cm.fileCache.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		cachePath := filepath.Join(cm.fileCache.cacheDir, file.Name())
		if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete cache file %s: %w", file.Name(), err)
		}
	}

	cm.lookups.reset()
	return nil
}

// CleanExpiredCache removes entries written more than maxAge ago
func (cm *CacheManager) CleanExpiredCache(maxAge time.Duration) error {
	cm.fileCache.mutex.Lock()
	defer cm.fileCache.mutex.Unlock()

	files, err := os.ReadDir(cm.fileCache.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		cachePath := filepath.Join(cm.fileCache.cacheDir, file.Name())

		data, err := os.ReadFile(cachePath)
		if err != nil {
			continue
		}

		var entry CacheEntry
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
			// unreadable entries are stale by definition
			os.Remove(cachePath)
			continue
		}

		if entry.Timestamp.Before(cutoff) {
			os.Remove(cachePath)
		}
	}

	return nil
}
