package comment_scanner

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meysamhadeli/cmtscan/comment_scanner/models"
	"github.com/zeebo/xxh3"
)

// BenchmarkCacheKeyGeneration compares md5 with the xxh3 hash used for cache keys
func BenchmarkCacheKeyGeneration(b *testing.B) {
	filePaths := make([]string, 1000)
	charset := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789/_-."
	for i := range filePaths {
		length := rand.Intn(100) + 20
		var path strings.Builder
		for j := 0; j < length; j++ {
			path.WriteByte(charset[rand.Intn(len(charset))])
		}
		filePaths[i] = path.String()
	}

	b.Run("MD5", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			hash := md5.Sum([]byte(filePaths[i%1000] + "|#"))
			_ = fmt.Sprintf("%x.cache", hash)
		}
	})

	b.Run("XXH3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			hash := xxh3.HashString(filePaths[i%1000] + "|#")
			_ = fmt.Sprintf("%x.cache", hash)
		}
	})
}

// BenchmarkExtractComments measures the trim-and-prefix pass over a large file
func BenchmarkExtractComments(b *testing.B) {
	var content strings.Builder
	for i := 0; i < 5000; i++ {
		if i%3 == 0 {
			content.WriteString("    # comment line\n")
		} else {
			content.WriteString("value = compute(value)\n")
		}
	}
	source := content.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ExtractComments(source, models.PythonStyle)
	}
}

// BenchmarkScanFile_WithVsWithoutCache compares a direct read with a cache hit
func BenchmarkScanFile_WithVsWithoutCache(b *testing.B) {
	dir := b.TempDir()
	path := filepath.Join(dir, "large.py")
	content := bytes.Repeat([]byte("x = 1\n# note\n"), 5000)
	if err := os.WriteFile(path, content, 0644); err != nil {
		b.Fatal(err)
	}

	cacheManager, err := NewCacheManager(b.TempDir())
	if err != nil {
		b.Fatal(err)
	}

	b.Run("WithoutCache", func(b *testing.B) {
		scanner := NewCommentScanner(&bytes.Buffer{}, nil)
		for i := 0; i < b.N; i++ {
			if _, err := scanner.ScanFile(path, models.PythonStyle); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("WithCache", func(b *testing.B) {
		scanner := NewCommentScanner(&bytes.Buffer{}, cacheManager)
		if _, err := scanner.ScanFile(path, models.PythonStyle); err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := scanner.ScanFile(path, models.PythonStyle); err != nil {
				b.Fatal(err)
			}
		}
	})
}
