package models

import "strings"

// CommentStyle is the family of single-line comment syntax used for a whole run.
type CommentStyle int

const (
	DefaultStyle CommentStyle = iota
	CStyle
	LispStyle
	PythonStyle
)

// ParseCommentStyle maps a CLI token to a CommentStyle, ignoring case.
// Unknown tokens fall back to DefaultStyle.
func ParseCommentStyle(token string) CommentStyle {
	switch strings.ToLower(token) {
	case "c", "js":
		return CStyle
	case "python", "py":
		return PythonStyle
	case "clj", "lsp", "lisp":
		return LispStyle
	default:
		return DefaultStyle
	}
}

// Marker returns the prefix that identifies a single-line comment.
func (s CommentStyle) Marker() string {
	switch s {
	case LispStyle:
		return ";"
	case PythonStyle:
		return "#"
	default:
		return "//"
	}
}

func (s CommentStyle) String() string {
	switch s {
	case CStyle:
		return "c"
	case LispStyle:
		return "lisp"
	case PythonStyle:
		return "python"
	default:
		return "default"
	}
}

// MatchedLine holds the trimmed text of a comment line and its 1-based position.
type MatchedLine struct {
	Contents string
	Number   int
}

// ScannedFile holds the path of a scanned entry and its comment lines in file order.
type ScannedFile struct {
	Path         string
	CommentLines []MatchedLine
}

// CachePerformance counts the cache lookups of one run.
type CachePerformance struct {
	Hits   int64
	Misses int64
}

func (p CachePerformance) Lookups() int64 {
	return p.Hits + p.Misses
}

// HitRate is the share of lookups served from the cache, in percent.
func (p CachePerformance) HitRate() float64 {
	if p.Lookups() == 0 {
		return 0
	}
	return float64(p.Hits) / float64(p.Lookups()) * 100
}
