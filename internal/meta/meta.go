// Package meta derives article metadata (reading time, first image, excerpt)
// directly from raw Markdown content.
//
// Every function here works on the raw string and never consults the parsed
// document tree, so the results do not depend on how the Markdown parses.
package meta

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-blogmd/internal/textnorm"
)

const (
	// WordsPerMinute is the reading speed used by ReadingTime.
	WordsPerMinute = 200

	// DefaultExcerptLength is the excerpt size in characters.
	DefaultExcerptLength = 160

	// Ellipsis marks an excerpt cut short.
	Ellipsis = "..."
)

var firstImagePattern = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

// Metadata holds the values derived from one content document.
type Metadata struct {
	ReadingTime string
	FirstImage  string
	HasImage    bool
	Excerpt     string
}

// Extract computes all metadata for content. A non-positive excerptLength
// selects DefaultExcerptLength.
func Extract(content string, excerptLength int) Metadata {
	if excerptLength <= 0 {
		excerptLength = DefaultExcerptLength
	}
	img, ok := FirstImage(content)
	return Metadata{
		ReadingTime: ReadingTime(content),
		FirstImage:  img,
		HasImage:    ok,
		Excerpt:     Excerpt(content, excerptLength),
	}
}

// WordCount counts whitespace-delimited tokens in content.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// ReadingTime estimates reading time at WordsPerMinute, rounded up.
// Empty content reads as "0 min read".
func ReadingTime(content string) string {
	return ReadingTimeAt(content, WordsPerMinute)
}

// ReadingTimeAt is ReadingTime with a custom reading speed.
// A non-positive wpm falls back to WordsPerMinute.
func ReadingTimeAt(content string, wpm int) string {
	if wpm <= 0 {
		wpm = WordsPerMinute
	}
	words := WordCount(content)
	minutes := (words + wpm - 1) / wpm
	return fmt.Sprintf("%d min read", minutes)
}

// FirstImage returns the URL of the first ![alt](url) occurrence.
func FirstImage(content string) (string, bool) {
	m := firstImagePattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Excerpt returns the first maxLength characters of the normalized content,
// followed by Ellipsis when the text was cut. The cut may fall mid-word.
func Excerpt(content string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	text := textnorm.Normalize(content)
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength]) + Ellipsis
}
