// Package content reads blog posts (Markdown with YAML front matter) and
// answers listing queries over them.
//
// Front matter fields that are missing are filled in from the body: the
// excerpt, reading time and cover image come from the same metadata
// functions the article pages use.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-blogmd/internal/dateutil"
	"github.com/alnah/go-blogmd/internal/meta"
)

// Sentinel errors for post handling.
var (
	ErrEmptySlug    = errors.New("post slug cannot be empty")
	ErrFrontMatter  = errors.New("failed to parse front matter")
	ErrContentDir   = errors.New("failed to read content directory")
	ErrPostNotFound = errors.New("post not found")
)

// Default field values applied when front matter omits them.
const (
	DefaultAuthor   = "Bloxin Team"
	DefaultCategory = "Uncategorized"
)

// Options controls how missing post fields are filled in.
type Options struct {
	Author         string
	Category       string
	ExcerptLength  int
	WordsPerMinute int
}

// DefaultOptions returns the stock defaults.
func DefaultOptions() Options {
	return Options{
		Author:         DefaultAuthor,
		Category:       DefaultCategory,
		ExcerptLength:  meta.DefaultExcerptLength,
		WordsPerMinute: meta.WordsPerMinute,
	}
}

// Post is one blog article.
type Post struct {
	Slug       string
	Title      string
	Date       time.Time // zero when DateText is missing or unparseable
	DateText   string
	Excerpt    string
	Author     string
	Category   string
	ReadTime   string
	CoverImage string
	Featured   bool
	Content    string
}

// DisplayDate formats the post date for listings. Posts whose date could
// not be parsed show the raw front matter value.
func (p *Post) DisplayDate() string {
	if p.Date.IsZero() {
		return p.DateText
	}
	s, err := dateutil.Format(p.Date, dateutil.DefaultDisplayFormat)
	if err != nil {
		return p.DateText
	}
	return s
}

// frontMatter mirrors the YAML header of a post file.
type frontMatter struct {
	Title      string `yaml:"title"`
	Date       string `yaml:"date"`
	Excerpt    string `yaml:"excerpt"`
	Author     string `yaml:"author"`
	Category   string `yaml:"category"`
	ReadTime   string `yaml:"readTime"`
	CoverImage string `yaml:"coverImage"`
	Featured   bool   `yaml:"featured"`
}

// ParsePost builds a Post from a source file. Content without front
// matter is accepted and gets defaults for every field.
func ParsePost(slug string, source []byte, opts Options) (*Post, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrEmptySlug
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontMatter, slug, err)
	}

	content := string(body)
	p := &Post{
		Slug:       slug,
		Title:      fm.Title,
		DateText:   fm.Date,
		Excerpt:    fm.Excerpt,
		Author:     fallback(fm.Author, opts.Author, DefaultAuthor),
		Category:   fallback(fm.Category, opts.Category, DefaultCategory),
		ReadTime:   fm.ReadTime,
		CoverImage: fm.CoverImage,
		Featured:   fm.Featured,
		Content:    content,
	}

	if fm.Date != "" {
		if d, err := dateutil.ParsePostDate(fm.Date); err == nil {
			p.Date = d
		}
	}
	if p.Excerpt == "" {
		p.Excerpt = meta.Excerpt(content, excerptLength(opts))
	}
	if p.ReadTime == "" {
		p.ReadTime = meta.ReadingTimeAt(content, opts.WordsPerMinute)
	}
	if p.CoverImage == "" {
		p.CoverImage, _ = meta.FirstImage(content)
	}
	return p, nil
}

func excerptLength(opts Options) int {
	if opts.ExcerptLength > 0 {
		return opts.ExcerptLength
	}
	return meta.DefaultExcerptLength
}

// fallback returns the first non-blank value.
func fallback(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
