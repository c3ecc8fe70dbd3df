package blogmd

import (
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-blogmd/internal/content"
	"github.com/alnah/go-blogmd/internal/htmlout"
	"github.com/alnah/go-blogmd/internal/logging"
	"github.com/alnah/go-blogmd/internal/mdtree"
	"github.com/alnah/go-blogmd/internal/meta"
	"github.com/alnah/go-blogmd/internal/render"
	"github.com/alnah/go-blogmd/internal/textnorm"
)

// Defaults.
const (
	DefaultExcerptLength  = meta.DefaultExcerptLength
	DefaultWordsPerMinute = meta.WordsPerMinute
	DefaultHighlightStyle = htmlout.DefaultStyle
	DefaultOutlineDepth   = 3
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for warnings. Nil keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithExcerptLength sets the excerpt cut length. Non-positive values are ignored.
func WithExcerptLength(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.excerptLength = n
		}
	}
}

// WithWordsPerMinute sets the reading speed. Non-positive values are ignored.
func WithWordsPerMinute(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.wordsPerMinute = n
		}
	}
}

// WithSanitize filters raw HTML through a UGC policy in RenderHTML.
func WithSanitize(enabled bool) Option {
	return func(p *Pipeline) { p.htmlOpts.Sanitize = enabled }
}

// WithHighlight toggles syntax highlighting in RenderHTML.
func WithHighlight(enabled bool) Option {
	return func(p *Pipeline) { p.htmlOpts.Highlight = enabled }
}

// WithHighlightStyle selects the chroma style returned by StyleSheet.
func WithHighlightStyle(name string) Option {
	return func(p *Pipeline) {
		if name != "" {
			p.style = name
		}
	}
}

// WithPostDefaults sets the author and category given to posts whose
// front matter has none.
func WithPostDefaults(author, category string) Option {
	return func(p *Pipeline) {
		if author != "" {
			p.author = author
		}
		if category != "" {
			p.category = category
		}
	}
}

// Pipeline runs the content stages with a fixed set of options.
type Pipeline struct {
	logger         *log.Logger
	excerptLength  int
	wordsPerMinute int
	style          string
	author         string
	category       string
	htmlOpts       htmlout.Options

	parser *mdtree.Parser
	mapper *render.Mapper
	writer *htmlout.Writer
}

// NewPipeline creates a Pipeline with default options.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:         logging.Default(),
		excerptLength:  DefaultExcerptLength,
		wordsPerMinute: DefaultWordsPerMinute,
		style:          DefaultHighlightStyle,
		author:         content.DefaultAuthor,
		category:       content.DefaultCategory,
		htmlOpts:       htmlout.DefaultOptions(),
		parser:         mdtree.NewParser(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.mapper = render.NewMapper(render.WithFallbackHandler(func(k mdtree.Kind) {
		p.logger.Warn("unmapped node rendered as text", logging.FieldKind, k.String())
	}))
	p.writer = htmlout.NewWriter(p.htmlOpts)
	return p
}

// Normalize strips Markdown syntax and returns plain text.
func (p *Pipeline) Normalize(source string) string {
	return textnorm.Normalize(source)
}

// ReadingTime estimates the reading time as "<n> min read".
func (p *Pipeline) ReadingTime(source string) string {
	return meta.ReadingTimeAt(source, p.wordsPerMinute)
}

// FirstImage returns the URL of the first Markdown image.
func (p *Pipeline) FirstImage(source string) (string, bool) {
	return meta.FirstImage(source)
}

// Excerpt returns the normalized text cut at the configured length.
func (p *Pipeline) Excerpt(source string) string {
	return meta.Excerpt(source, p.excerptLength)
}

// Metadata computes the listing metadata of source.
func (p *Pipeline) Metadata(source string) Metadata {
	m := Metadata{
		ReadingTime: p.ReadingTime(source),
		Excerpt:     p.Excerpt(source),
	}
	if img, ok := p.FirstImage(source); ok {
		m.FirstImage = &img
	}
	return m
}

// Parse builds the structural Document of source.
func (p *Pipeline) Parse(source string) *Document {
	return p.parser.Parse(source)
}

// Render maps doc onto presentation elements.
func (p *Pipeline) Render(doc *Document) *Output {
	return p.mapper.Render(doc)
}

// RenderHTML serializes out to an HTML fragment.
func (p *Pipeline) RenderHTML(out *Output) (string, error) {
	return p.writer.String(out)
}

// WriteHTML serializes out to w.
func (p *Pipeline) WriteHTML(w io.Writer, out *Output) error {
	return p.writer.Render(w, out)
}

// Article runs every stage for one article body.
// Recovers from internal panics so one bad document cannot crash a batch.
func (p *Pipeline) Article(source string) (a *Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	doc := p.Parse(source)
	out := p.Render(doc)
	htmlContent, err := p.RenderHTML(out)
	if err != nil {
		return nil, err
	}
	return &Article{
		Metadata: p.Metadata(source),
		Outline:  doc.Outline(DefaultOutlineDepth),
		Output:   out,
		HTML:     htmlContent,
	}, nil
}

// StyleSheet returns the highlight CSS for the configured style.
func (p *Pipeline) StyleSheet() (string, error) {
	if !IsStyle(p.style) {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, p.style)
	}
	return htmlout.StyleSheet(p.style)
}

// IsStyle reports whether name is a known highlight style.
func IsStyle(name string) bool {
	return slices.Contains(htmlout.StyleNames(), strings.ToLower(name))
}

// StyleNames lists the known highlight styles.
func StyleNames() []string {
	return htmlout.StyleNames()
}

// PostOptions returns the defaults applied to posts loaded by this pipeline.
func (p *Pipeline) PostOptions() content.Options {
	return content.Options{
		Author:         p.author,
		Category:       p.category,
		ExcerptLength:  p.excerptLength,
		WordsPerMinute: p.wordsPerMinute,
	}
}

// ParsePost reads one post with front matter.
func (p *Pipeline) ParsePost(slug string, source []byte) (*Post, error) {
	return content.ParsePost(slug, source, p.PostOptions())
}

// LoadPosts reads the posts under dir in fsys. Malformed files are
// logged and skipped.
func (p *Pipeline) LoadPosts(fsys fs.FS, dir string) (*Index, error) {
	return content.Load(fsys, dir, p.PostOptions(), p.logger)
}

var defaultPipeline = NewPipeline()

// Normalize strips Markdown syntax with default options.
func Normalize(source string) string { return defaultPipeline.Normalize(source) }

// ReadingTime estimates the reading time at 200 words per minute.
func ReadingTime(source string) string { return meta.ReadingTime(source) }

// FirstImage returns the URL of the first Markdown image.
func FirstImage(source string) (string, bool) { return meta.FirstImage(source) }

// Excerpt cuts the normalized text at maxLength characters.
func Excerpt(source string, maxLength int) string { return meta.Excerpt(source, maxLength) }

// Parse builds the structural Document of source.
func Parse(source string) *Document { return mdtree.Parse(source) }

// Render maps doc onto presentation elements with the default mapping.
func Render(doc *Document) *Output { return render.Render(doc) }
