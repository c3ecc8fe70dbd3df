package main

import (
	"fmt"
	"strings"

	blogmd "github.com/alnah/go-blogmd"
	"github.com/alnah/go-blogmd/internal/logging"
	"github.com/alnah/go-blogmd/internal/ui"
)

// runMeta prints reading time, first image and excerpt of one article.
func runMeta(args []string, env *Environment) error {
	f, rest, err := parseMetaFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	p := s.pipeline(blogmd.WithExcerptLength(f.length), blogmd.WithWordsPerMinute(f.wpm))
	source, err := s.readSource(p, rest)
	if err != nil {
		return err
	}
	return writeOutput(env, p.Metadata(source), f.format)
}

// runTree prints the render output tree, or the heading outline.
func runTree(args []string, env *Environment) error {
	f, rest, err := parseTreeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	p := s.pipeline()
	source, err := s.readSource(p, rest)
	if err != nil {
		return err
	}

	doc := p.Parse(source)
	if f.outline {
		outline := doc.Outline(f.depth)
		if outline == nil {
			outline = []blogmd.Heading{}
		}
		return writeOutput(env, outline, f.format)
	}
	return writeOutput(env, p.Render(doc), f.format)
}

// runHTML prints the HTML fragment of one article.
func runHTML(args []string, env *Environment) error {
	f, rest, err := parseHTMLFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	var extra []blogmd.Option
	if f.sanitize {
		extra = append(extra, blogmd.WithSanitize(true))
	}
	if f.noHighlight {
		extra = append(extra, blogmd.WithHighlight(false))
	}
	extra = append(extra, blogmd.WithHighlightStyle(f.style))
	p := s.pipeline(extra...)

	var css string
	if f.css {
		// Resolve the style before reading input so a bad name fails fast.
		if css, err = p.StyleSheet(); err != nil {
			return err
		}
	}

	source, err := s.readSource(p, rest)
	if err != nil {
		return err
	}

	var b strings.Builder
	if css != "" {
		b.WriteString("<style>\n")
		b.WriteString(css)
		b.WriteString("</style>\n")
	}
	if err := p.WriteHTML(&b, p.Render(p.Parse(source))); err != nil {
		return err
	}
	b.WriteString("\n")

	if _, err := fmt.Fprint(env.Stdout, b.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// postSummary is the listing view of a post.
type postSummary struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	ReadTime   string `json:"readTime"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"coverImage,omitempty"`
	Featured   bool   `json:"featured"`
}

func summarize(posts []*blogmd.Post) []postSummary {
	out := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, postSummary{
			Slug:       p.Slug,
			Title:      p.Title,
			Date:       p.DisplayDate(),
			Author:     p.Author,
			Category:   p.Category,
			ReadTime:   p.ReadTime,
			Excerpt:    p.Excerpt,
			CoverImage: p.CoverImage,
			Featured:   p.Featured,
		})
	}
	return out
}

// runPosts lists the posts of a content directory.
func runPosts(args []string, env *Environment) error {
	f, rest, err := parsePostsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	dir, err := s.contentDir(rest)
	if err != nil {
		return err
	}
	idx, err := s.pipeline().LoadPosts(env.DirFS(dir), ".")
	if err != nil {
		return fmt.Errorf("%s: %w", dir, err)
	}

	posts := selectPosts(idx, f)
	s.logger.Debug("listing posts", logging.FieldPath, dir, logging.FieldPosts, len(posts))

	if f.json {
		return writeOutput(env, summarize(posts), formatJSON)
	}
	if s.quiet {
		return nil
	}

	st := s.styles
	tbl := ui.NewTable(st, "SLUG", "DATE", "CATEGORY", "READ", "TITLE")
	for _, p := range posts {
		title := ui.Cell{Text: p.Title, Style: st.Title}
		if p.Featured {
			title = ui.Cell{Text: p.Title + " *", Style: st.Featured}
		}
		tbl.Add(
			ui.Plain(p.Slug),
			ui.Cell{Text: p.DisplayDate(), Style: st.Dim},
			ui.Cell{Text: p.Category, Style: st.Category},
			ui.Cell{Text: p.ReadTime, Style: st.Dim},
			title,
		)
	}
	if err := tbl.Render(env.Stdout); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// selectPosts applies the listing filters. Related takes precedence
// over the category and featured filters.
func selectPosts(idx *blogmd.Index, f *postsFlags) []*blogmd.Post {
	if f.related != "" {
		category := f.category
		if p, ok := idx.BySlug(f.related); ok && category == "" {
			category = p.Category
		}
		return idx.Related(f.related, category, f.limit)
	}

	posts := idx.All()
	if f.category != "" {
		posts = idx.ByCategory(f.category)
	}
	if f.featured {
		kept := posts[:0:0]
		for _, p := range posts {
			if p.Featured {
				kept = append(kept, p)
			}
		}
		posts = kept
	}
	if f.limit > 0 && len(posts) > f.limit {
		posts = posts[:f.limit]
	}
	return posts
}

// contentDir picks the posts directory from args or config.
func (s *session) contentDir(args []string) (string, error) {
	switch len(args) {
	case 0:
		if s.cfg.Content.Dir == "" {
			return "", ErrNoInput
		}
		return s.cfg.Content.Dir, nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: expected one directory, got %d", ErrUsage, len(args))
}

func writeOutput(env *Environment, v any, format string) error {
	if err := encode(env.Stdout, v, format); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
