// Package htmlout serializes render output to an HTML fragment.
//
// Elements are turned into golang.org/x/net/html nodes and rendered with
// html.Render, so text and attribute values are always escaped. Raw HTML
// from the document is the one exception: it is inserted verbatim. When
// sanitizing is enabled the whole fragment is run through a bluemonday
// policy, and links or images with unsafe URLs are dropped before that.
package htmlout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-blogmd/internal/render"
)

// DefaultStyle is the chroma style used for highlighting and style sheets.
const DefaultStyle = "monokai"

// ErrHTMLRender indicates the HTML fragment could not be written.
var ErrHTMLRender = errors.New("HTML rendering failed")

// Options controls HTML serialization.
type Options struct {
	// Sanitize filters the fragment through a user-generated-content policy
	// and drops links and images whose URL scheme is not allowed.
	Sanitize bool
	// Highlight enables chroma syntax highlighting for tagged code blocks.
	Highlight bool
}

// DefaultOptions highlights code and passes raw HTML through.
func DefaultOptions() Options {
	return Options{Highlight: true}
}

// Writer renders Output values as HTML. A Writer is safe for concurrent use.
type Writer struct {
	opts      Options
	policy    *bluemonday.Policy
	formatter *chromahtml.Formatter
}

// NewWriter creates a Writer.
func NewWriter(opts Options) *Writer {
	w := &Writer{
		opts: opts,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true), // Colors come from StyleSheet
			chromahtml.PreventSurroundingPre(true),
		),
	}
	if opts.Sanitize {
		w.policy = newPolicy()
	}
	return w
}

var (
	linkTargetPattern = regexp.MustCompile(`^_blank$`)
	loadingPattern    = regexp.MustCompile(`^(lazy|eager)$`)
	inputTypePattern  = regexp.MustCompile(`^checkbox$`)
	flagAttrPattern   = regexp.MustCompile(`(?i)^(|disabled|checked)$`)
)

// newPolicy extends the UGC policy with the attributes this package emits.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowDataAttributes()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
	p.AllowAttrs("target").Matching(linkTargetPattern).OnElements("a")
	p.AllowAttrs("rel").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	p.AllowAttrs("loading").Matching(loadingPattern).OnElements("img")
	p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
	p.AllowAttrs("type").Matching(inputTypePattern).OnElements("input")
	p.AllowAttrs("disabled", "checked").Matching(flagAttrPattern).OnElements("input")
	p.AllowStyles("text-align").MatchingEnum("left", "right", "center").OnElements("td", "th")
	return p
}

// safeURL reports whether raw is relative or uses an allowed scheme.
func safeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	default:
		return false
	}
}

// Render writes out as an HTML fragment to dst.
func (w *Writer) Render(dst io.Writer, out *render.Output) error {
	if out.Empty() {
		return nil
	}
	if w.policy == nil {
		return w.renderNodes(dst, out)
	}
	var buf bytes.Buffer
	if err := w.renderNodes(&buf, out); err != nil {
		return err
	}
	if err := w.policy.SanitizeReaderToWriter(&buf, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return nil
}

func (w *Writer) renderNodes(dst io.Writer, out *render.Output) error {
	for _, e := range out.Elements {
		for _, n := range w.nodes(e) {
			if err := html.Render(dst, n); err != nil {
				return fmt.Errorf("%w: %v", ErrHTMLRender, err)
			}
		}
	}
	return nil
}

// String renders out and returns the fragment.
func (w *Writer) String(out *render.Output) (string, error) {
	var buf bytes.Buffer
	if err := w.Render(&buf, out); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render writes out with DefaultOptions.
func Render(dst io.Writer, out *render.Output) error {
	return NewWriter(DefaultOptions()).Render(dst, out)
}

// StyleSheet returns the CSS rules for a chroma style. Unknown names fall
// back to chroma's default style.
func StyleSheet(style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	var buf bytes.Buffer
	f := chromahtml.New(chromahtml.WithClasses(true))
	if err := f.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return buf.String(), nil
}

// StyleNames lists the available highlighting styles.
func StyleNames() []string {
	return styles.Names()
}

// nodes converts an element into HTML nodes.
func (w *Writer) nodes(e *render.Element) []*html.Node {
	switch e.Type {
	case render.TypeText:
		return []*html.Node{text(e.Text)}
	case render.TypeRawHTML:
		return []*html.Node{{Type: html.RawNode, Data: e.Text}}
	case render.TypeHeading:
		level := min(max(e.Level, 1), 6)
		n := elem("h"+strconv.Itoa(level), classFor(e))
		if e.ID != "" {
			n.Attr = append(n.Attr, attr("id", e.ID))
		}
		return w.withChildren(n, e)
	case render.TypeParagraph:
		return w.withChildren(elem("p"), e)
	case render.TypeLink:
		if w.policy != nil && !safeURL(e.Href) {
			return w.childNodes(e)
		}
		return w.withChildren(link(e), e)
	case render.TypeImage:
		if w.policy != nil && !safeURL(e.Src) {
			return nil
		}
		return []*html.Node{image(e)}
	case render.TypeCodeBlock:
		return []*html.Node{w.codeBlock(e)}
	case render.TypeInlineCode:
		n := elem("code", attr("class", "inline-code"))
		n.AppendChild(text(e.Code))
		return []*html.Node{n}
	case render.TypeTable:
		frame := elem("div", attr("class", "table-frame"))
		table := elem("table")
		for _, c := range w.childNodes(e) {
			table.AppendChild(c)
		}
		frame.AppendChild(table)
		return []*html.Node{frame}
	case render.TypeTableHead:
		return w.withChildren(elem("thead"), e)
	case render.TypeTableBody:
		return w.withChildren(elem("tbody"), e)
	case render.TypeTableRow:
		return w.withChildren(elem("tr"), e)
	case render.TypeTableCell:
		tag := "td"
		if e.Has(render.HintTableHeader) {
			tag = "th"
		}
		n := elem(tag)
		if e.Align != "" {
			n.Attr = append(n.Attr, attr("style", "text-align:"+e.Align))
		}
		return w.withChildren(n, e)
	case render.TypeList:
		n := elem("ul")
		if e.Has(render.HintOrdered) {
			n = elem("ol")
			if e.Start > 1 {
				n.Attr = append(n.Attr, attr("start", strconv.Itoa(e.Start)))
			}
		}
		n.Attr = append(n.Attr, attr("data-depth", strconv.Itoa(e.Depth)))
		return w.withChildren(n, e)
	case render.TypeListItem:
		return w.withChildren(elem("li"), e)
	case render.TypeBlockquote:
		return w.withChildren(elem("blockquote", classFor(e)), e)
	case render.TypeEmphasis:
		return w.withChildren(elem("em"), e)
	case render.TypeStrong:
		return w.withChildren(elem("strong"), e)
	case render.TypeStrikethrough:
		return w.withChildren(elem("del"), e)
	case render.TypeThematicBreak:
		return []*html.Node{elem("hr")}
	case render.TypeLineBreak:
		return []*html.Node{elem("br")}
	case render.TypeCheckbox:
		n := elem("input", attr("type", "checkbox"), attr("disabled", ""))
		if e.Checked {
			n.Attr = append(n.Attr, attr("checked", ""))
		}
		return []*html.Node{n}
	default:
		// Unknown element types render their text and children.
		var out []*html.Node
		if e.Text != "" {
			out = append(out, text(e.Text))
		}
		return append(out, w.childNodes(e)...)
	}
}

func (w *Writer) childNodes(e *render.Element) []*html.Node {
	var out []*html.Node
	for _, c := range e.Children {
		out = append(out, w.nodes(c)...)
	}
	return out
}

func (w *Writer) withChildren(n *html.Node, e *render.Element) []*html.Node {
	for _, c := range w.childNodes(e) {
		n.AppendChild(c)
	}
	return []*html.Node{n}
}

func (w *Writer) codeBlock(e *render.Element) *html.Node {
	frame := elem("div", attr("class", "code-block"))
	if e.Has(render.HintCopyable) {
		frame.Attr = append(frame.Attr, attr("data-copyable", "true"))
	}

	code := elem("code")
	if e.Language != "" {
		frame.Attr = append(frame.Attr, attr("data-language", e.Language))
		code.Attr = append(code.Attr, attr("class", "language-"+e.Language))
	}
	if e.Has(render.HintLanguageBadge) {
		badge := elem("span", attr("class", "code-badge"))
		badge.AppendChild(text(e.Language))
		frame.AppendChild(badge)
	}

	pre := elem("pre")
	if highlighted, ok := w.highlight(e.Language, e.Code); ok {
		pre.Attr = append(pre.Attr, attr("class", "chroma"))
		code.AppendChild(&html.Node{Type: html.RawNode, Data: highlighted})
	} else {
		code.AppendChild(text(e.Code))
	}
	pre.AppendChild(code)
	frame.AppendChild(pre)
	return frame
}

// highlight returns chroma markup for code, or false when highlighting is
// off, the language is unknown or tokenizing fails.
func (w *Writer) highlight(language, code string) (string, bool) {
	if !w.opts.Highlight || language == "" {
		return "", false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false
	}
	var buf bytes.Buffer
	if err := w.formatter.Format(&buf, styles.Get(DefaultStyle), it); err != nil {
		return "", false
	}
	return buf.String(), true
}

func link(e *render.Element) *html.Node {
	n := elem("a", attr("href", e.Href))
	if e.Title != "" {
		n.Attr = append(n.Attr, attr("title", e.Title))
	}
	if e.Has(render.HintInternalLink) {
		n.Attr = append(n.Attr, attr("data-nav", "internal"))
	}
	if e.Target != "" {
		n.Attr = append(n.Attr, attr("target", e.Target))
	}
	if e.Rel != "" {
		n.Attr = append(n.Attr, attr("rel", e.Rel))
	}
	return n
}

func image(e *render.Element) *html.Node {
	img := elem("img", attr("src", e.Src), attr("alt", e.Alt))
	if e.Title != "" {
		img.Attr = append(img.Attr, attr("title", e.Title))
	}
	if !e.Has(render.HintLocalImage) {
		return img
	}
	img.Attr = append(img.Attr, attr("loading", "lazy"))
	frame := elem("div", attr("class", "image-frame"))
	frame.AppendChild(img)
	return frame
}

// classFor joins an element's cosmetic hints into a class attribute.
func classFor(e *render.Element) html.Attribute {
	names := make([]string, 0, len(e.Hints))
	for _, h := range e.Hints {
		names = append(names, string(h))
	}
	return attr("class", strings.Join(names, " "))
}

func elem(tag string, attrs ...html.Attribute) *html.Node {
	var kept []html.Attribute
	for _, a := range attrs {
		if a.Key == "class" && a.Val == "" {
			continue
		}
		kept = append(kept, a)
	}
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: kept}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
