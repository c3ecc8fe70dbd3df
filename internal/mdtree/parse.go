package mdtree

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parser turns Markdown content into a Document. A Parser is safe for
// concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a Parser with GFM extensions and heading IDs.
func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Anchor IDs for the outline
		),
	)
	return &Parser{md: md}
}

var defaultParser = NewParser()

// Parse parses content with the default Parser.
func Parse(content string) *Document {
	return defaultParser.Parse(content)
}

// Parse parses content into a Document. It never fails.
func (p *Parser) Parse(content string) *Document {
	if content == "" {
		return &Document{}
	}
	src := []byte(content)
	root := p.md.Parser().Parse(text.NewReader(src))
	c := converter{src: src}
	return &Document{Nodes: c.children(root)}
}

// converter maps goldmark AST nodes onto Nodes.
type converter struct {
	src []byte
}

func (c *converter) children(n ast.Node) []*Node {
	var out []*Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.convert(child)...)
	}
	return mergeText(out)
}

func (c *converter) convert(n ast.Node) []*Node {
	switch n := n.(type) {
	case *ast.Heading:
		return one(&Node{Kind: KindHeading, Level: n.Level, ID: headingID(n), Children: c.children(n)})
	case *ast.Paragraph:
		return one(&Node{Kind: KindParagraph, Children: c.children(n)})
	case *ast.TextBlock:
		// Tight list items hold inline content without a paragraph.
		return c.children(n)
	case *ast.Text:
		return c.text(n)
	case *ast.String:
		return one(&Node{Kind: KindText, Literal: string(n.Value)})
	case *ast.CodeSpan:
		return one(&Node{Kind: KindInlineCode, Literal: c.rawText(n)})
	case *ast.Emphasis:
		kind := KindEmphasis
		if n.Level >= 2 {
			kind = KindStrong
		}
		return one(&Node{Kind: kind, Children: c.children(n)})
	case *ast.Link:
		return one(&Node{Kind: KindLink, Href: string(n.Destination), Title: string(n.Title), Children: c.children(n)})
	case *ast.AutoLink:
		return one(c.autoLink(n))
	case *ast.Image:
		return one(&Node{Kind: KindImage, Src: string(n.Destination), Title: string(n.Title), Alt: c.rawText(n)})
	case *ast.RawHTML:
		var b bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.src))
		}
		return one(&Node{Kind: KindRawHTML, Literal: b.String()})
	case *ast.HTMLBlock:
		body := c.lines(n)
		if n.HasClosure() {
			body += string(n.ClosureLine.Value(c.src))
		}
		return one(&Node{Kind: KindHTMLBlock, Literal: strings.TrimSuffix(body, "\n")})
	case *ast.FencedCodeBlock:
		var info string
		if n.Info != nil {
			info = string(n.Info.Segment.Value(c.src))
		}
		lang := ResolveLanguage(info)
		return one(&Node{
			Kind:         KindCodeBlock,
			Info:         info,
			Language:     lang,
			LanguageName: DisplayName(lang),
			Body:         strings.TrimSuffix(c.lines(n), "\n"),
			Fenced:       true,
		})
	case *ast.CodeBlock:
		return one(&Node{Kind: KindCodeBlock, Body: strings.TrimSuffix(c.lines(n), "\n")})
	case *ast.Blockquote:
		return one(&Node{Kind: KindBlockquote, Children: c.children(n)})
	case *ast.List:
		return one(&Node{Kind: KindList, Ordered: n.IsOrdered(), Start: n.Start, Tight: n.IsTight, Children: c.children(n)})
	case *ast.ListItem:
		return one(&Node{Kind: KindListItem, Children: c.children(n)})
	case *ast.ThematicBreak:
		return one(&Node{Kind: KindThematicBreak})
	case *east.Table:
		return one(c.table(n))
	case *east.Strikethrough:
		return one(&Node{Kind: KindStrikethrough, Children: c.children(n)})
	case *east.TaskCheckBox:
		return one(&Node{Kind: KindTaskCheckBox, Checked: n.IsChecked})
	default:
		// Constructs without a dedicated kind keep their content.
		return c.children(n)
	}
}

func (c *converter) text(n *ast.Text) []*Node {
	value := n.Segment.Value(c.src)
	if !n.IsRaw() {
		value = util.UnescapePunctuations(value)
		value = util.ResolveNumericReferences(value)
		value = util.ResolveEntityNames(value)
	}
	literal := string(value)
	if n.SoftLineBreak() {
		literal += "\n"
	}
	out := []*Node{{Kind: KindText, Literal: literal}}
	if n.HardLineBreak() {
		out = append(out, &Node{Kind: KindLineBreak})
	}
	return out
}

func (c *converter) autoLink(n *ast.AutoLink) *Node {
	href := string(n.URL(c.src))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
		href = "mailto:" + href
	}
	return &Node{
		Kind:     KindLink,
		Href:     href,
		Children: []*Node{{Kind: KindText, Literal: string(n.Label(c.src))}},
	}
}

func (c *converter) table(n *east.Table) *Node {
	table := &Node{Kind: KindTable}
	body := &Node{Kind: KindTableBody}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			head := &Node{Kind: KindTableHead, Children: []*Node{c.tableRow(row, true)}}
			table.Children = append(table.Children, head)
		case *east.TableRow:
			body.Children = append(body.Children, c.tableRow(row, false))
		}
	}
	if len(body.Children) > 0 {
		table.Children = append(table.Children, body)
	}
	return table
}

func (c *converter) tableRow(row ast.Node, header bool) *Node {
	out := &Node{Kind: KindTableRow}
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*east.TableCell)
		if !ok {
			continue
		}
		out.Children = append(out.Children, &Node{
			Kind:     KindTableCell,
			Header:   header,
			Align:    alignment(cell.Alignment),
			Children: c.children(cell),
		})
	}
	return out
}

// rawText concatenates the unprocessed text beneath n.
func (c *converter) rawText(n ast.Node) string {
	var b bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// lines joins the source lines of a block node.
func (c *converter) lines(n ast.Node) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	return b.String()
}

func headingID(n *ast.Heading) string {
	v, ok := n.AttributeString("id")
	if !ok {
		return ""
	}
	if id, ok := v.([]byte); ok {
		return string(id)
	}
	return ""
}

func alignment(a east.Alignment) Alignment {
	switch a {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

// mergeText joins adjacent text nodes produced by goldmark's segmenting.
func mergeText(nodes []*Node) []*Node {
	if len(nodes) < 2 {
		return nodes
	}
	out := nodes[:1]
	for _, n := range nodes[1:] {
		last := out[len(out)-1]
		if n.Kind == KindText && last.Kind == KindText {
			last.Literal += n.Literal
			continue
		}
		out = append(out, n)
	}
	return out
}

func one(n *Node) []*Node {
	return []*Node{n}
}
