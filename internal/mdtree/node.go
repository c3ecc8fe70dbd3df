package mdtree

import "strings"

// Kind identifies the variant of a Node.
type Kind int

// Node kinds.
const (
	KindText Kind = iota
	KindHeading
	KindParagraph
	KindLink
	KindImage
	KindCodeBlock
	KindInlineCode
	KindTable
	KindTableHead
	KindTableBody
	KindTableRow
	KindTableCell
	KindList
	KindListItem
	KindBlockquote
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindRawHTML
	KindHTMLBlock
	KindThematicBreak
	KindLineBreak
	KindTaskCheckBox
)

var kindNames = [...]string{
	KindText:          "text",
	KindHeading:       "heading",
	KindParagraph:     "paragraph",
	KindLink:          "link",
	KindImage:         "image",
	KindCodeBlock:     "code-block",
	KindInlineCode:    "inline-code",
	KindTable:         "table",
	KindTableHead:     "table-head",
	KindTableBody:     "table-body",
	KindTableRow:      "table-row",
	KindTableCell:     "table-cell",
	KindList:          "list",
	KindListItem:      "list-item",
	KindBlockquote:    "blockquote",
	KindEmphasis:      "emphasis",
	KindStrong:        "strong",
	KindStrikethrough: "strikethrough",
	KindRawHTML:       "raw-html",
	KindHTMLBlock:     "html-block",
	KindThematicBreak: "thematic-break",
	KindLineBreak:     "line-break",
	KindTaskCheckBox:  "task-checkbox",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Alignment is the horizontal alignment of a table column.
type Alignment int

// Table column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// Node is one parsed Markdown construct. Only the fields relevant to Kind
// are set.
type Node struct {
	Kind Kind

	// Text, inline code and raw HTML content.
	Literal string

	// Heading level (1-6) and generated anchor ID.
	Level int
	ID    string

	// Link target. Title is shared with images.
	Href  string
	Title string

	// Image source and alternative text.
	Src string
	Alt string

	// Code block. Language is empty for languageless blocks.
	Language     string
	LanguageName string
	Info         string
	Body         string
	Fenced       bool

	// List.
	Ordered bool
	Start   int
	Tight   bool

	// Table cell.
	Header bool
	Align  Alignment

	// Task list checkbox.
	Checked bool

	Children []*Node
}

// PlainText returns the textual content of n and its descendants.
// Images contribute their alt text and line breaks a newline.
func (n *Node) PlainText() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	switch n.Kind {
	case KindText, KindInlineCode, KindRawHTML, KindHTMLBlock:
		b.WriteString(n.Literal)
	case KindCodeBlock:
		b.WriteString(n.Body)
	case KindImage:
		b.WriteString(n.Alt)
	case KindLineBreak:
		b.WriteByte('\n')
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// Document is the root of a parsed content document.
type Document struct {
	Nodes []*Node
}

// Empty reports whether the document has no nodes.
func (d *Document) Empty() bool {
	return d == nil || len(d.Nodes) == 0
}

// Walk visits every node depth-first in document order. Returning false
// from fn skips the node's children.
func (d *Document) Walk(fn func(n *Node, depth int) bool) {
	if d == nil {
		return
	}
	for _, n := range d.Nodes {
		walk(n, 0, fn)
	}
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Heading is one entry of a document outline.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// Outline lists the headings of d up to maxLevel (1-6, 0 means all).
func (d *Document) Outline(maxLevel int) []Heading {
	if maxLevel <= 0 || maxLevel > 6 {
		maxLevel = 6
	}
	var out []Heading
	d.Walk(func(n *Node, _ int) bool {
		if n.Kind != KindHeading {
			return true
		}
		if n.Level <= maxLevel {
			out = append(out, Heading{Level: n.Level, ID: n.ID, Text: n.PlainText()})
		}
		return false
	})
	return out
}
