package render

import (
	"regexp"
	"strings"

	"github.com/alnah/go-blogmd/internal/mdtree"
)

var absoluteScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// FallbackFunc is called when a node kind has no mapping rule.
type FallbackFunc func(kind mdtree.Kind)

// Option configures a Mapper.
type Option func(*Mapper)

// WithFallbackHandler registers fn to be told about unmapped node kinds.
func WithFallbackHandler(fn FallbackFunc) Option {
	return func(m *Mapper) {
		m.onFallback = fn
	}
}

// Mapper applies the fixed mapping table to structural documents.
// A Mapper holds no per-call state and is safe for concurrent use as long
// as its fallback handler is.
type Mapper struct {
	onFallback FallbackFunc
}

// NewMapper creates a Mapper.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var defaultMapper = NewMapper()

// Render maps doc with the default Mapper.
func Render(doc *mdtree.Document) *Output {
	return defaultMapper.Render(doc)
}

// Render maps doc onto presentation elements. A nil or empty document
// gives an empty Output.
func (m *Mapper) Render(doc *mdtree.Document) *Output {
	out := &Output{}
	if doc.Empty() {
		return out
	}
	out.Elements = m.elements(doc.Nodes, 0)
	return out
}

func (m *Mapper) elements(nodes []*mdtree.Node, depth int) []*Element {
	var out []*Element
	for _, n := range nodes {
		out = append(out, m.element(n, depth)...)
	}
	return out
}

// element maps one node. depth counts the lists enclosing n.
func (m *Mapper) element(n *mdtree.Node, depth int) []*Element {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case mdtree.KindText:
		return one(&Element{Type: TypeText, Text: n.Literal})
	case mdtree.KindHeading:
		return one(m.heading(n, depth))
	case mdtree.KindParagraph:
		return one(&Element{Type: TypeParagraph, Children: m.elements(n.Children, depth)})
	case mdtree.KindLink:
		return m.link(n, depth)
	case mdtree.KindImage:
		return image(n)
	case mdtree.KindCodeBlock:
		return one(codeBlock(n))
	case mdtree.KindInlineCode:
		return one(&Element{Type: TypeInlineCode, Hints: []Hint{HintInlineCode}, Code: n.Literal})
	case mdtree.KindTable:
		return one(&Element{Type: TypeTable, Hints: []Hint{HintScrollable}, Children: m.elements(n.Children, depth)})
	case mdtree.KindTableHead:
		return one(&Element{Type: TypeTableHead, Hints: []Hint{HintTableHeader}, Children: m.elements(n.Children, depth)})
	case mdtree.KindTableBody:
		return one(&Element{Type: TypeTableBody, Hints: []Hint{HintTableBody}, Children: m.elements(n.Children, depth)})
	case mdtree.KindTableRow:
		return one(&Element{Type: TypeTableRow, Children: m.elements(n.Children, depth)})
	case mdtree.KindTableCell:
		return one(tableCell(n, m.elements(n.Children, depth)))
	case mdtree.KindList:
		return one(m.list(n, depth))
	case mdtree.KindListItem:
		return one(&Element{Type: TypeListItem, Depth: depth, Children: m.elements(n.Children, depth)})
	case mdtree.KindBlockquote:
		return one(&Element{Type: TypeBlockquote, Hints: []Hint{HintCard}, Children: m.elements(n.Children, depth)})
	case mdtree.KindEmphasis:
		return one(&Element{Type: TypeEmphasis, Children: m.elements(n.Children, depth)})
	case mdtree.KindStrong:
		return one(&Element{Type: TypeStrong, Children: m.elements(n.Children, depth)})
	case mdtree.KindStrikethrough:
		return one(&Element{Type: TypeStrikethrough, Children: m.elements(n.Children, depth)})
	case mdtree.KindRawHTML, mdtree.KindHTMLBlock:
		return one(&Element{Type: TypeRawHTML, Text: n.Literal})
	case mdtree.KindThematicBreak:
		return one(&Element{Type: TypeThematicBreak})
	case mdtree.KindLineBreak:
		return one(&Element{Type: TypeLineBreak})
	case mdtree.KindTaskCheckBox:
		return one(&Element{Type: TypeCheckbox, Checked: n.Checked})
	default:
		if m.onFallback != nil {
			m.onFallback(n.Kind)
		}
		return one(&Element{Type: TypeText, Text: n.PlainText()})
	}
}

func (m *Mapper) heading(n *mdtree.Node, depth int) *Element {
	e := &Element{Type: TypeHeading, Level: n.Level, ID: n.ID, Children: m.elements(n.Children, depth)}
	switch n.Level {
	case 1:
		e.Hints = []Hint{HintGradientEmphasis}
	case 2:
		e.Hints = []Hint{HintUnderlinedSection}
	case 3:
		e.Hints = []Hint{HintAccent}
	}
	return e
}

// link maps a link by its target. Links without a target keep only their
// content.
func (m *Mapper) link(n *mdtree.Node, depth int) []*Element {
	children := m.elements(n.Children, depth)
	if n.Href == "" {
		return children
	}
	e := &Element{Type: TypeLink, Href: n.Href, Title: n.Title, Children: children}
	if IsInternalLink(n.Href) {
		e.Hints = []Hint{HintInternalLink}
	} else {
		e.Hints = []Hint{HintExternalLink}
		e.Target = ExternalTarget
		e.Rel = ExternalRel
	}
	return one(e)
}

func (m *Mapper) list(n *mdtree.Node, depth int) *Element {
	e := &Element{Type: TypeList, Depth: depth, Children: m.elements(n.Children, depth+1)}
	// Items belong to this list, not the one they may open.
	for _, item := range e.Children {
		if item.Type == TypeListItem {
			item.Depth = depth
		}
	}
	if n.Ordered {
		e.Hints = []Hint{HintOrdered}
		e.Start = n.Start
	} else {
		e.Hints = []Hint{HintUnordered}
	}
	return e
}

// image maps an image by its source. Images without a source are omitted.
func image(n *mdtree.Node) []*Element {
	if n.Src == "" {
		return nil
	}
	e := &Element{Type: TypeImage, Src: n.Src, Alt: n.Alt, Title: n.Title}
	if IsRemoteImage(n.Src) {
		e.Hints = []Hint{HintExternalImage}
	} else {
		e.Hints = []Hint{HintLocalImage, HintLazyDimensions}
	}
	return one(e)
}

func codeBlock(n *mdtree.Node) *Element {
	e := &Element{
		Type:         TypeCodeBlock,
		Language:     n.Language,
		LanguageName: n.LanguageName,
		Code:         n.Body,
	}
	if n.Language != "" {
		e.Hints = append(e.Hints, HintLanguageBadge)
	}
	e.Hints = append(e.Hints, HintCopyable)
	return e
}

func tableCell(n *mdtree.Node, children []*Element) *Element {
	e := &Element{Type: TypeTableCell, Align: n.Align.String(), Children: children}
	if n.Header {
		e.Hints = []Hint{HintTableHeader}
	}
	return e
}

// IsInternalLink reports whether href is root-relative. Protocol-relative
// URLs ("//host/path") are external.
func IsInternalLink(href string) bool {
	return strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//")
}

// IsRemoteImage reports whether src carries an absolute scheme or is
// protocol-relative.
func IsRemoteImage(src string) bool {
	return absoluteScheme.MatchString(src) || strings.HasPrefix(src, "//")
}

func one(e *Element) []*Element {
	return []*Element{e}
}
