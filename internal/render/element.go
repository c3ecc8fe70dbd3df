// Package render maps a parsed document onto presentation elements.
//
// Each structural node becomes an Element annotated with presentation
// hints: internal or external navigation, local or remote images, code
// badges and copy affordances, cosmetic heading emphasis. The mapping table
// is fixed and the mapping never fails. Node kinds it does not know become
// plain text elements.
package render

// Type identifies the kind of presentation element.
type Type string

// Element types.
const (
	TypeText          Type = "text"
	TypeHeading       Type = "heading"
	TypeParagraph     Type = "paragraph"
	TypeLink          Type = "link"
	TypeImage         Type = "image"
	TypeCodeBlock     Type = "code-block"
	TypeInlineCode    Type = "inline-code"
	TypeTable         Type = "table"
	TypeTableHead     Type = "table-head"
	TypeTableBody     Type = "table-body"
	TypeTableRow      Type = "table-row"
	TypeTableCell     Type = "table-cell"
	TypeList          Type = "list"
	TypeListItem      Type = "list-item"
	TypeBlockquote    Type = "blockquote"
	TypeEmphasis      Type = "emphasis"
	TypeStrong        Type = "strong"
	TypeStrikethrough Type = "strikethrough"
	TypeRawHTML       Type = "raw-html"
	TypeThematicBreak Type = "thematic-break"
	TypeLineBreak     Type = "line-break"
	TypeCheckbox      Type = "checkbox"
)

// Hint is a presentation annotation the consumer may act on.
type Hint string

// Presentation hints.
const (
	// HintInternalLink marks a root-relative link for client-side routing.
	HintInternalLink Hint = "internal-link"
	// HintExternalLink marks a link that must open in a new context
	// without referrer and without opener access.
	HintExternalLink Hint = "external-link"

	// HintExternalImage marks a plain remote image with no layout wrapper.
	HintExternalImage Hint = "external-image"
	// HintLocalImage marks a local image rendered in a placeholder frame.
	HintLocalImage Hint = "local-image"
	// HintLazyDimensions asks the consumer to supply image dimensions lazily.
	HintLazyDimensions Hint = "lazy-dimensions"

	// HintLanguageBadge marks a code block that shows its language.
	HintLanguageBadge Hint = "language-badge"
	// HintCopyable marks a code block that supports a copy action.
	HintCopyable Hint = "copyable"
	// HintInlineCode marks inline code styling.
	HintInlineCode Hint = "inline-code"

	HintGradientEmphasis  Hint = "gradient-emphasis"
	HintUnderlinedSection Hint = "underlined-section"
	HintAccent            Hint = "accent"
	HintCard              Hint = "card"
	HintScrollable        Hint = "scrollable"

	HintTableHeader Hint = "table-header"
	HintTableBody   Hint = "table-body"
	HintOrdered     Hint = "ordered"
	HintUnordered   Hint = "unordered"
)

// Link open policy for external navigation.
const (
	ExternalTarget = "_blank"
	ExternalRel    = "noopener noreferrer"
)

// Element is one node of the render output tree.
type Element struct {
	Type  Type   `json:"type"`
	Hints []Hint `json:"hints,omitempty"`

	Text string `json:"text,omitempty"`

	Level int    `json:"level,omitempty"`
	ID    string `json:"id,omitempty"`

	Href   string `json:"href,omitempty"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`
	Title  string `json:"title,omitempty"`

	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`

	Language     string `json:"language,omitempty"`
	LanguageName string `json:"languageName,omitempty"`
	Code         string `json:"code,omitempty"`

	Start int    `json:"start,omitempty"`
	Depth int    `json:"depth,omitempty"`
	Align string `json:"align,omitempty"`

	Checked bool `json:"checked,omitempty"`

	Children []*Element `json:"children,omitempty"`
}

// Has reports whether e carries hint h.
func (e *Element) Has(h Hint) bool {
	if e == nil {
		return false
	}
	for _, x := range e.Hints {
		if x == h {
			return true
		}
	}
	return false
}

// Output is the render result for one document.
type Output struct {
	Elements []*Element `json:"elements"`
}

// Empty reports whether the output has no elements.
func (o *Output) Empty() bool {
	return o == nil || len(o.Elements) == 0
}
