package blogmd

import (
	"github.com/alnah/go-blogmd/internal/content"
	"github.com/alnah/go-blogmd/internal/mdtree"
	"github.com/alnah/go-blogmd/internal/render"
)

// Structural tree produced by Parse.
type (
	Document = mdtree.Document
	Node     = mdtree.Node
	Kind     = mdtree.Kind
	Heading  = mdtree.Heading
)

// Presentation tree produced by Render.
type (
	Output  = render.Output
	Element = render.Element
	Type    = render.Type
	Hint    = render.Hint
)

// Posts and their index.
type (
	Post     = content.Post
	Index    = content.Index
	Category = content.Category
)

// Metadata is the listing information derived from an article body.
// FirstImage is nil when the article has no image.
type Metadata struct {
	ReadingTime string  `json:"reading_time"`
	FirstImage  *string `json:"first_image"`
	Excerpt     string  `json:"excerpt"`
}

// Article is everything a page needs to display one post body.
type Article struct {
	Metadata Metadata  `json:"metadata"`
	Outline  []Heading `json:"outline"`
	Output   *Output   `json:"content"`
	HTML     string    `json:"html"`
}
