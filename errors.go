package blogmd

import (
	"errors"

	"github.com/alnah/go-blogmd/internal/content"
	"github.com/alnah/go-blogmd/internal/htmlout"
)

// Sentinel errors for library operations.
var (
	ErrHTMLRender   = htmlout.ErrHTMLRender
	ErrUnknownStyle = errors.New("unknown highlight style")

	// Post loading errors.
	ErrContentDir   = content.ErrContentDir
	ErrFrontMatter  = content.ErrFrontMatter
	ErrEmptySlug    = content.ErrEmptySlug
	ErrPostNotFound = content.ErrPostNotFound
)
