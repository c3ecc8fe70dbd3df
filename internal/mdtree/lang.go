package mdtree

import (
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// languageClassPrefix is the class-style prefix accepted on fence tags.
const languageClassPrefix = "language-"

var languageTag = regexp.MustCompile(`^\w+`)

// ResolveLanguage extracts the language tag from a fence info string.
// The first word is used, an optional "language-" prefix is dropped and
// the tag ends at the first non-word character ("c++" resolves to "c").
// An empty result means the block has no language.
func ResolveLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	tag := strings.TrimPrefix(fields[0], languageClassPrefix)
	return languageTag.FindString(tag)
}

// DisplayName returns the canonical language name for a fence tag, e.g.
// "js" becomes "JavaScript". Unknown tags are returned unchanged.
func DisplayName(tag string) string {
	if tag == "" {
		return ""
	}
	if name, ok := enry.GetLanguageByAlias(tag); ok {
		return name
	}
	return tag
}
