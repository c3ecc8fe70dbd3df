// Package textnorm strips Markdown syntax from content to derive plain text.
package textnorm

import (
	"regexp"
	"strings"
)

// Precompiled patterns, applied in declaration order by Normalize.
var (
	imagePattern   = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	linkPattern    = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	headingPattern = regexp.MustCompile(`#{1,6}\s(.*)`)
	strongPattern  = regexp.MustCompile(`\*\*(.*?)\*\*|__(.*?)__`)
	emPattern      = regexp.MustCompile(`\*(.*?)\*|_(.*?)_`)
	fencePattern   = regexp.MustCompile("(?s)```.*?```")
	codePattern    = regexp.MustCompile("`{1,3}.*?`{1,3}")
	strikePattern  = regexp.MustCompile(`~~(.*?)~~`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Normalize removes Markdown syntax from content and returns plain text.
//
// Images are dropped, links keep their visible text, heading markers go away,
// bold and italic markers are stripped (bold first, one pass each), code spans
// and fenced blocks are removed with their content, strikethrough markers are
// stripped and whitespace is collapsed to single spaces.
//
// Heading markers are matched anywhere on a line, so "C# is great" becomes
// "Cis great". Unterminated constructs stay as literal text.
func Normalize(content string) string {
	if content == "" {
		return ""
	}

	text := imagePattern.ReplaceAllString(content, "")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "$1")
	text = stripPaired(strongPattern, text)
	text = stripPaired(emPattern, text)
	text = fencePattern.ReplaceAllString(text, "")
	text = codePattern.ReplaceAllString(text, "")
	text = strikePattern.ReplaceAllString(text, "$1")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripPaired replaces each match of a two-alternative pattern with the
// inner text captured by whichever alternative matched.
func stripPaired(re *regexp.Regexp, text string) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		groups := re.FindStringSubmatch(match)
		if groups[1] != "" {
			return groups[1]
		}
		return groups[2]
	})
}
