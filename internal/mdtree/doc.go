// Package mdtree parses Markdown into a structural document tree.
//
// Parsing uses goldmark with the GitHub-flavored extensions (tables,
// strikethrough, autolinks, task lists). Raw HTML is kept as literal
// RawHTML/HTMLBlock nodes and never escaped or interpreted here.
//
// The parser is total: any input, including the empty string and
// unterminated constructs, yields a Document. Broken syntax degrades to
// plain text nodes.
package mdtree
