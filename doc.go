// Package blogmd turns blog articles written in Markdown into a
// presentation tree and listing metadata.
//
// # Quick Start
//
// Metadata and rendering are independent; either can be used alone:
//
//	p := blogmd.NewPipeline()
//
//	md := p.Metadata(source)
//	fmt.Println(md.ReadingTime, md.Excerpt)
//
//	out := p.Render(p.Parse(source))
//	html, err := p.RenderHTML(out)
//
// Article bundles all of the above for a single page:
//
//	a, err := p.Article(source)
//
// # Stages
//
//  1. Text normalization: Markdown syntax is stripped to plain text for
//     excerpts.
//  2. Metadata: reading time, first image, excerpt.
//  3. Parsing: CommonMark with GFM tables, strikethrough, autolinks and
//     task lists into a structural Document.
//  4. Render mapping: every node becomes an Element carrying
//     presentation hints (external links, local images, code badges).
//  5. HTML output (optional): elements are serialized with chroma syntax
//     highlighting and optional bluemonday sanitizing.
//
// None of the stages fails on malformed Markdown. Empty input gives
// "0 min read", an empty excerpt, no image and an empty Output.
//
// # Posts
//
// LoadPosts reads Markdown files with YAML front matter from an fs.FS and
// returns an index with listing queries (recent, featured, related, by
// category).
//
// # Concurrency
//
// A Pipeline holds no per-call state and may be shared between goroutines.
package blogmd
