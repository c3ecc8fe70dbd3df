package blogmd_test

import (
	"encoding/json"
	"fmt"
	"testing/fstest"

	blogmd "github.com/alnah/go-blogmd"
)

func ExampleReadingTime() {
	fmt.Println(blogmd.ReadingTime("one two three"))
	fmt.Println(blogmd.ReadingTime(""))
	// Output:
	// 1 min read
	// 0 min read
}

func ExampleExcerpt() {
	fmt.Println(blogmd.Excerpt("# Hello **world**, see [the docs](/docs).", 160))
	fmt.Println(blogmd.Excerpt("abcdefghij", 4))
	// Output:
	// Hello world, see the docs.
	// abcd...
}

func ExamplePipeline_Metadata() {
	p := blogmd.NewPipeline()
	md := p.Metadata("# Title\n\n![cover](/img/a.png)\n\nSome text.")

	data, _ := json.Marshal(md)
	fmt.Println(string(data))

	data, _ = json.Marshal(p.Metadata(""))
	fmt.Println(string(data))
	// Output:
	// {"reading_time":"1 min read","first_image":"/img/a.png","excerpt":"Title Some text."}
	// {"reading_time":"0 min read","first_image":null,"excerpt":""}
}

func ExamplePipeline_RenderHTML() {
	p := blogmd.NewPipeline()
	out := p.Render(p.Parse("[docs](/docs) and [site](https://example.com)"))

	html, err := p.RenderHTML(out)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(html)
	// Output:
	// <p><a href="/docs" data-nav="internal">docs</a> and <a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a></p>
}

func ExamplePipeline_LoadPosts() {
	fsys := fstest.MapFS{
		"blog/hello.md": {Data: []byte("---\ntitle: Hello\ndate: 2025-03-15\n---\nFirst post.")},
		"blog/later.md": {Data: []byte("---\ntitle: Later\ndate: March 20, 2025\ncategory: News\n---\nSecond.")},
	}

	idx, err := blogmd.NewPipeline().LoadPosts(fsys, "blog")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, post := range idx.All() {
		fmt.Printf("%s | %s | %s | %s\n", post.Title, post.DisplayDate(), post.Category, post.ReadTime)
	}
	// Output:
	// Later | March 20, 2025 | News | 1 min read
	// Hello | March 15, 2025 | Uncategorized | 1 min read
}
