package meta

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alnah/go-blogmd/internal/textnorm"
)

func TestReadingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		// Empty content has no words, so the ceiling stays at zero.
		{name: "empty", content: "", want: "0 min read"},
		{name: "whitespace only", content: "  \n\t", want: "0 min read"},
		{name: "one word", content: "hello", want: "1 min read"},
		{name: "exactly 200 words", content: words(200), want: "1 min read"},
		{name: "201 words", content: words(201), want: "2 min read"},
		{name: "400 words", content: words(400), want: "2 min read"},
		{name: "markdown syntax counts as words", content: "# Title\n\n- a\n- b", want: "1 min read"},
		{name: "runs of whitespace", content: "a    b\n\n\nc", want: "1 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ReadingTime(tt.content); got != tt.want {
				t.Errorf("ReadingTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadingTimeAt(t *testing.T) {
	t.Parallel()

	if got := ReadingTimeAt(words(10), 5); got != "2 min read" {
		t.Errorf("ReadingTimeAt(10 words, 5) = %q, want %q", got, "2 min read")
	}
	if got := ReadingTimeAt(words(10), 0); got != "1 min read" {
		t.Errorf("ReadingTimeAt(10 words, 0) = %q, want default speed", got)
	}
}

func TestFirstImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{name: "no image", content: "just text and a [link](/x)", wantOK: false},
		{name: "empty", content: "", wantOK: false},
		{name: "two images picks first", content: "![a](u1) ![b](u2)", want: "u1", wantOK: true},
		{name: "empty alt", content: "text ![](/img/cover.jpg)", want: "/img/cover.jpg", wantOK: true},
		{name: "remote url", content: "![x](https://cdn.example.com/p.png)", want: "https://cdn.example.com/p.png", wantOK: true},
		{name: "unterminated image", content: "![x](/broken", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := FirstImage(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("FirstImage() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("FirstImage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		length  int
		want    string
	}{
		{name: "empty", content: "", length: 160, want: ""},
		{name: "short text untouched", content: "Short **post**.", length: 160, want: "Short post."},
		{name: "exact length no ellipsis", content: "abcde", length: 5, want: "abcde"},
		{name: "cut mid word", content: "abcdefgh", length: 5, want: "abcde..."},
		{name: "zero length", content: "abc", length: 0, want: "..."},
		{name: "multibyte counted as characters", content: "héllo wörld", length: 4, want: "héll..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Excerpt(tt.content, tt.length); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.content, tt.length, got, tt.want)
			}
		})
	}
}

func TestExcerpt_PrefixOfNormalized(t *testing.T) {
	t.Parallel()

	contents := []string{
		"# Intro\n\nUSB-C **Power Delivery** negotiates voltage over the CC line.",
		strings.Repeat("word ", 100),
		"![cover](/c.jpg) [home](/) `code` ~~gone~~ text",
	}

	for _, c := range contents {
		for _, n := range []int{0, 1, 10, 160, 1000} {
			got := Excerpt(c, n)
			if utf8.RuneCountInString(got) > n+len(Ellipsis) {
				t.Errorf("Excerpt(%q, %d) too long: %d runes", c, n, utf8.RuneCountInString(got))
			}
			body := strings.TrimSuffix(got, Ellipsis)
			if !strings.HasPrefix(textnorm.Normalize(c), body) {
				t.Errorf("Excerpt(%q, %d) = %q is not a prefix of the normalized text", c, n, got)
			}
		}
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		got := Extract("", 0)
		want := Metadata{ReadingTime: "0 min read"}
		if got != want {
			t.Errorf("Extract(\"\") = %+v, want %+v", got, want)
		}
	})

	t.Run("full document", func(t *testing.T) {
		t.Parallel()

		got := Extract("# Hi\n\n![a](/a.png)\n\nBody text", 4)
		if got.ReadingTime != "1 min read" {
			t.Errorf("ReadingTime = %q", got.ReadingTime)
		}
		if !got.HasImage || got.FirstImage != "/a.png" {
			t.Errorf("FirstImage = %q (ok=%v)", got.FirstImage, got.HasImage)
		}
		if got.Excerpt != "Hi B..." {
			t.Errorf("Excerpt = %q, want %q", got.Excerpt, "Hi B...")
		}
	})
}

// words returns n space-separated words.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("w ", n))
}
