package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \n\t ", want: ""},
		{name: "plain text", input: "Hello world", want: "Hello world"},
		{name: "image removed", input: "Before ![alt](/img.png) after", want: "Before after"},
		{name: "link keeps text", input: "See [the docs](https://x.com) now", want: "See the docs now"},
		{name: "heading marker stripped", input: "## Section title", want: "Section title"},
		{name: "heading marker mid-line is stripped", input: "C# is great", want: "Cis great"},
		{name: "hash without space kept", input: "issue #42 fixed", want: "issue #42 fixed"},
		{name: "bold asterisks", input: "a **bold** word", want: "a bold word"},
		{name: "bold underscores", input: "a __bold__ word", want: "a bold word"},
		{name: "italic asterisk", input: "an *italic* word", want: "an italic word"},
		{name: "italic underscore", input: "an _italic_ word", want: "an italic word"},
		{name: "inline code removed", input: "run `go test` now", want: "run now"},
		{name: "fenced code removed", input: "Intro\n\n```go\nfunc main() {}\n```\n\nOutro", want: "Intro Outro"},
		{name: "strikethrough kept", input: "old ~~price~~ tag", want: "old price tag"},
		{name: "newlines collapsed", input: "one\ntwo\n\n\nthree", want: "one two three"},
		{name: "leading and trailing trimmed", input: "  padded  ", want: "padded"},
		{name: "unterminated italic stays literal", input: "a *bold word", want: "a *bold word"},
		{name: "unterminated code stays literal", input: "a `tick", want: "a `tick"},
		{name: "unterminated link stays literal", input: "[text](no-close", want: "[text](no-close"},
		{
			name:  "mixed document",
			input: "# Title\n\n![cover](/c.jpg)\n\nRead **this** and [that](/that).",
			want:  "Title Read this and that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# Title\n\nSome **bold** and *italic* text.",
		"A [link](/x) with ~~strike~~ and `code`.",
		"![img](/a.png) Plain words\n\nsecond paragraph",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	content := "# Heading\n\nSome **bold** text with a [link](/x) and `code`.\n\n" +
		"![image](/img.png)\n\n```go\nfunc main() {}\n```\n"
	b.ReportAllocs()
	for b.Loop() {
		Normalize(content)
	}
}
