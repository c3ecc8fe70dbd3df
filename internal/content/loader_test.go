package content

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-slug"

	"github.com/alnah/go-blogmd/internal/logging"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"posts/first.md":        {Data: []byte("---\ntitle: First\ndate: 2024-02-01\n---\nbody")},
		"posts/second.mdx":      {Data: []byte("---\ntitle: Second\ndate: 2024-03-01\n---\nbody")},
		"posts/broken.md":       {Data: []byte("---\ntitle: [oops\n---\n")},
		"posts/notes.txt":       {Data: []byte("ignored")},
		"posts/drafts/draft.md": {Data: []byte("nested files are not loaded")},
	}

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "warn")

	idx, err := Load(fsys, "posts", DefaultOptions(), logger)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := slugs(idx.All()); !equal(got, []string{"second", "first"}) {
		t.Errorf("All() = %v, want [second first]", got)
	}
	if !strings.Contains(buf.String(), "broken.md") {
		t.Errorf("expected warning for broken.md, log = %q", buf.String())
	}
}

func TestLoad_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{}, "nope", DefaultOptions(), nil)
	if !errors.Is(err, ErrContentDir) {
		t.Errorf("Load() error = %v, want %v", err, ErrContentDir)
	}
}

func TestIsPostFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"a.md", true},
		{"a.MDX", true},
		{"a.markdown", false},
		{"md", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsPostFile(tt.name); got != tt.want {
				t.Errorf("IsPostFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSlugFromName(t *testing.T) {
	t.Parallel()

	if got := SlugFromName("dir/hello-world.md"); got != "hello-world" {
		t.Errorf("SlugFromName() = %q", got)
	}
	if got := SlugFromName("Release Notes.mdx"); !slug.IsValid(got) {
		t.Errorf("SlugFromName() = %q, not a valid slug", got)
	}
}
