package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	blogmd "github.com/alnah/go-blogmd"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, blogFiles)
	out := filepath.Join(t.TempDir(), "site")

	env := newTestEnv(nil)
	args := []string{"build", dir, "-o", out, "--workers", "2", "--color", "never"}
	if code := runMain(context.Background(), args, env.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}

	for _, slug := range []string{"alpha", "beta", "gamma"} {
		data, err := os.ReadFile(filepath.Join(out, slug+".html"))
		if err != nil {
			t.Errorf("missing output for %s: %v", slug, err)
			continue
		}
		if strings.Contains(string(data), "title:") {
			t.Errorf("%s.html contains front matter", slug)
		}
	}

	gamma, _ := os.ReadFile(filepath.Join(out, "gamma.html"))
	if !strings.Contains(string(gamma), `data-language="go"`) {
		t.Errorf("gamma.html = %s", gamma)
	}

	data, err := os.ReadFile(filepath.Join(out, indexFileName))
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	var index []postSummary
	if err := json.Unmarshal(data, &index); err != nil {
		t.Fatalf("invalid index JSON: %v", err)
	}
	if len(index) != 3 || index[0].Slug != "gamma" {
		t.Errorf("index = %+v", index)
	}
	if index[2].CoverImage != "/a.png" {
		t.Errorf("alpha cover = %q", index[2].CoverImage)
	}

	if !strings.Contains(env.stdout.String(), "3 succeeded, 0 failed") {
		t.Errorf("stdout = %q", env.stdout)
	}
}

func TestBuild_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"missing output", []string{"build", "."}},
		{"too many workers", []string{"build", ".", "-o", "out", "-w", "99"}},
		{"negative workers", []string{"build", ".", "-o", "out", "-w", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(nil)
			if code := runMain(context.Background(), tt.args, env.Environment); code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
		})
	}
}

func TestBuild_Canceled(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, blogFiles)
	out := filepath.Join(t.TempDir(), "site")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := newTestEnv(nil)
	code := runMain(ctx, []string{"build", dir, "-o", out, "-q"}, env.Environment)
	if code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if _, err := os.Stat(filepath.Join(out, indexFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("index written after cancel: %v", err)
	}
}

// fakeRenderer fails for one source and counts calls.
type fakeRenderer struct {
	failOn string
	calls  atomic.Int32
}

func (f *fakeRenderer) Article(source string) (*blogmd.Article, error) {
	f.calls.Add(1)
	if source == f.failOn {
		return nil, errors.New("boom")
	}
	return &blogmd.Article{HTML: "<p>" + source + "</p>"}, nil
}

func TestBuildBatch(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	posts := []*blogmd.Post{
		{Slug: "one", Content: "1"},
		{Slug: "two", Content: "bad"},
		{Slug: "../escape", Content: "3"},
		{Slug: "four", Content: "4"},
	}
	r := &fakeRenderer{failOn: "bad"}

	results := buildBatch(context.Background(), r, posts, out, 3)
	if len(results) != len(posts) {
		t.Fatalf("results = %d, want %d", len(results), len(posts))
	}
	for i, res := range results {
		if res.Slug != posts[i].Slug {
			t.Errorf("result %d slug = %q, want %q", i, res.Slug, posts[i].Slug)
		}
	}
	if results[0].Err != nil || results[3].Err != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Err, results[3].Err)
	}
	if results[1].Err == nil || results[2].Err == nil {
		t.Error("expected failures for bad source and escaping slug")
	}
	if got := r.calls.Load(); got != 3 {
		t.Errorf("renderer calls = %d, want 3", got)
	}

	data, err := os.ReadFile(filepath.Join(out, "four.html"))
	if err != nil || string(data) != "<p>4</p>" {
		t.Errorf("four.html = %q, %v", data, err)
	}
}

func TestBuildBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := buildBatch(context.Background(), &fakeRenderer{}, nil, t.TempDir(), 4); got != nil {
		t.Errorf("buildBatch(nil) = %v", got)
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(5); got != 5 {
		t.Errorf("resolveWorkers(5) = %d", got)
	}
	auto := resolveWorkers(0)
	if auto < 1 || auto > autoCap || auto > runtime.GOMAXPROCS(0) {
		t.Errorf("resolveWorkers(0) = %d", auto)
	}
}
