package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	blogmd "github.com/alnah/go-blogmd"
	"github.com/alnah/go-blogmd/internal/fileutil"
	"github.com/alnah/go-blogmd/internal/logging"
)

// Worker limits for build.
const (
	maxWorkers = 32
	autoCap    = 8
)

// indexFileName is written next to the rendered posts.
const indexFileName = "index.json"

// ArticleRenderer renders one post body.
type ArticleRenderer interface {
	Article(source string) (*blogmd.Article, error)
}

// Compile-time interface implementation check.
var _ ArticleRenderer = (*blogmd.Pipeline)(nil)

// BuildResult holds the outcome of rendering one post.
type BuildResult struct {
	Slug       string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// validateWorkers checks the --workers flag.
func validateWorkers(n int) error {
	if n < 0 || n > maxWorkers {
		return fmt.Errorf("%w: --workers must be between 0 and %d, got %d", ErrUsage, maxWorkers, n)
	}
	return nil
}

// resolveWorkers picks the worker count. Rendering is CPU-bound, so the
// automatic value follows GOMAXPROCS, which automaxprocs adjusts for
// container quotas.
func resolveWorkers(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	return min(max(runtime.GOMAXPROCS(0), 1), autoCap)
}

// runBuild renders every post of a directory to <output>/<slug>.html.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	dir, err := s.contentDir(rest)
	if err != nil {
		return err
	}

	var extra []blogmd.Option
	if f.sanitize {
		extra = append(extra, blogmd.WithSanitize(true))
	}
	p := s.pipeline(extra...)

	idx, err := p.LoadPosts(env.DirFS(dir), ".")
	if err != nil {
		return fmt.Errorf("%s: %w", dir, err)
	}
	posts := idx.All()

	workers := resolveWorkers(f.workers)
	s.logger.Debug("building", logging.FieldPosts, len(posts), logging.FieldWorkers, workers)

	start := env.Now()
	results := buildBatch(ctx, p, posts, f.output, workers)

	if f.index && ctx.Err() == nil {
		if err := writeIndex(f.output, posts); err != nil {
			return err
		}
	}

	failed := printBuildResults(s, results, f.common.verbose)
	s.logger.Debug("build finished",
		logging.FieldDuration, env.Now().Sub(start).Round(time.Millisecond),
		logging.FieldFailed, failed)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBuildFailed, failed, len(results))
	}
	return nil
}

// buildBatch renders posts concurrently. Results keep the input order.
func buildBatch(ctx context.Context, r ArticleRenderer, posts []*blogmd.Post, outDir string, workers int) []BuildResult {
	if len(posts) == 0 {
		return nil
	}
	workers = min(max(workers, 1), len(posts))

	results := make([]BuildResult, len(posts))
	jobs := make(chan int, len(posts))

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range jobs {
				if ctx.Err() != nil {
					results[i] = BuildResult{Slug: posts[i].Slug, Err: ctx.Err()}
					continue
				}
				results[i] = buildPost(r, posts[i], outDir)
			}
		})
	}

	for i := range posts {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPost renders and writes a single post.
func buildPost(r ArticleRenderer, post *blogmd.Post, outDir string) (result BuildResult) {
	start := time.Now()
	result.Slug = post.Slug
	defer func() { result.Duration = time.Since(start) }()

	out, err := fileutil.OutputPath(outDir, post.Slug, "html")
	if err != nil {
		result.Err = err
		return result
	}
	result.OutputPath = out

	article, err := r.Article(post.Content)
	if err != nil {
		result.Err = fmt.Errorf("rendering %s: %w", post.Slug, err)
		return result
	}
	if err := fileutil.WriteFileAtomic(out, []byte(article.HTML)); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		return result
	}
	return result
}

// writeIndex stores the post listing as JSON.
func writeIndex(outDir string, posts []*blogmd.Post) error {
	data, err := json.MarshalIndent(summarize(posts), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := fileutil.WriteFileAtomic(filepath.Join(outDir, indexFileName), append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printBuildResults reports each result and returns the failure count.
func printBuildResults(s *session, results []BuildResult, verbose bool) int {
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(s.env.Stderr, "%s %s: %v\n", s.styles.Failure.Render("FAILED"), r.Slug, r.Err)
			continue
		}
		if verbose {
			fmt.Fprintf(s.env.Stdout, "%s -> %s (%v)\n", r.Slug, r.OutputPath, r.Duration.Round(time.Millisecond))
		}
	}
	if !s.quiet {
		fmt.Fprintln(s.env.Stdout, s.styles.Summary(len(results)-failed, failed))
	}
	return failed
}
