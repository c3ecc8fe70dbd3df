package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-blogmd/internal/ui"
)

// Output formats for structured commands.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	quiet    bool
	verbose  bool
	logLevel string
	color    string
}

// metaFlags holds flags for the meta command.
type metaFlags struct {
	common commonFlags
	length int
	wpm    int
	format string
}

// treeFlags holds flags for the tree command.
type treeFlags struct {
	common  commonFlags
	outline bool
	depth   int
	format  string
}

// htmlFlags holds flags for the html command.
type htmlFlags struct {
	common      commonFlags
	sanitize    bool
	noHighlight bool
	style       string
	css         bool
}

// postsFlags holds flags for the posts command.
type postsFlags struct {
	common   commonFlags
	category string
	featured bool
	limit    int
	related  string
	json     bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common   commonFlags
	output   string
	workers  int
	sanitize bool
	index    bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.color, "color", ui.ColorAuto, "color output: auto, always, never")
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false
	return fs
}

// parse runs fs and wraps flag errors so they map to the usage exit code.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

func validateFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("%w: %q (must be json or yaml)", ErrInvalidFormat, format)
}

func validateCommon(f *commonFlags) error {
	if !ui.ValidColorMode(f.color) {
		return fmt.Errorf("%w: %q (must be auto, always, or never)", ErrInvalidColor, f.color)
	}
	return nil
}

func parseMetaFlags(args []string, out io.Writer) (*metaFlags, []string, error) {
	fs := newFlagSet("meta", out)
	f := &metaFlags{}
	fs.IntVarP(&f.length, "length", "l", 0, "excerpt length (0 = config)")
	fs.IntVar(&f.wpm, "wpm", 0, "reading speed in words per minute (0 = config)")
	fs.StringVarP(&f.format, "format", "f", formatJSON, "output format: json, yaml")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printMetaUsage(out) }

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if err := validateFormat(f.format); err != nil {
		return nil, nil, err
	}
	if f.length < 0 || f.wpm < 0 {
		return nil, nil, fmt.Errorf("%w: --length and --wpm must not be negative", ErrUsage)
	}
	return f, rest, validateCommon(&f.common)
}

func parseTreeFlags(args []string, out io.Writer) (*treeFlags, []string, error) {
	fs := newFlagSet("tree", out)
	f := &treeFlags{}
	fs.BoolVar(&f.outline, "outline", false, "print the heading outline instead of the tree")
	fs.IntVar(&f.depth, "depth", 3, "maximum outline heading level (1-6)")
	fs.StringVarP(&f.format, "format", "f", formatJSON, "output format: json, yaml")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printTreeUsage(out) }

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if err := validateFormat(f.format); err != nil {
		return nil, nil, err
	}
	if f.depth < 1 || f.depth > 6 {
		return nil, nil, fmt.Errorf("%w: --depth must be between 1 and 6, got %d", ErrUsage, f.depth)
	}
	return f, rest, validateCommon(&f.common)
}

func parseHTMLFlags(args []string, out io.Writer) (*htmlFlags, []string, error) {
	fs := newFlagSet("html", out)
	f := &htmlFlags{}
	fs.BoolVar(&f.sanitize, "sanitize", false, "filter raw HTML through a UGC policy")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.StringVarP(&f.style, "style", "s", "", "highlight style for --css (default from config)")
	fs.BoolVar(&f.css, "css", false, "prepend the highlight stylesheet")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printHTMLUsage(out) }

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	return f, rest, validateCommon(&f.common)
}

func parsePostsFlags(args []string, out io.Writer) (*postsFlags, []string, error) {
	fs := newFlagSet("posts", out)
	f := &postsFlags{}
	fs.StringVar(&f.category, "category", "", "only posts in this category")
	fs.BoolVar(&f.featured, "featured", false, "only featured posts")
	fs.IntVarP(&f.limit, "limit", "n", 0, "maximum number of posts (0 = all)")
	fs.StringVar(&f.related, "related", "", "posts related to this slug")
	fs.BoolVar(&f.json, "json", false, "print JSON instead of a table")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printPostsUsage(out) }

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if f.limit < 0 {
		return nil, nil, fmt.Errorf("%w: --limit must not be negative", ErrUsage)
	}
	return f, rest, validateCommon(&f.common)
}

func parseBuildFlags(args []string, out io.Writer) (*buildFlags, []string, error) {
	fs := newFlagSet("build", out)
	f := &buildFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "output directory (required)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.sanitize, "sanitize", false, "filter raw HTML through a UGC policy")
	fs.BoolVar(&f.index, "index", true, "write index.json with post listing data")
	addCommonFlags(fs, &f.common)
	fs.Usage = func() { printBuildUsage(out) }

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if f.output == "" {
		return nil, nil, fmt.Errorf("%w: --output is required", ErrUsage)
	}
	if err := validateWorkers(f.workers); err != nil {
		return nil, nil, err
	}
	return f, rest, validateCommon(&f.common)
}
