package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	blogmd "github.com/alnah/go-blogmd"
	"github.com/alnah/go-blogmd/internal/config"
	"github.com/alnah/go-blogmd/internal/hints"
	"github.com/alnah/go-blogmd/internal/logging"
	"github.com/alnah/go-blogmd/internal/ui"
	"github.com/alnah/go-blogmd/internal/yamlutil"
)

// defaultConfigName is looked up when --config is not given.
const defaultConfigName = "blogmd"

// stdinArg reads the source from standard input.
const stdinArg = "-"

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNoInput        = errors.New("no input specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrInvalidColor   = errors.New("invalid color mode")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrBuildFailed    = errors.New("some posts failed to build")
)

// runMain dispatches a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "meta":
		err = runMeta(rest, env)
	case "tree":
		err = runTree(rest, env)
	case "html":
		err = runHTML(rest, env)
	case "posts":
		err = runPosts(rest, env)
	case "build":
		err = runBuild(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "blogmd %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env.Stdout)
		return ExitSuccess
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for known failures.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName), config.AppDirName)
	case errors.Is(err, blogmd.ErrContentDir):
		return hints.ForContentDir(config.EnvContentDir)
	case errors.Is(err, blogmd.ErrUnknownStyle):
		return hints.ForStyleNotFound(blogmd.StyleNames())
	case errors.Is(err, blogmd.ErrFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// session is the per-command state built from config and flags.
type session struct {
	cfg    *config.Config
	logger *log.Logger
	styles *ui.Styles
	env    *Environment
	quiet  bool
}

// newSession loads config, applies environment overrides and builds the
// logger. An explicit --config must exist; the default name is optional.
func newSession(f *commonFlags, env *Environment) (*session, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(env.Getenv)

	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	if f.quiet {
		level = "error"
	}
	if f.verbose {
		level = "debug"
	}
	cfg.Log.Level = level
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewWithWriter(env.Stderr, level)
	logger.Debug("session ready", logging.FieldVersion, Version)
	return &session{
		cfg:    cfg,
		logger: logger,
		styles: ui.NewStyles(ui.IsColorEnabled(f.color, env.Stdout, env.Getenv)),
		env:    env,
		quiet:  f.quiet,
	}, nil
}

func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		return config.LoadConfig(nameOrPath)
	}
	cfg, err := config.LoadConfig(defaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// pipeline builds a Pipeline from config; extra options win.
func (s *session) pipeline(extra ...blogmd.Option) *blogmd.Pipeline {
	opts := []blogmd.Option{
		blogmd.WithLogger(s.logger),
		blogmd.WithExcerptLength(s.cfg.Excerpt.Length),
		blogmd.WithWordsPerMinute(s.cfg.Reading.WordsPerMinute),
		blogmd.WithSanitize(s.cfg.Render.SanitizeHTML),
		blogmd.WithHighlight(s.cfg.Render.Highlight),
		blogmd.WithHighlightStyle(s.cfg.Render.HighlightStyle),
		blogmd.WithPostDefaults(s.cfg.Content.DefaultAuthor, s.cfg.Content.DefaultCategory),
	}
	return blogmd.NewPipeline(append(opts, extra...)...)
}

// readSource reads a single article. Files starting with front matter
// have it removed so only the body is processed.
func (s *session) readSource(p *blogmd.Pipeline, args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoInput
	}
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected one file, got %d", ErrUsage, len(args))
	}

	var (
		data []byte
		err  error
		name = args[0]
	)
	if name == stdinArg {
		data, err = io.ReadAll(s.env.Stdin)
	} else {
		data, err = os.ReadFile(name) // #nosec G304 -- user-provided path
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if !hasFrontMatter(data) {
		return string(data), nil
	}
	post, err := p.ParsePost("input", data)
	if err != nil {
		// A leading thematic break is valid markdown.
		s.logger.Debug("no front matter, using raw input", logging.FieldPath, name, logging.FieldError, err)
		return string(data), nil
	}
	s.logger.Debug("front matter removed", logging.FieldPath, name)
	return post.Content, nil
}

// hasFrontMatter reports whether the first line of data is exactly "---".
func hasFrontMatter(data []byte) bool {
	first, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSuffix(first, "\r") == "---"
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, v any, format string) error {
	if format == formatYAML {
		data, err := yamlutil.Encode(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
