// Package config loads the YAML configuration of the blog pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-blogmd/internal/fileutil"
	"github.com/alnah/go-blogmd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRange      = errors.New("field out of range")
)

// Environment variables that override file values.
const (
	EnvLogLevel   = "BLOGMD_LOG_LEVEL"
	EnvContentDir = "BLOGMD_CONTENT_DIR"
)

// AppDirName is the directory under the user config dir searched by name.
const AppDirName = "go-blogmd"

// Field limits.
const (
	MaxExcerptLength  = 1000
	MinWordsPerMinute = 50
	MaxWordsPerMinute = 1000
	MaxNameLength     = 100
	MaxCategoryLength = 50
	MaxPathLength     = 4096
	MaxStyleLength    = 50
)

// Defaults.
const (
	DefaultExcerptLength  = 160
	DefaultWordsPerMinute = 200
	DefaultHighlightStyle = "monokai"
	DefaultContentDir     = "content/blog"
	DefaultAuthor         = "Bloxin Team"
	DefaultCategory       = "Uncategorized"
	DefaultLogLevel       = "info"
)

// Config holds every tunable of the pipeline and CLI.
type Config struct {
	Excerpt ExcerptConfig
	Reading ReadingConfig
	Render  RenderConfig
	Content ContentConfig
	Log     LogConfig
}

// ExcerptConfig controls excerpt generation.
type ExcerptConfig struct {
	Length int
}

// ReadingConfig controls the reading time estimate.
type ReadingConfig struct {
	WordsPerMinute int
}

// RenderConfig controls HTML output.
type RenderConfig struct {
	SanitizeHTML   bool
	Highlight      bool
	HighlightStyle string
}

// ContentConfig locates posts and fills in their missing fields.
type ContentConfig struct {
	Dir             string
	DefaultAuthor   string
	DefaultCategory string
}

// LogConfig sets the logger threshold.
type LogConfig struct {
	Level string
}

// file mirrors the YAML layout. Pointers tell an absent key from a zero value.
type file struct {
	Excerpt struct {
		Length *int `yaml:"length"`
	} `yaml:"excerpt"`
	Reading struct {
		WordsPerMinute *int `yaml:"wordsPerMinute"`
	} `yaml:"reading"`
	Render struct {
		SanitizeHTML   *bool   `yaml:"sanitizeHTML"`
		Highlight      *bool   `yaml:"highlight"`
		HighlightStyle *string `yaml:"highlightStyle"`
	} `yaml:"render"`
	Content struct {
		Dir             *string `yaml:"dir"`
		DefaultAuthor   *string `yaml:"defaultAuthor"`
		DefaultCategory *string `yaml:"defaultCategory"`
	} `yaml:"content"`
	Log struct {
		Level *string `yaml:"level"`
	} `yaml:"log"`
}

func (f *file) applyTo(c *Config) {
	setIf(&c.Excerpt.Length, f.Excerpt.Length)
	setIf(&c.Reading.WordsPerMinute, f.Reading.WordsPerMinute)
	setIf(&c.Render.SanitizeHTML, f.Render.SanitizeHTML)
	setIf(&c.Render.Highlight, f.Render.Highlight)
	setIf(&c.Render.HighlightStyle, f.Render.HighlightStyle)
	setIf(&c.Content.Dir, f.Content.Dir)
	setIf(&c.Content.DefaultAuthor, f.Content.DefaultAuthor)
	setIf(&c.Content.DefaultCategory, f.Content.DefaultCategory)
	setIf(&c.Log.Level, f.Log.Level)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Excerpt: ExcerptConfig{Length: DefaultExcerptLength},
		Reading: ReadingConfig{WordsPerMinute: DefaultWordsPerMinute},
		Render: RenderConfig{
			Highlight:      true,
			HighlightStyle: DefaultHighlightStyle,
		},
		Content: ContentConfig{
			Dir:             DefaultContentDir,
			DefaultAuthor:   DefaultAuthor,
			DefaultCategory: DefaultCategory,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks ranges and lengths. LoadConfig calls it; callers that
// build a Config by hand should too.
func (c *Config) Validate() error {
	if c.Excerpt.Length < 1 || c.Excerpt.Length > MaxExcerptLength {
		return fmt.Errorf("%w: excerpt.length must be between 1 and %d, got %d",
			ErrFieldRange, MaxExcerptLength, c.Excerpt.Length)
	}
	if c.Reading.WordsPerMinute < MinWordsPerMinute || c.Reading.WordsPerMinute > MaxWordsPerMinute {
		return fmt.Errorf("%w: reading.wordsPerMinute must be between %d and %d, got %d",
			ErrFieldRange, MinWordsPerMinute, MaxWordsPerMinute, c.Reading.WordsPerMinute)
	}
	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.dir", c.Content.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.defaultAuthor", c.Content.DefaultAuthor, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.defaultCategory", c.Content.DefaultCategory, MaxCategoryLength); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: invalid value %q (must be debug, info, warn, or error)", c.Log.Level)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvContentDir)); v != "" {
		c.Content.Dir = v
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	var f file
	if err := yamlutil.DecodeStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	f.applyTo(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads a config by file path or by name. A name is looked up
// as <name>.yaml or <name>.yml in the working directory, then in the
// user config directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// SearchPaths lists the files LoadConfig tries for a name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
