package content

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/goliatone/go-slug"

	"github.com/alnah/go-blogmd/internal/logging"
)

// postExtensions are the file suffixes treated as posts.
var postExtensions = []string{".md", ".mdx"}

// IsPostFile reports whether name looks like a post source file.
func IsPostFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range postExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// SlugFromName derives a URL slug from a post file name. Names that
// cannot be normalized keep their base name without extension.
func SlugFromName(name string) string {
	base := path.Base(name)
	base = strings.TrimSuffix(base, path.Ext(base))
	if s, err := slug.Normalize(base); err == nil && s != "" {
		return s
	}
	return base
}

// Load reads every post file directly under dir in fsys. Files that fail
// to read or parse are logged and skipped; only a missing or unreadable
// directory is an error.
func Load(fsys fs.FS, dir string, opts Options, logger *log.Logger) (*Index, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrContentDir, dir, err)
	}

	var posts []*Post
	for _, e := range entries {
		if e.IsDir() || !IsPostFile(e.Name()) {
			continue
		}
		p := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			logger.Warn("skipping unreadable post", logging.FieldPath, p, logging.FieldError, err)
			continue
		}
		post, err := ParsePost(SlugFromName(e.Name()), data, opts)
		if err != nil {
			logger.Warn("skipping invalid post", logging.FieldPath, p, logging.FieldError, err)
			continue
		}
		posts = append(posts, post)
	}

	idx := NewIndex(posts)
	logger.Debug("loaded posts", logging.FieldPath, dir, logging.FieldPosts, idx.Len())
	return idx, nil
}
