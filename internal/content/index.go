package content

import (
	"cmp"
	"slices"
	"strings"
)

// Listing limits used when callers pass a non-positive value.
const (
	DefaultRecentLimit  = 3
	DefaultRelatedLimit = 3
)

// Category is a category name with the number of posts filed under it.
type Category struct {
	Name  string
	Count int
}

// Index is an immutable, sorted view over a set of posts.
type Index struct {
	posts  []*Post
	bySlug map[string]*Post
}

// NewIndex sorts posts newest first. Undated posts go last; ties are
// broken by slug. When two posts share a slug the first one wins.
func NewIndex(posts []*Post) *Index {
	idx := &Index{bySlug: make(map[string]*Post, len(posts))}
	for _, p := range posts {
		if p == nil {
			continue
		}
		if _, dup := idx.bySlug[p.Slug]; dup {
			continue
		}
		idx.bySlug[p.Slug] = p
		idx.posts = append(idx.posts, p)
	}
	slices.SortStableFunc(idx.posts, comparePosts)
	return idx
}

func comparePosts(a, b *Post) int {
	switch {
	case a.Date.IsZero() && !b.Date.IsZero():
		return 1
	case !a.Date.IsZero() && b.Date.IsZero():
		return -1
	}
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.Slug, b.Slug)
}

// Len returns the number of indexed posts.
func (i *Index) Len() int { return len(i.posts) }

// All returns every post in index order. The slice is a copy.
func (i *Index) All() []*Post { return slices.Clone(i.posts) }

// BySlug looks up a single post.
func (i *Index) BySlug(slug string) (*Post, bool) {
	p, ok := i.bySlug[slug]
	return p, ok
}

// ByCategory returns posts whose category matches name, ignoring case.
func (i *Index) ByCategory(name string) []*Post {
	var out []*Post
	for _, p := range i.posts {
		if strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

// Recent returns the newest posts.
func (i *Index) Recent(limit int) []*Post {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return slices.Clone(i.posts[:min(limit, len(i.posts))])
}

// Featured returns posts flagged as featured.
func (i *Index) Featured() []*Post {
	var out []*Post
	for _, p := range i.posts {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit posts other than slug, preferring ones in
// the same category and filling the rest from the newest posts.
func (i *Index) Related(slug, category string, limit int) []*Post {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := make([]*Post, 0, limit)
	seen := map[string]bool{slug: true}

	take := func(match func(*Post) bool) {
		for _, p := range i.posts {
			if len(out) == limit {
				return
			}
			if seen[p.Slug] || !match(p) {
				continue
			}
			seen[p.Slug] = true
			out = append(out, p)
		}
	}
	take(func(p *Post) bool { return strings.EqualFold(p.Category, category) })
	take(func(*Post) bool { return true })
	return out
}

// Categories lists categories by post count, then name.
func (i *Index) Categories() []Category {
	counts := make(map[string]int)
	names := make(map[string]string)
	for _, p := range i.posts {
		key := strings.ToLower(p.Category)
		if _, ok := names[key]; !ok {
			names[key] = p.Category
		}
		counts[key]++
	}
	out := make([]Category, 0, len(counts))
	for key, n := range counts {
		out = append(out, Category{Name: names[key], Count: n})
	}
	slices.SortFunc(out, func(a, b Category) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
