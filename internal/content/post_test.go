package content

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const fullPost = `---
title: Shipping Rollups
date: 2024-03-05
excerpt: A short tour.
author: Ada
category: Engineering
readTime: 7 min read
coverImage: /img/cover.png
featured: true
---
# Shipping Rollups

Body text.
`

func TestParsePost_FrontMatter(t *testing.T) {
	t.Parallel()

	p, err := ParsePost("shipping-rollups", []byte(fullPost), DefaultOptions())
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}

	if p.Title != "Shipping Rollups" {
		t.Errorf("Title = %q", p.Title)
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !p.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", p.Date, want)
	}
	if p.DateText != "2024-03-05" {
		t.Errorf("DateText = %q", p.DateText)
	}
	if p.Excerpt != "A short tour." {
		t.Errorf("Excerpt = %q", p.Excerpt)
	}
	if p.Author != "Ada" || p.Category != "Engineering" {
		t.Errorf("Author/Category = %q/%q", p.Author, p.Category)
	}
	if p.ReadTime != "7 min read" {
		t.Errorf("ReadTime = %q", p.ReadTime)
	}
	if p.CoverImage != "/img/cover.png" {
		t.Errorf("CoverImage = %q", p.CoverImage)
	}
	if !p.Featured {
		t.Error("Featured = false, want true")
	}
	if strings.Contains(p.Content, "title:") {
		t.Errorf("Content still holds front matter: %q", p.Content)
	}
	if !strings.Contains(p.Content, "# Shipping Rollups") {
		t.Errorf("Content lost body: %q", p.Content)
	}
}

func TestParsePost_DerivedFields(t *testing.T) {
	t.Parallel()

	src := "---\ntitle: Bare\n---\nHello **world** ![pic](/a.png) more words here"
	p, err := ParsePost("bare", []byte(src), DefaultOptions())
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}

	if p.Author != DefaultAuthor {
		t.Errorf("Author = %q, want %q", p.Author, DefaultAuthor)
	}
	if p.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", p.Category, DefaultCategory)
	}
	if p.ReadTime != "1 min read" {
		t.Errorf("ReadTime = %q", p.ReadTime)
	}
	if p.CoverImage != "/a.png" {
		t.Errorf("CoverImage = %q", p.CoverImage)
	}
	if p.Excerpt != "Hello world more words here" {
		t.Errorf("Excerpt = %q", p.Excerpt)
	}
	if !p.Date.IsZero() {
		t.Errorf("Date = %v, want zero", p.Date)
	}
}

func TestParsePost_Options(t *testing.T) {
	t.Parallel()

	opts := Options{Author: "Staff", Category: "Notes", ExcerptLength: 5, WordsPerMinute: 1}
	p, err := ParsePost("x", []byte("one two three"), opts)
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if p.Author != "Staff" || p.Category != "Notes" {
		t.Errorf("Author/Category = %q/%q", p.Author, p.Category)
	}
	if p.Excerpt != "one t..." {
		t.Errorf("Excerpt = %q, want %q", p.Excerpt, "one t...")
	}
	if p.ReadTime != "3 min read" {
		t.Errorf("ReadTime = %q, want %q", p.ReadTime, "3 min read")
	}
}

func TestParsePost_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		slug    string
		source  string
		wantErr error
	}{
		{"empty slug", "", "body", ErrEmptySlug},
		{"blank slug", "   ", "body", ErrEmptySlug},
		{"broken yaml", "bad", "---\ntitle: [unclosed\n---\nbody", ErrFrontMatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePost(tt.slug, []byte(tt.source), DefaultOptions())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParsePost() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPost_DisplayDate(t *testing.T) {
	t.Parallel()

	dated := &Post{Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), DateText: "2024-01-09"}
	if got := dated.DisplayDate(); got != "January 9, 2024" {
		t.Errorf("DisplayDate() = %q", got)
	}

	raw := &Post{DateText: "someday"}
	if got := raw.DisplayDate(); got != "someday" {
		t.Errorf("DisplayDate() = %q, want raw text", got)
	}
}
