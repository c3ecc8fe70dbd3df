// Package fileutil provides file and path helpers for the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for created output.
const (
	DirPermissions  = 0o750
	FilePermissions = 0o644
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrInvalidSlug            = errors.New("slug is not a valid file name")
)

// ValidateExtension checks that the extension is safe to append to a name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// OutputPath joins dir, slug and extension, refusing slugs that would
// escape dir.
func OutputPath(dir, slug, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, "/\\\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return filepath.Join(dir, slug+"."+strings.TrimPrefix(extension, ".")), nil
}

// WriteFileAtomic writes content to a temp file next to path and renames
// it into place, so readers never see a partial file.
func WriteFileAtomic(path string, content []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".blogmd-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, FilePermissions); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name:
//   - "blog" -> false
//   - "./blog.yaml" -> true
//   - "/etc/blogmd.yaml" -> true
//   - "C:\blog.yaml" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
