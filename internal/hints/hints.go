// Package hints provides actionable hints appended to CLI error messages.
// Hints are formatted as "\n  hint: <text>".
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound suggests --config, or creating the user-level file
// when one of the searched paths is under the app config directory.
func ForConfigNotFound(searchedPaths []string, appDir string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if appDir != "" && strings.Contains(filepath.ToSlash(p), "/"+appDir+"/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForContentDir is shown when the posts directory cannot be read.
func ForContentDir(envVar string) string {
	h := []string{"pass the posts directory as an argument"}
	if envVar != "" {
		h = append(h, "or set "+envVar)
	}
	return format(strings.Join(h, " "))
}

// ForOutputDirectory is shown when output cannot be written.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForFrontMatter explains the expected post header.
func ForFrontMatter() string {
	return formatHints([]string{
		"front matter is YAML between two --- lines at the top of the file",
		"quote values containing ':' or '['",
	})
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
