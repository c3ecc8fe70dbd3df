package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	noEnv := func(string) string { return "" }
	noColor := func(k string) string {
		if k == "NO_COLOR" {
			return "1"
		}
		return ""
	}

	tests := []struct {
		name   string
		mode   string
		getenv func(string) string
		want   bool
	}{
		{"always", ColorAlways, noColor, true},
		{"never", ColorNever, noEnv, false},
		{"auto with buffer", ColorAuto, noEnv, false},
		{"auto with NO_COLOR", ColorAuto, noColor, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsColorEnabled(tt.mode, &bytes.Buffer{}, tt.getenv); got != tt.want {
				t.Errorf("IsColorEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidColorMode(t *testing.T) {
	t.Parallel()

	for _, m := range []string{"auto", "always", "never"} {
		if !ValidColorMode(m) {
			t.Errorf("ValidColorMode(%q) = false", m)
		}
	}
	if ValidColorMode("sometimes") {
		t.Error("ValidColorMode(sometimes) = true")
	}
}

func TestTable_RenderPlain(t *testing.T) {
	t.Parallel()

	tbl := NewTable(NewStyles(false), "SLUG", "TITLE")
	tbl.Add(Plain("a"), Plain("First"))
	tbl.Add(Plain("longer-slug"), Plain("Second"))
	tbl.Add(Plain("short"))

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"SLUG         TITLE",
		"a            First",
		"longer-slug  Second",
		"short",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("Render() =\n%q\nwant\n%q", buf.String(), want)
	}
	if tbl.Len() != 3 {
		t.Errorf("Len() = %d", tbl.Len())
	}
}

func TestSummary_Plain(t *testing.T) {
	t.Parallel()

	if got := NewStyles(false).Summary(3, 1); got != "3 succeeded, 1 failed" {
		t.Errorf("Summary() = %q", got)
	}
}
