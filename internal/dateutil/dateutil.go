// Package dateutil parses and formats post dates written in user-friendly
// token formats (YYYY, MMMM, DD, ...).
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date handling.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrUnrecognizedDate  = errors.New("unrecognized date")
)

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDisplayFormat renders dates the way post listings show them.
const DefaultDisplayFormat = "MMMM D, YYYY"

// dateTokens maps tokens to Go layout components, longest first.
var dateTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets names common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"long":     "MMMM D, YYYY",
	"short":    "MMM D, YYYY",
	"us":       "MM/DD/YYYY",
	"european": "DD/MM/YYYY",
}

// parseOrder lists the preset layouts tried by ParsePostDate. US comes
// before European, so "03/04/2025" reads as March 4.
var parseOrder = []string{"iso", "long", "short", "us", "european"}

// Layout converts a token format (or preset name) to a Go time layout.
// Text inside brackets is kept literally: "[Posted] MMM D" keeps "Posted".
func Layout(format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}

	return b.String(), nil
}

// ParsePostDate reads a front matter date. RFC 3339 timestamps and every
// preset are accepted.
func ParsePostDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnrecognizedDate)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, name := range parseOrder {
		layout, err := Layout(name)
		if err != nil {
			continue
		}
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
}

// Format renders t with a token format or preset name. An empty format
// uses DefaultDisplayFormat.
func Format(t time.Time, format string) (string, error) {
	if format == "" {
		format = DefaultDisplayFormat
	}
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
