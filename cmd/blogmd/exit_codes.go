package main

import (
	"errors"
	"os"

	blogmd "github.com/alnah/go-blogmd"
	"github.com/alnah/go-blogmd/internal/config"
)

// Exit codes for the blogmd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error, failed build items
	ExitUsage   = 2 // Invalid flags, config, or arguments
	ExitIO      = 3 // File not found, permission denied, unwritable output
)

// exitCodeFor returns the exit code for an error.
// It uses errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, blogmd.ErrContentDir) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidColor) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRange) ||
		errors.Is(err, blogmd.ErrUnknownStyle) ||
		errors.Is(err, blogmd.ErrFrontMatter) {
		return ExitUsage
	}

	return ExitGeneral
}
