package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	blogmd "github.com/alnah/go-blogmd"
	"github.com/alnah/go-blogmd/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"build failed", ErrBuildFailed, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"not exist", fmt.Errorf("open: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read input", fmt.Errorf("%w: x", ErrReadInput), ExitIO},
		{"write output", fmt.Errorf("%w: x", ErrWriteOutput), ExitIO},
		{"content dir", fmt.Errorf("dir: %w", blogmd.ErrContentDir), ExitIO},
		{"usage", fmt.Errorf("%w: bad flag", ErrUsage), ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"format", ErrInvalidFormat, ExitUsage},
		{"color", ErrInvalidColor, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config range", config.ErrFieldRange, ExitUsage},
		{"config length", config.ErrFieldTooLong, ExitUsage},
		{"style", blogmd.ErrUnknownStyle, ExitUsage},
		{"front matter", blogmd.ErrFrontMatter, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	if got := hintFor(errors.New("plain")); got != "" {
		t.Errorf("hintFor(plain) = %q", got)
	}
	if got := hintFor(fmt.Errorf("%w: x", ErrWriteOutput)); got == "" {
		t.Error("hintFor(write) is empty")
	}
	if got := hintFor(config.ErrConfigNotFound); got == "" {
		t.Error("hintFor(config) is empty")
	}
}
