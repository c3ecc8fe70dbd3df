package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-blogmd/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env,
	// in which case the runtime default stays in place.
	_, _ = maxprocs.Set(maxprocs.Logger(logging.Default().Debugf))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}
