package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/assembly-seeder/internal/app"
	"github.com/you-humble/assembly-seeder/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()

	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context) int {
	a, err := app.New(ctx)
	if err != nil {
		// The logger may not be configured yet.
		log.Printf("❌ failed to start seeder: %v\n", err)
		return app.ExitCode(err)
	}

	if _, err := a.Run(ctx); err != nil {
		return app.ExitCode(err)
	}

	return app.ExitOK
}
