package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/alamane/outreach/pkg/config"
	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/outreach"
)

func main() {
	// 1. Initialize Logger
	logx.SetDefaultLogger(logx.NewLogger(logx.LoadFromEnv()))

	logx.Info("🚀 Starting Al-Amane outreach client...")

	// 2. Load configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Initialize Dependency Container
	container, err := NewContainer(ctx, cfg, os.Stdout)
	if err != nil {
		logx.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Cleanup()
	container.StartBackgroundServices(ctx)

	content, err := outreach.LoadContent()
	if err != nil {
		logx.Fatalf("Failed to load site content: %v", err)
	}

	// 4. Run the interactive client
	client := NewClient(container.Site, content, newSurveyDriver(), container.Terminal)
	if err := client.Run(ctx); err != nil && !errors.Is(err, ErrAborted) && !errors.Is(err, context.Canceled) {
		logx.Errorf("Client stopped: %v", err)
	}

	logx.Info("👋 Goodbye")
}
