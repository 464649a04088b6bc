package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/soocke/docscan-go/app"
	"github.com/soocke/docscan-go/config"
)

func main() {
	cfg := config.DefaultConfig()
	if path, err := config.DefaultPath(); err == nil {
		if loaded, err := config.Load(path); err == nil {
			cfg = loaded
		}
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	container := app.BuildContainer(cfg, logger)
	app.NewApp(container).Run(ctx)
}
