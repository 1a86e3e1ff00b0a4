package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"launchloom.app/studio/common/logger"
	"launchloom.app/studio/core/config"
	"launchloom.app/studio/core/db"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [up|down|status|version|reset]\n")
		flag.PrintDefaults()
	}
	timeout := flag.Duration("timeout", 5*time.Minute, "abort the migration after this long")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	slog.InfoContext(ctx, "running migrations", "command", command)
	if err := db.Migrate(ctx, cfg.DB.DSN, command); err != nil {
		slog.ErrorContext(ctx, "migration failed", "command", command, "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "migrations complete", "command", command)
}
