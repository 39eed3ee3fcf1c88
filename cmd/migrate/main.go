// Command migrate applies the embedded schema migrations and loads demo data.
//
//	migrate up | down | status | seed
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okellojun/HackLab/internal/common/security"
	"github.com/okellojun/HackLab/internal/platform/config"
	"github.com/okellojun/HackLab/internal/platform/database"
	"github.com/okellojun/HackLab/internal/platform/logger"
	"go.uber.org/zap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s up|down|status|seed\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run(command string) error {
	switch command {
	case "up", "down", "status", "seed":
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.DSN(), 1, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if command == "seed" {
		hasher := security.NewPasswordHasher(cfg.BcryptCost)
		return database.Seed(ctx, db, hasher.HashPassword, time.Now().UTC(), log)
	}

	if err := database.Migrate(ctx, db, command); err != nil {
		return err
	}
	log.Info("migration command finished", zap.String("command", command))
	return nil
}
