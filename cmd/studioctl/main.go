// Package main provides studioctl, an operator CLI for the photo studio
// backend: identity selection, fixture seeding and schedule inspection.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"photostudio-backend/internal/config"
	"photostudio-backend/internal/database"
	"photostudio-backend/internal/logger"
	"photostudio-backend/internal/session"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel)

	sess := session.New(cfg.SessionFile)
	if err := sess.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli := &app{
		cfg:     cfg,
		session: sess,
		out:     os.Stdout,
		openDB: func(cfg *config.Config) (*gorm.DB, error) {
			return database.Initialize(cfg.DatabaseDriver, cfg.DSN(), nil)
		},
	}
	if err := cli.run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
