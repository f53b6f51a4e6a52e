package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"presensicheck/internal/adapters/cli"
	"presensicheck/internal/application"
	"presensicheck/internal/config"
	"presensicheck/internal/infrastructure/database"
	"presensicheck/internal/infrastructure/i18n"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("❌ %v", err)
		return 1
	}

	translator := i18n.NewTranslator(cfg.Locale)
	console := cli.NewConsole(os.Stdout, os.Stdin, translator, cfg.Locale)

	dialect, err := database.DialectFor(cfg.Driver)
	if err != nil {
		console.Error(err)
		return 1
	}

	ctx := context.Background()
	db, err := database.Open(ctx, dialect, cfg.DSN())
	if err != nil {
		console.Error(err)
		return 1
	}
	defer db.Close()

	service := application.NewTestDataService(
		database.NewEventRepository(db, dialect),
		database.NewParticipantRepository(db, dialect),
		cfg.TestReference,
		cfg.ExpectedParticipants,
	)
	app := cli.NewApp(service, console, cli.Options{
		Program:    filepath.Base(os.Args[0]),
		DBUser:     cfg.User,
		DBName:     cfg.Name,
		APIBaseURL: cfg.APIBaseURL,
	})

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		return 1
	}
	return 0
}
