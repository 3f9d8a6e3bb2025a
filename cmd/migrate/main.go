package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"anirex/internal/config"
	"anirex/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, redo, status, version, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	logger := logging.New(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: "text"})

	dir := migrationsDir()
	if *command == "create" {
		if *name == "" {
			logger.Fatal().Msg("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logger.Fatal().Err(err).Msg("create migration")
		}
		logger.Info().Str("name", *name).Msg("migration created")
		return
	}

	dsn := databaseDSN()
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal().Err(err).Str("dsn", config.RedactDSN(dsn)).Msg("connect to database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal().Err(err).Msg("set dialect")
	}

	if err := run(db, *command, dir); err != nil {
		logger.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}
	logger.Info().Str("command", *command).Msg("migrations done")
}

func run(db *sql.DB, command, dir string) error {
	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "redo":
		return goose.Redo(db, dir)
	case "status":
		return goose.Status(db, dir)
	case "version":
		return goose.Version(db, dir)
	default:
		return fmt.Errorf("unknown command %q, use: up, down, redo, status, version, create", command)
	}
}
