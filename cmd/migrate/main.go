package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"yadig/migrations"
	"yadig/pkg/config"
	"yadig/pkg/database"
	"yadig/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

var errNameRequired = errors.New("name is required for create command")

func main() {
	var (
		dir     = flag.String("dir", "", "read migrations from this directory instead of the embedded set")
		command = flag.String("command", "up", "migration command (up, down, status, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewWithEnv(cfg.Env)

	if err := validateCommand(*command, *name); err != nil {
		log.Error("%v", err)
		os.Exit(2)
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := run(db, *command, *name, *dir); err != nil {
		log.Error("Migration %s failed: %v", *command, err)
		db.Close()
		os.Exit(1)
	}
	log.Info("Migration %s completed", *command)
}

func validateCommand(command, name string) error {
	switch command {
	case "up", "down", "status":
		return nil
	case "create":
		if name == "" {
			return errNameRequired
		}
		return nil
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// run reads the embedded migrations unless dir is set. create always writes
// to disk, defaulting to ./migrations.
func run(db *sql.DB, command, name, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if command == "create" {
		if dir == "" {
			dir = "migrations"
		}
		goose.SetBaseFS(nil)
		return goose.Create(db, dir, name, "sql")
	}

	if dir == "" {
		goose.SetBaseFS(migrations.FS)
		dir = "."
	} else {
		goose.SetBaseFS(nil)
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
