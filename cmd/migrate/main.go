package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/soapking/-bhoomitech-portal-service/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"
)

func main() {
	var (
		databaseURL string
		source      string
		up          bool
		down        bool
	)

	flag.StringVar(&databaseURL, "database", "", "Database connection URL, falls back to DB_* env vars when empty")
	flag.StringVar(&source, "source", "db/migrations", "Path to migrations directory")
	flag.BoolVar(&up, "up", false, "Run up migrations")
	flag.BoolVar(&down, "down", false, "Run down migrations")
	flag.Parse()

	if up == down {
		log.Fatal("exactly one of -up or -down is required")
	}

	if databaseURL == "" {
		var dbCfg config.DatabaseConfig
		if err := envconfig.Process("", &dbCfg); err != nil {
			log.Fatalf("no -database flag and failed to load DB_* env vars: %v", err)
		}
		databaseURL = fmt.Sprintf(
			"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
			dbCfg.User,
			dbCfg.Password,
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.Name,
			dbCfg.SSLMode,
		)
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("failed to create database driver: %v", err)
	}
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", source),
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatalf("failed to create migrate instance: %v", err)
	}

	direction := m.Up
	label := "UP"
	if down {
		direction = m.Down
		label = "DOWN"
	}

	log.Printf("running %s migrations...", label)
	if err := direction(); err != nil {
		if err == migrate.ErrNoChange {
			log.Println("nothing to apply")
			os.Exit(0)
		}
		log.Fatalf("failed to run %s migrations: %v", label, err)
	}
	log.Printf("%s migrations completed successfully", label)
}
