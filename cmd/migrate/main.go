package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/JaimeStill/ots-portal/internal/config"
	internaldb "github.com/JaimeStill/ots-portal/internal/database"
	"github.com/JaimeStill/ots-portal/pkg/database"
	"github.com/JaimeStill/ots-portal/pkg/logging"
)

func main() {
	var (
		up      = flag.Bool("up", false, "Apply all pending migrations")
		down    = flag.Bool("down", false, "Revert all applied migrations")
		steps   = flag.Int("steps", 0, "Apply n migrations, or revert n when negative")
		version = flag.Bool("version", false, "Print the applied migration version")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	logger := logging.New(&cfg.Logging).With("system", "migrate")

	db, err := database.New(&cfg.Database, nil, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	conn := db.Connection()
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	m, err := database.NewMigrator(context.Background(), conn, cfg.Database.Name, internaldb.Migrations(), logger)
	if err != nil {
		log.Fatalf("migrator init failed: %v", err)
	}
	defer m.Close()

	switch {
	case *up:
		err = m.Up()
	case *down:
		err = m.Down()
	case *steps != 0:
		err = m.Steps(*steps)
	case *version:
		v, dirty, verr := m.Version()
		if verr != nil {
			log.Fatalf("version lookup failed: %v", verr)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
		return
	default:
		fmt.Println("usage: migrate [-up|-down|-steps n|-version]")
		flag.PrintDefaults()
		return
	}

	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
