package main

import (
	"context"
	"database/sql"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/ots-portal/internal/config"
)

// EnvDatabaseDSN supplies a connection string that bypasses config.toml.
const EnvDatabaseDSN = "DATABASE_DSN"

//go:embed seeds/*.json
var seedFiles embed.FS

func main() {
	var (
		dsn   = flag.String("dsn", "", "Database connection string (default: from config.toml)")
		all   = flag.Bool("all", false, "Run all seeders")
		users = flag.Bool("users", false, "Seed users")
		file  = flag.String("file", "", "External seed file (overrides embedded)")
		list  = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*users {
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-users] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		*dsn = cfg.Database.Dsn()
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	switch {
	case *all:
		if err := runSeeders(ctx, db, listSeeders()...); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *users:
		seeder, _ := getSeeder("users")
		if *file != "" {
			seeder.(*UserSeeder).SetFile(*file)
		}
		if err := runSeeders(ctx, db, seeder); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("users seeded successfully")
	}
}
