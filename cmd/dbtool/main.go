package main

import (
	"log"
	"os"
	"strings"

	"eld-trip-service/internal/adapters/repositories"
	"eld-trip-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres schema for the shared leg cache.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pgDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pgDB.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(pgDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
