package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"eld-trip-service/internal/adapters/cache"
	"eld-trip-service/internal/adapters/repositories"
	"eld-trip-service/internal/adapters/routing"
	"eld-trip-service/internal/api"
	"eld-trip-service/internal/config"
	"eld-trip-service/internal/platform/db"
	"eld-trip-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Postgres cache, ORS) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/eld.db")
	port := config.Get("PORT", "8080")

	sqliteDB, err := openSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	if err := repositories.InitSchema(sqliteDB); err != nil {
		log.Fatal(err)
	}

	// A Postgres leg cache is shared across instances when DATABASE_URL
	// is set; otherwise the local SQLite database doubles as the cache.
	var legCache ports.RouteCache = cache.NewSqliteLegCache(sqliteDB)
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pgDB, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pgDB.Close()
		legCache = cache.NewSQLLegCache(pgDB)
	}

	// Without an API key the leg estimator falls back to great-circle
	// estimates, so the key is optional.
	var lookup ports.RouteLookup
	if orsKey := strings.TrimSpace(os.Getenv("ORS_API_KEY")); orsKey != "" {
		lookup, err = routing.NewORSRouteLookup(orsKey, legCache)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("ORS_API_KEY not set; leg estimates use the great-circle heuristic")
	}

	repo := repositories.NewSqliteTripRepository(sqliteDB)
	router := api.NewRouter(repo, lookup)

	// Timeouts are tuned for cold-cache trip planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
