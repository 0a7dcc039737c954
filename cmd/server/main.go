package main

import (
	"database/sql"
	"bed-scheduler-service/internal/adapters/cache"
	"bed-scheduler-service/internal/adapters/guestfile"
	"bed-scheduler-service/internal/adapters/repositories"
	"bed-scheduler-service/internal/api"
	"bed-scheduler-service/internal/config"
	"bed-scheduler-service/internal/platform/db"
	"bed-scheduler-service/internal/ports"
	"bed-scheduler-service/internal/services"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL storage, Redis or SQL cache) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := config.Get("DB_DRIVER", db.DriverSQLite)
	dsn := config.Get("DB_PATH", "data/app.db")
	if driver == db.DriverPostgres {
		dsn = config.Get("DATABASE_URL", "")
		if dsn == "" {
			log.Fatal("DATABASE_URL is required when DB_DRIVER=pgx")
		}
	}
	seedPath := config.Get("SEED_PATH", "data/seeds/guests.json")
	port := config.Get("PORT", "8080")
	strategy := config.Get("SCHEDULE_STRATEGY", services.StrategyEarliestFinish)
	cacheTTL := config.Duration("SCHEDULE_CACHE_TTL", 10*time.Minute)

	if _, err := services.PlannerByName(strategy); err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	dialect := repositories.DialectFor(driver)

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(conn, dialect, seedPath); err != nil {
		log.Fatal(err)
	}

	var repo ports.GuestRepository = repositories.NewSqliteGuestRepository(conn)
	if dialect == repositories.Postgres {
		repo = repositories.NewSQLGuestRepository(conn)
	}

	var scheduleCache ports.ScheduleCache = cache.NewSQLScheduleCache(conn, dialect, cacheTTL)
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		scheduleCache = cache.NewRedisScheduleCache(client, cacheTTL)
		log.Printf("Schedule cache backend=redis addr=%s ttl=%s", addr, cacheTTL)
	}

	router := api.NewRouter(repo, services.NewCachedPlanner(scheduleCache), api.RouterConfig{
		DefaultStrategy: strategy,
		DefaultBedCount: config.Int("DEFAULT_BED_COUNT", 1),
		MaxGraphGuests:  config.Int("GRAPH_MAX_GUESTS", 24),
	})

	// The graph strategy can take a while on larger inputs.
	log.Printf("Server listening addr=:%s strategy=%s", port, strategy)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	f, err := guestfile.Load(seedPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No seed file found path=%s", seedPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedGuests(conn, dialect, f.Guests); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Printf("Seeded guests count=%d path=%s", len(f.Guests), seedPath)

	return nil
}
