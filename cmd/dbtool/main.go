package main

import (
	"database/sql"
	"bed-scheduler-service/internal/adapters/guestfile"
	"bed-scheduler-service/internal/adapters/repositories"
	"bed-scheduler-service/internal/config"
	"bed-scheduler-service/internal/platform/db"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := config.Get("DB_DRIVER", db.DriverPostgres)
	dsn := config.Get("DATABASE_URL", "")
	if driver == db.DriverSQLite {
		dsn = config.Get("DB_PATH", "data/app.db")
	}
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/guests.json")
	initAndSeed(conn, repositories.DialectFor(driver), seedPath)
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	f, err := guestfile.Load(seedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if err := repositories.SeedGuests(conn, dialect, f.Guests); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. guests=%d", len(f.Guests))
}
