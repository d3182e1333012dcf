package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// STAFF
	// -------------------------------
	staffTableSQL := `
		CREATE TABLE IF NOT EXISTS staff (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CASHIER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, staffTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			name VARCHAR(255) PRIMARY KEY,
			display_name VARCHAR(255) NOT NULL,
			price INTEGER NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0
		)
	`
	if _, err := pool.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU KEYWORDS (spoken aliases, ordered)
	// -------------------------------
	menuKeywordsSQL := `
		CREATE TABLE IF NOT EXISTS menu_keywords (
			item_name VARCHAR(255) NOT NULL REFERENCES menu_items(name) ON DELETE CASCADE,
			keyword VARCHAR(255) NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (item_name, keyword)
		)
	`
	if _, err := pool.Exec(ctx, menuKeywordsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
