package infrastructure

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	// Auto-migrate schema
	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	// Users Table
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(80) UNIQUE NOT NULL,
			email VARCHAR(120) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,       -- 'farmer', 'buyer', 'admin'
			phone VARCHAR(20),
			location VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	// Products Table (marketplace listings)
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			farmer_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(50) NOT NULL,
			price_per_kg DECIMAL(12, 2) NOT NULL,
			quantity_available DECIMAL(12, 2) NOT NULL,
			description TEXT,
			image_url VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create products table: %w", err)
	}

	// Market Prices Table (observed prices per crop and market)
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS market_prices (
			id SERIAL PRIMARY KEY,
			crop_name VARCHAR(100) NOT NULL,
			market_location VARCHAR(100) NOT NULL,
			price DECIMAL(12, 2) NOT NULL,
			date_recorded TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create market_prices table: %w", err)
	}

	// Chat Messages Table (assistant history, append-only)
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_messages (
			id SERIAL PRIMARY KEY,
			user_id INT REFERENCES users(id) ON DELETE SET NULL,
			message_text TEXT NOT NULL,
			sender VARCHAR(10) NOT NULL,     -- 'user' or 'bot'
			timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create chat_messages table: %w", err)
	}

	return nil
}

// SeedDemoData inserts the sample marketplace dataset when the store is empty.
// Safe to call on every startup; it bails out as soon as it finds data.
func (p *PostgresClient) SeedDemoData(passwordHash string) error {
	ctx := context.Background()

	var count int
	if err := p.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demo marketplace data...")

	users := []struct {
		username, email, role, phone, location string
	}{
		{"jean_farmer", "jean@farmon.bi", "farmer", "+25761234567", "Bujumbura"},
		{"marie_agri", "marie@farmon.bi", "farmer", "+25761234568", "Gitega"},
		{"paul_buyer", "paul@farmon.bi", "buyer", "+25761234569", "Bujumbura"},
		{"admin", "admin@farmon.bi", "admin", "+25761234570", "Bujumbura"},
	}
	ids := make(map[string]int)
	for _, u := range users {
		var id int
		err := p.Pool.QueryRow(ctx, `
			INSERT INTO users (username, email, password_hash, role, phone, location)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			u.username, u.email, passwordHash, u.role, u.phone, u.location).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		ids[u.username] = id
	}

	products := []struct {
		farmer, name, category string
		price, quantity        float64
		description            string
	}{
		{"jean_farmer", "Haricots Rouges", "Légumes", 1800, 150, "Haricots rouges biologiques de haute qualité"},
		{"jean_farmer", "Maïs", "Céréales", 1200, 200, "Maïs frais récolté cette semaine"},
		{"marie_agri", "Tomates", "Légumes", 800, 80, "Tomates fraîches et juteuses"},
		{"marie_agri", "Bananes", "Fruits", 600, 120, "Bananes mûres et sucrées"},
		{"jean_farmer", "Riz", "Céréales", 1500, 300, "Riz de qualité supérieure"},
		{"marie_agri", "Manioc", "Tubercules", 400, 250, "Manioc frais du jour"},
	}
	for _, pr := range products {
		_, err := p.Pool.Exec(ctx, `
			INSERT INTO products (farmer_id, name, category, price_per_kg, quantity_available, description)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			ids[pr.farmer], pr.name, pr.category, pr.price, pr.quantity, pr.description)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", pr.name, err)
		}
	}

	now := time.Now().UTC()
	weekAgo := now.AddDate(0, 0, -7)
	prices := []struct {
		crop, market string
		price        float64
		recorded     time.Time
	}{
		{"Haricots", "Bujumbura Central", 1800, now},
		{"Maïs", "Bujumbura Central", 1200, now},
		{"Tomates", "Gitega", 750, now},
		{"Riz", "Bujumbura Central", 1500, now},
		{"Bananes", "Gitega", 600, now},
		{"Haricots", "Bujumbura Central", 1750, weekAgo},
		{"Maïs", "Bujumbura Central", 1150, weekAgo},
	}
	for _, mp := range prices {
		_, err := p.Pool.Exec(ctx, `
			INSERT INTO market_prices (crop_name, market_location, price, date_recorded)
			VALUES ($1, $2, $3, $4)`,
			mp.crop, mp.market, mp.price, mp.recorded)
		if err != nil {
			return fmt.Errorf("seed market price %s: %w", mp.crop, err)
		}
	}

	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}
