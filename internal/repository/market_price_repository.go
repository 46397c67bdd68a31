package repository

import (
	"context"
	"strconv"

	"farmon/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MarketPriceRepository struct {
	db *pgxpool.Pool
}

func NewMarketPriceRepository(db *pgxpool.Pool) *MarketPriceRepository {
	return &MarketPriceRepository{db: db}
}

// Latest returns the most recently recorded price whose crop name contains
// the query, or nil when no record matches.
func (r *MarketPriceRepository) Latest(crop string) (*entities.MarketPrice, error) {
	var mp entities.MarketPrice
	err := r.db.QueryRow(context.Background(),
		`SELECT id, crop_name, market_location, price, date_recorded
		 FROM market_prices WHERE crop_name ILIKE $1
		 ORDER BY date_recorded DESC LIMIT 1`,
		"%"+crop+"%").
		Scan(&mp.ID, &mp.CropName, &mp.MarketLocation, &mp.Price, &mp.DateRecorded)

	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &mp, nil
}

// List returns price records newest first, optionally filtered by exact crop
// name, capped at limit.
func (r *MarketPriceRepository) List(crop string, limit int) ([]entities.MarketPrice, error) {
	query := `SELECT id, crop_name, market_location, price, date_recorded FROM market_prices`
	args := []interface{}{}
	if crop != "" {
		query += ` WHERE crop_name = $1`
		args = append(args, crop)
	}
	query += ` ORDER BY date_recorded DESC LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []entities.MarketPrice
	for rows.Next() {
		var mp entities.MarketPrice
		if err := rows.Scan(&mp.ID, &mp.CropName, &mp.MarketLocation, &mp.Price, &mp.DateRecorded); err != nil {
			return nil, err
		}
		prices = append(prices, mp)
	}
	return prices, rows.Err()
}

func (r *MarketPriceRepository) Create(mp *entities.MarketPrice) error {
	return r.db.QueryRow(context.Background(),
		`INSERT INTO market_prices (crop_name, market_location, price)
		 VALUES ($1, $2, $3) RETURNING id, date_recorded`,
		mp.CropName, mp.MarketLocation, mp.Price).
		Scan(&mp.ID, &mp.DateRecorded)
}

func (r *MarketPriceRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM market_prices").Scan(&n)
	return n, err
}
