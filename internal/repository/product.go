package repository

import (
	"context"
	"strconv"

	"farmon/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductFilter narrows the marketplace listing query. Zero values mean
// "no constraint".
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

const productSelect = `
	SELECT p.id, p.farmer_id, p.name, p.category, p.price_per_kg, p.quantity_available,
	       COALESCE(p.description, ''), COALESCE(p.image_url, ''), p.created_at,
	       u.username, COALESCE(u.phone, ''), COALESCE(u.location, '')
	FROM products p
	JOIN users u ON u.id = p.farmer_id`

// List returns listings newest first with farmer contact details joined in.
func (r *ProductRepository) List(filter ProductFilter) ([]entities.Product, error) {
	query := productSelect + ` WHERE 1=1`
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND p.category ILIKE $1`
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += ` AND p.price_per_kg >= $` + strconv.Itoa(len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += ` AND p.price_per_kg <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) GetByID(id int) (*entities.Product, error) {
	rows, err := r.db.Query(context.Background(), productSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil // Not found
	}
	return &products[0], nil
}

func (r *ProductRepository) Create(p *entities.Product) error {
	return r.db.QueryRow(context.Background(),
		`INSERT INTO products (farmer_id, name, category, price_per_kg, quantity_available, description, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		p.FarmerID, p.Name, p.Category, p.PricePerKg, p.QuantityAvailable, p.Description, p.ImageURL).
		Scan(&p.ID, &p.CreatedAt)
}

// ProductUpdate carries the updatable listing fields; nil pointers are left
// unchanged.
type ProductUpdate struct {
	Name              *string
	Category          *string
	PricePerKg        *float64
	QuantityAvailable *float64
	Description       *string
	ImageURL          *string
}

func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Category == nil && u.PricePerKg == nil &&
		u.QuantityAvailable == nil && u.Description == nil && u.ImageURL == nil
}

func (r *ProductRepository) Update(id int, upd ProductUpdate) (*entities.Product, error) {
	_, err := r.db.Exec(context.Background(),
		`UPDATE products SET
			name               = COALESCE($2, name),
			category           = COALESCE($3, category),
			price_per_kg       = COALESCE($4, price_per_kg),
			quantity_available = COALESCE($5, quantity_available),
			description        = COALESCE($6, description),
			image_url          = COALESCE($7, image_url)
		 WHERE id = $1`,
		id, upd.Name, upd.Category, upd.PricePerKg, upd.QuantityAvailable, upd.Description, upd.ImageURL)
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *ProductRepository) Delete(id int) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM products WHERE id = $1", id)
	return err
}

// CountAvailable counts in-stock listings whose name contains the query,
// capped at limit. Used by the chatbot availability lookup.
func (r *ProductRepository) CountAvailable(name string, limit int) (int, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id FROM products WHERE name ILIKE $1 AND quantity_available > 0 LIMIT $2`,
		"%"+name+"%", limit)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	return count, rows.Err()
}

func (r *ProductRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM products").Scan(&n)
	return n, err
}

func scanProducts(rows pgx.Rows) ([]entities.Product, error) {
	var products []entities.Product
	for rows.Next() {
		var p entities.Product
		err := rows.Scan(&p.ID, &p.FarmerID, &p.Name, &p.Category, &p.PricePerKg, &p.QuantityAvailable,
			&p.Description, &p.ImageURL, &p.CreatedAt,
			&p.FarmerName, &p.FarmerPhone, &p.FarmerLocation)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

