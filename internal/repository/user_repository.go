package repository

import (
	"context"

	"farmon/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.User) error {
	return r.db.QueryRow(context.Background(),
		`INSERT INTO users (username, email, password_hash, role, phone, location)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		user.Username, user.Email, user.PasswordHash, user.Role, user.Phone, user.Location).
		Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepository) GetByUsername(username string) (*entities.User, error) {
	return r.getOne("SELECT id, username, email, password_hash, role, COALESCE(phone, ''), COALESCE(location, ''), created_at FROM users WHERE username = $1", username)
}

func (r *UserRepository) GetByEmail(email string) (*entities.User, error) {
	return r.getOne("SELECT id, username, email, password_hash, role, COALESCE(phone, ''), COALESCE(location, ''), created_at FROM users WHERE email = $1", email)
}

func (r *UserRepository) GetByID(id int) (*entities.User, error) {
	return r.getOne("SELECT id, username, email, password_hash, role, COALESCE(phone, ''), COALESCE(location, ''), created_at FROM users WHERE id = $1", id)
}

func (r *UserRepository) getOne(query string, arg interface{}) (*entities.User, error) {
	var user entities.User
	err := r.db.QueryRow(context.Background(), query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Phone, &user.Location, &user.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the mutable profile fields. Empty strings leave the
// stored value untouched.
func (r *UserRepository) UpdateProfile(id int, username, phone, location string) (*entities.User, error) {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET
			username = COALESCE(NULLIF($2, ''), username),
			phone    = COALESCE(NULLIF($3, ''), phone),
			location = COALESCE(NULLIF($4, ''), location)
		 WHERE id = $1`,
		id, username, phone, location)
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *UserRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(), "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}
