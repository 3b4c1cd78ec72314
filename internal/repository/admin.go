package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminUser is a panel operator account. End users never log in here; they
// only exist on WhatsApp.
type AdminUser struct {
	ID        string
	Email     string
	Password  string // bcrypt hash
	Role      string
	CreatedAt time.Time
}

// AdminRepository handles database operations for panel operator accounts.
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin account.
func (r *AdminRepository) Create(ctx context.Context, a *AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, a.ID, a.Email, a.Password, a.Role, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// FindByEmail returns an admin account by email address.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*AdminUser, error) {
	query := `
		SELECT id, email, password, role, created_at
		FROM admin_users WHERE email = $1
	`
	row := r.db.QueryRow(ctx, query, email)

	var a AdminUser
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.Role, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin user: %w", err)
	}
	return &a, nil
}

// Exists checks if an admin account with the given email already exists.
func (r *AdminRepository) Exists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admin_users WHERE email = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return exists, nil
}
