package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
)

// Token error types
var (
	ErrTokenNotFound = errors.New("refresh token not found")
)

// TokenRepository handles database operations for refresh tokens
type TokenRepository struct {
	db db.Queryer
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db db.Queryer) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

// Save persists a freshly issued refresh token
func (r *TokenRepository) Save(ctx context.Context, employeeID int64, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO employee_tokens (employee_id, token, expires_at)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, employeeID, token, expiresAt); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// Get retrieves a refresh token record by its value
func (r *TokenRepository) Get(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT id, employee_id, token, expires_at, revoked, created_at
		FROM employee_tokens
		WHERE token = $1`

	var t models.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&t.ID,
		&t.EmployeeID,
		&t.Token,
		&t.ExpiresAt,
		&t.Revoked,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &t, nil
}

// Revoke marks a refresh token as revoked so it cannot be reused
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	tag, err := r.db.Exec(ctx, `UPDATE employee_tokens SET revoked = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTokenNotFound
	}
	return nil
}

// DeleteExpired removes tokens past their expiry, keeping the table small
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM employee_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
