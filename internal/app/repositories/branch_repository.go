package repositories

import (
	"context"
	"fmt"

	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
)

// BranchRepository handles database operations for company branches
type BranchRepository struct {
	db db.Queryer
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db db.Queryer) *BranchRepository {
	return &BranchRepository{
		db: db,
	}
}

// GetAll retrieves active branches in insertion order
func (r *BranchRepository) GetAll(ctx context.Context) ([]*models.Branch, error) {
	query := `SELECT id, name, is_active FROM branches WHERE is_active = TRUE ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []*models.Branch
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read branches: %w", err)
	}
	return branches, nil
}

// Upsert inserts a branch by name if it does not already exist
func (r *BranchRepository) Upsert(ctx context.Context, name string) error {
	query := `
		INSERT INTO branches (name, is_active)
		VALUES ($1, TRUE)
		ON CONFLICT (name) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, name); err != nil {
		return fmt.Errorf("failed to upsert branch: %w", err)
	}
	return nil
}
