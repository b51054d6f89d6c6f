package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
)

// Job posting error types
var (
	ErrJobPostingNotFound = errors.New("job posting not found")
)

const jobPostingColumns = `
	p.id, p.title, p.branch, p.department, p.contract_type, p.is_open, p.posted_at,
	(SELECT COUNT(*) FROM applicants a WHERE a.position_applied = p.title AND a.branch = p.branch) AS applicant_count`

// JobPostingRepository handles database operations for job postings
type JobPostingRepository struct {
	db db.Queryer
}

// NewJobPostingRepository creates a new job posting repository
func NewJobPostingRepository(db db.Queryer) *JobPostingRepository {
	return &JobPostingRepository{
		db: db,
	}
}

func scanJobPosting(row pgx.Row) (*models.JobPosting, error) {
	var p models.JobPosting
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Branch,
		&p.Department,
		&p.ContractType,
		&p.IsOpen,
		&p.PostedAt,
		&p.ApplicantCount,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new job posting and returns it with generated fields set
func (r *JobPostingRepository) Create(ctx context.Context, posting *models.JobPosting) error {
	query := `
		INSERT INTO job_postings (title, branch, department, contract_type, is_open)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, posted_at`

	err := r.db.QueryRow(ctx, query,
		posting.Title,
		posting.Branch,
		posting.Department,
		posting.ContractType,
		posting.IsOpen,
	).Scan(&posting.ID, &posting.PostedAt)
	if err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

// GetByID retrieves a single job posting with its applicant count
func (r *JobPostingRepository) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	query := `SELECT` + jobPostingColumns + ` FROM job_postings p WHERE p.id = $1`

	posting, err := scanJobPosting(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobPostingNotFound
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return posting, nil
}

// GetAll retrieves job postings, optionally restricted to open ones,
// newest first
func (r *JobPostingRepository) GetAll(ctx context.Context, openOnly bool) ([]*models.JobPosting, error) {
	query := `SELECT` + jobPostingColumns + ` FROM job_postings p`
	if openOnly {
		query += ` WHERE p.is_open = TRUE`
	}
	query += ` ORDER BY p.posted_at DESC, p.id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []*models.JobPosting
	for rows.Next() {
		posting, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, posting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job postings: %w", err)
	}
	return postings, nil
}

// UpdateStatus opens or closes a posting
func (r *JobPostingRepository) UpdateStatus(ctx context.Context, id int64, isOpen bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE job_postings SET is_open = $1 WHERE id = $2`, isOpen, id)
	if err != nil {
		return fmt.Errorf("failed to update job posting status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobPostingNotFound
	}
	return nil
}

// Delete removes a posting
func (r *JobPostingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobPostingNotFound
	}
	return nil
}

// CountOpen returns the number of currently open postings
func (r *JobPostingRepository) CountOpen(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE is_open = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open job postings: %w", err)
	}
	return count, nil
}
