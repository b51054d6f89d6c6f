package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/dberrors"
)

// Applicant error types
var (
	ErrApplicantNotFound     = errors.New("applicant not found")
	ErrApplicantNumberExists = errors.New("applicant number already exists")
)

const applicantColumns = `
	id, applicant_no, password, first_name, last_name, middle_initial, suffix,
	nationality, birthday, age, email, contact_number,
	region, province, city_municipality, barangay, detailed_address,
	has_medical_condition, medical_details, branch, position_applied,
	resume_url, cover_letter_url, prc_id_url, status, created_at`

// ApplicantRepository handles database operations for applicants
type ApplicantRepository struct {
	db db.Queryer
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(db db.Queryer) *ApplicantRepository {
	return &ApplicantRepository{
		db: db,
	}
}

func scanApplicant(row pgx.Row) (*models.Applicant, error) {
	var a models.Applicant
	err := row.Scan(
		&a.ID,
		&a.ApplicantNo,
		&a.Password,
		&a.FirstName,
		&a.LastName,
		&a.MiddleInitial,
		&a.Suffix,
		&a.Nationality,
		&a.Birthday,
		&a.Age,
		&a.Email,
		&a.ContactNumber,
		&a.Region,
		&a.Province,
		&a.City,
		&a.Barangay,
		&a.DetailedAddress,
		&a.MedicalCondition,
		&a.MedicalDetails,
		&a.Branch,
		&a.PositionApplied,
		&a.ResumeURL,
		&a.CoverLetterURL,
		&a.PrcIDURL,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new applicant row
func (r *ApplicantRepository) Create(ctx context.Context, applicant *models.Applicant) error {
	query := `
		INSERT INTO applicants (
			applicant_no, password, first_name, last_name, middle_initial, suffix,
			nationality, birthday, age, email, contact_number,
			region, province, city_municipality, barangay, detailed_address,
			has_medical_condition, medical_details, branch, position_applied,
			resume_url, cover_letter_url, prc_id_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		applicant.ApplicantNo,
		applicant.Password,
		applicant.FirstName,
		applicant.LastName,
		applicant.MiddleInitial,
		applicant.Suffix,
		applicant.Nationality,
		applicant.Birthday,
		applicant.Age,
		applicant.Email,
		applicant.ContactNumber,
		applicant.Region,
		applicant.Province,
		applicant.City,
		applicant.Barangay,
		applicant.DetailedAddress,
		applicant.MedicalCondition,
		applicant.MedicalDetails,
		applicant.Branch,
		applicant.PositionApplied,
		applicant.ResumeURL,
		applicant.CoverLetterURL,
		applicant.PrcIDURL,
		applicant.Status,
	).Scan(&applicant.ID, &applicant.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrApplicantNumberExists
		}
		return fmt.Errorf("error creating applicant: %w", err)
	}

	return nil
}

// GetByApplicantNo retrieves an applicant by the generated applicant number
func (r *ApplicantRepository) GetByApplicantNo(ctx context.Context, applicantNo string) (*models.Applicant, error) {
	query := `SELECT` + applicantColumns + ` FROM applicants WHERE applicant_no = $1`

	applicant, err := scanApplicant(r.db.QueryRow(ctx, query, applicantNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicantNotFound
		}
		return nil, fmt.Errorf("error retrieving applicant: %w", err)
	}

	return applicant, nil
}

// GetAll retrieves all applicants, newest applicant number first
func (r *ApplicantRepository) GetAll(ctx context.Context) ([]*models.Applicant, error) {
	query := `SELECT` + applicantColumns + ` FROM applicants ORDER BY applicant_no DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []*models.Applicant
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		applicants = append(applicants, applicant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applicants, nil
}

// UpdateStatus writes a new status for an applicant
func (r *ApplicantRepository) UpdateStatus(ctx context.Context, applicantNo string, status models.ApplicationStatus) error {
	query := `UPDATE applicants SET status = $1 WHERE applicant_no = $2`

	cmdTag, err := r.db.Exec(ctx, query, string(status), applicantNo)
	if err != nil {
		return fmt.Errorf("error updating applicant status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrApplicantNotFound
	}

	return nil
}

// CountAll returns the total number of applicants
func (r *ApplicantRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applicants`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applicants: %w", err)
	}
	return count, nil
}

// CountByStatusSince counts applicants in a status whose row was created at
// or after the given timestamp
func (r *ApplicantRepository) CountByStatusSince(ctx context.Context, status models.ApplicationStatus, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applicants WHERE status = $1 AND created_at >= $2`,
		string(status), since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applicants by status: %w", err)
	}
	return count, nil
}
