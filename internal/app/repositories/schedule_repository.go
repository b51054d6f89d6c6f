package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
)

// Schedule error types
var (
	ErrScheduleNotFound = errors.New("interview schedule not found")
)

const scheduleColumns = `id, applicant_no, scheduled_date, scheduled_time, location, reminders, created_at`

// ScheduleRepository handles database operations for interview schedules
type ScheduleRepository struct {
	db db.Queryer
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db db.Queryer) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

func scanSchedule(row pgx.Row) (*models.InterviewSchedule, error) {
	var s models.InterviewSchedule
	err := row.Scan(
		&s.ID,
		&s.ApplicantNo,
		&s.ScheduledDate,
		&s.ScheduledTime,
		&s.Location,
		&s.Reminders,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new interview schedule
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.InterviewSchedule) error {
	query := `
		INSERT INTO interview_schedules (applicant_no, scheduled_date, scheduled_time, location, reminders)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		schedule.ApplicantNo,
		schedule.ScheduledDate,
		schedule.ScheduledTime,
		schedule.Location,
		schedule.Reminders,
	).Scan(&schedule.ID, &schedule.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create interview schedule: %w", err)
	}
	return nil
}

// GetByID retrieves a single schedule
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.InterviewSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM interview_schedules WHERE id = $1`

	schedule, err := scanSchedule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get interview schedule: %w", err)
	}
	return schedule, nil
}

// GetAll retrieves schedules ordered soonest first
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.InterviewSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM interview_schedules ORDER BY scheduled_date ASC, scheduled_time ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*models.InterviewSchedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interview schedules: %w", err)
	}
	return schedules, nil
}

// Update modifies the bookable fields of a schedule
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.InterviewSchedule) error {
	query := `
		UPDATE interview_schedules
		SET scheduled_date = $1, scheduled_time = $2, location = $3, reminders = $4
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query,
		schedule.ScheduledDate,
		schedule.ScheduledTime,
		schedule.Location,
		schedule.Reminders,
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update interview schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

// Delete removes a schedule
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interview_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete interview schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

// Count returns the total number of schedules
func (r *ScheduleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM interview_schedules`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count interview schedules: %w", err)
	}
	return count, nil
}
