package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ApplicantRepository  *ApplicantRepository
	JobPostingRepository *JobPostingRepository
	EmployeeRepository   *EmployeeRepository
	TokenRepository      *TokenRepository
	ScheduleRepository   *ScheduleRepository
	BranchRepository     *BranchRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ApplicantRepository:  NewApplicantRepository(db),
		JobPostingRepository: NewJobPostingRepository(db),
		EmployeeRepository:   NewEmployeeRepository(db),
		TokenRepository:      NewTokenRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
		BranchRepository:     NewBranchRepository(db),
	}
}
