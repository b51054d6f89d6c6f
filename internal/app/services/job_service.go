package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/repositories"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/apperrors"
)

// JobService handles job posting management
type JobService struct {
	jobRepo    *repositories.JobPostingRepository
	branchRepo *repositories.BranchRepository
	logger     zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo *repositories.JobPostingRepository,
	branchRepo *repositories.BranchRepository,
	logger zerolog.Logger,
) *JobService {
	return &JobService{
		jobRepo:    jobRepo,
		branchRepo: branchRepo,
		logger:     logger,
	}
}

// CreatePosting publishes a new job posting, open by default
func (s *JobService) CreatePosting(ctx context.Context, req *dto.CreateJobPostingRequest) (*models.JobPosting, error) {
	posting := &models.JobPosting{
		Title:        req.Title,
		Branch:       req.Branch,
		Department:   req.Department,
		ContractType: req.ContractType,
		IsOpen:       true,
	}

	if err := s.jobRepo.Create(ctx, posting); err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}

	s.logger.Info().
		Int64("id", posting.ID).
		Str("title", posting.Title).
		Str("branch", posting.Branch).
		Msg("Job posting created")
	return posting, nil
}

// ListPostings returns postings for the HR dashboard (all of them) or the
// public job board (open only)
func (s *JobService) ListPostings(ctx context.Context, openOnly bool) ([]*models.JobPosting, error) {
	postings, err := s.jobRepo.GetAll(ctx, openOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	return postings, nil
}

// SetPostingStatus opens or closes a posting
func (s *JobService) SetPostingStatus(ctx context.Context, id int64, isOpen bool) (*models.JobPosting, error) {
	if err := s.jobRepo.UpdateStatus(ctx, id, isOpen); err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, fmt.Errorf("failed to update job posting: %w", err)
	}
	posting, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, fmt.Errorf("failed to reload job posting: %w", err)
	}
	return posting, nil
}

// DeletePosting removes a posting entirely
func (s *JobService) DeletePosting(ctx context.Context, id int64) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return apperrors.ErrJobPostingNotFound
		}
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	s.logger.Info().Int64("id", id).Msg("Job posting deleted")
	return nil
}

// ListBranches returns the active branches for the posting and application
// dropdowns
func (s *JobService) ListBranches(ctx context.Context) ([]*models.Branch, error) {
	branches, err := s.branchRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}
