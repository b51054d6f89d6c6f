package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/reporting"
	"github.com/sixrdiamond/recruitment-portal/internal/app/repositories"
)

// ReportService builds periodic reports and dashboard overview stats
type ReportService struct {
	applicantRepo *repositories.ApplicantRepository
	jobRepo       *repositories.JobPostingRepository
	scheduleRepo  *repositories.ScheduleRepository
	logger        zerolog.Logger
	now           func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	applicantRepo *repositories.ApplicantRepository,
	jobRepo *repositories.JobPostingRepository,
	scheduleRepo *repositories.ScheduleRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		applicantRepo: applicantRepo,
		jobRepo:       jobRepo,
		scheduleRepo:  scheduleRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// GenerateReport resolves the requested period and aggregates every
// applicant that falls inside it
func (s *ReportService) GenerateReport(ctx context.Context, req reporting.PeriodRequest) (*reporting.Report, error) {
	period := reporting.ResolvePeriod(s.now().UTC(), req)

	applicants, err := s.applicantRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load applicants for report: %w", err)
	}

	report := reporting.BuildReport(applicants, period)

	s.logger.Info().
		Str("reportType", string(period.ReportType)).
		Str("label", period.Label).
		Int("total", report.Summary.TotalApplications).
		Msg("Report generated")
	return &report, nil
}

// Overview returns the dashboard headline counters
func (s *ReportService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	total, err := s.applicantRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count applicants: %w", err)
	}

	openPositions, err := s.jobRepo.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open postings: %w", err)
	}

	interviews, err := s.scheduleRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count schedules: %w", err)
	}

	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	hired, err := s.applicantRepo.CountByStatusSince(ctx, models.StatusHired, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count hires: %w", err)
	}

	return &dto.OverviewResponse{
		TotalApplicants:     total,
		OpenPositions:       openPositions,
		InterviewsScheduled: interviews,
		HiredThisMonth:      hired,
	}, nil
}
