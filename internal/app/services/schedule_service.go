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
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/validation"
)

// ScheduleService handles interview scheduling
type ScheduleService struct {
	scheduleRepo  *repositories.ScheduleRepository
	applicantRepo ApplicantStore
	logger        zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(
	scheduleRepo *repositories.ScheduleRepository,
	applicantRepo ApplicantStore,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo:  scheduleRepo,
		applicantRepo: applicantRepo,
		logger:        logger,
	}
}

func validateSlot(date, timeSlot string) error {
	if !validation.IsValidDate(date) {
		return apperrors.NewBadRequestError("scheduledDate must be an ISO date (YYYY-MM-DD)")
	}
	if !validation.IsValidTimeSlot(timeSlot) {
		return apperrors.NewBadRequestError("scheduledTime must be a 24h time (HH:MM)")
	}
	return nil
}

// CreateSchedule books an interview slot. Booking moves an Applied
// applicant to Interview; applicants already past that stage keep their
// status.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*models.InterviewSchedule, error) {
	if !validation.IsValidApplicantNo(req.ApplicantNo) {
		return nil, apperrors.NewBadRequestError("applicantNo is not a recognized applicant number")
	}
	if err := validateSlot(req.ScheduledDate, req.ScheduledTime); err != nil {
		return nil, err
	}

	applicant, err := s.applicantRepo.GetByApplicantNo(ctx, req.ApplicantNo)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicantNotFound) {
			return nil, apperrors.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("failed to look up applicant: %w", err)
	}

	schedule := &models.InterviewSchedule{
		ApplicantNo:   applicant.ApplicantNo,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Location:      req.Location,
		Reminders:     req.Reminders,
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	current := models.NormalizeStatus(applicant.Status)
	if models.CanTransition(current, models.StatusInterview) {
		if err := s.applicantRepo.UpdateStatus(ctx, applicant.ApplicantNo, models.StatusInterview); err != nil {
			s.logger.Error().Err(err).
				Str("applicantNo", applicant.ApplicantNo).
				Msg("Schedule created but status update failed")
		}
	}

	s.logger.Info().
		Str("applicantNo", applicant.ApplicantNo).
		Str("date", schedule.ScheduledDate).
		Str("time", schedule.ScheduledTime).
		Msg("Interview scheduled")
	return schedule, nil
}

// ListSchedules returns all booked interviews, soonest first
func (s *ScheduleService) ListSchedules(ctx context.Context) ([]*models.InterviewSchedule, error) {
	schedules, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// UpdateSchedule edits an existing interview slot
func (s *ScheduleService) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*models.InterviewSchedule, error) {
	if err := validateSlot(req.ScheduledDate, req.ScheduledTime); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	schedule.ScheduledDate = req.ScheduledDate
	schedule.ScheduledTime = req.ScheduledTime
	schedule.Location = req.Location
	schedule.Reminders = req.Reminders

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return schedule, nil
}

// DeleteSchedule cancels an interview slot
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	s.logger.Info().Int64("id", id).Msg("Interview schedule deleted")
	return nil
}
