package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/reporting"
	"github.com/sixrdiamond/recruitment-portal/internal/app/repositories"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/apperrors"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/auth"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/filestorage"
)

const (
	maxMiddleInitialLen = 5
	maxSuffixLen        = 10

	// attempts at a unique applicant number before giving up
	applicantNoRetries = 3

	defaultMissing     = "N/A"
	defaultUnspecified = "Not specified"
)

var nonDigits = regexp.MustCompile(`\D`)

// ApplicantStore is the persistence surface the applicant-facing services
// need. *repositories.ApplicantRepository satisfies it.
type ApplicantStore interface {
	Create(ctx context.Context, applicant *models.Applicant) error
	GetByApplicantNo(ctx context.Context, applicantNo string) (*models.Applicant, error)
	GetAll(ctx context.Context) ([]*models.Applicant, error)
	UpdateStatus(ctx context.Context, applicantNo string, status models.ApplicationStatus) error
}

// ApplicationDocuments carries the optional uploads of a submission. A nil
// header means the applicant did not attach that document.
type ApplicationDocuments struct {
	Resume      *multipart.FileHeader
	CoverLetter *multipart.FileHeader
	PrcID       *multipart.FileHeader
}

// ApplicantService handles applicant intake and lifecycle operations
type ApplicantService struct {
	applicantRepo ApplicantStore
	storage       filestorage.FileStorage
	logger        zerolog.Logger
	now           func() time.Time
}

// NewApplicantService creates a new ApplicantService
func NewApplicantService(
	applicantRepo ApplicantStore,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		storage:       storage,
		logger:        logger,
		now:           time.Now,
	}
}

// truncate clips a string to at most n characters after trimming. It
// counts runes, not bytes, so multi-byte names stay valid UTF-8.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

// cleanForm applies the intake normalization rules to a raw submission
func cleanForm(form *dto.ApplicationForm) *models.Applicant {
	age, err := strconv.Atoi(strings.TrimSpace(form.Age))
	if err != nil || age < 0 {
		age = 0
	}

	var contact *string
	if digits := nonDigits.ReplaceAllString(form.ContactNumber, ""); digits != "" {
		contact = &digits
	}

	medical := strings.ToLower(strings.TrimSpace(form.MedicalCondition))
	if medical == "" {
		medical = "no"
	}

	branch := strings.TrimSpace(form.Branch)
	if branch == "" {
		branch = defaultUnspecified
	}
	position := strings.TrimSpace(form.PositionApplied)
	if position == "" {
		position = defaultUnspecified
	}

	return &models.Applicant{
		FirstName:        strings.TrimSpace(form.FirstName),
		LastName:         strings.TrimSpace(form.LastName),
		MiddleInitial:    truncate(form.MiddleInitial, maxMiddleInitialLen),
		Suffix:           truncate(form.Suffix, maxSuffixLen),
		Nationality:      strings.TrimSpace(form.Nationality),
		Birthday:         strings.TrimSpace(form.Birthday),
		Age:              age,
		Email:            strings.ToLower(strings.TrimSpace(form.Email)),
		ContactNumber:    contact,
		Region:           strings.TrimSpace(form.Region),
		Province:         strings.TrimSpace(form.Province),
		City:             strings.TrimSpace(form.City),
		Barangay:         strings.TrimSpace(form.Barangay),
		DetailedAddress:  strings.TrimSpace(form.DetailedAddress),
		MedicalCondition: medical,
		MedicalDetails:   strings.TrimSpace(form.MedicalDetails),
		Branch:           branch,
		PositionApplied:  position,
		Status:           string(models.StatusApplied),
	}
}

// tempPassword builds the initial applicant password from the last name
func tempPassword(lastName string) string {
	base := strings.ToUpper(strings.TrimSpace(lastName))
	if base == "" {
		base = "USER"
	}
	return base + "123"
}

// SubmitApplication stores the uploads, cleans the form, and inserts the
// applicant. Uploaded files are removed again if the insert fails.
func (s *ApplicantService) SubmitApplication(ctx context.Context, form *dto.ApplicationForm, docs ApplicationDocuments) (*dto.ApplicationReceipt, error) {
	applicant := cleanForm(form)

	hashed, err := auth.HashPassword(tempPassword(applicant.LastName))
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}
	applicant.Password = hashed

	var uploaded []string
	cleanup := func() {
		for _, url := range uploaded {
			if err := s.storage.DeleteFile(url); err != nil {
				s.logger.Warn().Err(err).Str("file", url).Msg("Failed to remove orphaned upload")
			}
		}
	}

	store := func(fh *multipart.FileHeader, dir string) (*string, error) {
		if fh == nil {
			return nil, nil
		}
		url, err := s.storage.SaveFileWithPath(fh, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", dir, err)
		}
		uploaded = append(uploaded, url)
		return &url, nil
	}

	if applicant.ResumeURL, err = store(docs.Resume, "resumes"); err != nil {
		cleanup()
		return nil, err
	}
	if applicant.CoverLetterURL, err = store(docs.CoverLetter, "cover-letters"); err != nil {
		cleanup()
		return nil, err
	}
	if applicant.PrcIDURL, err = store(docs.PrcID, "prc-ids"); err != nil {
		cleanup()
		return nil, err
	}

	// The timestamp-based number can collide when two submissions land in
	// the same millisecond, so retry with a fresh number.
	for attempt := 0; attempt < applicantNoRetries; attempt++ {
		applicant.ApplicantNo = fmt.Sprintf("APP-%d", s.now().UnixMilli()+int64(attempt))
		err = s.applicantRepo.Create(ctx, applicant)
		if err == nil {
			s.logger.Info().
				Str("applicantNo", applicant.ApplicantNo).
				Str("position", applicant.PositionApplied).
				Str("branch", applicant.Branch).
				Msg("Application received")
			return &dto.ApplicationReceipt{
				Message:     "Application submitted!",
				ApplicantID: applicant.ApplicantNo,
			}, nil
		}
		if !errors.Is(err, repositories.ErrApplicantNumberExists) {
			break
		}
	}

	cleanup()
	if errors.Is(err, repositories.ErrApplicantNumberExists) {
		return nil, apperrors.ErrApplicantNumberExists
	}
	return nil, fmt.Errorf("failed to save application: %w", err)
}

// summarize maps an applicant row onto the dashboard projection, applying
// the display defaults in one place
func summarize(a *models.Applicant) dto.ApplicantSummary {
	date := defaultMissing
	if t, ok := reporting.InferAppliedDate(a); ok {
		date = t.Format(reporting.RecordDateLayout)
	}

	phone := defaultMissing
	if a.ContactNumber != nil && *a.ContactNumber != "" {
		phone = *a.ContactNumber
	}

	email := strings.TrimSpace(a.Email)
	if email == "" {
		email = defaultMissing
	}

	position := strings.TrimSpace(a.PositionApplied)
	if position == "" {
		position = defaultUnspecified
	}
	branch := strings.TrimSpace(a.Branch)
	if branch == "" {
		branch = defaultUnspecified
	}

	return dto.ApplicantSummary{
		ID:       a.ApplicantNo,
		Name:     a.FullName(),
		Email:    email,
		Phone:    phone,
		Date:     date,
		Status:   string(models.NormalizeStatus(a.Status)),
		Position: position,
		Branch:   branch,
	}
}

// ListApplicants returns every applicant as a dashboard summary, newest first
func (s *ApplicantService) ListApplicants(ctx context.Context) ([]dto.ApplicantSummary, error) {
	applicants, err := s.applicantRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	summaries := make([]dto.ApplicantSummary, 0, len(applicants))
	for _, a := range applicants {
		summaries = append(summaries, summarize(a))
	}
	return summaries, nil
}

// GetApplicant returns the full record for one applicant
func (s *ApplicantService) GetApplicant(ctx context.Context, applicantNo string) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.GetByApplicantNo(ctx, applicantNo)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicantNotFound) {
			return nil, apperrors.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}
	return applicant, nil
}

// UpdateStatus moves an application to a new status, enforcing the
// transition table
func (s *ApplicantService) UpdateStatus(ctx context.Context, applicantNo, rawStatus string) (*dto.ApplicantSummary, error) {
	target, ok := models.ParseStatus(rawStatus)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	applicant, err := s.GetApplicant(ctx, applicantNo)
	if err != nil {
		return nil, err
	}

	current := models.NormalizeStatus(applicant.Status)
	if !models.CanTransition(current, target) {
		return nil, apperrors.ErrInvalidStatusChange
	}

	if err := s.applicantRepo.UpdateStatus(ctx, applicantNo, target); err != nil {
		if errors.Is(err, repositories.ErrApplicantNotFound) {
			return nil, apperrors.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("failed to update applicant status: %w", err)
	}

	s.logger.Info().
		Str("applicantNo", applicantNo).
		Str("from", string(current)).
		Str("to", string(target)).
		Msg("Applicant status updated")

	applicant.Status = string(target)
	summary := summarize(applicant)
	return &summary, nil
}
