package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/repositories"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/apperrors"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplicantStore struct {
	created    []*models.Applicant
	createErrs []error // consumed per Create call; nil entries mean success
	applicants map[string]*models.Applicant
	updated    map[string]models.ApplicationStatus
}

func newFakeStore() *fakeApplicantStore {
	return &fakeApplicantStore{
		applicants: make(map[string]*models.Applicant),
		updated:    make(map[string]models.ApplicationStatus),
	}
}

func (f *fakeApplicantStore) Create(_ context.Context, a *models.Applicant) error {
	var err error
	if len(f.createErrs) > 0 {
		err = f.createErrs[0]
		f.createErrs = f.createErrs[1:]
	}
	if err != nil {
		return err
	}
	copied := *a
	f.created = append(f.created, &copied)
	f.applicants[a.ApplicantNo] = &copied
	return nil
}

func (f *fakeApplicantStore) GetByApplicantNo(_ context.Context, applicantNo string) (*models.Applicant, error) {
	a, ok := f.applicants[applicantNo]
	if !ok {
		return nil, repositories.ErrApplicantNotFound
	}
	return a, nil
}

func (f *fakeApplicantStore) GetAll(_ context.Context) ([]*models.Applicant, error) {
	out := make([]*models.Applicant, 0, len(f.applicants))
	for _, a := range f.applicants {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeApplicantStore) UpdateStatus(_ context.Context, applicantNo string, status models.ApplicationStatus) error {
	a, ok := f.applicants[applicantNo]
	if !ok {
		return repositories.ErrApplicantNotFound
	}
	a.Status = string(status)
	f.updated[applicantNo] = status
	return nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) SaveFile(fh *multipart.FileHeader) (string, error) {
	return f.SaveFileWithPath(fh, "")
}

func (f *fakeStorage) SaveFileWithPath(fh *multipart.FileHeader, path string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	url := "http://localhost:8080/uploads/" + path + "/" + fh.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) DeleteFile(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

var fixedNow = time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

func newTestService(store *fakeApplicantStore, storage *fakeStorage) *ApplicantService {
	svc := NewApplicantService(store, storage, zerolog.Nop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validForm() *dto.ApplicationForm {
	return &dto.ApplicationForm{
		FirstName:       "Juan",
		LastName:        "Santos",
		Email:           "Juan.Santos@Email.com",
		Age:             "29",
		ContactNumber:   "+63 (912) 345-6789",
		Branch:          "Manila (Main)",
		PositionApplied: "Licensed Customs Broker",
	}
}

func TestSubmitApplicationCleansForm(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeStorage{})

	form := validForm()
	form.Age = "not-a-number"
	form.MiddleInitial = "Delacruz"   // longer than the column allows
	form.Suffix = "Junior the Third"  // likewise
	form.MedicalCondition = ""
	form.Branch = "  "
	form.PositionApplied = ""

	receipt, err := svc.SubmitApplication(context.Background(), form, ApplicationDocuments{})
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	a := store.created[0]
	assert.Equal(t, receipt.ApplicantID, a.ApplicantNo)
	assert.Equal(t, fmt.Sprintf("APP-%d", fixedNow.UnixMilli()), a.ApplicantNo)
	assert.Equal(t, 0, a.Age)
	assert.Equal(t, "Delac", a.MiddleInitial)
	assert.Equal(t, "Junior the", a.Suffix)
	assert.Equal(t, "no", a.MedicalCondition)
	assert.Equal(t, "Not specified", a.Branch)
	assert.Equal(t, "Not specified", a.PositionApplied)
	assert.Equal(t, "juan.santos@email.com", a.Email)
	require.NotNil(t, a.ContactNumber)
	assert.Equal(t, "639123456789", *a.ContactNumber)
	assert.Equal(t, string(models.StatusApplied), a.Status)
	assert.Nil(t, a.ResumeURL)
}

func TestSubmitApplicationTruncatesOnRuneBoundaries(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeStorage{})

	form := validForm()
	form.MiddleInitial = "ABCDÑE"
	form.Suffix = "Señor de los Reyes"

	_, err := svc.SubmitApplication(context.Background(), form, ApplicationDocuments{})
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	a := store.created[0]
	assert.Equal(t, "ABCDÑ", a.MiddleInitial)
	assert.Equal(t, "Señor de l", a.Suffix)
	assert.True(t, utf8.ValidString(a.MiddleInitial))
	assert.True(t, utf8.ValidString(a.Suffix))
}

func TestSubmitApplicationTemporaryPassword(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeStorage{})

	_, err := svc.SubmitApplication(context.Background(), validForm(), ApplicationDocuments{})
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	assert.True(t, auth.CheckPassword(store.created[0].Password, "SANTOS123"))
}

func TestSubmitApplicationStoresDocuments(t *testing.T) {
	store := newFakeStore()
	storage := &fakeStorage{}
	svc := newTestService(store, storage)

	docs := ApplicationDocuments{
		Resume: &multipart.FileHeader{Filename: "resume.pdf"},
		PrcID:  &multipart.FileHeader{Filename: "prc.png"},
	}

	_, err := svc.SubmitApplication(context.Background(), validForm(), docs)
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	a := store.created[0]
	require.NotNil(t, a.ResumeURL)
	require.NotNil(t, a.PrcIDURL)
	assert.Nil(t, a.CoverLetterURL)
	assert.Len(t, storage.saved, 2)
	assert.Empty(t, storage.deleted)
}

func TestSubmitApplicationRetriesOnDuplicateNumber(t *testing.T) {
	store := newFakeStore()
	store.createErrs = []error{
		repositories.ErrApplicantNumberExists,
		repositories.ErrApplicantNumberExists,
		nil,
	}
	svc := newTestService(store, &fakeStorage{})

	receipt, err := svc.SubmitApplication(context.Background(), validForm(), ApplicationDocuments{})
	require.NoError(t, err)

	// Third attempt wins with an offset number
	assert.Equal(t, fmt.Sprintf("APP-%d", fixedNow.UnixMilli()+2), receipt.ApplicantID)
}

func TestSubmitApplicationGivesUpAfterRetries(t *testing.T) {
	store := newFakeStore()
	store.createErrs = []error{
		repositories.ErrApplicantNumberExists,
		repositories.ErrApplicantNumberExists,
		repositories.ErrApplicantNumberExists,
	}
	storage := &fakeStorage{}
	svc := newTestService(store, storage)

	docs := ApplicationDocuments{Resume: &multipart.FileHeader{Filename: "resume.pdf"}}
	_, err := svc.SubmitApplication(context.Background(), validForm(), docs)

	assert.ErrorIs(t, err, apperrors.ErrApplicantNumberExists)
	assert.Empty(t, store.created)
	// Orphaned upload must be removed
	assert.Equal(t, storage.saved, storage.deleted)
}

func TestSubmitApplicationRemovesUploadsOnInsertFailure(t *testing.T) {
	store := newFakeStore()
	store.createErrs = []error{errors.New("connection reset")}
	storage := &fakeStorage{}
	svc := newTestService(store, storage)

	docs := ApplicationDocuments{
		Resume:      &multipart.FileHeader{Filename: "resume.pdf"},
		CoverLetter: &multipart.FileHeader{Filename: "letter.pdf"},
	}

	_, err := svc.SubmitApplication(context.Background(), validForm(), docs)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrApplicantNumberExists)
	assert.Len(t, storage.saved, 2)
	assert.Equal(t, storage.saved, storage.deleted)
}

func TestListApplicantsAppliesDisplayDefaults(t *testing.T) {
	store := newFakeStore()
	no := fmt.Sprintf("APP-%d", fixedNow.UnixMilli())
	store.applicants[no] = &models.Applicant{
		ApplicantNo: no,
		FirstName:   "Juan",
		LastName:    "Santos",
		Status:      "shortlisted", // unknown, must normalize
	}
	svc := newTestService(store, &fakeStorage{})

	summaries, err := svc.ListApplicants(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, no, s.ID)
	assert.Equal(t, "Juan Santos", s.Name)
	assert.Equal(t, "N/A", s.Email)
	assert.Equal(t, "N/A", s.Phone)
	assert.Equal(t, "Not specified", s.Position)
	assert.Equal(t, "Not specified", s.Branch)
	assert.Equal(t, "Applied", s.Status)
	assert.Equal(t, "03-05-2025", s.Date)
}

func TestUpdateStatusValidTransition(t *testing.T) {
	store := newFakeStore()
	store.applicants["APP-1"] = &models.Applicant{ApplicantNo: "APP-1", Status: "Applied"}
	svc := newTestService(store, &fakeStorage{})

	summary, err := svc.UpdateStatus(context.Background(), "APP-1", "interview")
	require.NoError(t, err)
	assert.Equal(t, "Interview", summary.Status)
	assert.Equal(t, models.StatusInterview, store.updated["APP-1"])
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	store := newFakeStore()
	store.applicants["APP-1"] = &models.Applicant{ApplicantNo: "APP-1", Status: "Applied"}
	svc := newTestService(store, &fakeStorage{})

	_, err := svc.UpdateStatus(context.Background(), "APP-1", "Shortlisted")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.Empty(t, store.updated)
}

func TestUpdateStatusTerminalStateRejected(t *testing.T) {
	store := newFakeStore()
	store.applicants["APP-1"] = &models.Applicant{ApplicantNo: "APP-1", Status: "Hired"}
	svc := newTestService(store, &fakeStorage{})

	_, err := svc.UpdateStatus(context.Background(), "APP-1", "Interview")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusChange)
}

func TestUpdateStatusMissingApplicant(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeStorage{})

	_, err := svc.UpdateStatus(context.Background(), "APP-404", "Interview")
	assert.ErrorIs(t, err, apperrors.ErrApplicantNotFound)
}
