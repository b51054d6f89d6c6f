package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/services"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubApplicantService struct {
	submitForm *dto.ApplicationForm
	submitDocs services.ApplicationDocuments
	submitErr  error

	updateNo     string
	updateStatus string
	updateErr    error
}

func (s *stubApplicantService) SubmitApplication(_ context.Context, form *dto.ApplicationForm, docs services.ApplicationDocuments) (*dto.ApplicationReceipt, error) {
	s.submitForm = form
	s.submitDocs = docs
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &dto.ApplicationReceipt{Message: "Application submitted!", ApplicantID: "APP-1700000000000"}, nil
}

func (s *stubApplicantService) ListApplicants(context.Context) ([]dto.ApplicantSummary, error) {
	return []dto.ApplicantSummary{{ID: "APP-1700000000000", Name: "Juan Santos"}}, nil
}

func (s *stubApplicantService) GetApplicant(_ context.Context, applicantNo string) (*models.Applicant, error) {
	if applicantNo != "APP-1700000000000" {
		return nil, apperrors.ErrApplicantNotFound
	}
	return &models.Applicant{ApplicantNo: applicantNo, FirstName: "Juan", LastName: "Santos"}, nil
}

func (s *stubApplicantService) UpdateStatus(_ context.Context, applicantNo, rawStatus string) (*dto.ApplicantSummary, error) {
	s.updateNo = applicantNo
	s.updateStatus = rawStatus
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.ApplicantSummary{ID: applicantNo, Status: rawStatus}, nil
}

func newApplicantRouter(stub *stubApplicantService) *gin.Engine {
	c := NewApplicantController(stub, zerolog.Nop())
	router := gin.New()
	router.POST("/api/apply", c.Apply)
	router.GET("/api/applicants", c.List)
	router.GET("/api/applicants/:id", c.Get)
	router.PUT("/api/applicants/:id/status", c.UpdateStatus)
	return router
}

func multipartForm(t *testing.T, fields map[string]string, files []string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range files {
		part, err := writer.CreateFormFile(name, name+".pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 stub"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func applicationFields() map[string]string {
	return map[string]string{
		"firstName":       "Juan",
		"lastName":        "Santos",
		"email":           "juan.santos@email.com",
		"age":             "29",
		"branch":          "Manila (Main)",
		"positionApplied": "Licensed Customs Broker",
	}
}

func TestApplyAcceptsMultipartWithDocuments(t *testing.T) {
	stub := &stubApplicantService{}
	router := newApplicantRouter(stub)

	body, contentType := multipartForm(t, applicationFields(), []string{"resume", "prcId"})
	req := httptest.NewRequest(http.MethodPost, "/api/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.submitForm)
	assert.Equal(t, "Juan", stub.submitForm.FirstName)
	assert.Equal(t, "Licensed Customs Broker", stub.submitForm.PositionApplied)
	assert.NotNil(t, stub.submitDocs.Resume)
	assert.NotNil(t, stub.submitDocs.PrcID)
	assert.Nil(t, stub.submitDocs.CoverLetter)

	var resp struct {
		Data dto.ApplicationReceipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "APP-1700000000000", resp.Data.ApplicantID)
}

func TestApplyAcceptsSubmissionWithoutDocuments(t *testing.T) {
	stub := &stubApplicantService{}
	router := newApplicantRouter(stub)

	body, contentType := multipartForm(t, applicationFields(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, stub.submitDocs.Resume)
	assert.Nil(t, stub.submitDocs.CoverLetter)
	assert.Nil(t, stub.submitDocs.PrcID)
}

func TestApplyRejectsMissingRequiredFields(t *testing.T) {
	stub := &stubApplicantService{}
	router := newApplicantRouter(stub)

	fields := applicationFields()
	delete(fields, "lastName")
	body, contentType := multipartForm(t, fields, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/apply", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.submitForm)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestGetApplicantNotFound(t *testing.T) {
	router := newApplicantRouter(&stubApplicantService{})

	req := httptest.NewRequest(http.MethodGet, "/api/applicants/APP-999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusPassesTargetThrough(t *testing.T) {
	stub := &stubApplicantService{}
	router := newApplicantRouter(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/applicants/APP-1700000000000/status",
		strings.NewReader(`{"status":"Interview"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "APP-1700000000000", stub.updateNo)
	assert.Equal(t, "Interview", stub.updateStatus)
}

func TestUpdateStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"transition not allowed", apperrors.ErrInvalidStatusChange, http.StatusConflict},
		{"applicant missing", apperrors.ErrApplicantNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubApplicantService{updateErr: tt.err}
			router := newApplicantRouter(stub)

			req := httptest.NewRequest(http.MethodPut, "/api/applicants/APP-1/status",
				strings.NewReader(`{"status":"Interview"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUpdateStatusRequiresBody(t *testing.T) {
	router := newApplicantRouter(&stubApplicantService{})

	req := httptest.NewRequest(http.MethodPut, "/api/applicants/APP-1/status",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
