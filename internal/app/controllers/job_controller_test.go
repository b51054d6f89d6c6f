package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJobService struct {
	toggledID   int64
	toggledOpen bool
	toggleErr   error
}

func (s *stubJobService) CreatePosting(_ context.Context, req *dto.CreateJobPostingRequest) (*models.JobPosting, error) {
	return &models.JobPosting{
		ID:           1,
		Title:        req.Title,
		Branch:       req.Branch,
		Department:   req.Department,
		ContractType: req.ContractType,
		IsOpen:       true,
	}, nil
}

func (s *stubJobService) ListPostings(_ context.Context, openOnly bool) ([]*models.JobPosting, error) {
	postings := []*models.JobPosting{
		{ID: 1, Title: "Licensed Customs Broker", IsOpen: true},
		{ID: 2, Title: "Bookkeeper", IsOpen: false},
	}
	if openOnly {
		return postings[:1], nil
	}
	return postings, nil
}

func (s *stubJobService) SetPostingStatus(_ context.Context, id int64, isOpen bool) (*models.JobPosting, error) {
	s.toggledID = id
	s.toggledOpen = isOpen
	if s.toggleErr != nil {
		return nil, s.toggleErr
	}
	return &models.JobPosting{ID: id, Title: "Licensed Customs Broker", IsOpen: isOpen}, nil
}

func (s *stubJobService) DeletePosting(context.Context, int64) error { return nil }

func (s *stubJobService) ListBranches(context.Context) ([]*models.Branch, error) {
	return []*models.Branch{{ID: 1, Name: "Manila (Main)", IsActive: true}}, nil
}

func newJobRouter(stub *stubJobService) *gin.Engine {
	c := NewJobController(stub, zerolog.Nop())
	router := gin.New()
	router.GET("/api/jobs", c.List)
	router.POST("/api/jobs", c.Create)
	router.PATCH("/api/jobs/:id/status", c.UpdateStatus)
	router.DELETE("/api/jobs/:id", c.Delete)
	return router
}

func TestUpdateJobStatusTogglesPosting(t *testing.T) {
	stub := &stubJobService{}
	router := newJobRouter(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/jobs/7/status", strings.NewReader(`{"isOpen":false}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(7), stub.toggledID)
	assert.False(t, stub.toggledOpen)

	var envelope struct {
		Data models.JobPosting `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, int64(7), envelope.Data.ID)
	assert.False(t, envelope.Data.IsOpen)
}

func TestUpdateJobStatusUnknownPosting(t *testing.T) {
	stub := &stubJobService{toggleErr: apperrors.ErrJobPostingNotFound}
	router := newJobRouter(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/jobs/99/status", strings.NewReader(`{"isOpen":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)

	var envelope dto.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, envelope.Error.Code)
}

func TestUpdateJobStatusRejectsBadInput(t *testing.T) {
	router := newJobRouter(&stubJobService{})

	cases := []struct {
		name string
		path string
		body string
	}{
		{"non-numeric id", "/api/jobs/abc/status", `{"isOpen":true}`},
		{"missing isOpen", "/api/jobs/7/status", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestListJobsFiltersOpenPostings(t *testing.T) {
	router := newJobRouter(&stubJobService{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?open=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var envelope struct {
		Data []models.JobPosting `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.True(t, envelope.Data[0].IsOpen)
}
