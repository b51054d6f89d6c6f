package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	lastReq reporting.PeriodRequest
}

func (s *stubReportService) GenerateReport(_ context.Context, req reporting.PeriodRequest) (*reporting.Report, error) {
	s.lastReq = req
	return &reporting.Report{
		Meta:            reporting.Meta{Label: "March 2025 Report"},
		StatusBreakdown: map[string]int{"Applied": 2},
		Records:         []reporting.Record{},
	}, nil
}

func (s *stubReportService) Overview(context.Context) (*dto.OverviewResponse, error) {
	return &dto.OverviewResponse{
		TotalApplicants:     12,
		OpenPositions:       3,
		InterviewsScheduled: 4,
		HiredThisMonth:      1,
	}, nil
}

func newReportRouter(stub *stubReportService) *gin.Engine {
	c := NewReportController(stub, zerolog.Nop())
	router := gin.New()
	router.GET("/api/reports", c.Generate)
	router.GET("/api/overview", c.Overview)
	return router
}

func TestGenerateForwardsPeriodParameters(t *testing.T) {
	stub := &stubReportService{}
	router := newReportRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reports?reportType=quarterly&quarter=2&year=2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "quarterly", stub.lastReq.ReportType)
	assert.Equal(t, "2", stub.lastReq.Quarter)
	assert.Equal(t, "2024", stub.lastReq.Year)
	assert.Empty(t, stub.lastReq.Month)
}

func TestGenerateDefaultsToEmptyRequest(t *testing.T) {
	stub := &stubReportService{}
	router := newReportRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, reporting.PeriodRequest{}, stub.lastReq)

	var resp struct {
		Data reporting.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "March 2025 Report", resp.Data.Meta.Label)
}

func TestOverviewReturnsCounters(t *testing.T) {
	router := newReportRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data dto.OverviewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Data.TotalApplicants)
	assert.Equal(t, 1, resp.Data.HiredThisMonth)
}
