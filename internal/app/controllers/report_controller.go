package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/reporting"
	"github.com/sixrdiamond/recruitment-portal/internal/middleware"
)

// ReportProvider is the service surface the report controller depends on
type ReportProvider interface {
	GenerateReport(ctx context.Context, req reporting.PeriodRequest) (*reporting.Report, error)
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
}

// ReportController handles report generation and dashboard stats
type ReportController struct {
	reportService ReportProvider
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService ReportProvider, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// Generate builds a periodic recruitment report
// @Summary Generate a recruitment report
// @Description Aggregates applications over a monthly, quarterly, or annual period. Out-of-range month, quarter, or year parameters fall back to the current period.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param reportType query string false "monthly, quarterly, or annual" default(monthly)
// @Param month query int false "Month 1-12 (monthly)"
// @Param quarter query int false "Quarter 1-4 (quarterly)"
// @Param year query int false "Four-digit year"
// @Success 200 {object} dto.APIResponse{data=reporting.Report}
// @Router /reports [get]
func (c *ReportController) Generate(ctx *gin.Context) {
	req := reporting.PeriodRequest{
		ReportType: ctx.Query("reportType"),
		Month:      ctx.Query("month"),
		Quarter:    ctx.Query("quarter"),
		Year:       ctx.Query("year"),
	}

	report, err := c.reportService.GenerateReport(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: report, Timestamp: time.Now()})
}

// Overview returns the dashboard headline counters
// @Summary Dashboard overview stats
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OverviewResponse}
// @Router /overview [get]
func (c *ReportController) Overview(ctx *gin.Context) {
	overview, err := c.reportService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: overview, Timestamp: time.Now()})
}
