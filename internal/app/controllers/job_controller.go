package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/middleware"
)

// JobProvider is the service surface the job controller depends on
type JobProvider interface {
	CreatePosting(ctx context.Context, req *dto.CreateJobPostingRequest) (*models.JobPosting, error)
	ListPostings(ctx context.Context, openOnly bool) ([]*models.JobPosting, error)
	SetPostingStatus(ctx context.Context, id int64, isOpen bool) (*models.JobPosting, error)
	DeletePosting(ctx context.Context, id int64) error
	ListBranches(ctx context.Context) ([]*models.Branch, error)
}

// JobController handles job postings and branch reference data
type JobController struct {
	jobService JobProvider
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService JobProvider, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

func parsePostingID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid posting ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// List returns job postings. The public job board passes open=true; the HR
// dashboard sees every posting.
// @Summary List job postings
// @Tags jobs
// @Produce json
// @Param open query bool false "Only open postings"
// @Success 200 {object} dto.APIResponse{data=[]models.JobPosting}
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	openOnly := ctx.Query("open") == "true"

	postings, err := c.jobService.ListPostings(ctx.Request.Context(), openOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: postings, Timestamp: time.Now()})
}

// Create publishes a new posting
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobPostingRequest true "Posting details"
// @Success 201 {object} dto.APIResponse{data=models.JobPosting}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobPostingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	posting, err := c.jobService.CreatePosting(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: posting, Timestamp: time.Now()})
}

// UpdateStatus opens or closes a posting
// @Summary Open or close a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Posting ID"
// @Param request body dto.UpdateJobStatusRequest true "Target state"
// @Success 200 {object} dto.APIResponse{data=models.JobPosting}
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Router /jobs/{id}/status [patch]
func (c *JobController) UpdateStatus(ctx *gin.Context) {
	id, ok := parsePostingID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	posting, err := c.jobService.SetPostingStatus(ctx.Request.Context(), id, *req.IsOpen)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: posting, Timestamp: time.Now()})
}

// Delete removes a posting
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Posting ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Posting not found"
// @Router /jobs/{id} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	id, ok := parsePostingID(ctx)
	if !ok {
		return
	}

	if err := c.jobService.DeletePosting(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Job posting deleted"},
		Timestamp: time.Now(),
	})
}

// Branches returns active branches for the dropdowns
// @Summary List branches
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Branch}
// @Router /branches [get]
func (c *JobController) Branches(ctx *gin.Context) {
	branches, err := c.jobService.ListBranches(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: branches, Timestamp: time.Now()})
}
