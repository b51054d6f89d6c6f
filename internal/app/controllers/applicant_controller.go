package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
	"github.com/sixrdiamond/recruitment-portal/internal/app/services"
	"github.com/sixrdiamond/recruitment-portal/internal/middleware"
)

// ApplicantProvider is the service surface the applicant controller depends on
type ApplicantProvider interface {
	SubmitApplication(ctx context.Context, form *dto.ApplicationForm, docs services.ApplicationDocuments) (*dto.ApplicationReceipt, error)
	ListApplicants(ctx context.Context) ([]dto.ApplicantSummary, error)
	GetApplicant(ctx context.Context, applicantNo string) (*models.Applicant, error)
	UpdateStatus(ctx context.Context, applicantNo, rawStatus string) (*dto.ApplicantSummary, error)
}

// ApplicantController handles applicant intake and management
type ApplicantController struct {
	applicantService ApplicantProvider
	logger           zerolog.Logger
}

// NewApplicantController creates a new ApplicantController
func NewApplicantController(applicantService ApplicantProvider, logger zerolog.Logger) *ApplicantController {
	return &ApplicantController{
		applicantService: applicantService,
		logger:           logger,
	}
}

// Apply handles a public application submission
// @Summary Submit a job application
// @Description Accepts a multipart form with applicant details and optional resume, coverLetter, and prcId documents
// @Tags applicants
// @Accept multipart/form-data
// @Produce json
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param email formData string true "Email address"
// @Param resume formData file false "Resume document"
// @Param coverLetter formData file false "Cover letter document"
// @Param prcId formData file false "PRC ID document"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationReceipt}
// @Failure 400 {object} dto.ErrorResponse "Invalid form data"
// @Router /apply [post]
func (c *ApplicantController) Apply(ctx *gin.Context) {
	var form dto.ApplicationForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid application form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Missing files are fine; applicants may submit documents later
	var docs services.ApplicationDocuments
	if fh, err := ctx.FormFile("resume"); err == nil {
		docs.Resume = fh
	}
	if fh, err := ctx.FormFile("coverLetter"); err == nil {
		docs.CoverLetter = fh
	}
	if fh, err := ctx.FormFile("prcId"); err == nil {
		docs.PrcID = fh
	}

	receipt, err := c.applicantService.SubmitApplication(ctx.Request.Context(), &form, docs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: receipt, Timestamp: time.Now()})
}

// List returns all applicants for the HR dashboard
// @Summary List applicants
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicantSummary}
// @Router /applicants [get]
func (c *ApplicantController) List(ctx *gin.Context) {
	summaries, err := c.applicantService.ListApplicants(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: summaries, Timestamp: time.Now()})
}

// Get returns the full record for one applicant
// @Summary Get applicant details
// @Tags applicants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant number" example(APP-1700000000000)
// @Success 200 {object} dto.APIResponse{data=models.Applicant}
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id} [get]
func (c *ApplicantController) Get(ctx *gin.Context) {
	applicant, err := c.applicantService.GetApplicant(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: applicant, Timestamp: time.Now()})
}

// UpdateStatus moves an application to a new status
// @Summary Update application status
// @Tags applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Applicant number"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicantSummary}
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /applicants/{id}/status [put]
func (c *ApplicantController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	summary, err := c.applicantService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: summary, Timestamp: time.Now()})
}
