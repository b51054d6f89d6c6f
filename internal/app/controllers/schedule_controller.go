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

// ScheduleProvider is the service surface the schedule controller depends on
type ScheduleProvider interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*models.InterviewSchedule, error)
	ListSchedules(ctx context.Context) ([]*models.InterviewSchedule, error)
	UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*models.InterviewSchedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

// ScheduleController handles interview scheduling
type ScheduleController struct {
	scheduleService ScheduleProvider
	logger          zerolog.Logger
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService ScheduleProvider, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

func parseScheduleID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Create books an interview slot
// @Summary Schedule an interview
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScheduleRequest true "Schedule details"
// @Success 201 {object} dto.APIResponse{data=models.InterviewSchedule}
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /schedules [post]
func (c *ScheduleController) Create(ctx *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.CreateSchedule(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: schedule, Timestamp: time.Now()})
}

// List returns all booked interviews
// @Summary List interview schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.InterviewSchedule}
// @Router /schedules [get]
func (c *ScheduleController) List(ctx *gin.Context) {
	schedules, err := c.scheduleService.ListSchedules(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schedules, Timestamp: time.Now()})
}

// Update edits an interview slot
// @Summary Update an interview schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "New slot details"
// @Success 200 {object} dto.APIResponse{data=models.InterviewSchedule}
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [put]
func (c *ScheduleController) Update(ctx *gin.Context) {
	id, ok := parseScheduleID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: schedule, Timestamp: time.Now()})
}

// Delete cancels an interview slot
// @Summary Delete an interview schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) Delete(ctx *gin.Context) {
	id, ok := parseScheduleID(ctx)
	if !ok {
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Interview schedule deleted"},
		Timestamp: time.Now(),
	})
}
