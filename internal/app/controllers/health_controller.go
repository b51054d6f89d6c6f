package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sixrdiamond/recruitment-portal/internal/app/models/dto"
)

// HealthController reports service and database health
type HealthController struct {
	pool *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(pool *pgxpool.Pool) *HealthController {
	return &HealthController{pool: pool}
}

// TestDB verifies database connectivity
// @Summary Database connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /test-db [get]
func (c *HealthController) TestDB(ctx *gin.Context) {
	if err := c.pool.Ping(ctx.Request.Context()); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database connection failed").
			WithDetails(err.Error())
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Database connection successful"},
		Timestamp: time.Now(),
	})
}
