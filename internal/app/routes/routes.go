package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sixrdiamond/recruitment-portal/internal/app/controllers"
	"github.com/sixrdiamond/recruitment-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	applicantController *controllers.ApplicantController,
	jobController *controllers.JobController,
	scheduleController *controllers.ScheduleController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.GET("/test-db", healthController.TestDB)
	api.GET("/jobs", jobController.List)
	api.GET("/branches", jobController.Branches)
	api.POST("/apply", applicantController.Apply)
	api.POST("/login", authController.Login)
	api.POST("/refresh", authController.Refresh)

	// --- HR dashboard routes ---
	protected := api.Group("")
	protected.Use(authMiddleware.JWTAuth())
	{
		applicants := protected.Group("/applicants")
		{
			applicants.GET("", applicantController.List)
			applicants.GET("/:id", applicantController.Get)
			applicants.PUT("/:id/status", applicantController.UpdateStatus)
		}

		jobs := protected.Group("/jobs")
		{
			jobs.POST("", jobController.Create)
			jobs.PATCH("/:id/status", jobController.UpdateStatus)
			jobs.DELETE("/:id", jobController.Delete)
		}

		schedules := protected.Group("/schedules")
		{
			schedules.POST("", scheduleController.Create)
			schedules.GET("", scheduleController.List)
			schedules.PUT("/:id", scheduleController.Update)
			schedules.DELETE("/:id", scheduleController.Delete)
		}

		protected.GET("/reports", reportController.Generate)
		protected.GET("/overview", reportController.Overview)
	}
}
