package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sixrdiamond/recruitment-portal/internal/pkg/logger"
	"github.com/sixrdiamond/recruitment-portal/internal/server"
)

// @title Recruitment Portal API
// @version 1.0
// @description Applicant tracking backend: job postings, application intake, interview scheduling, and periodic reporting

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for the HR dashboard

func main() {
	// A .env file is optional; real deployments set env vars directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
