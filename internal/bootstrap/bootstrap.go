package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sixrdiamond/recruitment-portal/internal/app/controllers"
	appMigrations "github.com/sixrdiamond/recruitment-portal/internal/app/migrations"
	appRepos "github.com/sixrdiamond/recruitment-portal/internal/app/repositories"
	appRoutes "github.com/sixrdiamond/recruitment-portal/internal/app/routes"
	appServices "github.com/sixrdiamond/recruitment-portal/internal/app/services"
	"github.com/sixrdiamond/recruitment-portal/internal/config"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
	appMiddleware "github.com/sixrdiamond/recruitment-portal/internal/middleware"
	pkgAuth "github.com/sixrdiamond/recruitment-portal/internal/pkg/auth"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/filestorage"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/logger"
	"github.com/sixrdiamond/recruitment-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	ApplicantService    *appServices.ApplicantService
	JobService          *appServices.JobService
	ScheduleService     *appServices.ScheduleService
	ReportService       *appServices.ReportService
	HealthController    *appControllers.HealthController
	AuthController      *appControllers.AuthController
	ApplicantController *appControllers.ApplicantController
	JobController       *appControllers.JobController
	ScheduleController  *appControllers.ScheduleController
	ReportController    *appControllers.ReportController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	FileStorage         *filestorage.LocalStorage
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Seeding is best-effort; a partially seeded database still serves
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	if removed, err := deps.Repos.TokenRepository.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to purge expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Purged expired refresh tokens")
	}

	// Stored documents are served back under the static /uploads route
	baseURL := "http://localhost:" + cfg.Server.Port + cfg.Storage.BaseURL
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.Path, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenDuration(),
		RefreshTokenExp: cfg.RefreshTokenDuration(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.EmployeeRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.ApplicantService = appServices.NewApplicantService(
		deps.Repos.ApplicantRepository,
		deps.FileStorage,
		lgr,
	)
	deps.JobService = appServices.NewJobService(
		deps.Repos.JobPostingRepository,
		deps.Repos.BranchRepository,
		lgr,
	)
	deps.ScheduleService = appServices.NewScheduleService(
		deps.Repos.ScheduleRepository,
		deps.Repos.ApplicantRepository,
		lgr,
	)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.ApplicantRepository,
		deps.Repos.JobPostingRepository,
		deps.Repos.ScheduleRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.HealthController = appControllers.NewHealthController(dbPool)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ApplicantController = appControllers.NewApplicantController(deps.ApplicantService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService, lgr)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Serve stored applicant documents
	router.Static(cfg.Storage.BaseURL, cfg.Storage.Path)

	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.AuthController,
		deps.ApplicantController,
		deps.JobController,
		deps.ScheduleController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router
}
