package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/sixrdiamond/recruitment-portal/internal/app/models"
	appRepos "github.com/sixrdiamond/recruitment-portal/internal/app/repositories"
	"github.com/sixrdiamond/recruitment-portal/internal/db"
	"github.com/sixrdiamond/recruitment-portal/internal/pkg/auth"
)

// defaultBranches are created on first boot so the application and posting
// dropdowns are never empty
var defaultBranches = []string{
	"Manila (Main)",
	"Cebu",
	"Davao",
	"Subic",
}

// CreateDefaultData seeds the branches and the initial HR account if they
// don't exist yet. The whole seed runs in one transaction so a partial
// failure leaves the database untouched.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (branches, HR account)...")

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		branchRepo := appRepos.NewBranchRepository(tx)
		employeeRepo := appRepos.NewEmployeeRepository(tx)

		for _, name := range defaultBranches {
			if err := branchRepo.Upsert(ctx, name); err != nil {
				lgr.Error().Err(err).Str("branch", name).Msg("Error creating default branch")
				return err
			}
		}

		// Default HR manager account. The password must be changed after
		// the first login.
		hashed, err := auth.HashPassword("hrpassword123")
		if err != nil {
			return err
		}

		employee := &appModels.Employee{
			EmployeeID: "EMP-001",
			Password:   hashed,
			FirstName:  "HR",
			LastName:   "Manager",
			Role:       "HR Manager",
			IsActive:   true,
		}
		if err := employeeRepo.Create(ctx, employee); err != nil {
			if errors.Is(err, appRepos.ErrEmployeeIDExists) {
				return nil
			}
			lgr.Error().Err(err).Msg("Error creating default HR account")
			return err
		}

		lgr.Info().Str("employeeId", employee.EmployeeID).Msg("Default HR account created")
		return nil
	})
}
