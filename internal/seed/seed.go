package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/pcaproject/timesheet-server/internal/app/models"
	appRepos "github.com/pcaproject/timesheet-server/internal/app/repositories"
	"github.com/pcaproject/timesheet-server/internal/config"
	"github.com/pcaproject/timesheet-server/internal/pkg/apperrors"
	"github.com/pcaproject/timesheet-server/internal/pkg/auth"
)

// DefaultAdminID is the identifier of the seeded administrator account.
const DefaultAdminID = "admin1"

// defaultAdminPassword is used when no seed password is configured. It
// should be changed through the password endpoint after first login.
const defaultAdminPassword = "Admin123!"

// CreateDefaultData seeds the default administrator account so a fresh
// database has a working login.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	employeeRepo := appRepos.NewEmployeeRepository(dbPool)

	_, err := employeeRepo.GetByEmployeeID(ctx, DefaultAdminID)
	if err == nil {
		lgr.Info().Str("employeeId", DefaultAdminID).Msg("Administrator account already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, apperrors.ErrEmployeeNotFound) {
		lgr.Error().Err(err).Msg("Error checking for administrator account")
		return err
	}

	password := cfg.Seed.AdminPassword
	if password == "" {
		password = defaultAdminPassword
		lgr.Warn().Msg("No seed admin password configured, using the built-in default")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing administrator password")
		return err
	}

	admin := &appModels.Employee{
		EmployeeID:        DefaultAdminID,
		FirstName:         "System",
		LastName:          "Administrator",
		Password:          hashedPassword,
		Role:              appModels.RoleAdministrator,
		PrimaryEmail:      "admin@pca.edu",
		PTOHoursEnabled:   false,
		ExtraHoursEnabled: false,
		IsEnabled:         true,
	}

	if err := employeeRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have seeded it first.
		if errors.Is(err, apperrors.ErrEmployeeAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Administrator account created concurrently, skipping seed")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating administrator account")
		return err
	}

	lgr.Info().Str("employeeId", DefaultAdminID).Msg("Default administrator account created")
	return nil
}
