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

	appControllers "github.com/pcaproject/timesheet-server/internal/app/controllers"
	appMigrations "github.com/pcaproject/timesheet-server/internal/app/migrations"
	appRepos "github.com/pcaproject/timesheet-server/internal/app/repositories"
	appRoutes "github.com/pcaproject/timesheet-server/internal/app/routes"
	appServices "github.com/pcaproject/timesheet-server/internal/app/services"
	"github.com/pcaproject/timesheet-server/internal/config"
	"github.com/pcaproject/timesheet-server/internal/db"
	appMiddleware "github.com/pcaproject/timesheet-server/internal/middleware"
	pkgAuth "github.com/pcaproject/timesheet-server/internal/pkg/auth"
	"github.com/pcaproject/timesheet-server/internal/pkg/helpers"
	"github.com/pcaproject/timesheet-server/internal/pkg/logger"
	"github.com/pcaproject/timesheet-server/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	EmployeeService     appServices.EmployeeService
	StudentService      appServices.StudentService
	TimeSheetService    appServices.TimeSheetService
	CareService         appServices.CareService
	AuthController      *appControllers.AuthController
	EmployeeController  *appControllers.EmployeeController
	StudentController   *appControllers.StudentController
	TimeSheetController *appControllers.TimeSheetController
	CareController      *appControllers.CareController
	StatusController    *appControllers.StatusController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
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

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
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
	migrator := appMigrations.NewMigrator(database)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	careWindows, err := appServices.NewCareWindows(
		cfg.StudentCare.BeforeCareOpensAt,
		cfg.StudentCare.BeforeCareClosesAt,
		cfg.StudentCare.AfterCareOpensAt,
		cfg.StudentCare.AfterCareClosesAt,
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Invalid care window configuration")
		return nil, fmt.Errorf("invalid care window configuration: %w", err)
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.EmployeeRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.EmployeeRepository, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.TimeSheetService = appServices.NewTimeSheetService(deps.Repos.TimeSheetRepository, deps.Repos.EmployeeRepository, lgr)
	deps.CareService = appServices.NewCareService(deps.Repos.CareRepository, deps.Repos.StudentRepository, careWindows, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.TimeSheetController = appControllers.NewTimeSheetController(deps.TimeSheetService, lgr)
	deps.CareController = appControllers.NewCareController(deps.CareService, lgr)
	deps.StatusController = appControllers.NewStatusController()

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EmployeeController,
		deps.StudentController,
		deps.TimeSheetController,
		deps.CareController,
		deps.StatusController,
		deps.AuthMiddleware,
	)

	return router
}
