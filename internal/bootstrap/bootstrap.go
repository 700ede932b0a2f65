// Package bootstrap wires configuration, database, repositories,
// services, controllers and routes together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unistages/backend/internal/app/controllers"
	appMigrations "github.com/unistages/backend/internal/app/migrations"
	"github.com/unistages/backend/internal/app/repositories"
	"github.com/unistages/backend/internal/app/routes"
	"github.com/unistages/backend/internal/app/services"
	"github.com/unistages/backend/internal/config"
	"github.com/unistages/backend/internal/db"
	"github.com/unistages/backend/internal/middleware"
	"github.com/unistages/backend/internal/pkg/auth"
	"github.com/unistages/backend/internal/pkg/logger"
	"github.com/unistages/backend/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Repos *repositories.Repositories

	AuthService       services.AuthService
	FacultyService    services.FacultyService
	DepartmentService services.DepartmentService
	PromotionService  services.PromotionService
	CompanyService    services.CompanyService
	TeacherService    services.TeacherService
	StudentService    services.StudentService
	InternshipService services.InternshipService
	ReportService     services.ReportService

	Controllers    *routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	JWTService     *auth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and configures the
// global logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})
	logger.Info().Str("logLevel", cfg.Logging.Level).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds
// default data.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := db.NewPgxPool(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	migrationsDir := "migrations"
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		migrationsDir = v
	}
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(ctx, pool, &cfg.Seed); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}
	return pool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(pool)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.JWT.AccessExpiry(),
		RefreshTokenExp: cfg.JWT.RefreshExpiry(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = services.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		pool,
	)
	deps.FacultyService = services.NewFacultyService(deps.Repos.FacultyRepository)
	deps.DepartmentService = services.NewDepartmentService(
		deps.Repos.DepartmentRepository,
		deps.Repos.FacultyRepository,
	)
	deps.PromotionService = services.NewPromotionService(
		deps.Repos.PromotionRepository,
		deps.Repos.DepartmentRepository,
	)
	deps.CompanyService = services.NewCompanyService(deps.Repos.CompanyRepository)
	deps.TeacherService = services.NewTeacherService(
		deps.Repos.TeacherRepository,
		deps.Repos.UserRepository,
		deps.Repos.DepartmentRepository,
		pool,
	)
	deps.StudentService = services.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.UserRepository,
		deps.Repos.PromotionRepository,
		pool,
	)
	deps.InternshipService = services.NewInternshipService(
		deps.Repos.InternshipRepository,
		deps.Repos.StudentRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.CompanyRepository,
		pool,
	)
	deps.ReportService = services.NewReportService(deps.Repos.InternshipRepository)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)
	deps.Controllers = &routes.Controllers{
		Auth:       controllers.NewAuthController(deps.AuthService),
		Faculty:    controllers.NewFacultyController(deps.FacultyService),
		Department: controllers.NewDepartmentController(deps.DepartmentService),
		Promotion:  controllers.NewPromotionController(deps.PromotionService),
		Company:    controllers.NewCompanyController(deps.CompanyService),
		Teacher:    controllers.NewTeacherController(deps.TeacherService),
		Student:    controllers.NewStudentController(deps.StudentService),
		Internship: controllers.NewInternshipController(deps.InternshipService, deps.StudentService),
		Report:     controllers.NewReportController(deps.ReportService),
	}
	return deps
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Logging.Level) != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.Setup(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
