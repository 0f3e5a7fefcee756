package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/lms/internal/app/auth"
	appControllers "github.com/yigit/lms/internal/app/controllers"
	appMigrations "github.com/yigit/lms/internal/app/migrations"
	appRepos "github.com/yigit/lms/internal/app/repositories"
	appRoutes "github.com/yigit/lms/internal/app/routes"
	appServices "github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/app/templates"
	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/db"
	appMiddleware "github.com/yigit/lms/internal/middleware"
	pkgAuth "github.com/yigit/lms/internal/pkg/auth"
	"github.com/yigit/lms/internal/pkg/logger"
	schema "github.com/yigit/lms/migrations"
)

// DefaultConfigPath is used when no explicit config file is given.
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the pool and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if _, err := RunMigrations(ctx, cfg, database, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// RunMigrations applies the schema from cfg.Database.MigrationsDir, or from
// the embedded set when no directory is configured.
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) ([]string, error) {
	var source fs.FS = schema.FS
	if dir := cfg.Database.MigrationsDir; dir != "" {
		if _, err := os.Stat(dir); err != nil {
			lgr.Error().Str("path", dir).Msg("Migrations directory not found")
			return nil, fmt.Errorf("migrations directory not found at %s: %w", dir, err)
		}
		source = os.DirFS(dir)
	}

	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database.Pool, lgr).Apply(ctx, source)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return applied, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", len(applied)).Msg("Database migrations successfully applied.")
	return applied, nil
}

// NewJWTService builds the token service from the jwt config section.
func NewJWTService(cfg *config.Config) (*pkgAuth.JWTService, error) {
	exp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid jwt access_token_expiration: %w", err)
	}
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: exp,
		TokenIssuer:    cfg.JWT.Issuer,
	}), nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Services = appServices.NewServices(deps.Repos, database, lgr)

	var err error
	deps.JWTService, err = NewJWTService(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.JWT.Secret == "" {
		lgr.Warn().Msg("JWT_SECRET is empty; protected endpoints will reject every request")
	}

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Services.Courses, deps.Services.Assignments)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Services.Users)

	deps.Controllers = appRoutes.Controllers{
		Users:       appControllers.NewUserController(deps.Services.Users, deps.Services.Enrollments),
		Courses:     appControllers.NewCourseController(deps.Services.Courses, deps.Services.Enrollments, deps.Services.Assignments, deps.AuthzService),
		Assignments: appControllers.NewAssignmentController(deps.Services.Assignments, deps.AuthzService),
		Analytics:   appControllers.NewAnalyticsController(deps.Services.Analytics),
		Pages:       appControllers.NewPageController(deps.Services.Courses),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database *db.PostgresDB, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	if err := appMiddleware.ConfigureValidator(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, func(c *gin.Context) error {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		return database.Ping(ctx)
	})

	return router, nil
}
