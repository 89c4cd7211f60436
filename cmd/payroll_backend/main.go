package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/zenitherp/payroll_backend/cmd/docs"
	"github.com/zenitherp/payroll_backend/internal/apperrors"
	portsrepo "github.com/zenitherp/payroll_backend/internal/core/ports/repositories"
	portssvc "github.com/zenitherp/payroll_backend/internal/core/ports/services"
	"github.com/zenitherp/payroll_backend/internal/core/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
	"github.com/zenitherp/payroll_backend/internal/handlers"
	"github.com/zenitherp/payroll_backend/internal/middleware"
	"github.com/zenitherp/payroll_backend/internal/platform/config"
	"github.com/zenitherp/payroll_backend/internal/platform/database"
	"github.com/zenitherp/payroll_backend/internal/repositories/database/pgsql"
)

// @title Payroll Backend API
// @version 1.0
// @description Payroll computation and double-entry ledger posting service.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if err := bootstrapAdmin(context.Background(), cfg, repos, serviceContainer, logger); err != nil {
		logger.Error("Failed to bootstrap admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := setupRouter(cfg, logger, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations using a short-lived
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// bootstrapAdmin seeds the first user so a fresh deployment can log in.
// It does nothing when BOOTSTRAP_ADMIN_PASSWORD is unset or the user exists.
func bootstrapAdmin(
	ctx context.Context,
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	svc *portssvc.ServiceContainer,
	logger *slog.Logger,
) error {
	if cfg.BootstrapAdminPassword == "" {
		return nil
	}

	_, err := repos.UserRepo.FindUserByUsername(ctx, cfg.BootstrapAdminUser)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	user, err := svc.User.CreateUser(ctx, dto.CreateUserRequest{
		Username: cfg.BootstrapAdminUser,
		Password: cfg.BootstrapAdminPassword,
		Role:     "ADMIN",
	}, "system")
	if err != nil {
		return err
	}
	logger.Info("Bootstrap admin user created", slog.String("user_id", user.UserID))
	return nil
}

// setupRouter builds the gin engine with the global middleware chain.
func setupRouter(cfg *config.Config, logger *slog.Logger, svc *portssvc.ServiceContainer) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(corsMiddleware(cfg))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT value, defaulting to 100-M", slog.String("value", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svc)
	return r
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}
