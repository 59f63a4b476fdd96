package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/necfeedback/coursefeedback/internal/app/controllers"
	appMigrations "github.com/necfeedback/coursefeedback/internal/app/migrations"
	appRepos "github.com/necfeedback/coursefeedback/internal/app/repositories"
	appRoutes "github.com/necfeedback/coursefeedback/internal/app/routes"
	appServices "github.com/necfeedback/coursefeedback/internal/app/services"
	"github.com/necfeedback/coursefeedback/internal/config"
	"github.com/necfeedback/coursefeedback/internal/db"
	appMiddleware "github.com/necfeedback/coursefeedback/internal/middleware"
	pkgAuth "github.com/necfeedback/coursefeedback/internal/pkg/auth"
	"github.com/necfeedback/coursefeedback/internal/pkg/email"
	"github.com/necfeedback/coursefeedback/internal/pkg/filestorage"
	"github.com/necfeedback/coursefeedback/internal/pkg/helpers"
	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
	"github.com/necfeedback/coursefeedback/internal/seed"
)

// DefaultConfigPath is where the YAML configuration is looked up
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	CourseService       appServices.CourseService
	CourseImportService appServices.CourseImportService
	QuestionService     appServices.QuestionService
	StudentService      appServices.StudentService
	FeedbackService     appServices.FeedbackService
	Controllers         appRoutes.Controllers
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	FileStorage         *filestorage.LocalStorage
	Logger              zerolog.Logger
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

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies pending migrations from the configured directory.
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// PrepareDatabase connects, migrates and seeds the default questionnaire.
func PrepareDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := RunMigrations(ctx, cfg, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	if err := seed.CreateDefaultData(ctx, appRepos.NewQuestionRepository(database.Pool), lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	if !cfg.MailConfigured() {
		lgr.Warn().Msg("Mail is not configured, feedback confirmations will be skipped")
	}
	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		FromName: cfg.Mail.FromName,
		UseTLS:   cfg.Mail.UseTLS,
	}, logger.Component("mail"))

	repos := deps.Repos
	deps.AuthService = appServices.NewAuthService(repos.AdminRepository, repos.StudentRepository, deps.JWTService, cfg.Institution.EmailDomain, logger.Component("auth"))
	deps.CourseService = appServices.NewCourseService(repos.CourseRepository, logger.Component("courses"))
	deps.CourseImportService = appServices.NewCourseImportService(repos.CourseRepository, logger.Component("course-import"))
	deps.QuestionService = appServices.NewQuestionService(repos.QuestionRepository, logger.Component("questions"))
	deps.StudentService = appServices.NewStudentService(repos.StudentRepository, repos.CourseRepository, logger.Component("students"))
	deps.FeedbackService = appServices.NewFeedbackService(
		repos.FeedbackRepository,
		repos.StudentRepository,
		repos.AdminRepository,
		notifier,
		appServices.SenderConfig{
			Override:    cfg.Mail.From,
			AdminEmail:  cfg.Mail.AdminEmail,
			AccountUser: cfg.Mail.Username,
		},
		logger.Component("feedback"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(deps.AuthService),
		Course:   appControllers.NewCourseController(deps.CourseService),
		Upload:   appControllers.NewUploadController(deps.CourseImportService, deps.FileStorage, cfg.Server.MaxUploadBytes, logger.Component("upload")),
		Question: appControllers.NewQuestionController(deps.QuestionService),
		Student:  appControllers.NewStudentController(deps.StudentService, deps.CourseService),
		Feedback: appControllers.NewFeedbackController(deps.FeedbackService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.Default()
	if cfg.Server.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = cfg.Server.MaxUploadBytes
	}
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.ExposeHeaders = []string{"Content-Disposition"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
