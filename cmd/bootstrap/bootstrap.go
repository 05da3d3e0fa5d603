package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medcare-admin/config"
	deliveryHttp "medcare-admin/internal/delivery/http"
	"medcare-admin/internal/delivery/http/handler"
	"medcare-admin/internal/delivery/http/middleware"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/infrastructure/cache"
	"medcare-admin/internal/infrastructure/database"
	"medcare-admin/internal/service"
	"medcare-admin/internal/usecase"
	"medcare-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	Log          *logrus.Logger
	DB           *gorm.DB
	RedisClient  *redis.Client
	Server       *http.Server
	repositories *repositories
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app, err := Init()
	if err != nil {
		return nil, err
	}

	app.Server = app.initializeServer()
	return app, nil
}

// Init loads the configuration and opens the data sources without building the HTTP server.
func Init() (*App, error) {
	app, err := Configure()
	if err != nil {
		return nil, err
	}

	if err := app.openDataSources(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// Configure sets up logging and loads the configuration only.
func Configure() (*App, error) {
	log := setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyLogLevel(log, cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	return &App{Config: cfg, Log: log}, nil
}

// OpenDatabase connects to the configured SQL database regardless of DATA_SOURCE.
func (app *App) OpenDatabase() (*gorm.DB, error) {
	if app.DB != nil {
		return app.DB, nil
	}

	db, err := database.NewConnection(app.Config.DB, app.Config.App.Location, app.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	return db, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

func applyLogLevel(log *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", level)
		return
	}
	log.SetLevel(parsed)
}

func (app *App) openDataSources() error {
	cfg := app.Config

	switch cfg.App.DataSource {
	case config.DataSourceDatabase:
		db, err := app.OpenDatabase()
		if err != nil {
			return err
		}
		app.repositories = newDatabaseRepositories(db)
		app.Log.Info("Serving records from the database")
	default:
		app.repositories = newMemoryRepositories(time.Now().In(cfg.App.Location))
		app.Log.Info("Serving records from the built-in sample data")
	}

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, app.Log)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	}

	return nil
}

func (app *App) snapshotCache() service.SnapshotCache {
	if app.RedisClient == nil {
		return service.NewNoopSnapshotCache()
	}
	return service.NewRedisSnapshotCache(app.RedisClient, app.Config.Redis.TTL, app.Log)
}

func (app *App) slotPolicy() entity.SlotPolicy {
	policy, err := entity.ParseSlotPolicy(app.Config.Schedule.SlotPolicy)
	if err != nil {
		app.Log.Warnf("Unknown SCHEDULE_SLOT_POLICY %q, using %s", app.Config.Schedule.SlotPolicy, entity.SlotPolicyToken)
		return entity.SlotPolicyToken
	}
	return policy
}

// AppointmentUsecase builds the scheduler usecase with the given slot policy.
func (app *App) AppointmentUsecase(policy entity.SlotPolicy) usecase.AppointmentUsecase {
	return usecase.NewAppointmentUsecase(app.Log, app.repositories.appointment, policy, app.Config.App.Location)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	cfg := app.Config
	log := app.Log
	repos := app.repositories

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	snapshotCache := app.snapshotCache()
	activityService := service.NewActivityService(log, repos.activity, snapshotCache)

	// Initialize usecases
	dashboardUsecase := usecase.NewDashboardUsecase(log, repos.patient, repos.doctor, repos.appointment, repos.activity, repos.report, snapshotCache, cfg.App.Location)
	activityUsecase := usecase.NewActivityUsecase(log, repos.activity)
	patientUsecase := usecase.NewPatientUsecase(log, repos.patient, cfg.App.PatientsPageSize)
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.doctor)
	appointmentUsecase := app.AppointmentUsecase(app.slotPolicy())
	reportUsecase := usecase.NewReportUsecase(log, repos.report, snapshotCache)
	settingsUsecase := usecase.NewSettingsUsecase(log, repos.settings, activityService)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, activityUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)
	settingsHandler := handler.NewSettingsHandler(settingsUsecase, customValidator)

	// Initialize middleware
	requestMiddleware := middleware.NewRequestMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		dashboardHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		reportHandler,
		settingsHandler,
		requestMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
