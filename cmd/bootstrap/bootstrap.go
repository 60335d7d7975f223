package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-appointment-system/config"
	deliveryHttp "clinic-appointment-system/internal/delivery/http"
	"clinic-appointment-system/internal/delivery/http/handler"
	"clinic-appointment-system/internal/delivery/http/middleware"
	"clinic-appointment-system/internal/domain/entity"
	"clinic-appointment-system/internal/infrastructure/cache"
	"clinic-appointment-system/internal/infrastructure/database"
	"clinic-appointment-system/internal/repository"
	"clinic-appointment-system/internal/service"
	"clinic-appointment-system/internal/usecase"
	"clinic-appointment-system/pkg/jwt"
	"clinic-appointment-system/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema and reference-data migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Seed the initial administrator account
	if err := seedAdmin(db, cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedAdmin makes sure one administrator account exists. The credentials
// come from the ADMIN_* environment variables.
func seedAdmin(db *gorm.DB, cfg config.AdminConfig) error {
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	passwordService := service.NewPasswordService()

	role, err := roleRepo.FindByName(db, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("admin role missing, reference-data migration did not run")
	}

	existing, err := userRepo.FindByEmail(db, cfg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := passwordService.Hash(cfg.Password)
	if err != nil {
		return err
	}

	active := true
	admin := &entity.User{
		Email:    cfg.Email,
		Password: hashedPassword,
		FullName: cfg.FullName,
		RoleID:   role.ID,
		IsActive: &active,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logrus.Infof("Seeded administrator account %s", cfg.Email)
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	tokenService := service.NewTokenService(redisClient, log)
	passwordService := service.NewPasswordService()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	departmentRepo := repository.NewDepartmentRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	treatmentRepo := repository.NewTreatmentRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientProfileRepo, doctorProfileRepo, jwtService, tokenService, passwordService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, userRepo, doctorProfileRepo, departmentRepo, tokenService, passwordService)
	patientUsecase := usecase.NewPatientUsecase(db, log, userRepo, patientProfileRepo, tokenService, passwordService)
	departmentUsecase := usecase.NewDepartmentUsecase(db, log, departmentRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, availabilityRepo, doctorProfileRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, availabilityRepo, doctorProfileRepo, treatmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	departmentHandler := handler.NewDepartmentHandler(departmentUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenService)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		patientHandler,
		departmentHandler,
		availabilityHandler,
		appointmentHandler,
		authMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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
