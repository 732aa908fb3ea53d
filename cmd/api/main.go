package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-scheduler/docs"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/handler"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/external/zoom"
	httpmw "github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/auth"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/company"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/minutes"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/user"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/videomeeting"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
	"github.com/johnquangdev/meeting-scheduler/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/meeting-scheduler/pkg/validator"
	"github.com/johnquangdev/meeting-scheduler/web"
)

// @title           Meeting Scheduler API
// @version         1.0
// @description     Companies, client meetings, minutes and Zoom scheduling for an internal team.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

type blocklist interface {
	auth.TokenBlocklist
	Close() error
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("invalid timezone", zap.Error(err))
	}

	// Initialize Database
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Schema is normally managed with cmd/migrate; auto-migrate is a
	// development convenience and is refused in production by config validation.
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db, logger); err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	// Token blocklist: Redis when enabled so every instance sees revocations
	var revoked blocklist
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis, cfg.Database.ConnectTimeout, logger)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		revoked = cache.NewRedisBlocklist(redisClient)
	} else {
		logger.Info("redis disabled, revoked tokens are kept in memory")
		revoked = cache.NewMemoryBlocklist()
	}
	defer revoked.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	minutesRepo := repository.NewMinutesRepository(db)
	videoMeetingRepo := repository.NewVideoMeetingRepository(db)

	// Zoom stays optional; without credentials creating a video meeting fails
	var zoomClient zoom.Client
	if cfg.ZoomEnabled() {
		zoomClient = zoom.NewClient(cfg.Zoom, &http.Client{Timeout: cfg.Zoom.Timeout})
	} else {
		logger.Warn("zoom credentials not set, video meeting creation is disabled")
	}

	// Initialize services
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authService := auth.NewAuthService(userRepo, jwtManager, revoked, logger)
	userService := user.NewUserService(userRepo, logger)
	companyService := company.NewCompanyService(companyRepo, logger)
	meetingService := meeting.NewMeetingService(meetingRepo, loc, logger)
	minutesService := minutes.NewMinutesService(minutesRepo, logger)
	videoMeetingService := videomeeting.NewVideoMeetingService(zoomClient, videoMeetingRepo, loc, logger)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger, cfg.IsProduction())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(httpmw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	router := handler.NewRouter(cfg, authService, handler.Handlers{
		Auth:    handler.NewAuth(authService, cfg.IsProduction()),
		User:    handler.NewUser(userService),
		Company: handler.NewCompany(companyService),
		Meeting: handler.NewMeeting(meetingService),
		Minutes: handler.NewMinutes(minutesService),
		Zoom:    handler.NewZoom(videoMeetingService),
	}, web.Static())
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("timezone", loc.String()),
		)

		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped gracefully")
}
