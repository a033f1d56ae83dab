package api

import (
	"path/filepath"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitstack/exercise-tracker/internal/api/handler"
	"github.com/fitstack/exercise-tracker/internal/core/service"
	mongostore "github.com/fitstack/exercise-tracker/internal/infrastructure/db/mongo"
	redisstore "github.com/fitstack/exercise-tracker/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, staticDir string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("exercise_tracker"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	exerciseRepo := mongostore.NewExerciseRepository(db)
	userCache := redisstore.NewUserCache(rdb)

	userService := service.NewUserService(userRepo, log)
	exerciseService := service.NewExerciseService(userRepo, exerciseRepo, userCache, log)

	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)

	// --- API routes ---
	e.GET("/api/users", userHandler.List)
	e.POST("/api/users", userHandler.Create)
	e.POST("/api/users/:_id/exercises", exerciseHandler.Add)
	e.GET("/api/users/:_id/logs", exerciseHandler.Logs)

	// --- Landing page and static assets ---
	e.File("/", filepath.Join(staticDir, "index.html"))
	e.Static("/public", staticDir)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
