// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/chia199712/Fitness-Web-sub000/internal/cache"
	"github.com/chia199712/Fitness-Web-sub000/internal/config"
	"github.com/chia199712/Fitness-Web-sub000/internal/handlers"
	"github.com/chia199712/Fitness-Web-sub000/internal/middleware"
	"github.com/chia199712/Fitness-Web-sub000/internal/repository"
	"github.com/chia199712/Fitness-Web-sub000/internal/service"
	"github.com/chia199712/Fitness-Web-sub000/internal/sheets"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config tells us the real format.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// Open (or create) the spreadsheet workbook backing all repositories.
	store, err := sheets.NewExcelStore(config.Cfg.Sheets.Path, logger)
	if err != nil {
		slog.Error("Error opening sheet store", slog.Any("error", err), slog.String("path", config.Cfg.Sheets.Path))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing sheet store", slog.Any("error", err))
		} else {
			slog.Info("Sheet store closed.")
		}
	}()

	// Dependency injection
	userRepo := repository.NewSheetUserRepository(store)
	exerciseRepo := repository.NewSheetExerciseRepository(store)
	workoutRepo := repository.NewSheetWorkoutRepository(store)
	weRepo := repository.NewSheetWorkoutExerciseRepository(store)
	setRepo := repository.NewSheetSetRepository(store)
	templateRepo := repository.NewSheetTemplateRepository(store)
	teRepo := repository.NewSheetTemplateExerciseRepository(store)
	achievementRepo := repository.NewSheetAchievementRepository(store)
	recordRepo := repository.NewSheetPersonalRecordRepository(store)
	settingsRepo := repository.NewSheetSettingsRepository(store)

	dashboardCache := cache.New()

	authService := service.NewAuthService(userRepo, settingsRepo, &config.Cfg)
	exerciseService := service.NewExerciseService(exerciseRepo, weRepo, teRepo)
	workoutService := service.NewWorkoutService(workoutRepo, weRepo, setRepo, exerciseRepo, templateRepo, teRepo, recordRepo)
	templateService := service.NewTemplateService(templateRepo, teRepo, exerciseRepo, workoutService)
	dashboardService := service.NewDashboardService(workoutRepo, weRepo, setRepo, exerciseRepo, achievementRepo, recordRepo, dashboardCache)
	settingsService := service.NewSettingsService(settingsRepo)

	if err := exerciseService.EnsureSeedExercises(context.Background()); err != nil {
		slog.Warn("Failed to seed the exercise catalog", slog.Any("error", err))
	}

	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(authService, logger)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService, logger)
	workoutHandler := handlers.NewWorkoutHandler(workoutService, logger)
	templateHandler := handlers.NewTemplateHandler(templateService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, &config.Cfg, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", userHandler.GetMe)
				r.Patch("/", userHandler.PatchMe)
			})

			r.Route("/exercises", func(r chi.Router) {
				r.Get("/", exerciseHandler.GetExercises)
				r.Post("/", exerciseHandler.PostExercise)
				r.Get("/{exercise_id}", exerciseHandler.GetExercise)
				r.Patch("/{exercise_id}", exerciseHandler.PatchExercise)
				r.Delete("/{exercise_id}", exerciseHandler.DeleteExercise)
			})

			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", workoutHandler.GetWorkouts)
				r.Post("/", workoutHandler.PostWorkout)
				r.Get("/{workout_id}", workoutHandler.GetWorkout)
				r.Patch("/{workout_id}", workoutHandler.PatchWorkout)
				r.Delete("/{workout_id}", workoutHandler.DeleteWorkout)

				r.Post("/{workout_id}/finish", workoutHandler.FinishWorkout)
				r.Post("/{workout_id}/cancel", workoutHandler.CancelWorkout)
				r.Post("/{workout_id}/pause", workoutHandler.PauseWorkout)
				r.Post("/{workout_id}/resume", workoutHandler.ResumeWorkout)

				r.Post("/{workout_id}/exercises", workoutHandler.PostWorkoutExercise)
				r.Delete("/{workout_id}/exercises/{workout_exercise_id}", workoutHandler.DeleteWorkoutExercise)

				r.Post("/{workout_id}/exercises/{workout_exercise_id}/sets", workoutHandler.PostSet)
				r.Patch("/{workout_id}/sets/{set_id}", workoutHandler.PatchSet)
				r.Delete("/{workout_id}/sets/{set_id}", workoutHandler.DeleteSet)
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", templateHandler.GetTemplates)
				r.Post("/", templateHandler.PostTemplate)
				r.Get("/{template_id}", templateHandler.GetTemplate)
				r.Patch("/{template_id}", templateHandler.PatchTemplate)
				r.Delete("/{template_id}", templateHandler.DeleteTemplate)

				r.Post("/{template_id}/exercises", templateHandler.PostTemplateExercise)
				r.Delete("/{template_id}/exercises/{template_exercise_id}", templateHandler.DeleteTemplateExercise)
				r.Post("/{template_id}/apply", templateHandler.PostApplyTemplate)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/overview", dashboardHandler.GetOverview)
				r.Get("/stats", dashboardHandler.GetStats)
				r.Get("/recent-workouts", dashboardHandler.GetRecentWorkouts)
				r.Get("/personal-records", dashboardHandler.GetPersonalRecords)
				r.Get("/calendar", dashboardHandler.GetCalendar)
				r.Get("/achievements", dashboardHandler.GetAchievements)
				r.Get("/progress", dashboardHandler.GetProgress)
				r.Get("/insights", dashboardHandler.GetInsights)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.GetSettings)
				r.Patch("/", settingsHandler.PatchSettings)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: sheet store unavailable", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
