package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/config"
	appHTTP "github.com/YeharaMewan/rise-hr-backend/internal/handler/http"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/database"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/jwt"
	"github.com/YeharaMewan/rise-hr-backend/internal/repository/mongodb"
	"github.com/YeharaMewan/rise-hr-backend/internal/scheduler"
	allocationService "github.com/YeharaMewan/rise-hr-backend/internal/service/allocation"
	attendanceService "github.com/YeharaMewan/rise-hr-backend/internal/service/attendance"
	authService "github.com/YeharaMewan/rise-hr-backend/internal/service/auth"
	dashboardService "github.com/YeharaMewan/rise-hr-backend/internal/service/dashboard"
	personService "github.com/YeharaMewan/rise-hr-backend/internal/service/person"
	taskService "github.com/YeharaMewan/rise-hr-backend/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
		cancelIndex()
		logger.Error("Error creating indexes", "error", err)
		os.Exit(1)
	}
	cancelIndex()

	personRepo := mongodb.NewPersonRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	snapshotRepo := mongodb.NewSnapshotRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(personRepo, jwtService)
	personSvc := personService.NewPersonService(personRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, personRepo, cfg.Time.OffsetMinutes)
	taskSvc := taskService.NewTaskService(taskRepo, personRepo)
	allocationSvc := allocationService.NewAllocationService(snapshotRepo, personRepo, attendanceRepo, taskRepo, cfg.Time.OffsetMinutes, logger)
	dashboardSvc := dashboardService.NewDashboardService(personRepo, attendanceRepo, taskRepo, snapshotRepo, cfg.Time.OffsetMinutes, logger)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	allocationHandler := appHTTP.NewAllocationHandler(allocationSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	personHandler := appHTTP.NewPersonHandler(personSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		dashboardHandler,
		attendanceHandler,
		allocationHandler,
		taskHandler,
		personHandler,
	)

	var autoSave *scheduler.AutoSave
	if cfg.AutoSave.Enabled {
		autoSave = scheduler.NewAutoSave(cfg.AutoSave.Interval, allocationSvc.AutoSave, logger)
		if err := autoSave.Start(); err != nil {
			logger.Error("Error starting auto-save scheduler", "error", err)
			os.Exit(1)
		}
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Server running", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if autoSave != nil {
		autoSave.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("Database close error", "error", err)
	}
}
