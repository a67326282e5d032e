package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/be3health/patient-registry/internal/config"
	v1 "github.com/be3health/patient-registry/internal/handler/v1"
	"github.com/be3health/patient-registry/internal/repository"
	"github.com/be3health/patient-registry/internal/service"
	"github.com/be3health/patient-registry/internal/validation"
	"github.com/be3health/patient-registry/pkg/auth"
	"github.com/be3health/patient-registry/pkg/database"
	"github.com/be3health/patient-registry/pkg/logger"
	"github.com/be3health/patient-registry/pkg/metrics"
	"github.com/be3health/patient-registry/pkg/tracer"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	collector := metrics.NewCollector(strings.ReplaceAll(cfg.App.Name, "-", "_"))

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				collector.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
			}
		}()
	}

	patientRepo := repository.NewPatientRepository(db)
	planRepo := repository.NewPlanRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	jwtManager := auth.NewJWTManager(cfg.JWT)
	auditSvc := service.NewAuditService(auditRepo, collector, log)
	defer auditSvc.Shutdown()

	validator := validation.NewPatientValidator(patientRepo, planRepo)
	patientSvc := service.NewPatientService(patientRepo, validator, auditSvc, collector, log)
	planSvc := service.NewPlanService(planRepo)
	authSvc := service.NewAuthService(userRepo, jwtManager, auditSvc, log)

	router := v1.NewRouter(v1.RouterDeps{
		Config:     cfg,
		Log:        log,
		Collector:  collector,
		JWTManager: jwtManager,
		Patients:   v1.NewPatientHandler(patientSvc, log),
		Plans:      v1.NewPlanHandler(planSvc, log),
		Auth:       v1.NewAuthHandler(authSvc, log),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
