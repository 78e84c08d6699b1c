package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/employee-registry/internal/config"
	"github.com/employee-registry/internal/database"
	"github.com/employee-registry/internal/feedback"
	"github.com/employee-registry/internal/handler"
	"github.com/employee-registry/internal/metrics"
	"github.com/employee-registry/internal/repository"
	"github.com/employee-registry/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// Открытие базы и миграции схемы
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.New(registry)

	// Инициализация слоёв
	empRepo := repository.NewEmployeeRepository(db)
	notifier := feedback.NewNotifier(cfg.Feedback.TTL)
	empService := service.NewEmployeeService(empRepo, notifier, storeMetrics, logger)

	// Первичная загрузка списка, сбой не мешает запуску
	if err := empService.Initialize(context.Background()); err != nil {
		logger.Error("initial list failed", slog.Any("error", err))
	}

	empHandler := handler.NewEmployeeHandler(empService, notifier, logger)
	pageHandler := handler.NewPageHandler(empService, notifier, logger)

	// Настройка роутера
	router := handler.NewRouter(empHandler, pageHandler,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
