package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getBookingFormHandler "github.com/alex-kodr/bookings-dropdown-service/internal/api/handlers/get_booking_form"
	refreshDatesHandler "github.com/alex-kodr/bookings-dropdown-service/internal/api/handlers/refresh_dates"
	"github.com/alex-kodr/bookings-dropdown-service/internal/api/middleware"
	"github.com/alex-kodr/bookings-dropdown-service/internal/config"
	bookingRepo "github.com/alex-kodr/bookings-dropdown-service/internal/infra/storage/booking"
	productServiceClient "github.com/alex-kodr/bookings-dropdown-service/internal/integrations/productservice"
	"github.com/alex-kodr/bookings-dropdown-service/internal/pickers"
	capacityService "github.com/alex-kodr/bookings-dropdown-service/internal/service/capacity"
	buildBookingFormUC "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/build_booking_form"
	refreshDatesUC "github.com/alex-kodr/bookings-dropdown-service/internal/usecase/refresh_dates"
	"github.com/alex-kodr/bookings-dropdown-service/pkg/dbmetrics"
	"github.com/alex-kodr/bookings-dropdown-service/pkg/logger"
	"github.com/alex-kodr/bookings-dropdown-service/pkg/metrics"
	"github.com/alex-kodr/bookings-dropdown-service/pkg/nonce"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting bookings-dropdown-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент продуктового сервиса
	productClient := productServiceClient.NewClient(
		cfg.ProductService.URL,
		time.Duration(cfg.ProductService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProductService=%s timeout=%ds)",
		cfg.ProductService.URL, cfg.ProductService.Timeout)

	// Инициализируем сервис anti-forgery токенов
	nonceService, err := nonce.NewService(
		cfg.Security.NonceSecret,
		time.Duration(cfg.Security.NonceTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatal("Failed to initialize nonce service: %v", err)
	}

	// Инициализируем репозиторий бронирований (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем capacity-резолвер
	capacitySvc := capacityService.NewService(
		bookingRepository,
		productClient,
		metricsCollector, // nil-безопасен при выключенных метриках
		log,
	)

	// Реестр picker-стратегий: гранулярность бронирования → стратегия
	pickerRegistry := pickers.NewRegistry(bookingRepository)

	// Инициализируем use cases
	buildBookingFormUseCase := buildBookingFormUC.NewUseCase(
		productClient,
		capacitySvc,
		pickerRegistry,
		log,
	)
	refreshDatesUseCase := refreshDatesUC.NewUseCase(
		productClient,
		capacitySvc,
		pickerRegistry,
		log,
	)

	// Инициализируем handlers
	getBookingForm := getBookingFormHandler.NewHandler(buildBookingFormUseCase, nonceService, log)
	refreshDates := refreshDatesHandler.NewHandler(refreshDatesUseCase, nonceService, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Статика клиентского скрипта
	r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.Dir("assets"))))

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Поля формы бронирования с выпадающим списком дат
	api.HandleFunc("/products/{productId}/booking-form", getBookingForm.Handle).Methods(http.MethodGet)

	// Пересчёт дат при смене ресурса
	api.HandleFunc("/refresh-dates", refreshDates.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
