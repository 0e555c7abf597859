package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers/get_booking"
	getPerformanceHandler "github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers/get_performance"
	listCocktailsHandler "github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers/list_cocktails"
	"github.com/m04kA/Aristocrat-ReservationService/internal/api/middleware"
	"github.com/m04kA/Aristocrat-ReservationService/internal/config"
	"github.com/m04kA/Aristocrat-ReservationService/internal/infra/catalog"
	cocktailsService "github.com/m04kA/Aristocrat-ReservationService/internal/service/cocktails"
	createBookingUC "github.com/m04kA/Aristocrat-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/Aristocrat-ReservationService/pkg/logger"
	"github.com/m04kA/Aristocrat-ReservationService/pkg/metrics"
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

	log.Info("Starting Aristocrat-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Коктейльная карта статична и живет в памяти процесса
	catalogRepository := catalog.NewRepository()

	// Инициализируем сервисы
	cocktailsSvc := cocktailsService.NewService(catalogRepository, log)

	// Инициализируем use cases
	var bookingMetrics createBookingUC.Metrics = createBookingUC.NopMetrics{}
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}
	createBookingUseCase := createBookingUC.NewUseCase(
		time.Duration(cfg.Booking.ProcessingDelayMS)*time.Millisecond,
		bookingMetrics,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(log)
	listCocktails := listCocktailsHandler.NewHandler(cocktailsSvc, log)
	getPerformance := getPerformanceHandler.NewHandler(getPerformanceHandler.SiteInfo{
		Region:    cfg.Site.Region,
		BuildTime: cfg.Site.BuildTime,
		Version:   cfg.Site.Version,
	}, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Создание заявки на бронирование
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования (заглушка, хранилища нет)
	api.HandleFunc("/bookings", getBooking.Handle).Methods(http.MethodGet)

	// Коктейльная карта
	api.HandleFunc("/cocktails", listCocktails.Handle).Methods(http.MethodGet)

	// Сведения о сервисе
	api.HandleFunc("/performance", getPerformance.Handle).Methods(http.MethodGet)

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
