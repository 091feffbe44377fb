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

	adminLoginHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/admin_logout"
	createBookingHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/delete_booking"
	exportBookingsHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/export_bookings"
	getAvailableMonthsHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/get_available_months"
	listBookingsHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/handlers/update_booking_status"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/api/middleware"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/internal/config"
	bookingRepo "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/infra/storage/booking"
	mailServiceClient "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/integrations/mailservice"
	pushServiceClient "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/integrations/pushservice"
	authService "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/auth"
	bookingsService "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/service/bookings"
	createBookingUC "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/create_booking"
	getAvailableMonthsUC "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/get_available_months"
	updateBookingStatusUC "github.com/autoscuoleaba/ABA-PrenotazioniService/internal/usecase/update_booking_status"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/pkg/dbmetrics"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/pkg/logger"
	"github.com/autoscuoleaba/ABA-PrenotazioniService/pkg/metrics"
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

	log.Info("Starting ABA-PrenotazioniService...")
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

	// Инициализируем интеграционных клиентов
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		cfg.MailService.Token,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	pushClient := pushServiceClient.NewClient(
		cfg.PushService.URL,
		cfg.PushService.Channel,
		time.Duration(cfg.PushService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (MailService=%s timeout=%ds, PushService=%s channel=%s)",
		cfg.MailService.URL, cfg.MailService.Timeout, cfg.PushService.URL, cfg.PushService.Channel)

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	authSvc := authService.NewService(
		cfg.Auth.PasswordHash,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		pushClient,
		log,
	)
	getAvailableMonthsUseCase := getAvailableMonthsUC.NewUseCase(log)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		mailClient,
		pushClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableMonths := getAvailableMonthsHandler.NewHandler(getAvailableMonthsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма записи, без аутентификации)
	// ============================================================

	// Окно предлагаемых месяцев с подсказками по срочности
	api.HandleFunc("/months", getAvailableMonths.Handle).Methods(http.MethodGet)

	// Создание заявки на экзамен
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен админской сессии)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// Список заявок со счётчиками панели
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Экспорт заявок в CSV
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// Смена статуса заявки
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Удаление заявки
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Завершение сессии
	protected.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)

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
