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

	getConfirmationHandler "github.com/kiranchintala/app-booking/internal/api/handlers/get_confirmation"
	getDraftHandler "github.com/kiranchintala/app-booking/internal/api/handlers/get_draft"
	getScheduleHandler "github.com/kiranchintala/app-booking/internal/api/handlers/get_schedule"
	listServicesHandler "github.com/kiranchintala/app-booking/internal/api/handlers/list_services"
	removeServiceHandler "github.com/kiranchintala/app-booking/internal/api/handlers/remove_service"
	selectServicesHandler "github.com/kiranchintala/app-booking/internal/api/handlers/select_services"
	startSessionHandler "github.com/kiranchintala/app-booking/internal/api/handlers/start_session"
	submitBookingHandler "github.com/kiranchintala/app-booking/internal/api/handlers/submit_booking"
	updateDraftHandler "github.com/kiranchintala/app-booking/internal/api/handlers/update_draft"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
	"github.com/kiranchintala/app-booking/internal/config"
	"github.com/kiranchintala/app-booking/internal/infra/session"
	appointmentClient "github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
	catalogClient "github.com/kiranchintala/app-booking/internal/integrations/catalogservice"
	draftService "github.com/kiranchintala/app-booking/internal/service/draft"
	getConfirmationUC "github.com/kiranchintala/app-booking/internal/usecase/get_confirmation"
	getScheduleUC "github.com/kiranchintala/app-booking/internal/usecase/get_schedule"
	listServicesUC "github.com/kiranchintala/app-booking/internal/usecase/list_services"
	selectServicesUC "github.com/kiranchintala/app-booking/internal/usecase/select_services"
	submitBookingUC "github.com/kiranchintala/app-booking/internal/usecase/submit_booking"
	"github.com/kiranchintala/app-booking/pkg/clientmetrics"
	"github.com/kiranchintala/app-booking/pkg/logger"
	"github.com/kiranchintala/app-booking/pkg/metrics"
	"github.com/kiranchintala/app-booking/pkg/types"
)

// Интерфейсы интеграций, которым удовлетворяют и реальные клиенты, и моки
type catalog interface {
	ListServices(ctx context.Context) ([]catalogClient.Service, error)
}

type appointments interface {
	GetBookedSlots(ctx context.Context, date string) ([]string, error)
	CreateAppointment(ctx context.Context, req *appointmentClient.CreateAppointmentRequest) (*appointmentClient.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*appointmentClient.Appointment, error)
}

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

	log.Info("Starting booking-flow service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var integrationMetrics *clientmetrics.Collector

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		integrationMetrics = clientmetrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Окно расписания из конфигурации
	openTime, err := types.NewTimeStringFromString(cfg.Booking.OpenTime)
	if err != nil {
		log.Fatal("Invalid booking.open_time %q: %v", cfg.Booking.OpenTime, err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.Booking.CloseTime)
	if err != nil {
		log.Fatal("Invalid booking.close_time %q: %v", cfg.Booking.CloseTime, err)
	}

	// Инициализируем интеграционных клиентов (реальные или in-process моки)
	var (
		catalogAPI      catalog
		appointmentsAPI appointments
	)

	if cfg.Integrations.Mock {
		catalogAPI = catalogClient.NewMock()
		appointmentsAPI = appointmentClient.NewMock()
		log.Info("Integration mocks enabled: catalog and appointments served in-process")
	} else {
		catalogAPI = catalogClient.NewClient(
			cfg.CatalogService.URL,
			time.Duration(cfg.CatalogService.Timeout)*time.Second,
			log,
			integrationMetrics,
		)
		appointmentsAPI = appointmentClient.NewClient(
			cfg.AppointmentService.URL,
			time.Duration(cfg.AppointmentService.Timeout)*time.Second,
			log,
			integrationMetrics,
		)
		log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, AppointmentService=%s timeout=%ds)",
			cfg.CatalogService.URL, cfg.CatalogService.Timeout,
			cfg.AppointmentService.URL, cfg.AppointmentService.Timeout)
	}

	// Хранилище черновиков бронирования
	sessionStore := session.NewStore(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		time.Duration(cfg.Session.CleanupIntervalMinutes)*time.Minute,
	)
	defer sessionStore.Close()
	log.Info("Session store initialized (ttl=%dm, cleanup=%dm)",
		cfg.Session.TTLMinutes, cfg.Session.CleanupIntervalMinutes)

	// Инициализируем сервисы
	draftSvc := draftService.NewService(sessionStore, cfg.Booking.PerGuestSurcharge, log)

	// Инициализируем use cases
	listServicesUseCase := listServicesUC.NewUseCase(catalogAPI, log)
	selectServicesUseCase := selectServicesUC.NewUseCase(catalogAPI, sessionStore, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(
		appointmentsAPI,
		sessionStore,
		openTime,
		closeTime,
		cfg.Booking.SlotDurationMinutes,
		log,
	)
	submitBookingUseCase := submitBookingUC.NewUseCase(appointmentsAPI, sessionStore, log)
	getConfirmationUseCase := getConfirmationUC.NewUseCase(appointmentsAPI, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(listServicesUseCase, log)
	getConfirmation := getConfirmationHandler.NewHandler(getConfirmationUseCase, log)
	startSession := startSessionHandler.NewHandler(draftSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftSvc, log)
	removeService := removeServiceHandler.NewHandler(draftSvc, log)
	selectServices := selectServicesHandler.NewHandler(selectServicesUseCase, cfg.Booking.PerGuestSurcharge, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг с поиском и фильтром по категории
	api.HandleFunc("/booking-flow/services", listServices.Handle).Methods(http.MethodGet)

	// Подтверждение созданной записи
	api.HandleFunc("/booking-flow/confirmations/{appointmentId}", getConfirmation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют ID пользователя)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	if cfg.Auth.Mode == "mock" {
		protected.Use(middleware.MockAuth(cfg.Auth.MockUserID))
		log.Info("Mock auth provider enabled (user_id=%s)", cfg.Auth.MockUserID)
	} else {
		protected.Use(middleware.Auth)
	}

	// --- Сессии бронирования ---
	// Старт новой сессии с пустым черновиком
	protected.HandleFunc("/booking-flow/sessions", startSession.Handle).Methods(http.MethodPost)

	// Текущий черновик с оценкой стоимости
	protected.HandleFunc("/booking-flow/sessions/{sessionId}", getDraft.Handle).Methods(http.MethodGet)

	// Частичное обновление полей черновика
	protected.HandleFunc("/booking-flow/sessions/{sessionId}", updateDraft.Handle).Methods(http.MethodPatch)

	// Замена выбора услуг (переход с шага 1)
	protected.HandleFunc("/booking-flow/sessions/{sessionId}/services", selectServices.Handle).Methods(http.MethodPut)

	// Удаление услуги из выбора
	protected.HandleFunc("/booking-flow/sessions/{sessionId}/services/{serviceId}", removeService.Handle).Methods(http.MethodDelete)

	// Расписание слотов на дату (шаг 2)
	protected.HandleFunc("/booking-flow/sessions/{sessionId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Отправка черновика в appointments API
	protected.HandleFunc("/booking-flow/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped")
}
