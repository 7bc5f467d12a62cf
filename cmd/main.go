package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/confirm_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/get_available_slots"
	getClientBookingsHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/get_client_bookings"
	getRackWeekHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/get_rack_week"
	getSalesReportHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/get_sales_report"
	registerClientHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/register_client"
	reservationFlowHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/reservation_flow"
	sendVoucherHandler "github.com/m04kA/SMC-KartingFront/internal/api/handlers/send_voucher"
	"github.com/m04kA/SMC-KartingFront/internal/api/middleware"
	"github.com/m04kA/SMC-KartingFront/internal/config"
	"github.com/m04kA/SMC-KartingFront/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-KartingFront/internal/integrations/kartingbackend"
	"github.com/m04kA/SMC-KartingFront/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-KartingFront/internal/service/bookings"
	clientsService "github.com/m04kA/SMC-KartingFront/internal/service/clients"
	"github.com/m04kA/SMC-KartingFront/internal/service/reservedtimes"
	getAvailableSlotsUC "github.com/m04kA/SMC-KartingFront/internal/usecase/get_available_slots"
	getRackWeekUC "github.com/m04kA/SMC-KartingFront/internal/usecase/get_rack_week"
	getSalesReportUC "github.com/m04kA/SMC-KartingFront/internal/usecase/get_sales_report"
	reservationFlowUC "github.com/m04kA/SMC-KartingFront/internal/usecase/reservation_flow"
	"github.com/m04kA/SMC-KartingFront/pkg/logger"
	"github.com/m04kA/SMC-KartingFront/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-KartingFront...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс и часы работы трассы
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Availability.Timezone, err)
	}
	hours, err := cfg.OperatingHours()
	if err != nil {
		log.Fatal("Invalid operating hours: %v", err)
	}
	holidays, err := cfg.HolidayCalendar()
	if err != nil {
		log.Fatal("Invalid holiday calendar: %v", err)
	}
	engine := availability.NewEngine(hours, holidays)
	log.Info("Availability engine initialized (timezone=%s, weekday_open=%s, weekend_open=%s, close=%s, holidays=%d)",
		loc.String(), hours.WeekdayOpen, hours.WeekendOrHolidayOpen, hours.Close, len(cfg.Availability.Holidays))

	// Инициализируем клиента бэкенда
	backendClient := kartingbackend.NewClient(cfg.Backend.URL, cfg.BackendTimeout(), metricsCollector, log)
	log.Info("Backend client initialized (url=%s, timeout=%ds, fetch_timeout=%ds)",
		cfg.Backend.URL, cfg.Backend.Timeout, cfg.Backend.FetchTimeout)

	// Хранилище черновиков в памяти
	draftStore := sessions.NewRepository[*reservationFlowUC.Controller](cfg.SessionTTL(), time.Now)

	// Инициализируем сервисы
	reservedTimesSvc := reservedtimes.NewService(backendClient, cfg.FetchTimeout(), log)
	bookingSvc := bookingsService.NewService(backendClient, loc, log)
	clientSvc := clientsService.NewService(backendClient, time.Now, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservedTimesSvc, engine, log)
	getRackWeekUseCase := getRackWeekUC.NewUseCase(backendClient, engine, loc, log)
	getSalesReportUseCase := getSalesReportUC.NewUseCase(backendClient, loc, log)
	reservationFlowUseCase := reservationFlowUC.NewUseCase(draftStore, reservationFlowUC.Dependencies{
		ReservedTimes: reservedTimesSvc,
		Engine:        engine,
		Backend:       backendClient,
		Metrics:       metricsCollector,
		TimeProvider:  &reservationFlowUC.RealTimeProvider{},
		Logger:        log,
	})

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, loc, log)
	reservationFlow := reservationFlowHandler.NewHandler(reservationFlowUseCase, loc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	sendVoucher := sendVoucherHandler.NewHandler(bookingSvc, log)
	registerClient := registerClientHandler.NewHandler(clientSvc, log)
	getRackWeek := getRackWeekHandler.NewHandler(getRackWeekUseCase, loc, log)
	getSalesReport := getSalesReportHandler.NewHandler(getSalesReportUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 10*time.Minute)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if rateLimiter != nil {
		api.Use(rateLimiter.Middleware)
	}

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Поток бронирования ---
	api.HandleFunc("/reservations", reservationFlow.Start).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", reservationFlow.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", reservationFlow.Abandon).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{id}/activity", reservationFlow.SetActivity).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}/date", reservationFlow.SelectDate).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}/time", reservationFlow.SelectTime).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}/participants", reservationFlow.AddParticipant).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/participants/{index}", reservationFlow.RemoveParticipant).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{id}/next", reservationFlow.Next).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/back", reservationFlow.Back).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/submit", reservationFlow.Submit).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/voucher", sendVoucher.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	api.HandleFunc("/clients", registerClient.Handle).Methods(http.MethodPost)

	// --- Администрирование трассы ---
	api.HandleFunc("/rack", getRackWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reports/sales", getSalesReport.Handle).Methods(http.MethodGet)

	var handler http.Handler = r
	if cfg.CORS.Enabled {
		handler = middleware.CORS(cfg.CORS.AllowedOrigins)(r)
		log.Info("CORS enabled (origins=%v)", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Очистка просроченных черновиков и неактивных IP
	stopSweeperCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval())
		defer ticker.Stop()
		for {
			select {
			case <-stopSweeperCh:
				return
			case now := <-ticker.C:
				if removed := draftStore.Sweep(now); removed > 0 {
					log.Info("Sweeper: removed %d expired drafts", removed)
				}
				metricsCollector.SetActiveDrafts(draftStore.Count())
				if rateLimiter != nil {
					rateLimiter.Cleanup()
				}
			}
		}
	}()

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
	close(stopSweeperCh)

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
