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
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	cancelBookingHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/create_booking"
	deleteScheduleHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/delete_schedule"
	getAvailableSlotsHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/get_day_bookings"
	getSchedulesHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/get_schedules"
	updateBookingStatusHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/update_booking_status"
	upsertScheduleHandler "github.com/m04kA/Clinic-BookingService/internal/api/handlers/upsert_schedule"
	"github.com/m04kA/Clinic-BookingService/internal/api/middleware"
	"github.com/m04kA/Clinic-BookingService/internal/config"
	bookingRepo "github.com/m04kA/Clinic-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/Clinic-BookingService/internal/infra/storage/schedule"
	bookingsService "github.com/m04kA/Clinic-BookingService/internal/service/bookings"
	schedulesService "github.com/m04kA/Clinic-BookingService/internal/service/schedules"
	createBookingUC "github.com/m04kA/Clinic-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/Clinic-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Clinic-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Clinic-BookingService/pkg/logger"
	"github.com/m04kA/Clinic-BookingService/pkg/metrics"
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

	log.Info("Starting Clinic-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к MongoDB
	clientOpts := mongoopts.Client().ApplyURI(cfg.Mongo.URI)
	if cfg.Metrics.Enabled {
		clientOpts.SetMonitor(dbmetrics.NewCommandMonitor(metricsCollector))
		log.Info("MongoDB command metrics collection enabled")
	}

	connectCtx, connectCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Mongo.ConnectTimeout)*time.Second,
	)
	defer connectCancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	// Проверяем соединение
	if err := client.Ping(connectCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB: %v", err)
	}
	db := client.Database(cfg.Mongo.Database)
	log.Info("Successfully connected to MongoDB (database=%s)", cfg.Mongo.Database)

	// Инициализируем репозитории
	opTimeout := time.Duration(cfg.Mongo.OperationTimeout) * time.Second
	bookingRepository := bookingRepo.NewRepository(db, opTimeout)
	scheduleRepository := scheduleRepo.NewRepository(db, opTimeout)

	// Создаем индексы коллекций
	if err := bookingRepository.EnsureIndexes(connectCtx); err != nil {
		log.Fatal("Failed to ensure booking indexes: %v", err)
	}
	if err := scheduleRepository.EnsureIndexes(connectCtx); err != nil {
		log.Fatal("Failed to ensure schedule indexes: %v", err)
	}
	log.Info("Collection indexes ensured")

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
		createBookingUC.RealTimeProvider{},
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getSchedules := getSchedulesHandler.NewHandler(scheduleSvc, log)
	upsertSchedule := upsertScheduleHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание заявки на прием
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-Token header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth(cfg.Auth.StaffToken, log))

	// --- Бронирования ---
	// Бронирования на дату
	staff.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	staff.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	staff.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение/завершение бронирования
	staff.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Расписания клиники ---
	// Список расписаний
	staff.HandleFunc("/schedules", getSchedules.Handle).Methods(http.MethodGet)

	// Создание/обновление расписания
	staff.HandleFunc("/schedules/{name}", upsertSchedule.Handle).Methods(http.MethodPut)

	// Удаление расписания
	staff.HandleFunc("/schedules/{name}", deleteSchedule.Handle).Methods(http.MethodDelete)

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
