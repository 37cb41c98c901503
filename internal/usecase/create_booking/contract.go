package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create сохраняет новое бронирование и возвращает его с заполненным ID
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetTimesByDateKey возвращает метки занятых слотов на дату (неотмененные бронирования)
	GetTimesByDateKey(ctx context.Context, dateKey string) ([]string, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// ListByPriority возвращает все расписания по убыванию приоритета
	ListByPriority(ctx context.Context) ([]*domain.ScheduleOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
