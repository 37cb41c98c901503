package get_available_slots

import (
	"context"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
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
