package schedules

import (
	"context"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListByPriority(ctx context.Context) ([]*domain.ScheduleOverride, error)
	GetByName(ctx context.Context, name string) (*domain.ScheduleOverride, error)
	Upsert(ctx context.Context, s *domain.ScheduleOverride) (*domain.ScheduleOverride, error)
	Delete(ctx context.Context, name string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
