package schedules

import (
	"fmt"
	"strings"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
	"github.com/m04kA/Clinic-BookingService/internal/service/schedules/models"
	"github.com/m04kA/Clinic-BookingService/pkg/types"
)

// validateUpsertRequest валидирует запрос на создание/обновление расписания
//
// Для активных дней требуется open < close: такие дни иначе никогда не дадут
// ни одного слота. Неактивные дни могут нести любые (в т.ч. нулевые) времена
func validateUpsertRequest(req *models.UpsertScheduleRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Priority < domain.MinSchedulePriority || req.Priority > domain.MaxSchedulePriority {
		return fmt.Errorf("%w: priority must be between %d and %d",
			ErrInvalidInput, domain.MinSchedulePriority, domain.MaxSchedulePriority)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if len(req.Config) == 0 {
		return fmt.Errorf("%w: config must contain at least one weekday", ErrInvalidInput)
	}

	for day, dc := range req.Config {
		if !domain.IsWeekday(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}

		if !dc.Active {
			continue
		}

		openMin, err := types.TimeString(dc.Open).Minutes()
		if err != nil {
			return fmt.Errorf("%w: %s open time %q is malformed", ErrInvalidInput, day, dc.Open)
		}
		closeMin, err := types.TimeString(dc.Close).Minutes()
		if err != nil {
			return fmt.Errorf("%w: %s close time %q is malformed", ErrInvalidInput, day, dc.Close)
		}
		if closeMin <= openMin {
			return fmt.Errorf("%w: %s close time must be after open time", ErrInvalidInput, day)
		}
	}

	return nil
}
