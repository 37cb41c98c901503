package create_booking

import (
	"sort"
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
	"github.com/m04kA/Clinic-BookingService/pkg/types"
)

// resolveOperatingHours выбирает активное расписание для указанной даты.
// Логика идентична чтению доступности: убывание приоритета, первое попадание
// даты в диапазон (включительно), fallback "No Schedule Found"
func resolveOperatingHours(targetDate time.Time, overrides []*domain.ScheduleOverride) domain.ResolvedHours {
	sorted := make([]*domain.ScheduleOverride, len(overrides))
	copy(sorted, overrides)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	for _, sch := range sorted {
		if sch == nil || !sch.ContainsDate(targetDate) {
			continue
		}

		day, ok := sch.DayFor(targetDate)
		if !ok {
			return domain.ClosedWithName(sch.Name)
		}

		return domain.ResolvedHours{
			Open:         day.Open,
			Close:        day.Close,
			Active:       day.Active,
			ScheduleName: sch.Name,
		}
	}

	return domain.NoScheduleFallback()
}

// slotGrid возвращает множество всех меток слотов дня по рабочим часам,
// без учета занятости. Пустое множество для закрытого дня и close <= open
func slotGrid(hours domain.ResolvedHours) map[string]struct{} {
	grid := make(map[string]struct{})

	if !hours.Active {
		return grid
	}

	openMin, err := hours.Open.Minutes()
	if err != nil {
		return grid
	}
	closeMin, err := hours.Close.Minutes()
	if err != nil {
		return grid
	}

	for m := openMin; m < closeMin; m += domain.SlotStepMinutes {
		grid[types.LabelFromMinutes(m)] = struct{}{}
	}

	return grid
}
