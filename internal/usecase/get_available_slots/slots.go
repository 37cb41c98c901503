package get_available_slots

import (
	"github.com/m04kA/Clinic-BookingService/internal/domain"
	"github.com/m04kA/Clinic-BookingService/pkg/types"
)

// generateSlots генерирует свободные слоты дня из рабочих часов
// за вычетом занятых меток.
//
// Слоты идут от времени открытия с фиксированным шагом domain.SlotStepMinutes,
// строго до времени закрытия, в 12-часовом формате ("09:30 AM").
// Занятые метки фильтруются по точному совпадению строк.
//
// Граничные случаи:
//   - день неактивен - пустой список
//   - close <= open - пустой список (цикл не выполняется)
//   - нечитаемые open/close - пустой список (считаем день закрытым)
//
// Функция чистая: одинаковые входы дают одинаковый результат
func generateSlots(hours domain.ResolvedHours, booked []string) []string {
	slots := make([]string, 0)

	if !hours.Active {
		return slots
	}

	openMin, err := hours.Open.Minutes()
	if err != nil {
		return slots
	}
	closeMin, err := hours.Close.Minutes()
	if err != nil {
		return slots
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, label := range booked {
		bookedSet[label] = struct{}{}
	}

	for m := openMin; m < closeMin; m += domain.SlotStepMinutes {
		label := types.LabelFromMinutes(m)
		if _, taken := bookedSet[label]; taken {
			continue
		}
		slots = append(slots, label)
	}

	return slots
}
