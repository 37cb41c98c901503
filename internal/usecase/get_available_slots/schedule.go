package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// resolveOperatingHours выбирает активное расписание для указанной даты
// и извлекает конфигурацию соответствующего дня недели.
//
// Правила выбора:
//  1. Расписания перебираются по убыванию приоритета, при равных приоритетах
//     побеждает первое во входном порядке
//  2. Выбирается первое расписание, чей диапазон дат (включительно) содержит
//     целевую дату; сравнение по millisecond timestamp без нормализации таймзон
//  3. Если ни одно не подходит - fallback "No Schedule Found" (закрыто)
//  4. Если в выбранном расписании нет записи для дня недели - считаем день
//     закрытым, сохраняя имя расписания
//
// Функция чистая: всегда возвращает значение, никогда не паникует
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
			// Дегенеративная конфигурация: расписание подошло по датам,
			// но дня недели в нем нет
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
