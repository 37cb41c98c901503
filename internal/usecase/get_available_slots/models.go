package get_available_slots

import (
	"time"

	"github.com/m04kA/Clinic-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time        // Запрошенная дата
	ScheduleName string           // Название активного расписания (или fallback)
	Open         types.TimeString // Время открытия
	Close        types.TimeString // Время закрытия
	ClinicClosed bool             // Клиника закрыта в этот день
	Slots        []string         // Свободные слоты в 12-часовом формате ("09:30 AM")
}
