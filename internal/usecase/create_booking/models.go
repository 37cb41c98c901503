package create_booking

import (
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name           string    // Имя пациента
	Email          string    // Email для связи
	Phone          string    // Телефон для связи
	Notes          string    // Примечания пациента (опционально)
	ReferralSource string    // Откуда пациент узнал о клинике (опционально)
	Tags           string    // Теги для категоризации (опционально)
	Date           time.Time // Дата приема (без времени)
	Time           string    // Слот в 12-часовом формате ("10:00 AM")
}

// Response модель ответа на создание бронирования
type Response struct {
	ID        string               // Идентификатор созданного бронирования
	Status    domain.BookingStatus // Статус (всегда pending при создании)
	Date      time.Time            // Дата приема
	DateKey   string               // Ключ даты в формате yyyy-MM-dd
	Time      string               // Слот в 12-часовом формате
	CreatedAt time.Time            // Время создания записи
}
