package create_booking

import (
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
	createBooking "github.com/m04kA/Clinic-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Notes          string `json:"notes,omitempty"`
	ReferralSource string `json:"referralSource,omitempty"`
	Tags           string `json:"tags,omitempty"`
	Date           string `json:"date"` // "2025-10-15"
	Time           string `json:"time"` // "10:00 AM"
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	DateKey   string `json:"dateKey"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Notes:          r.Notes,
		ReferralSource: r.ReferralSource,
		Tags:           r.Tags,
		Date:           date,
		Time:           r.Time,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:        resp.ID,
		Status:    string(resp.Status),
		Date:      resp.Date.Format(domain.DateFormat),
		DateKey:   resp.DateKey,
		Time:      resp.Time,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
