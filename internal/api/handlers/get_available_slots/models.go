package get_available_slots

import (
	"github.com/m04kA/Clinic-BookingService/internal/domain"
	getSlots "github.com/m04kA/Clinic-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string   `json:"date"` // "2025-10-15"
	ScheduleName string   `json:"scheduleName"`
	Open         string   `json:"open,omitempty"`  // "09:00"
	Close        string   `json:"close,omitempty"` // "17:00"
	ClinicClosed bool     `json:"clinicClosed"`
	Slots        []string `json:"slots"` // ["09:00 AM", "09:30 AM", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		ScheduleName: resp.ScheduleName,
		ClinicClosed: resp.ClinicClosed,
		Slots:        resp.Slots,
	}

	if !resp.ClinicClosed {
		out.Open = resp.Open.String()
		out.Close = resp.Close.String()
	}

	return out
}
