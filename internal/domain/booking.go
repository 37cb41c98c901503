package domain

import "time"

// BookingStatus represents the status of an appointment request
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking represents a patient appointment request.
// Field names follow the booking documents stored in the bookings collection:
// Title is the patient name, Time is the 12-hour slot label (e.g. "09:30 AM"),
// DateKey groups bookings by calendar day as "yyyy-MM-dd".
type Booking struct {
	ID             string
	Title          string
	Email          string
	Phone          string
	Notes          string
	ReferralSource string
	Tags           string

	Date      time.Time
	DateKey   string
	Time      string
	Status    BookingStatus
	Timestamp string // seconds since epoch at submission, kept as a string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
// Cancelled bookings free the slot; every other status keeps it taken.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// DayBookingsFilter фильтр для получения бронирований на календарный день
type DayBookingsFilter struct {
	DateKey          string         // Обязательный параметр, формат "yyyy-MM-dd"
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
