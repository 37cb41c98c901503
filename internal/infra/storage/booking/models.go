package booking

import (
	"fmt"
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// bookingDocument документ коллекции bookings
// Поле date хранится как ISO-8601 строка, dateKey - как "yyyy-MM-dd",
// time - как 12-часовая метка слота ("09:30 AM")
type bookingDocument struct {
	ID             string `bson:"id"`
	Title          string `bson:"title"`
	Email          string `bson:"email"`
	Phone          string `bson:"phone"`
	Notes          string `bson:"notes"`
	ReferralSource string `bson:"referralSource"`
	Tags           string `bson:"tags"`

	Date      string `bson:"date"`
	DateKey   string `bson:"dateKey"`
	Time      string `bson:"time"`
	Status    string `bson:"status"`
	Timestamp string `bson:"timestamp"`

	CancellationReason *string    `bson:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `bson:"cancelledAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// toDocument конвертирует доменную модель в документ
func toDocument(b *domain.Booking) bookingDocument {
	return bookingDocument{
		ID:                 b.ID,
		Title:              b.Title,
		Email:              b.Email,
		Phone:              b.Phone,
		Notes:              b.Notes,
		ReferralSource:     b.ReferralSource,
		Tags:               b.Tags,
		Date:               b.Date.Format(time.RFC3339),
		DateKey:            b.DateKey,
		Time:               b.Time,
		Status:             string(b.Status),
		Timestamp:          b.Timestamp,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// toDomain конвертирует документ в доменную модель
func (d bookingDocument) toDomain() (*domain.Booking, error) {
	date, err := parseISODate(d.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%s has invalid date %q: %v", ErrDecodeDocument, d.ID, d.Date, err)
	}

	return &domain.Booking{
		ID:                 d.ID,
		Title:              d.Title,
		Email:              d.Email,
		Phone:              d.Phone,
		Notes:              d.Notes,
		ReferralSource:     d.ReferralSource,
		Tags:               d.Tags,
		Date:               date,
		DateKey:            d.DateKey,
		Time:               d.Time,
		Status:             domain.BookingStatus(d.Status),
		Timestamp:          d.Timestamp,
		CancellationReason: d.CancellationReason,
		CancelledAt:        d.CancelledAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}, nil
}

// parseISODate парсит ISO-8601 дату, допуская и короткую форму "yyyy-MM-dd"
func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, s)
}
