package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
	"github.com/m04kA/Clinic-BookingService/pkg/types"
)

type mockScheduleRepo struct {
	overrides []*domain.ScheduleOverride
	err       error
}

func (m *mockScheduleRepo) ListByPriority(_ context.Context) ([]*domain.ScheduleOverride, error) {
	return m.overrides, m.err
}

type mockBookingRepo struct {
	times     []string
	timesErr  error
	createErr error
	created   *domain.Booking
}

func (m *mockBookingRepo) GetTimesByDateKey(_ context.Context, _ string) ([]string, error) {
	return m.times, m.timesErr
}

func (m *mockBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	saved := *b
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	saved.CreatedAt = time.Now().UTC()
	saved.UpdatedAt = saved.CreatedAt
	m.created = &saved
	return &saved, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func fullWeek(open, close string) domain.WeekConfig {
	config := make(domain.WeekConfig, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		config[day] = domain.DayConfig{
			Open:   types.TimeString(open),
			Close:  types.TimeString(close),
			Active: true,
		}
	}
	return config
}

func regularSchedule(t *testing.T) *mockScheduleRepo {
	t.Helper()
	return &mockScheduleRepo{
		overrides: []*domain.ScheduleOverride{
			{
				ID:        "regular",
				Name:      "Regular Hours",
				Priority:  1,
				StartDate: mustDate(t, "2024-01-01"),
				EndDate:   mustDate(t, "2024-12-31"),
				Config:    fullWeek("09:00", "17:00"),
			},
		},
	}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		Name:  "Анна Петрова",
		Email: "anna@example.com",
		Phone: "+7 900 123-45-67",
		Date:  mustDate(t, "2024-06-10"),
		Time:  "10:00 AM",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	bookings := &mockBookingRepo{}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	uc := NewUseCase(bookings, regularSchedule(t), nopLogger{}, fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, "2024-06-10", resp.DateKey)
	assert.Equal(t, "10:00 AM", resp.Time)

	require.NotNil(t, bookings.created)
	assert.Equal(t, "Анна Петрова", bookings.created.Title)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
	// Timestamp хранится строкой - epoch seconds момента создания
	assert.Equal(t, "1717243200", bookings.created.Timestamp)
}

func TestUseCase_Execute_ClinicClosed(t *testing.T) {
	// Ни одно расписание не покрывает дату
	schedules := &mockScheduleRepo{}
	uc := NewUseCase(&mockBookingRepo{}, schedules, nopLogger{}, RealTimeProvider{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClinicClosed)
}

func TestUseCase_Execute_TimeOffGrid(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, regularSchedule(t), nopLogger{}, RealTimeProvider{})

	req := validRequest(t)
	req.Time = "10:15 AM"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestUseCase_Execute_TimeOutsideHours(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, regularSchedule(t), nopLogger{}, RealTimeProvider{})

	req := validRequest(t)
	req.Time = "08:00 AM"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestUseCase_Execute_SlotAlreadyBooked(t *testing.T) {
	bookings := &mockBookingRepo{times: []string{"10:00 AM"}}
	uc := NewUseCase(bookings, regularSchedule(t), nopLogger{}, RealTimeProvider{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created)
}

func TestUseCase_Execute_BookedLookupErrorSurfaced(t *testing.T) {
	bookings := &mockBookingRepo{timesErr: errors.New("timeout")}
	uc := NewUseCase(bookings, regularSchedule(t), nopLogger{}, RealTimeProvider{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_CreateErrorSurfaced(t *testing.T) {
	bookings := &mockBookingRepo{createErr: errors.New("write failed")}
	uc := NewUseCase(bookings, regularSchedule(t), nopLogger{}, RealTimeProvider{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_ScheduleErrorFallsBackToDefaultHours(t *testing.T) {
	// Расписания недоступны - запись идет по дефолтным часам 09:00-17:00
	schedules := &mockScheduleRepo{err: errors.New("connection refused")}
	bookings := &mockBookingRepo{}

	uc := NewUseCase(bookings, schedules, nopLogger{}, RealTimeProvider{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Status)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.Name = "  " }},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *Request) { r.Email = "not-an-email" }},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time", mutate: func(r *Request) { r.Time = "" }},
		{name: "24-hour time rejected", mutate: func(r *Request) { r.Time = "14:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)
			err := validateRequest(req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, validateRequest(validRequest(t)))
	})
}
