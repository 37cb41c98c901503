package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

type mockScheduleRepo struct {
	overrides []*domain.ScheduleOverride
	err       error
}

func (m *mockScheduleRepo) ListByPriority(_ context.Context) ([]*domain.ScheduleOverride, error) {
	return m.overrides, m.err
}

type mockBookingRepo struct {
	times   []string
	err     error
	gotKeys []string
}

func (m *mockBookingRepo) GetTimesByDateKey(_ context.Context, dateKey string) ([]string, error) {
	m.gotKeys = append(m.gotKeys, dateKey)
	return m.times, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute_Success(t *testing.T) {
	schedules := &mockScheduleRepo{
		overrides: []*domain.ScheduleOverride{
			newSchedule(t, "Regular Hours", 1, "2024-01-01", "2024-12-31", fullWeek("09:00", "12:00")),
		},
	}
	bookings := &mockBookingRepo{times: []string{"10:00 AM"}}

	uc := NewUseCase(bookings, schedules, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2024-06-10")})
	require.NoError(t, err)

	assert.Equal(t, "Regular Hours", resp.ScheduleName)
	assert.False(t, resp.ClinicClosed)
	assert.Equal(t, []string{"09:00 AM", "09:30 AM", "10:30 AM", "11:00 AM", "11:30 AM"}, resp.Slots)
	assert.Equal(t, []string{"2024-06-10"}, bookings.gotKeys)
}

func TestUseCase_Execute_ScheduleRepoErrorFallsBackToDefault(t *testing.T) {
	schedules := &mockScheduleRepo{err: errors.New("connection refused")}
	bookings := &mockBookingRepo{}

	uc := NewUseCase(bookings, schedules, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2024-06-10")})
	require.NoError(t, err)

	assert.Equal(t, domain.SystemDefaultName, resp.ScheduleName)
	assert.False(t, resp.ClinicClosed)
	// 09:00-17:00 с шагом 30 минут
	assert.Len(t, resp.Slots, 16)
	assert.Equal(t, "09:00 AM", resp.Slots[0])
	assert.Equal(t, "04:30 PM", resp.Slots[15])
}

func TestUseCase_Execute_BookingRepoErrorTreatsAllFree(t *testing.T) {
	schedules := &mockScheduleRepo{
		overrides: []*domain.ScheduleOverride{
			newSchedule(t, "Regular Hours", 1, "2024-01-01", "2024-12-31", fullWeek("09:00", "11:00")),
		},
	}
	bookings := &mockBookingRepo{err: errors.New("timeout")}

	uc := NewUseCase(bookings, schedules, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2024-06-10")})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM"}, resp.Slots)
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	schedules := &mockScheduleRepo{}
	bookings := &mockBookingRepo{}

	uc := NewUseCase(bookings, schedules, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2024-06-10")})
	require.NoError(t, err)

	assert.True(t, resp.ClinicClosed)
	assert.Equal(t, domain.NoScheduleFoundName, resp.ScheduleName)
	assert.Empty(t, resp.Slots)
	// Занятые слоты для закрытого дня не запрашиваются
	assert.Empty(t, bookings.gotKeys)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockScheduleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Time{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
