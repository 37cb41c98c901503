package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Clinic-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Clinic-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Clinic-BookingService/pkg/ptr"
)

type mockRepo struct {
	byID       map[string]*domain.Booking
	byDate     []*domain.Booking
	cancelErr  error
	cancelled  []string
	lastFilter domain.DayBookingsFilter
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := m.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockRepo) GetByDateKey(_ context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	m.lastFilter = filter
	return m.byDate, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := m.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (m *mockRepo) Cancel(_ context.Context, id string, reason string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelled = append(m.cancelled, id)
	if b, ok := m.byID[id]; ok {
		b.Status = domain.StatusCancelled
		b.CancellationReason = &reason
		now := time.Now().UTC()
		b.CancelledAt = &now
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:      id,
		Title:   "Анна Петрова",
		Email:   "anna@example.com",
		Phone:   "+7 900 123-45-67",
		DateKey: "2024-06-10",
		Time:    "10:00 AM",
		Status:  domain.StatusPending,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &mockRepo{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
	svc := NewService(repo, nopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "b-1")
		require.NoError(t, err)
		assert.Equal(t, "b-1", resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetDayBookings(t *testing.T) {
	repo := &mockRepo{byDate: []*domain.Booking{pendingBooking("b-1"), pendingBooking("b-2")}}
	svc := NewService(repo, nopLogger{})

	t.Run("success", func(t *testing.T) {
		resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{DateKey: "2024-06-10"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "2024-06-10", repo.lastFilter.DateKey)
	})

	t.Run("status filter passed through", func(t *testing.T) {
		_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
			DateKey: "2024-06-10",
			Status:  ptr.Ptr("confirmed"),
		})
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	})

	t.Run("invalid date key", func(t *testing.T) {
		_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{DateKey: "10.06.2024"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
			DateKey: "2024-06-10",
			Status:  ptr.Ptr("postponed"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("pending booking confirmed", func(t *testing.T) {
		repo := &mockRepo{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
			BookingID: "b-1",
			Status:    "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("cancellation must go through Cancel", func(t *testing.T) {
		repo := &mockRepo{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
			BookingID: "b-1",
			Status:    "cancelled",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("cancelled booking not revived", func(t *testing.T) {
		gone := pendingBooking("b-2")
		gone.Status = domain.StatusCancelled
		repo := &mockRepo{byID: map[string]*domain.Booking{"b-2": gone}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
			BookingID: "b-2",
			Status:    "confirmed",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &mockRepo{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
			BookingID: "b-1",
			Status:    "postponed",
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepo{byID: map[string]*domain.Booking{}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
			BookingID: "missing",
			Status:    "confirmed",
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("pending booking cancelled", func(t *testing.T) {
		repo := &mockRepo{byID: map[string]*domain.Booking{"b-1": pendingBooking("b-1")}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
			BookingID:          "b-1",
			CancellationReason: "пациент попросил перенести",
		})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "пациент попросил перенести", *resp.CancellationReason)
		assert.Equal(t, []string{"b-1"}, repo.cancelled)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		done := pendingBooking("b-2")
		done.Status = domain.StatusCompleted
		repo := &mockRepo{byID: map[string]*domain.Booking{"b-2": done}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: "b-2"})
		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("already cancelled booking cannot be cancelled again", func(t *testing.T) {
		gone := pendingBooking("b-3")
		gone.Status = domain.StatusCancelled
		repo := &mockRepo{byID: map[string]*domain.Booking{"b-3": gone}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: "b-3"})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepo{byID: map[string]*domain.Booking{}}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: "missing"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("repository error wrapped as internal", func(t *testing.T) {
		repo := &mockRepo{
			byID:      map[string]*domain.Booking{"b-4": pendingBooking("b-4")},
			cancelErr: errors.New("write failed"),
		}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: "b-4"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
