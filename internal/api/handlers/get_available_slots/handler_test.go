package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getSlots "github.com/m04kA/Clinic-BookingService/internal/usecase/get_available_slots"
)

type mockUseCase struct {
	resp *getSlots.Response
	err  error
	got  *getSlots.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	m.got = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{
			resp: &getSlots.Response{
				ScheduleName: "Regular Hours",
				Open:         "09:00",
				Close:        "12:00",
				Slots:        []string{"09:00 AM", "09:30 AM"},
			},
		}
		h := NewHandler(uc, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2024-06-10", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, uc.got)
		assert.Equal(t, "2024-06-10", uc.got.Date.Format("2006-01-02"))

		var body AvailableSlotsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Regular Hours", body.ScheduleName)
		assert.Equal(t, []string{"09:00 AM", "09:30 AM"}, body.Slots)
		assert.Equal(t, "09:00", body.Open)
		assert.False(t, body.ClinicClosed)
	})

	t.Run("closed day omits hours", func(t *testing.T) {
		uc := &mockUseCase{
			resp: &getSlots.Response{
				ScheduleName: "No Schedule Found",
				ClinicClosed: true,
				Slots:        []string{},
			},
		}
		h := NewHandler(uc, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2024-06-10", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body AvailableSlotsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.ClinicClosed)
		assert.Empty(t, body.Open)
		assert.Equal(t, []string{}, body.Slots)
	})

	t.Run("missing date", func(t *testing.T) {
		h := NewHandler(&mockUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		h := NewHandler(&mockUseCase{}, nopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=10.06.2024", nil)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
