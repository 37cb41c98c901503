package schedules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-BookingService/internal/service/schedules/models"
)

func validUpsertRequest() *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		Name:      "Holiday Hours",
		Priority:  5,
		StartDate: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
		Config: map[string]models.DayConfigRequest{
			"Monday":  {Open: "10:00", Close: "14:00", Active: true},
			"Tuesday": {Active: false},
		},
	}
}

func TestValidateUpsertRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.UpsertScheduleRequest)
	}{
		{name: "empty name", mutate: func(r *models.UpsertScheduleRequest) { r.Name = " " }},
		{name: "negative priority", mutate: func(r *models.UpsertScheduleRequest) { r.Priority = -1 }},
		{name: "priority too large", mutate: func(r *models.UpsertScheduleRequest) { r.Priority = 100500 }},
		{name: "zero start date", mutate: func(r *models.UpsertScheduleRequest) { r.StartDate = time.Time{} }},
		{name: "end before start", mutate: func(r *models.UpsertScheduleRequest) {
			r.EndDate = r.StartDate.AddDate(0, 0, -1)
		}},
		{name: "empty config", mutate: func(r *models.UpsertScheduleRequest) { r.Config = nil }},
		{name: "unknown weekday", mutate: func(r *models.UpsertScheduleRequest) {
			r.Config["Funday"] = models.DayConfigRequest{Open: "09:00", Close: "17:00", Active: true}
		}},
		{name: "active day with malformed open", mutate: func(r *models.UpsertScheduleRequest) {
			r.Config["Monday"] = models.DayConfigRequest{Open: "morning", Close: "17:00", Active: true}
		}},
		{name: "active day with close before open", mutate: func(r *models.UpsertScheduleRequest) {
			r.Config["Monday"] = models.DayConfigRequest{Open: "17:00", Close: "09:00", Active: true}
		}},
		{name: "active day with close equal to open", mutate: func(r *models.UpsertScheduleRequest) {
			r.Config["Monday"] = models.DayConfigRequest{Open: "09:00", Close: "09:00", Active: true}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpsertRequest()
			tt.mutate(req)
			err := validateUpsertRequest(req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, validateUpsertRequest(validUpsertRequest()))
	})

	t.Run("inactive day ignores malformed times", func(t *testing.T) {
		req := validUpsertRequest()
		req.Config["Sunday"] = models.DayConfigRequest{Open: "closed", Close: "closed", Active: false}
		require.NoError(t, validateUpsertRequest(req))
	})

	t.Run("single date range allowed", func(t *testing.T) {
		req := validUpsertRequest()
		req.EndDate = req.StartDate
		require.NoError(t, validateUpsertRequest(req))
	})
}
