package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/Clinic-BookingService/internal/api/handlers"
	"github.com/m04kA/Clinic-BookingService/internal/service/bookings"
	"github.com/m04kA/Clinic-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Clinic-BookingService/pkg/ptr"
)

const (
	msgMissingDate   = "параметр date обязателен"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD&status=pending&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateKey := query.Get("date")
	if dateKey == "" {
		h.logger.Warn("GET /bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &models.GetDayBookingsRequest{
		DateKey:          dateKey,
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}
	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetDayBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status: %q", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid date: %q", dateKey)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings - Failed to fetch bookings: date=%s, error=%v", dateKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Fetched %d bookings for date=%s", result.Total, dateKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}
