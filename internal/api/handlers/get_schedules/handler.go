package get_schedules

import (
	"net/http"

	"github.com/m04kA/Clinic-BookingService/internal/api/handlers"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /schedules - Failed to fetch schedules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules - Fetched %d schedules", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
