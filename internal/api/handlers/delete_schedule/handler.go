package delete_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Clinic-BookingService/internal/api/handlers"
	"github.com/m04kA/Clinic-BookingService/internal/service/schedules"
)

const (
	msgScheduleNotFound = "расписание не найдено"
	msgInvalidName      = "некорректное имя расписания"
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

// Handle DELETE /api/v1/schedules/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.Delete(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /schedules/{name} - Schedule not found: name=%s", name)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("DELETE /schedules/{name} - Invalid name: %q", name)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("DELETE /schedules/{name} - Failed to delete schedule: name=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{name} - Schedule deleted: name=%s", name)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
