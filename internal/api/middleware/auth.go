package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/Clinic-BookingService/internal/api/handlers"
)

const staffTokenHeader = "X-Staff-Token"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// StaffAuth проверяет токен персонала клиники в заголовке X-Staff-Token.
// Защищает служебные ручки: просмотр и отмена бронирований, управление
// расписаниями
func StaffAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(staffTokenHeader)
			if got == "" {
				logger.Warn("StaffAuth: missing %s header for %s %s", staffTokenHeader, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "требуется токен персонала")
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("StaffAuth: invalid token for %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusForbidden, "недействительный токен персонала")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
