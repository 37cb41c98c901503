package dbmetrics

import (
	"context"

	"go.mongodb.org/mongo-driver/event"

	"github.com/m04kA/Clinic-BookingService/pkg/metrics"
)

// NewCommandMonitor создает монитор команд MongoDB, публикующий метрики
// количества и длительности команд в Prometheus.
// Подключается к клиенту через options.Client().SetMonitor(...)
func NewCommandMonitor(m *metrics.Metrics) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			m.MongoCommandsTotal.WithLabelValues(evt.CommandName, "ok").Inc()
			m.MongoCommandDuration.WithLabelValues(evt.CommandName).Observe(evt.Duration.Seconds())
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			m.MongoCommandsTotal.WithLabelValues(evt.CommandName, "error").Inc()
			m.MongoCommandDuration.WithLabelValues(evt.CommandName).Observe(evt.Duration.Seconds())
		},
	}
}
