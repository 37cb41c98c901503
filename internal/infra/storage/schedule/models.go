package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// scheduleDocument документ коллекции clinic_schedules
// Даты хранятся как ISO-8601 строки, недельная конфигурация - как
// сериализованный JSON (mapping "Monday" -> {open, close, active})
type scheduleDocument struct {
	ID        string `bson:"id"`
	Name      string `bson:"name"`
	Priority  int    `bson:"priority"`
	StartDate string `bson:"startDate"`
	EndDate   string `bson:"endDate"`
	Config    string `bson:"config"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// toDocument конвертирует доменную модель в документ
func toDocument(s *domain.ScheduleOverride) (scheduleDocument, error) {
	raw, err := json.Marshal(s.Config)
	if err != nil {
		return scheduleDocument{}, fmt.Errorf("%w: failed to serialize week config for %q: %v", ErrMalformedSchedule, s.Name, err)
	}

	return scheduleDocument{
		ID:        s.ID,
		Name:      s.Name,
		Priority:  s.Priority,
		StartDate: s.StartDate.Format(time.RFC3339),
		EndDate:   s.EndDate.Format(time.RFC3339),
		Config:    string(raw),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}, nil
}

// toDomain конвертирует документ в доменную модель
// Некорректные даты или конфигурация - ошибка ErrMalformedSchedule:
// вызывающая сторона подставит безопасные дефолтные часы
func (d scheduleDocument) toDomain() (*domain.ScheduleOverride, error) {
	start, err := parseISODate(d.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule %q has invalid startDate %q: %v", ErrMalformedSchedule, d.Name, d.StartDate, err)
	}

	end, err := parseISODate(d.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule %q has invalid endDate %q: %v", ErrMalformedSchedule, d.Name, d.EndDate, err)
	}

	var config domain.WeekConfig
	if err := json.Unmarshal([]byte(d.Config), &config); err != nil {
		return nil, fmt.Errorf("%w: schedule %q has unreadable config: %v", ErrMalformedSchedule, d.Name, err)
	}

	return &domain.ScheduleOverride{
		ID:        d.ID,
		Name:      d.Name,
		Priority:  d.Priority,
		StartDate: start,
		EndDate:   end,
		Config:    config,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// parseISODate парсит ISO-8601 дату, допуская и короткую форму "yyyy-MM-dd"
func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, s)
}
