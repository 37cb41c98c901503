package upsert_schedule

import (
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
	"github.com/m04kA/Clinic-BookingService/internal/service/schedules/models"
)

// DayConfigRequest конфигурация одного дня недели
type DayConfigRequest struct {
	Open   string `json:"open"`   // "09:00"
	Close  string `json:"close"`  // "17:00"
	Active bool   `json:"active"`
}

// UpsertScheduleRequest HTTP request model
// Имя расписания берется из пути, в теле остальные поля
type UpsertScheduleRequest struct {
	Priority  int                         `json:"priority"`
	StartDate string                      `json:"startDate"` // "2025-10-01"
	EndDate   string                      `json:"endDate"`   // "2025-10-31"
	Config    map[string]DayConfigRequest `json:"config"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertScheduleRequest) ToServiceRequest(name string) (*models.UpsertScheduleRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	config := make(map[string]models.DayConfigRequest, len(r.Config))
	for day, dc := range r.Config {
		config[day] = models.DayConfigRequest{
			Open:   dc.Open,
			Close:  dc.Close,
			Active: dc.Active,
		}
	}

	return &models.UpsertScheduleRequest{
		Name:      name,
		Priority:  r.Priority,
		StartDate: startDate,
		EndDate:   endDate,
		Config:    config,
	}, nil
}
