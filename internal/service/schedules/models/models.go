package models

import (
	"time"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
	"github.com/m04kA/Clinic-BookingService/pkg/types"
)

// Request модели

// DayConfigRequest конфигурация одного дня недели
type DayConfigRequest struct {
	Open   string `json:"open"`   // Время открытия "HH:MM"
	Close  string `json:"close"`  // Время закрытия "HH:MM"
	Active bool   `json:"active"` // День рабочий
}

// UpsertScheduleRequest запрос на создание или обновление расписания
type UpsertScheduleRequest struct {
	Name      string                      `json:"name"`      // Уникальное имя расписания
	Priority  int                         `json:"priority"`  // Приоритет (больше - важнее)
	StartDate time.Time                   `json:"startDate"` // Начало действия (включительно)
	EndDate   time.Time                   `json:"endDate"`   // Конец действия (включительно)
	Config    map[string]DayConfigRequest `json:"config"`    // Конфигурация по дням недели
}

// ToDomain конвертирует request в domain.ScheduleOverride
func (r *UpsertScheduleRequest) ToDomain() *domain.ScheduleOverride {
	config := make(domain.WeekConfig, len(r.Config))
	for day, dc := range r.Config {
		config[day] = domain.DayConfig{
			Open:   types.TimeString(dc.Open),
			Close:  types.TimeString(dc.Close),
			Active: dc.Active,
		}
	}

	return &domain.ScheduleOverride{
		Name:      r.Name,
		Priority:  r.Priority,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Config:    config,
	}
}

// Response модели

// DayConfigResponse конфигурация одного дня недели в ответе
type DayConfigResponse struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Active bool   `json:"active"`
}

// ScheduleResponse расписание в ответе сервиса
type ScheduleResponse struct {
	ID        string                       `json:"id"`
	Name      string                       `json:"name"`
	Priority  int                          `json:"priority"`
	StartDate time.Time                    `json:"startDate"`
	EndDate   time.Time                    `json:"endDate"`
	Config    map[string]DayConfigResponse `json:"config"`
	CreatedAt time.Time                    `json:"createdAt"`
	UpdatedAt time.Time                    `json:"updatedAt"`
}

// ScheduleListResponse список расписаний
type ScheduleListResponse struct {
	Schedules []*ScheduleResponse `json:"schedules"`
	Total     int                 `json:"total"`
}

// FromDomainSchedule конвертирует domain.ScheduleOverride в ScheduleResponse
func FromDomainSchedule(s *domain.ScheduleOverride) *ScheduleResponse {
	config := make(map[string]DayConfigResponse, len(s.Config))
	for day, dc := range s.Config {
		config[day] = DayConfigResponse{
			Open:   dc.Open.String(),
			Close:  dc.Close.String(),
			Active: dc.Active,
		}
	}

	return &ScheduleResponse{
		ID:        s.ID,
		Name:      s.Name,
		Priority:  s.Priority,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Config:    config,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainScheduleList конвертирует список domain.ScheduleOverride в ScheduleListResponse
func FromDomainScheduleList(schedules []*domain.ScheduleOverride) *ScheduleListResponse {
	result := make([]*ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		result = append(result, FromDomainSchedule(s))
	}
	return &ScheduleListResponse{
		Schedules: result,
		Total:     len(result),
	}
}
