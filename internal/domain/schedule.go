package domain

import (
	"time"

	"github.com/m04kA/Clinic-BookingService/pkg/types"
)

// DayConfig represents the operating hours for a single weekday.
// Active=false means the clinic is closed that day regardless of Open/Close.
type DayConfig struct {
	Open   types.TimeString `json:"open"`
	Close  types.TimeString `json:"close"`
	Active bool             `json:"active"`
}

// WeekConfig maps English weekday names ("Monday", ...) to their hours
type WeekConfig map[string]DayConfig

// ScheduleOverride is a named, prioritized rule defining per-weekday operating
// hours over an inclusive date range. Holiday or seasonal hours are layered
// over a standing default by giving them a higher priority.
type ScheduleOverride struct {
	ID        string
	Name      string
	Priority  int
	StartDate time.Time
	EndDate   time.Time
	Config    WeekConfig

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContainsDate returns true if date falls inside the override's inclusive
// range. Comparison is by millisecond timestamp, timezone-naive.
func (s *ScheduleOverride) ContainsDate(date time.Time) bool {
	target := date.UnixMilli()
	return target >= s.StartDate.UnixMilli() && target <= s.EndDate.UnixMilli()
}

// DayFor returns the day configuration for the weekday of date
func (s *ScheduleOverride) DayFor(date time.Time) (DayConfig, bool) {
	day, ok := s.Config[date.Weekday().String()]
	return day, ok
}

// ResolvedHours is the effective operating window for a single date together
// with the name of the schedule it came from. Resolution always produces a
// value - a fallback is substituted when no override matches or lookup fails.
type ResolvedHours struct {
	Open         types.TimeString
	Close        types.TimeString
	Active       bool
	ScheduleName string
}

// NoScheduleFallback marks a date no configured schedule covers: intentionally closed
func NoScheduleFallback() ResolvedHours {
	return ResolvedHours{
		Open:         "00:00",
		Close:        "00:00",
		Active:       false,
		ScheduleName: NoScheduleFoundName,
	}
}

// ClosedWithName marks a matched schedule that has no entry for the weekday
func ClosedWithName(name string) ResolvedHours {
	return ResolvedHours{
		Open:         "00:00",
		Close:        "00:00",
		Active:       false,
		ScheduleName: name,
	}
}

// SystemDefaultHours is the safe default substituted when the schedule lookup
// itself fails - the clinic stays bookable on standard hours instead of
// surfacing the failure to the patient
func SystemDefaultHours() ResolvedHours {
	return ResolvedHours{
		Open:         SystemDefaultOpen,
		Close:        SystemDefaultClose,
		Active:       true,
		ScheduleName: SystemDefaultName,
	}
}
