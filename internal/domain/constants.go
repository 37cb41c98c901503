package domain

import "github.com/m04kA/Clinic-BookingService/pkg/types"

// SlotStepMinutes is the fixed length of a bookable slot
const SlotStepMinutes = 30

// Time and date format constants
const (
	DateFormat = "2006-01-02" // yyyy-MM-dd, used as dateKey
	TimeFormat = "15:04"      // HH:MM, schedule open/close times
)

// Fallback schedule identity
const (
	NoScheduleFoundName = "No Schedule Found"
	SystemDefaultName   = "System Default"

	SystemDefaultOpen  types.TimeString = "09:00"
	SystemDefaultClose types.TimeString = "17:00"
)

// Business validation constants
const (
	MaxNameLength               = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MinSchedulePriority         = 0
	MaxSchedulePriority         = 1000
)

// Weekdays список допустимых ключей недельной конфигурации расписания
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// IsWeekday проверяет, что name - корректное название дня недели
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}
