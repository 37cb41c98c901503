package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name   string
		hours  domain.ResolvedHours
		booked []string
		want   []string
	}{
		{
			name:  "full morning without bookings",
			hours: domain.ResolvedHours{Open: "09:00", Close: "12:00", Active: true},
			want:  []string{"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"},
		},
		{
			name:   "booked slot removed",
			hours:  domain.ResolvedHours{Open: "09:00", Close: "12:00", Active: true},
			booked: []string{"10:00 AM"},
			want:   []string{"09:00 AM", "09:30 AM", "10:30 AM", "11:00 AM", "11:30 AM"},
		},
		{
			name:   "all slots booked",
			hours:  domain.ResolvedHours{Open: "09:00", Close: "10:00", Active: true},
			booked: []string{"09:00 AM", "09:30 AM"},
			want:   []string{},
		},
		{
			name:  "inactive day",
			hours: domain.ResolvedHours{Open: "09:00", Close: "17:00", Active: false},
			want:  []string{},
		},
		{
			name:  "close equals open",
			hours: domain.ResolvedHours{Open: "09:00", Close: "09:00", Active: true},
			want:  []string{},
		},
		{
			name:  "close before open",
			hours: domain.ResolvedHours{Open: "17:00", Close: "09:00", Active: true},
			want:  []string{},
		},
		{
			name:  "close not on grid excluded",
			hours: domain.ResolvedHours{Open: "09:00", Close: "10:15", Active: true},
			want:  []string{"09:00 AM", "09:30 AM", "10:00 AM"},
		},
		{
			name:  "afternoon labels use PM",
			hours: domain.ResolvedHours{Open: "13:00", Close: "14:00", Active: true},
			want:  []string{"01:00 PM", "01:30 PM"},
		},
		{
			name:  "unparseable open treated as closed",
			hours: domain.ResolvedHours{Open: "garbage", Close: "17:00", Active: true},
			want:  []string{},
		},
		{
			name:   "booked label must match exactly",
			hours:  domain.ResolvedHours{Open: "09:00", Close: "10:00", Active: true},
			booked: []string{"9:00 AM", "09:00am"},
			want:   []string{"09:00 AM", "09:30 AM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateSlots(tt.hours, tt.booked)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlots_NeverNil(t *testing.T) {
	got := generateSlots(domain.ResolvedHours{Active: false}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
