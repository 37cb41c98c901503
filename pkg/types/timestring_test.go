package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		want    int
		wantErr bool
	}{
		{name: "morning", value: "09:00", want: 540},
		{name: "midnight", value: "00:00", want: 0},
		{name: "last minute of day", value: "23:59", want: 1439},
		{name: "half hour", value: "14:30", want: 870},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "not-a-time", wantErr: true},
		{name: "out of range hour", value: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.Minutes()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Label(t *testing.T) {
	tests := []struct {
		value TimeString
		want  string
	}{
		{value: "09:00", want: "09:00 AM"},
		{value: "12:00", want: "12:00 PM"},
		{value: "00:00", want: "12:00 AM"},
		{value: "14:30", want: "02:30 PM"},
		{value: "23:30", want: "11:30 PM"},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			got, err := tt.value.Label()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelFromMinutes(t *testing.T) {
	assert.Equal(t, "09:30 AM", LabelFromMinutes(570))
	assert.Equal(t, "12:00 PM", LabelFromMinutes(720))
	assert.Equal(t, "12:00 AM", LabelFromMinutes(0))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	// Переход через полночь запрещен
	_, err = TimeString("23:45").AddMinutes(30)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))

	// Нечитаемые значения не сравниваются
	assert.False(t, TimeString("garbage").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("garbage"))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(870)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), got)

	_, err = NewTimeStringFromMinutes(-1)
	require.Error(t, err)

	_, err = NewTimeStringFromMinutes(24 * 60)
	require.Error(t, err)
}
