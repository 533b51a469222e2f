package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain date", "2024-03-07", "03/07/2024"},
		{"naive timestamp", "2024-03-07T23:30:00", "03/07/2024"},
		{"timestamp with fraction", "2024-03-07T08:15:00.123456", "03/07/2024"},
		{"utc timestamp", "2024-03-07T10:00:00Z", "03/07/2024"},
		{"rfc1123", "Thu, 07 Mar 2024 10:00:00 GMT", "03/07/2024"},
		{"garbage", "not a date", "Invalid Date"},
		{"empty", "", "Invalid Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplayDate(tt.value, time.UTC))
		})
	}
}

func TestFormatDisplayDate_ConvertsZonedValues(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	assert.Equal(t, "03/08/2024", FormatDisplayDate("2024-03-07T20:00:00Z", jakarta))
	assert.Equal(t, "03/07/2024", FormatDisplayDate("2024-03-07T20:00:00", jakarta))
}

func TestFormInputDate(t *testing.T) {
	assert.Equal(t, "2024-03-07", FormInputDate("Thu, 07 Mar 2024 00:00:00 GMT"))
	assert.Equal(t, "2024-03-07", FormInputDate("2024-03-07"))
	assert.Equal(t, "tomorrow", FormInputDate("tomorrow"))
}
