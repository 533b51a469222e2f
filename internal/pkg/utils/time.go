package utils

import (
	"medicare-frontend/internal/pkg/constvars"
	"strings"
	"time"
)

var apiDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseAPIDate accepts the date shapes the API is known to emit.
func ParseAPIDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range apiDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func FormatDisplayDate(value string, location *time.Location) string {
	parsed, ok := ParseAPIDate(value)
	if !ok {
		return constvars.InvalidDateText
	}
	if location != nil && hasZone(value) {
		parsed = parsed.In(location)
	}
	return parsed.Format(constvars.DisplayDateLayout)
}

// Plain dates and naive timestamps carry no zone and are shown as written.
func hasZone(value string) bool {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "Z") || strings.HasSuffix(value, "GMT") {
		return true
	}
	tIndex := strings.Index(value, "T")
	return tIndex > 0 && strings.ContainsAny(value[tIndex:], "+-")
}

// FormInputDate normalizes an API date to the yyyy-mm-dd shape used by date inputs.
func FormInputDate(value string) string {
	parsed, ok := ParseAPIDate(value)
	if !ok {
		return value
	}
	return parsed.Format("2006-01-02")
}
