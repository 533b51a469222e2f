package table

import (
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/utils"
	"time"

	"github.com/tidwall/gjson"
)

const (
	ClassStatusScheduled = "status-scheduled"
	ClassStatusCompleted = "status-completed"
	ClassStatusCancelled = "status-cancelled"
)

// DateFormatter renders API dates as mm/dd/yyyy in location.
func DateFormatter(location *time.Location) Formatter {
	return func(value gjson.Result) Cell {
		return Cell{Text: utils.FormatDisplayDate(value.String(), location)}
	}
}

// StatusFormatter styles appointment statuses. Anything that is neither
// Scheduled nor Completed is shown as cancelled.
func StatusFormatter(value gjson.Result) Cell {
	status := value.String()
	return Cell{Text: status, Class: StatusClass(models.AppointmentStatus(status))}
}

func StatusClass(status models.AppointmentStatus) string {
	switch status {
	case models.AppointmentScheduled:
		return ClassStatusScheduled
	case models.AppointmentCompleted:
		return ClassStatusCompleted
	}
	return ClassStatusCancelled
}
