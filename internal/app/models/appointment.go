package models

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

var AppointmentStatuses = []AppointmentStatus{
	AppointmentScheduled,
	AppointmentCompleted,
	AppointmentCancelled,
}

type Appointment struct {
	ID              ID                `json:"id"`
	PatientID       ID                `json:"patient_id"`
	DoctorID        ID                `json:"doctor_id"`
	PatientName     string            `json:"patient_name,omitempty"`
	DoctorName      string            `json:"doctor_name,omitempty"`
	Specialization  string            `json:"specialization,omitempty"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	Symptoms        string            `json:"symptoms,omitempty"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       string            `json:"created_at,omitempty"`
}

func (a Appointment) EntityID() ID {
	return a.ID
}
