package requests

import "medicare-frontend/internal/app/models"

type Appointment struct {
	PatientID       models.ID                `json:"patient_id" validate:"required"`
	DoctorID        models.ID                `json:"doctor_id" validate:"required"`
	AppointmentDate string                   `json:"appointment_date" validate:"required"`
	AppointmentTime string                   `json:"appointment_time" validate:"required"`
	Symptoms        string                   `json:"symptoms"`
	Status          models.AppointmentStatus `json:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
}
