package models

// DashboardSummary is computed by the API on every request.
type DashboardSummary struct {
	TotalPatients     int `json:"total_patients"`
	TotalDoctors      int `json:"total_doctors"`
	TotalAdmins       int `json:"total_admins"`
	TodayAppointments int `json:"today_appointments"`
	TotalAppointments int `json:"total_appointments"`
}
