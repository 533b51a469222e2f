package shell

import (
	"fmt"
	"medicare-frontend/internal/app/models"
)

const dashboardSubtitle = "Here's what's happening at your hospital today."

type StatCard struct {
	Title string
	Value int
}

// Greeting is the dashboard headline for identity.
func Greeting(identity models.Identity) string {
	return fmt.Sprintf("Welcome back, %s!", identity.Name)
}

func DashboardSubtitle() string {
	return dashboardSubtitle
}

// StatCards lays the summary out for identity. Only admins see the admin count.
func StatCards(identity models.Identity, summary models.DashboardSummary) []StatCard {
	cards := []StatCard{
		{Title: "Total Patients", Value: summary.TotalPatients},
		{Title: "Total Doctors", Value: summary.TotalDoctors},
		{Title: "Today's Appointments", Value: summary.TodayAppointments},
		{Title: "Total Appointments", Value: summary.TotalAppointments},
	}
	if identity.IsAdmin() {
		cards = append(cards, StatCard{Title: "Total Admins", Value: summary.TotalAdmins})
	}
	return cards
}
