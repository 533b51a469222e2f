package navigation

import (
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
)

type Item struct {
	ID    string
	Label string
	Roles []models.Role
}

func (i Item) Allows(role models.Role) bool {
	for _, allowed := range i.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

var menu = []Item{
	{ID: constvars.ViewDashboard, Label: "Dashboard", Roles: []models.Role{models.RoleAdmin, models.RoleDoctor, models.RolePatient}},
	{ID: constvars.ViewAdmins, Label: "Admins", Roles: []models.Role{models.RoleAdmin}},
	{ID: constvars.ViewDoctors, Label: "Doctors", Roles: []models.Role{models.RoleAdmin, models.RoleDoctor}},
	{ID: constvars.ViewPatients, Label: "Patients", Roles: []models.Role{models.RoleAdmin, models.RoleDoctor}},
	{ID: constvars.ViewAppointments, Label: "Appointments", Roles: []models.Role{models.RoleAdmin, models.RoleDoctor, models.RolePatient}},
}

// Menu returns the full static table in declared order.
func Menu() []Item {
	return append([]Item(nil), menu...)
}

// VisibleItems returns the menu entries role may reach, in declared order.
func VisibleItems(role models.Role) []Item {
	visible := make([]Item, 0, len(menu))
	for _, item := range menu {
		if item.Allows(role) {
			visible = append(visible, item)
		}
	}
	return visible
}

// CanVisit reports whether role may open view.
func CanVisit(role models.Role, view string) bool {
	for _, item := range menu {
		if item.ID == view {
			return item.Allows(role)
		}
	}
	return false
}
