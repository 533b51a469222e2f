package models

import "strings"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

var Roles = []Role{RoleAdmin, RoleDoctor, RolePatient}

func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Roles {
		if role == known {
			return role, true
		}
	}
	return "", false
}

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleDoctor:
		return "Doctor"
	case RolePatient:
		return "Patient"
	}
	return string(r)
}

// Profile holds the fields every member carries regardless of role.
type Profile struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func (p Profile) EntityID() ID {
	return p.ID
}

// Identity is the authenticated principal held by the session store.
type Identity struct {
	Profile
	Role Role `json:"user_type"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// HasRole reports whether the identity holds any of the given roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}

// Member is a registry record. Each variant carries only the fields of its
// own role.
type Member interface {
	Entity
	Role() Role
	Identity() Identity
}

type Admin struct {
	Profile
	CreatedAt string `json:"created_at,omitempty"`
}

func (a Admin) Role() Role { return RoleAdmin }

func (a Admin) Identity() Identity {
	return Identity{Profile: a.Profile, Role: RoleAdmin}
}

type Doctor struct {
	Profile
	Specialization string `json:"specialization"`
	CreatedAt      string `json:"created_at,omitempty"`
}

func (d Doctor) Role() Role { return RoleDoctor }

func (d Doctor) Identity() Identity {
	return Identity{Profile: d.Profile, Role: RoleDoctor}
}

type Patient struct {
	Profile
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (p Patient) Role() Role { return RolePatient }

func (p Patient) Identity() Identity {
	return Identity{Profile: p.Profile, Role: RolePatient}
}
