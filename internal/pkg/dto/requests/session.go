package requests

import "medicare-frontend/internal/app/models"

type Login struct {
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required"`
	UserType models.Role `json:"user_type" validate:"required,oneof=admin doctor patient"`
}

// Register carries the role-specific field matching Role; the other stays empty.
type Register struct {
	Name           string      `json:"name" validate:"required"`
	Username       string      `json:"username" validate:"required"`
	Password       string      `json:"password" validate:"required"`
	Email          string      `json:"email" validate:"required,email"`
	Phone          string      `json:"phone,omitempty"`
	Role           models.Role `json:"role" validate:"required,oneof=admin doctor patient"`
	Specialization string      `json:"specialization,omitempty"`
	Address        string      `json:"address,omitempty"`
}
