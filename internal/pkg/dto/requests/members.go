package requests

// Password is only sent when Creating is set; edits never change it.
type Admin struct {
	Creating bool   `json:"-"`
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty" validate:"required_if=Creating true"`
}

type Doctor struct {
	Creating       bool   `json:"-"`
	Name           string `json:"name" validate:"required"`
	Username       string `json:"username" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone,omitempty"`
	Password       string `json:"password,omitempty" validate:"required_if=Creating true"`
	Specialization string `json:"specialization" validate:"required"`
}

type Patient struct {
	Creating bool   `json:"-"`
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty" validate:"required_if=Creating true"`
	Address  string `json:"address,omitempty"`
}
