package forms

import (
	"context"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/dto/requests"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"
)

func roleOptions() []Option {
	options := make([]Option, 0, len(models.Roles))
	for _, role := range models.Roles {
		options = append(options, Option{Value: string(role), Label: role.Label()})
	}
	return options
}

type LoggedInFunc func(ctx context.Context, identity models.Identity) error

type loginForm struct {
	*baseForm
	client     contracts.SessionClient
	onLoggedIn LoggedInFunc
}

// NewLoginForm submits credentials and hands the returned identity to
// onLoggedIn. A failed login leaves the session untouched.
func NewLoginForm(client contracts.SessionClient, onLoggedIn LoggedInFunc) Form {
	fields := []Field{
		{Name: "user_type", Label: "Login as", Type: FieldSelect, Required: true, Options: roleOptions()},
		{Name: "username", Label: "Username", Type: FieldText, Required: true},
		{Name: "password", Label: "Password", Type: FieldPassword, Required: true},
	}
	return &loginForm{
		baseForm:   newBaseForm("Login", fields, map[string]string{"user_type": string(models.RolePatient)}),
		client:     client,
		onLoggedIn: onLoggedIn,
	}
}

func (f *loginForm) Submit(ctx context.Context) error {
	return f.run(ctx, func(ctx context.Context) error {
		request := requests.Login{
			Username: f.value("username"),
			Password: f.value("password"),
			UserType: models.Role(f.value("user_type")),
		}
		if err := utils.ValidateStruct(request); err != nil {
			return exceptions.ErrInputValidation(err)
		}

		identity, err := f.client.Login(ctx, request)
		if err != nil {
			return err
		}
		return f.onLoggedIn(ctx, *identity)
	})
}

type RegisteredFunc func(ctx context.Context, message string)

type registerForm struct {
	*baseForm
	client       contracts.SessionClient
	onRegistered RegisteredFunc
}

// NewRegisterForm shows the specialization field for doctors and the
// address field for patients.
func NewRegisterForm(client contracts.SessionClient, onRegistered RegisteredFunc) Form {
	form := &registerForm{
		baseForm:     newBaseForm("Register", nil, map[string]string{"role": string(models.RolePatient)}),
		client:       client,
		onRegistered: onRegistered,
	}
	form.setFields(registerFields(models.RolePatient))
	return form
}

func registerFields(role models.Role) []Field {
	fields := []Field{
		{Name: "role", Label: "Register as", Type: FieldSelect, Required: true, Options: roleOptions()},
		{Name: "name", Label: "Full Name", Type: FieldText, Required: true},
		{Name: "username", Label: "Username", Type: FieldText, Required: true},
		{Name: "email", Label: "Email", Type: FieldEmail, Required: true},
		{Name: "phone", Label: "Phone", Type: FieldTel},
		{Name: "password", Label: "Password", Type: FieldPassword, Required: true},
	}
	switch role {
	case models.RoleDoctor:
		fields = append(fields, Field{Name: "specialization", Label: "Specialization", Type: FieldText})
	case models.RolePatient:
		fields = append(fields, Field{Name: "address", Label: "Address", Type: FieldTextarea})
	}
	return fields
}

// Set switches the role-specific field when the role changes.
func (f *registerForm) Set(name, value string) error {
	if name == "role" {
		role, ok := models.ParseRole(value)
		if !ok {
			return exceptions.ErrInvalidRole(value)
		}
		f.setFields(registerFields(role))
		value = string(role)
	}
	return f.baseForm.Set(name, value)
}

func (f *registerForm) Submit(ctx context.Context) error {
	var message string
	err := f.run(ctx, func(ctx context.Context) error {
		role := models.Role(f.value("role"))
		request := requests.Register{
			Name:     f.value("name"),
			Username: f.value("username"),
			Password: f.value("password"),
			Email:    f.value("email"),
			Phone:    f.value("phone"),
			Role:     role,
		}
		switch role {
		case models.RoleDoctor:
			request.Specialization = f.value("specialization")
		case models.RolePatient:
			request.Address = f.value("address")
		}
		if err := utils.ValidateStruct(request); err != nil {
			return exceptions.ErrInputValidation(err)
		}

		var err error
		message, err = f.client.Register(ctx, request)
		return err
	})
	if err != nil {
		return err
	}

	if f.onRegistered != nil {
		f.onRegistered(ctx, message)
	}
	return nil
}
