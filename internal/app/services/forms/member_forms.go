package forms

import (
	"context"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/dto/requests"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"
)

// SavedFunc runs after a successful create or update.
type SavedFunc func(ctx context.Context)

// memberForm drives the admin, doctor and patient forms, which differ only
// in their role-specific fields.
type memberForm[R models.Entity, P any] struct {
	*baseForm
	client   contracts.ResourceClient[R, P]
	existing *R
	build    func(values func(string) string, creating bool) P
	onSaved  SavedFunc
}

func profileFields(creating bool) []Field {
	fields := []Field{
		{Name: "name", Label: "Name", Type: FieldText, Required: true},
		{Name: "username", Label: "Username", Type: FieldText, Required: true},
		{Name: "email", Label: "Email", Type: FieldEmail, Required: true},
		{Name: "phone", Label: "Phone", Type: FieldTel},
	}
	if creating {
		fields = append(fields, Field{Name: "password", Label: "Password", Type: FieldPassword, Required: true})
	}
	return fields
}

func profileValues(profile models.Profile) map[string]string {
	return map[string]string{
		"name":     profile.Name,
		"username": profile.Username,
		"email":    profile.Email,
		"phone":    profile.Phone,
	}
}

func formTitle(entity string, creating bool) string {
	if creating {
		return "Add " + entity
	}
	return "Edit " + entity
}

func (f *memberForm[R, P]) Submit(ctx context.Context) error {
	err := f.run(ctx, func(ctx context.Context) error {
		creating := f.existing == nil
		payload := f.build(f.value, creating)
		if err := utils.ValidateStruct(payload); err != nil {
			return exceptions.ErrInputValidation(err)
		}

		var err error
		if creating {
			_, err = f.client.Create(ctx, payload)
		} else {
			_, err = f.client.Update(ctx, (*f.existing).EntityID(), payload)
		}
		return err
	})
	if err != nil {
		return err
	}

	if f.onSaved != nil {
		f.onSaved(ctx)
	}
	return nil
}

func NewAdminForm(client contracts.AdminClient, existing *models.Admin, onSaved SavedFunc) Form {
	creating := existing == nil
	values := map[string]string{}
	if !creating {
		values = profileValues(existing.Profile)
	}
	return &memberForm[models.Admin, requests.Admin]{
		baseForm: newBaseForm(formTitle("Admin", creating), profileFields(creating), values),
		client:   client,
		existing: existing,
		onSaved:  onSaved,
		build: func(value func(string) string, creating bool) requests.Admin {
			return requests.Admin{
				Creating: creating,
				Name:     value("name"),
				Username: value("username"),
				Email:    value("email"),
				Phone:    value("phone"),
				Password: passwordIfCreating(value, creating),
			}
		},
	}
}

func NewDoctorForm(client contracts.DoctorClient, existing *models.Doctor, onSaved SavedFunc) Form {
	creating := existing == nil
	values := map[string]string{}
	if !creating {
		values = profileValues(existing.Profile)
		values["specialization"] = existing.Specialization
	}
	fields := append(profileFields(creating),
		Field{Name: "specialization", Label: "Specialization", Type: FieldText, Required: true},
	)
	return &memberForm[models.Doctor, requests.Doctor]{
		baseForm: newBaseForm(formTitle("Doctor", creating), fields, values),
		client:   client,
		existing: existing,
		onSaved:  onSaved,
		build: func(value func(string) string, creating bool) requests.Doctor {
			return requests.Doctor{
				Creating:       creating,
				Name:           value("name"),
				Username:       value("username"),
				Email:          value("email"),
				Phone:          value("phone"),
				Password:       passwordIfCreating(value, creating),
				Specialization: value("specialization"),
			}
		},
	}
}

func NewPatientForm(client contracts.PatientClient, existing *models.Patient, onSaved SavedFunc) Form {
	creating := existing == nil
	values := map[string]string{}
	if !creating {
		values = profileValues(existing.Profile)
		values["address"] = existing.Address
	}
	fields := append(profileFields(creating),
		Field{Name: "address", Label: "Address", Type: FieldTextarea},
	)
	return &memberForm[models.Patient, requests.Patient]{
		baseForm: newBaseForm(formTitle("Patient", creating), fields, values),
		client:   client,
		existing: existing,
		onSaved:  onSaved,
		build: func(value func(string) string, creating bool) requests.Patient {
			return requests.Patient{
				Creating: creating,
				Name:     value("name"),
				Username: value("username"),
				Email:    value("email"),
				Phone:    value("phone"),
				Password: passwordIfCreating(value, creating),
				Address:  value("address"),
			}
		},
	}
}

func passwordIfCreating(value func(string) string, creating bool) string {
	if !creating {
		return ""
	}
	return value("password")
}
