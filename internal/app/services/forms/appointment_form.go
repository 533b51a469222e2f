package forms

import (
	"context"
	"fmt"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/dto/requests"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PickerSources supply the doctor and patient selections.
type PickerSources struct {
	Doctors  contracts.DoctorClient
	Patients contracts.PatientClient
}

type appointmentForm struct {
	*baseForm
	client   contracts.AppointmentClient
	existing *models.Appointment
	onSaved  SavedFunc
}

// NewAppointmentForm loads the doctor and patient pickers before returning,
// but only for admins and doctors. A patient gets no options, so it can
// edit an existing appointment and cannot book a new one.
func NewAppointmentForm(ctx context.Context, client contracts.AppointmentClient, pickers PickerSources, actor models.Identity, existing *models.Appointment, onSaved SavedFunc, logger *zap.Logger) Form {
	creating := existing == nil
	title := "Schedule Appointment"
	values := map[string]string{"status": string(models.AppointmentScheduled)}
	if !creating {
		title = "Edit Appointment"
		values = map[string]string{
			"patient_id":       existing.PatientID.String(),
			"doctor_id":        existing.DoctorID.String(),
			"appointment_date": utils.FormInputDate(existing.AppointmentDate),
			"appointment_time": existing.AppointmentTime,
			"symptoms":         existing.Symptoms,
			"status":           string(existing.Status),
		}
		if values["status"] == "" {
			values["status"] = string(models.AppointmentScheduled)
		}
	}

	form := &appointmentForm{
		baseForm: newBaseForm(title, nil, values),
		client:   client,
		existing: existing,
		onSaved:  onSaved,
	}

	var patientOptions, doctorOptions []Option
	if actor.HasRole(models.RoleAdmin, models.RoleDoctor) {
		var err error
		patientOptions, doctorOptions, err = loadPickers(ctx, pickers)
		if err != nil {
			logger.Error("appointmentForm pickers unavailable",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRoleKey, string(actor.Role)),
				zap.Error(err),
			)
			form.setError(exceptions.ClientMessage(exceptions.ErrLoadPickerData(err)))
		}
	}
	if !creating {
		patientOptions = withCurrent(patientOptions, existing.PatientID, existing.PatientName)
		doctorOptions = withCurrent(doctorOptions, existing.DoctorID, doctorLabel(existing.DoctorName, existing.Specialization))
	}

	form.setFields(appointmentFields(patientOptions, doctorOptions))
	return form
}

func appointmentFields(patientOptions, doctorOptions []Option) []Field {
	statusOptions := make([]Option, 0, len(models.AppointmentStatuses))
	for _, status := range models.AppointmentStatuses {
		statusOptions = append(statusOptions, Option{Value: string(status), Label: string(status)})
	}
	return []Field{
		{Name: "patient_id", Label: "Patient", Type: FieldSelect, Required: true, Placeholder: "Select Patient", Options: patientOptions},
		{Name: "doctor_id", Label: "Doctor", Type: FieldSelect, Required: true, Placeholder: "Select Doctor", Options: doctorOptions},
		{Name: "appointment_date", Label: "Appointment Date", Type: FieldDate, Required: true},
		{Name: "appointment_time", Label: "Appointment Time", Type: FieldTime, Required: true},
		{Name: "symptoms", Label: "Symptoms", Type: FieldText, Placeholder: "Symptoms"},
		{Name: "status", Label: "Status", Type: FieldSelect, Required: true, Options: statusOptions},
	}
}

func loadPickers(ctx context.Context, pickers PickerSources) ([]Option, []Option, error) {
	var patients []models.Patient
	var doctors []models.Doctor

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		patients, err = pickers.Patients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		doctors, err = pickers.Doctors.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	patientOptions := make([]Option, 0, len(patients))
	for _, patient := range patients {
		patientOptions = append(patientOptions, Option{Value: patient.ID.String(), Label: patient.Name})
	}
	doctorOptions := make([]Option, 0, len(doctors))
	for _, doctor := range doctors {
		doctorOptions = append(doctorOptions, Option{Value: doctor.ID.String(), Label: doctorLabel(doctor.Name, doctor.Specialization)})
	}
	return patientOptions, doctorOptions, nil
}

func doctorLabel(name, specialization string) string {
	if specialization == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, specialization)
}

// withCurrent keeps the record's own selection visible when the loaded
// options do not include it.
func withCurrent(options []Option, id models.ID, label string) []Option {
	if id.IsZero() {
		return options
	}
	for _, option := range options {
		if option.Value == id.String() {
			return options
		}
	}
	if label == "" {
		label = id.String()
	}
	return append(options, Option{Value: id.String(), Label: label})
}

func (f *appointmentForm) Submit(ctx context.Context) error {
	err := f.run(ctx, func(ctx context.Context) error {
		payload := requests.Appointment{
			PatientID:       models.ID(f.value("patient_id")),
			DoctorID:        models.ID(f.value("doctor_id")),
			AppointmentDate: f.value("appointment_date"),
			AppointmentTime: f.value("appointment_time"),
			Symptoms:        f.value("symptoms"),
			Status:          models.AppointmentStatus(f.value("status")),
		}
		if err := utils.ValidateStruct(payload); err != nil {
			return exceptions.ErrInputValidation(err)
		}

		var err error
		if f.existing == nil {
			_, err = f.client.Create(ctx, payload)
		} else {
			_, err = f.client.Update(ctx, f.existing.ID, payload)
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
