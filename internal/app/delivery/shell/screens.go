package shell

import (
	"context"
	"fmt"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/delivery/table"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/app/services/forms"
	"medicare-frontend/internal/app/services/viewmodels"
	"medicare-frontend/internal/pkg/constvars"
	"sync"
	"time"
)

// ScreenState is the type-free part of a resource view's state.
type ScreenState struct {
	IsLoading   bool
	ActiveError string
	FormOpen    bool
	Editing     models.ID
	Count       int
}

// ResourceScreen pairs a resource view model with its column set and forms.
type ResourceScreen interface {
	ID() string
	Heading() string
	AddLabel() string
	Entity() string

	Refresh(ctx context.Context)
	State() ScreenState
	// Table projects the current items. Its row actions open the edit form
	// and request a confirmed delete using ctx, actor and confirmer.
	Table(ctx context.Context, actor models.Identity, confirmer contracts.Confirmer) (table.Table, error)

	OpenCreateForm(ctx context.Context, actor models.Identity) forms.Form
	OpenEditForm(ctx context.Context, actor models.Identity, id models.ID) (forms.Form, error)
	ActiveForm() forms.Form
	CloseForm()

	RequestDelete(ctx context.Context, id models.ID, confirmer contracts.Confirmer) (bool, error)
	ConfirmDeleteMessage() string
}

type formFactory[R models.Entity] func(ctx context.Context, actor models.Identity, existing *R, onSaved forms.SavedFunc) forms.Form

type resourceScreen[R models.Entity] struct {
	id       string
	heading  string
	addLabel string
	columns  []table.Column
	vm       *viewmodels.ResourceViewModel[R]
	newForm  formFactory[R]

	mu   sync.Mutex
	form forms.Form
}

func newResourceScreen[R models.Entity](id, heading, addLabel string, columns []table.Column, vm *viewmodels.ResourceViewModel[R], newForm formFactory[R]) *resourceScreen[R] {
	return &resourceScreen[R]{
		id:       id,
		heading:  heading,
		addLabel: addLabel,
		columns:  columns,
		vm:       vm,
		newForm:  newForm,
	}
}

func (s *resourceScreen[R]) ID() string       { return s.id }
func (s *resourceScreen[R]) Heading() string  { return s.heading }
func (s *resourceScreen[R]) AddLabel() string { return s.addLabel }
func (s *resourceScreen[R]) Entity() string   { return s.vm.Entity() }

func (s *resourceScreen[R]) Refresh(ctx context.Context) {
	s.vm.Refresh(ctx)
}

func (s *resourceScreen[R]) State() ScreenState {
	snapshot := s.vm.Snapshot()
	state := ScreenState{
		IsLoading:   snapshot.IsLoading,
		ActiveError: snapshot.ActiveError,
		FormOpen:    snapshot.Form.Open,
		Count:       len(snapshot.Items),
	}
	if snapshot.Form.Editing != nil {
		state.Editing = (*snapshot.Form.Editing).EntityID()
	}
	return state
}

func (s *resourceScreen[R]) Table(ctx context.Context, actor models.Identity, confirmer contracts.Confirmer) (table.Table, error) {
	actions := table.Actions[R]{
		OnEdit: func(item R) { s.openEdit(ctx, actor, item) },
	}
	if confirmer != nil {
		actions.OnDelete = func(item R) {
			// the outcome is recorded on the view model
			_, _ = s.vm.RequestDelete(ctx, item.EntityID(), confirmer)
		}
	}
	return table.Project(s.vm.Snapshot().Items, s.columns, actions)
}

func (s *resourceScreen[R]) OpenCreateForm(ctx context.Context, actor models.Identity) forms.Form {
	s.vm.OpenCreateForm()
	return s.setForm(s.newForm(ctx, actor, nil, s.saved))
}

// OpenEditForm opens the edit form for the record with id, loading it only
// when the list does not already hold it.
func (s *resourceScreen[R]) OpenEditForm(ctx context.Context, actor models.Identity, id models.ID) (forms.Form, error) {
	editing, err := s.vm.OpenEditFormByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.setForm(s.newForm(ctx, actor, &editing, s.saved)), nil
}

func (s *resourceScreen[R]) openEdit(ctx context.Context, actor models.Identity, item R) forms.Form {
	editing := s.vm.OpenEditForm(ctx, item)
	return s.setForm(s.newForm(ctx, actor, &editing, s.saved))
}

func (s *resourceScreen[R]) saved(ctx context.Context) {
	s.setForm(nil)
	s.vm.OnFormSaved(ctx)
}

func (s *resourceScreen[R]) setForm(form forms.Form) forms.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
	return form
}

func (s *resourceScreen[R]) ActiveForm() forms.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *resourceScreen[R]) CloseForm() {
	s.setForm(nil)
	s.vm.CloseForm()
}

func (s *resourceScreen[R]) RequestDelete(ctx context.Context, id models.ID, confirmer contracts.Confirmer) (bool, error) {
	return s.vm.RequestDelete(ctx, id, confirmer)
}

func (s *resourceScreen[R]) ConfirmDeleteMessage() string {
	return s.vm.ConfirmDeleteMessage()
}

func memberColumns(location *time.Location, extra ...table.Column) []table.Column {
	columns := []table.Column{
		{Key: "name", Label: "Name"},
		{Key: "username", Label: "Username"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone"},
	}
	columns = append(columns, extra...)
	return append(columns, table.Column{Key: "created_at", Label: "Created At", Format: table.DateFormatter(location)})
}

func appointmentColumns(location *time.Location) []table.Column {
	return []table.Column{
		{Key: "patient_name", Label: "Patient"},
		{Key: "doctor_name", Label: "Doctor"},
		{Key: "specialization", Label: "Specialization"},
		{Key: "symptoms", Label: "Symptoms"},
		{Key: "appointment_date", Label: "Date", Format: table.DateFormatter(location)},
		{Key: "appointment_time", Label: "Time"},
		{Key: "status", Label: "Status", Format: table.StatusFormatter},
		{Key: "created_at", Label: "Created At", Format: table.DateFormatter(location)},
	}
}

func management(label string) string {
	return fmt.Sprintf("%s Management", label)
}

func (s *Shell) buildScreens() map[string]ResourceScreen {
	location := s.location
	clients := s.clients

	admins := viewmodels.NewResourceViewModel[models.Admin](clients.Admins, viewmodels.Options{
		Resource: constvars.ResourceAdmins,
		Entity:   "admin",
	}, s.log)
	doctors := viewmodels.NewResourceViewModel[models.Doctor](clients.Doctors, viewmodels.Options{
		Resource: constvars.ResourceDoctors,
		Entity:   "doctor",
	}, s.log)
	patients := viewmodels.NewResourceViewModel[models.Patient](clients.Patients, viewmodels.Options{
		Resource: constvars.ResourcePatients,
		Entity:   "patient",
	}, s.log)
	appointments := viewmodels.NewResourceViewModel[models.Appointment](clients.Appointments, viewmodels.Options{
		Resource:          constvars.ResourceAppointments,
		Entity:            "appointment",
		RefreshBeforeEdit: true,
	}, s.log)

	pickers := forms.PickerSources{Doctors: clients.Doctors, Patients: clients.Patients}

	return map[string]ResourceScreen{
		constvars.ViewAdmins: newResourceScreen(constvars.ViewAdmins, management("Admins"), "Add Admin",
			memberColumns(location), admins,
			func(_ context.Context, _ models.Identity, existing *models.Admin, onSaved forms.SavedFunc) forms.Form {
				return forms.NewAdminForm(clients.Admins, existing, onSaved)
			}),
		constvars.ViewDoctors: newResourceScreen(constvars.ViewDoctors, management("Doctors"), "Add Doctor",
			memberColumns(location, table.Column{Key: "specialization", Label: "Specialization"}), doctors,
			func(_ context.Context, _ models.Identity, existing *models.Doctor, onSaved forms.SavedFunc) forms.Form {
				return forms.NewDoctorForm(clients.Doctors, existing, onSaved)
			}),
		constvars.ViewPatients: newResourceScreen(constvars.ViewPatients, management("Patients"), "Add Patient",
			memberColumns(location, table.Column{Key: "address", Label: "Address"}), patients,
			func(_ context.Context, _ models.Identity, existing *models.Patient, onSaved forms.SavedFunc) forms.Form {
				return forms.NewPatientForm(clients.Patients, existing, onSaved)
			}),
		constvars.ViewAppointments: newResourceScreen(constvars.ViewAppointments, management("Appointments"), "Schedule Appointment",
			appointmentColumns(location), appointments,
			func(ctx context.Context, actor models.Identity, existing *models.Appointment, onSaved forms.SavedFunc) forms.Form {
				return forms.NewAppointmentForm(ctx, clients.Appointments, pickers, actor, existing, onSaved, s.log)
			}),
	}
}
