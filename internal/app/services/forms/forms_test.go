package forms

import (
	"context"
	"errors"
	"testing"

	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/dto/requests"
	"medicare-frontend/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockResourceClient[R models.Entity, P any] struct {
	mock.Mock
}

func (m *MockResourceClient[R, P]) List(ctx context.Context) ([]R, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]R)
	return items, args.Error(1)
}

func (m *MockResourceClient[R, P]) Get(ctx context.Context, id models.ID) (*R, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*R)
	return item, args.Error(1)
}

func (m *MockResourceClient[R, P]) Create(ctx context.Context, payload P) (*R, error) {
	args := m.Called(ctx, payload)
	item, _ := args.Get(0).(*R)
	return item, args.Error(1)
}

func (m *MockResourceClient[R, P]) Update(ctx context.Context, id models.ID, payload P) (*R, error) {
	args := m.Called(ctx, id, payload)
	item, _ := args.Get(0).(*R)
	return item, args.Error(1)
}

func (m *MockResourceClient[R, P]) Remove(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSessionClient struct {
	mock.Mock
}

func (m *MockSessionClient) Login(ctx context.Context, request requests.Login) (*models.Identity, error) {
	args := m.Called(ctx, request)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockSessionClient) Register(ctx context.Context, request requests.Register) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockSessionClient) Logout(ctx context.Context) {
	m.Called(ctx)
}

func fill(t *testing.T, form Form, values map[string]string) {
	t.Helper()
	for name, value := range values {
		require.NoError(t, form.Set(name, value))
	}
}

func fieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return names
}

func TestDoctorForm_Create(t *testing.T) {
	client := new(MockResourceClient[models.Doctor, requests.Doctor])
	expected := requests.Doctor{
		Creating:       true,
		Name:           "Stephen Strange",
		Username:       "strange",
		Email:          "strange@example.com",
		Password:       "secret",
		Specialization: "Neurology",
	}
	client.On("Create", mock.Anything, expected).Return(&models.Doctor{Profile: models.Profile{ID: "7"}}, nil).Once()

	saved := 0
	form := NewDoctorForm(client, nil, func(ctx context.Context) { saved++ })
	assert.Equal(t, "Add Doctor", form.Title())
	assert.Equal(t, []string{"name", "username", "email", "phone", "password", "specialization"}, fieldNames(form.Fields()))

	fill(t, form, map[string]string{
		"name":           "Stephen Strange",
		"username":       "strange",
		"email":          "strange@example.com",
		"password":       "secret",
		"specialization": "Neurology",
	})

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, 1, saved)
	assert.Empty(t, form.Error())
	assert.False(t, form.Loading())
	client.AssertExpectations(t)
}

func TestPatientForm_EditSeedsAndUpdates(t *testing.T) {
	existing := &models.Patient{
		Profile: models.Profile{ID: "p1", Name: "John Doe", Username: "john", Email: "john@example.com"},
		Address: "1 Main St",
	}
	client := new(MockResourceClient[models.Patient, requests.Patient])
	client.On("Update", mock.Anything, models.ID("p1"), requests.Patient{
		Name:     "John Doe",
		Username: "john",
		Email:    "john@example.com",
		Address:  "2 Side St",
	}).Return(&models.Patient{}, nil).Once()

	form := NewPatientForm(client, existing, nil)
	assert.Equal(t, "Edit Patient", form.Title())
	assert.NotContains(t, fieldNames(form.Fields()), "password")
	assert.Equal(t, "1 Main St", form.Fields()[len(form.Fields())-1].Value)

	require.NoError(t, form.Set("address", "2 Side St"))
	require.NoError(t, form.Submit(context.Background()))
	client.AssertExpectations(t)
}

func TestAdminForm_ClientSideValidation(t *testing.T) {
	client := new(MockResourceClient[models.Admin, requests.Admin])
	form := NewAdminForm(client, nil, nil)

	fill(t, form, map[string]string{"name": "Root", "username": "root", "email": "not-an-email", "password": "x"})
	err := form.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
	assert.Equal(t, "email must be a valid email", form.Error())
	client.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	require.NoError(t, form.Set("email", "root@example.com"))
	require.NoError(t, form.Set("password", ""))
	require.Error(t, form.Submit(context.Background()))
	assert.Equal(t, "password is required", form.Error())
}

func TestAdminForm_ServerErrorShownInline(t *testing.T) {
	client := new(MockResourceClient[models.Admin, requests.Admin])
	client.On("Create", mock.Anything, mock.Anything).Return(nil, exceptions.ErrRejectedPayload(409, "Username already exists", "Failed to save admin.")).Once()

	saved := false
	form := NewAdminForm(client, nil, func(ctx context.Context) { saved = true })
	fill(t, form, map[string]string{"name": "Root", "username": "root", "email": "root@example.com", "password": "x"})

	require.Error(t, form.Submit(context.Background()))
	assert.Equal(t, "Username already exists", form.Error())
	assert.False(t, saved)
}

func TestForm_SetUnknownField(t *testing.T) {
	form := NewAdminForm(new(MockResourceClient[models.Admin, requests.Admin]), nil, nil)
	err := form.Set("specialization", "x")
	assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
}

var (
	adminActor   = models.Identity{Profile: models.Profile{ID: "1", Name: "Root"}, Role: models.RoleAdmin}
	patientActor = models.Identity{Profile: models.Profile{ID: "p1", Name: "John Doe"}, Role: models.RolePatient}
)

func pickerMocks() (*MockResourceClient[models.Doctor, requests.Doctor], *MockResourceClient[models.Patient, requests.Patient]) {
	return new(MockResourceClient[models.Doctor, requests.Doctor]), new(MockResourceClient[models.Patient, requests.Patient])
}

func TestAppointmentForm_AdminLoadsPickers(t *testing.T) {
	doctors, patients := pickerMocks()
	doctors.On("List", mock.Anything).Return([]models.Doctor{{Profile: models.Profile{ID: "2", Name: "Dr. Who"}, Specialization: "Time"}}, nil).Once()
	patients.On("List", mock.Anything).Return([]models.Patient{{Profile: models.Profile{ID: "1", Name: "John Doe"}}}, nil).Once()

	appointments := new(MockResourceClient[models.Appointment, requests.Appointment])
	appointments.On("Create", mock.Anything, requests.Appointment{
		PatientID:       "1",
		DoctorID:        "2",
		AppointmentDate: "2024-05-01",
		AppointmentTime: "09:30",
		Status:          models.AppointmentScheduled,
	}).Return(&models.Appointment{ID: "10"}, nil).Once()

	form := NewAppointmentForm(context.Background(), appointments, PickerSources{Doctors: doctors, Patients: patients}, adminActor, nil, nil, zap.NewNop())
	assert.Equal(t, "Schedule Appointment", form.Title())

	fields := form.Fields()
	assert.Equal(t, []Option{{Value: "1", Label: "John Doe"}}, fields[0].Options)
	assert.Equal(t, []Option{{Value: "2", Label: "Dr. Who (Time)"}}, fields[1].Options)
	assert.Equal(t, "Scheduled", fields[5].Value)

	fill(t, form, map[string]string{"patient_id": "1", "doctor_id": "2", "appointment_date": "2024-05-01", "appointment_time": "09:30"})
	require.NoError(t, form.Submit(context.Background()))
	appointments.AssertExpectations(t)
}

func TestAppointmentForm_PickerFailure(t *testing.T) {
	doctors, patients := pickerMocks()
	doctors.On("List", mock.Anything).Return(nil, exceptions.ErrSendHTTPRequest(errors.New("down")))
	patients.On("List", mock.Anything).Return([]models.Patient{}, nil)

	form := NewAppointmentForm(context.Background(), new(MockResourceClient[models.Appointment, requests.Appointment]), PickerSources{Doctors: doctors, Patients: patients}, adminActor, nil, nil, zap.NewNop())

	assert.Equal(t, "Failed to load doctor and patient data.", form.Error())
}

func TestAppointmentForm_PatientCannotBook(t *testing.T) {
	doctors, patients := pickerMocks()
	appointments := new(MockResourceClient[models.Appointment, requests.Appointment])

	form := NewAppointmentForm(context.Background(), appointments, PickerSources{Doctors: doctors, Patients: patients}, patientActor, nil, nil, zap.NewNop())

	fields := form.Fields()
	assert.Empty(t, fields[0].Options)
	assert.Empty(t, fields[1].Options)

	fill(t, form, map[string]string{"appointment_date": "2024-05-01", "appointment_time": "09:30"})
	require.Error(t, form.Submit(context.Background()))
	assert.Equal(t, "patient_id is required", form.Error())

	doctors.AssertNotCalled(t, "List", mock.Anything)
	patients.AssertNotCalled(t, "List", mock.Anything)
	appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAppointmentForm_PatientEditsExisting(t *testing.T) {
	existing := &models.Appointment{
		ID:              "a1",
		PatientID:       "p1",
		DoctorID:        "2",
		PatientName:     "John Doe",
		DoctorName:      "Dr. Who",
		Specialization:  "Time",
		AppointmentDate: "Wed, 01 May 2024 00:00:00 GMT",
		AppointmentTime: "09:30:00",
		Status:          models.AppointmentScheduled,
	}
	appointments := new(MockResourceClient[models.Appointment, requests.Appointment])
	appointments.On("Update", mock.Anything, models.ID("a1"), requests.Appointment{
		PatientID:       "p1",
		DoctorID:        "2",
		AppointmentDate: "2024-05-01",
		AppointmentTime: "09:30:00",
		Symptoms:        "cough",
		Status:          models.AppointmentCancelled,
	}).Return(&models.Appointment{}, nil).Once()

	doctors, patients := pickerMocks()
	form := NewAppointmentForm(context.Background(), appointments, PickerSources{Doctors: doctors, Patients: patients}, patientActor, existing, nil, zap.NewNop())
	assert.Equal(t, "Edit Appointment", form.Title())
	assert.Equal(t, []Option{{Value: "2", Label: "Dr. Who (Time)"}}, form.Fields()[1].Options)

	fill(t, form, map[string]string{"symptoms": "cough", "status": "Cancelled"})
	require.NoError(t, form.Submit(context.Background()))
	appointments.AssertExpectations(t)
}

func TestLoginForm(t *testing.T) {
	identity := &models.Identity{Profile: models.Profile{ID: "5", Username: "house"}, Role: models.RoleDoctor}

	t.Run("success hands identity over", func(t *testing.T) {
		client := new(MockSessionClient)
		client.On("Login", mock.Anything, requests.Login{Username: "house", Password: "pw", UserType: models.RoleDoctor}).Return(identity, nil).Once()

		var got models.Identity
		form := NewLoginForm(client, func(ctx context.Context, identity models.Identity) error {
			got = identity
			return nil
		})
		fill(t, form, map[string]string{"user_type": "doctor", "username": "house", "password": "pw"})

		require.NoError(t, form.Submit(context.Background()))
		assert.Equal(t, *identity, got)
	})

	t.Run("failure keeps callback untouched", func(t *testing.T) {
		client := new(MockSessionClient)
		client.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidCredentials(401, "Invalid credentials")).Once()

		called := false
		form := NewLoginForm(client, func(ctx context.Context, identity models.Identity) error {
			called = true
			return nil
		})
		fill(t, form, map[string]string{"username": "house", "password": "bad"})

		require.Error(t, form.Submit(context.Background()))
		assert.False(t, called)
		assert.Equal(t, "Invalid credentials", form.Error())
	})
}

func TestRegisterForm_RoleSpecificFields(t *testing.T) {
	client := new(MockSessionClient)
	client.On("Register", mock.Anything, requests.Register{
		Name:           "Who",
		Username:       "who",
		Password:       "pw",
		Email:          "who@example.com",
		Role:           models.RoleDoctor,
		Specialization: "Time",
	}).Return("Doctor registered successfully", nil).Once()

	var message string
	form := NewRegisterForm(client, func(ctx context.Context, m string) { message = m })
	assert.Contains(t, fieldNames(form.Fields()), "address")

	require.NoError(t, form.Set("address", "should not be sent"))
	require.NoError(t, form.Set("role", "Doctor"))
	assert.Contains(t, fieldNames(form.Fields()), "specialization")
	assert.NotContains(t, fieldNames(form.Fields()), "address")

	fill(t, form, map[string]string{"name": "Who", "username": "who", "password": "pw", "email": "who@example.com", "specialization": "Time"})
	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, "Doctor registered successfully", message)

	assert.Error(t, form.Set("role", "nurse"))
}
