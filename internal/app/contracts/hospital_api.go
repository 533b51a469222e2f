package contracts

import (
	"context"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/dto/requests"
)

// ResourceClient talks to one REST collection of the hospital API.
type ResourceClient[R models.Entity, P any] interface {
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id models.ID) (*R, error)
	Create(ctx context.Context, payload P) (*R, error)
	Update(ctx context.Context, id models.ID, payload P) (*R, error)
	Remove(ctx context.Context, id models.ID) error
}

type (
	AdminClient       = ResourceClient[models.Admin, requests.Admin]
	DoctorClient      = ResourceClient[models.Doctor, requests.Doctor]
	PatientClient     = ResourceClient[models.Patient, requests.Patient]
	AppointmentClient = ResourceClient[models.Appointment, requests.Appointment]
)

type SessionClient interface {
	Login(ctx context.Context, request requests.Login) (*models.Identity, error)
	Register(ctx context.Context, request requests.Register) (string, error)
	// Logout is best-effort; failures are logged and never returned.
	Logout(ctx context.Context)
}

type DashboardClient interface {
	Stats(ctx context.Context) (*models.DashboardSummary, error)
}
