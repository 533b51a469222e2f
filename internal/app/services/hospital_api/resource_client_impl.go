package hospitalapi

import (
	"context"
	"fmt"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/dto/requests"
	"medicare-frontend/internal/pkg/exceptions"
	"net/url"

	"go.uber.org/zap"
)

type resourceClient[R models.Entity, P any] struct {
	api      *APIClient
	resource string
	envelope string
}

// NewResourceClient binds the generic CRUD calls to one collection.
// resource is the collection path segment and list envelope; envelope is the
// single-record key, which also names the entity in user-facing messages.
func NewResourceClient[R models.Entity, P any](api *APIClient, resource, envelope string) contracts.ResourceClient[R, P] {
	return &resourceClient[R, P]{
		api:      api,
		resource: resource,
		envelope: envelope,
	}
}

func NewAdminClient(api *APIClient) contracts.AdminClient {
	return NewResourceClient[models.Admin, requests.Admin](api, constvars.ResourceAdmins, constvars.EnvelopeAdmin)
}

func NewDoctorClient(api *APIClient) contracts.DoctorClient {
	return NewResourceClient[models.Doctor, requests.Doctor](api, constvars.ResourceDoctors, constvars.EnvelopeDoctor)
}

func NewPatientClient(api *APIClient) contracts.PatientClient {
	return NewResourceClient[models.Patient, requests.Patient](api, constvars.ResourcePatients, constvars.EnvelopePatient)
}

func NewAppointmentClient(api *APIClient) contracts.AppointmentClient {
	return NewResourceClient[models.Appointment, requests.Appointment](api, constvars.ResourceAppointments, constvars.EnvelopeAppointment)
}

func (c *resourceClient[R, P]) List(ctx context.Context) ([]R, error) {
	in := c.call("List", constvars.MethodGet, c.collectionPath(), nil, opRead)
	body, err := c.api.do(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]R, 0)
	err = decodeList(body, c.resource, &items)
	if err != nil {
		return nil, c.decodeFailure(in, err)
	}

	c.api.Log.Debug(in.caller+" decoded",
		zap.String(constvars.LoggingResourceKey, c.resource),
		zap.Int(constvars.LoggingCountKey, len(items)),
	)
	return items, nil
}

func (c *resourceClient[R, P]) Get(ctx context.Context, id models.ID) (*R, error) {
	in := c.call("Get", constvars.MethodGet, c.itemPath(id), nil, opRead)
	body, err := c.api.do(ctx, in)
	if err != nil {
		return nil, err
	}

	item := new(R)
	err = decodeEnvelope(body, c.envelope, item)
	if err != nil {
		return nil, c.decodeFailure(in, err)
	}
	return item, nil
}

// Create returns the record as far as the API echoes it; the API may answer
// with only {message, id}.
func (c *resourceClient[R, P]) Create(ctx context.Context, payload P) (*R, error) {
	in := c.call("Create", constvars.MethodPost, c.collectionPath(), payload, opWrite)
	body, err := c.api.do(ctx, in)
	if err != nil {
		return nil, err
	}

	item := new(R)
	err = decodeEnvelope(body, c.envelope, item)
	if err != nil {
		return nil, c.decodeFailure(in, err)
	}
	return item, nil
}

func (c *resourceClient[R, P]) Update(ctx context.Context, id models.ID, payload P) (*R, error) {
	in := c.call("Update", constvars.MethodPut, c.itemPath(id), payload, opWrite)
	body, err := c.api.do(ctx, in)
	if err != nil {
		return nil, err
	}

	item := new(R)
	err = decodeEnvelope(body, c.envelope, item)
	if err != nil {
		return nil, c.decodeFailure(in, err)
	}
	return item, nil
}

func (c *resourceClient[R, P]) Remove(ctx context.Context, id models.ID) error {
	in := c.call("Remove", constvars.MethodDelete, c.itemPath(id), nil, opRead)
	_, err := c.api.do(ctx, in)
	return err
}

func (c *resourceClient[R, P]) call(op, method, path string, payload interface{}, kind operation) call {
	fallbackMessage := constvars.ErrClientOperationFailed
	if kind == opWrite {
		fallbackMessage = fmt.Sprintf(constvars.ErrClientSaveFailedFormat, c.envelope)
	}
	return call{
		caller:          c.resource + "Client." + op,
		resource:        c.resource,
		method:          method,
		path:            path,
		payload:         payload,
		kind:            kind,
		fallbackMessage: fallbackMessage,
	}
}

func (c *resourceClient[R, P]) collectionPath() string {
	return "/" + c.resource
}

func (c *resourceClient[R, P]) itemPath(id models.ID) string {
	return "/" + c.resource + "/" + url.PathEscape(id.String())
}

func (c *resourceClient[R, P]) decodeFailure(in call, err error) error {
	c.api.Log.Error(in.caller+" error decoding response",
		zap.String(constvars.LoggingResourceKey, c.resource),
		zap.Error(err),
	)
	return exceptions.ErrDecodeResponse(err, c.resource)
}
