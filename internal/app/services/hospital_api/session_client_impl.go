package hospitalapi

import (
	"context"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/dto/requests"
	"medicare-frontend/internal/pkg/dto/responses"
	"medicare-frontend/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type sessionClient struct {
	api *APIClient
}

func NewSessionClient(api *APIClient) contracts.SessionClient {
	return &sessionClient{api: api}
}

func (c *sessionClient) Login(ctx context.Context, request requests.Login) (*models.Identity, error) {
	in := call{
		caller:          "sessionClient.Login",
		resource:        constvars.ResourceSession,
		method:          constvars.MethodPost,
		path:            constvars.PathLogin,
		payload:         request,
		kind:            opLogin,
		fallbackMessage: constvars.ErrClientOperationFailed,
	}
	body, err := c.api.do(ctx, in)
	if err != nil {
		return nil, err
	}

	identity := new(models.Identity)
	err = decodeEnvelope(body, constvars.EnvelopeUser, identity)
	if err != nil {
		c.api.Log.Error("sessionClient.Login error decoding response", zap.Error(err))
		return nil, exceptions.ErrDecodeResponse(err, constvars.EnvelopeUser)
	}
	if identity.Role == "" {
		identity.Role = request.UserType
	}
	return identity, nil
}

func (c *sessionClient) Register(ctx context.Context, request requests.Register) (string, error) {
	in := call{
		caller:          "sessionClient.Register",
		resource:        constvars.ResourceSession,
		method:          constvars.MethodPost,
		path:            constvars.PathRegister,
		payload:         request,
		kind:            opWrite,
		fallbackMessage: constvars.ErrClientOperationFailed,
	}
	body, err := c.api.do(ctx, in)
	if err != nil {
		return "", err
	}

	var response responses.Message
	err = decodeEnvelope(body, "", &response)
	if err != nil {
		c.api.Log.Error("sessionClient.Register error decoding response", zap.Error(err))
		return "", exceptions.ErrDecodeResponse(err, constvars.ResourceSession)
	}
	return response.Message, nil
}

func (c *sessionClient) Logout(ctx context.Context) {
	in := call{
		caller:          "sessionClient.Logout",
		resource:        constvars.ResourceSession,
		method:          constvars.MethodPost,
		path:            constvars.PathLogout,
		kind:            opRead,
		fallbackMessage: constvars.ErrClientOperationFailed,
	}
	_, err := c.api.do(ctx, in)
	if err != nil {
		c.api.Log.Warn("sessionClient.Logout ignored failure",
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		)
	}
}
