package hospitalapi

import (
	"context"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type dashboardClient struct {
	api *APIClient
}

func NewDashboardClient(api *APIClient) contracts.DashboardClient {
	return &dashboardClient{api: api}
}

func (c *dashboardClient) Stats(ctx context.Context) (*models.DashboardSummary, error) {
	in := call{
		caller:          "dashboardClient.Stats",
		resource:        constvars.ResourceDashboard,
		method:          constvars.MethodGet,
		path:            constvars.PathDashboardStats,
		kind:            opRead,
		fallbackMessage: constvars.ErrClientOperationFailed,
	}
	body, err := c.api.do(ctx, in)
	if err != nil {
		return nil, err
	}

	summary := new(models.DashboardSummary)
	err = decodeEnvelope(body, constvars.EnvelopeStats, summary)
	if err != nil {
		c.api.Log.Error("dashboardClient.Stats error decoding response", zap.Error(err))
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDashboard)
	}
	return summary, nil
}
