package viewmodels

import (
	"context"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type DashboardState struct {
	Summary     models.DashboardSummary
	IsLoading   bool
	ActiveError string
}

type DashboardViewModel struct {
	mu     sync.Mutex
	client contracts.DashboardClient
	log    *zap.Logger
	state  DashboardState
}

func NewDashboardViewModel(client contracts.DashboardClient, logger *zap.Logger) *DashboardViewModel {
	return &DashboardViewModel{client: client, log: logger}
}

func (vm *DashboardViewModel) Snapshot() DashboardState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Refresh reloads the counters; a failed load keeps the previous values.
func (vm *DashboardViewModel) Refresh(ctx context.Context) {
	ctx, requestID := utils.EnsureRequestID(ctx)

	vm.mu.Lock()
	vm.state.IsLoading = true
	vm.mu.Unlock()

	summary, err := vm.client.Stats(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.IsLoading = false
	if err != nil {
		vm.state.ActiveError = exceptions.ClientMessage(err)
		vm.log.Error("DashboardViewModel.Refresh keeping previous stats",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	vm.state.Summary = *summary
	vm.state.ActiveError = ""
}
