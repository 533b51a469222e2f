package viewmodels

import (
	"context"
	"fmt"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

const confirmDeleteFormat = "Are you sure you want to delete this %s?"

// Source is the part of the API a view model needs; forms do the writes.
type Source[R models.Entity] interface {
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id models.ID) (*R, error)
	Remove(ctx context.Context, id models.ID) error
}

type Options struct {
	// Resource names the collection in logs.
	Resource string
	// Entity is the singular noun used in prompts.
	Entity string
	// RefreshBeforeEdit fetches the freshest copy before an edit form opens.
	RefreshBeforeEdit bool
}

type FormState[R models.Entity] struct {
	Open bool
	// Editing is nil while creating.
	Editing *R
}

type State[R models.Entity] struct {
	Items       []R
	IsLoading   bool
	ActiveError string
	Form        FormState[R]
}

// ResourceViewModel owns the list of one entity type along with its loading
// flag, last error and form state.
type ResourceViewModel[R models.Entity] struct {
	mu      sync.Mutex
	source  Source[R]
	options Options
	log     *zap.Logger
	state   State[R]
}

func NewResourceViewModel[R models.Entity](source Source[R], options Options, logger *zap.Logger) *ResourceViewModel[R] {
	return &ResourceViewModel[R]{
		source:  source,
		options: options,
		log:     logger,
		state:   State[R]{Items: []R{}},
	}
}

func (vm *ResourceViewModel[R]) Entity() string {
	return vm.options.Entity
}

// Snapshot returns a copy of the current state.
func (vm *ResourceViewModel[R]) Snapshot() State[R] {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	snapshot := vm.state
	snapshot.Items = append([]R(nil), vm.state.Items...)
	if vm.state.Form.Editing != nil {
		editing := *vm.state.Form.Editing
		snapshot.Form.Editing = &editing
	}
	return snapshot
}

// Refresh replaces the items wholesale. On failure the previous items stay
// in place and ActiveError is set.
func (vm *ResourceViewModel[R]) Refresh(ctx context.Context) {
	vm.refresh(ctx, "")
}

func (vm *ResourceViewModel[R]) refresh(ctx context.Context, carriedError string) {
	ctx, requestID := utils.EnsureRequestID(ctx)

	vm.mu.Lock()
	vm.state.IsLoading = true
	vm.mu.Unlock()

	items, err := vm.source.List(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.IsLoading = false

	if err != nil {
		vm.state.ActiveError = exceptions.ClientMessage(err)
		vm.log.Error("ResourceViewModel.Refresh keeping stale items",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, vm.options.Resource),
			zap.Int(constvars.LoggingCountKey, len(vm.state.Items)),
			zap.Error(err),
		)
		return
	}

	vm.state.Items = items
	vm.state.ActiveError = carriedError
}

// RequestDelete asks for confirmation and removes the record. A declined
// prompt makes no API call. A transport failure skips the refresh; any
// response from the API, including a rejection, is followed by exactly one
// refresh.
func (vm *ResourceViewModel[R]) RequestDelete(ctx context.Context, id models.ID, confirmer contracts.Confirmer) (bool, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)

	confirmed, err := confirmer.Confirm(ctx, vm.ConfirmDeleteMessage())
	if err != nil {
		vm.log.Warn("ResourceViewModel.RequestDelete confirmation aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, vm.options.Resource),
			zap.Error(err),
		)
		return false, err
	}
	if !confirmed {
		return false, nil
	}

	err = vm.source.Remove(ctx, id)
	if err == nil {
		vm.log.Info("ResourceViewModel.RequestDelete succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, vm.options.Resource),
			zap.String(constvars.LoggingResourceIDKey, id.String()),
		)
		vm.refresh(ctx, "")
		return true, nil
	}

	vm.log.Error("ResourceViewModel.RequestDelete failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, vm.options.Resource),
		zap.String(constvars.LoggingResourceIDKey, id.String()),
		zap.Error(err),
	)
	message := exceptions.ClientMessage(err)
	if exceptions.IsTransportFailure(err) {
		vm.mu.Lock()
		vm.state.ActiveError = message
		vm.mu.Unlock()
		return false, err
	}

	vm.refresh(ctx, message)
	return false, err
}

func (vm *ResourceViewModel[R]) ConfirmDeleteMessage() string {
	return fmt.Sprintf(confirmDeleteFormat, vm.options.Entity)
}

func (vm *ResourceViewModel[R]) OpenCreateForm() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.Form = FormState[R]{Open: true}
}

// OpenEditForm opens the form on item, or on a freshly fetched copy when the
// view refreshes before editing. A failed fetch falls back to item.
func (vm *ResourceViewModel[R]) OpenEditForm(ctx context.Context, item R) R {
	editing := item
	if vm.options.RefreshBeforeEdit {
		ctx, requestID := utils.EnsureRequestID(ctx)
		fresh, err := vm.source.Get(ctx, item.EntityID())
		if err != nil {
			vm.log.Warn("ResourceViewModel.OpenEditForm using list copy",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, vm.options.Resource),
				zap.String(constvars.LoggingResourceIDKey, item.EntityID().String()),
				zap.Error(err),
			)
		} else if fresh != nil {
			editing = *fresh
		}
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.Form = FormState[R]{Open: true, Editing: &editing}
	return editing
}

// OpenEditFormByID opens the form on the record with id. A record missing
// from the loaded list is fetched on its own when the view refreshes before
// editing, otherwise the list is loaded first.
func (vm *ResourceViewModel[R]) OpenEditFormByID(ctx context.Context, id models.ID) (R, error) {
	if item, ok := vm.Find(id); ok {
		return vm.OpenEditForm(ctx, item), nil
	}

	var zero R
	if vm.options.RefreshBeforeEdit {
		fresh, err := vm.source.Get(ctx, id)
		if err != nil {
			return zero, err
		}
		if fresh == nil {
			return zero, exceptions.ErrResourceNotFound(0, "", vm.options.Resource)
		}
		editing := *fresh
		vm.mu.Lock()
		vm.state.Form = FormState[R]{Open: true, Editing: &editing}
		vm.mu.Unlock()
		return editing, nil
	}

	vm.Refresh(ctx)
	item, ok := vm.Find(id)
	if !ok {
		return zero, exceptions.ErrResourceNotFound(0, "", vm.options.Resource)
	}
	return vm.OpenEditForm(ctx, item), nil
}

// OnFormSaved closes the form and reloads the list.
func (vm *ResourceViewModel[R]) OnFormSaved(ctx context.Context) {
	vm.CloseForm()
	vm.Refresh(ctx)
}

func (vm *ResourceViewModel[R]) CloseForm() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.Form = FormState[R]{}
}

// Find looks an item up in the loaded list.
func (vm *ResourceViewModel[R]) Find(id models.ID) (R, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for _, item := range vm.state.Items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero R
	return zero, false
}

// ItemAt returns the item at a 1-based row of the current list.
func (vm *ResourceViewModel[R]) ItemAt(row int) (R, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if row < 1 || row > len(vm.state.Items) {
		var zero R
		return zero, exceptions.ErrRowOutOfRange(row)
	}
	return vm.state.Items[row-1], nil
}
