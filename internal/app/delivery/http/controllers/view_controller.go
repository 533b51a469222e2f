package controllers

import (
	"context"
	"net/http"

	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/delivery/http/views"
	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/app/services/forms"
	"medicare-frontend/internal/app/services/session"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// postedConfirmation answers yes: reaching the delete handler means the
// user submitted the confirmation page.
var postedConfirmation = contracts.ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

type ViewController struct {
	shellLoader
}

func NewViewController(logger *zap.Logger, sessions session.Provider, newShell ShellFactory, renderer *views.Renderer) *ViewController {
	return &ViewController{shellLoader{
		Log:      logger,
		Sessions: sessions,
		NewShell: newShell,
		Renderer: renderer,
	}}
}

// request carries what every resource handler needs.
type request struct {
	shell    *shell.Shell
	identity models.Identity
	screen   shell.ResourceScreen
	view     string
}

// Home sends the browser to the view the shell opens on.
func (ctrl *ViewController) Home(w http.ResponseWriter, r *http.Request) {
	sh, _, ok := ctrl.authenticated(w, r)
	if !ok {
		return
	}
	redirect(w, r, viewPath(sh.CurrentView()))
}

// Show renders the dashboard or a resource list. Views the identity may not
// open redirect to the dashboard.
func (ctrl *ViewController) Show(w http.ResponseWriter, r *http.Request) {
	sh, identity, ok := ctrl.authenticated(w, r)
	if !ok {
		return
	}
	view := chi.URLParam(r, "view")
	if resolved := sh.Navigate(view); resolved != view {
		redirect(w, r, viewPath(resolved))
		return
	}

	screen := sh.ActiveScreen()
	if screen == nil {
		ctrl.showDashboard(w, r, sh, identity)
		return
	}

	screen.Refresh(r.Context())
	ctrl.renderList(w, r, request{shell: sh, identity: identity, screen: screen, view: view}, constvars.StatusOK, "")
}

func (ctrl *ViewController) showDashboard(w http.ResponseWriter, r *http.Request, sh *shell.Shell, identity models.Identity) {
	dashboard := sh.Dashboard()
	dashboard.Refresh(r.Context())
	state := dashboard.Snapshot()

	page := views.DashboardPage{
		Layout:   ctrl.layout(sh, "Dashboard"),
		Greeting: shell.Greeting(identity),
		Subtitle: shell.DashboardSubtitle(),
		Cards:    shell.StatCards(identity, state.Summary),
	}
	page.Error = state.ActiveError
	ctrl.Renderer.Render(w, constvars.StatusOK, views.PageDashboard, page)
}

func (ctrl *ViewController) New(w http.ResponseWriter, r *http.Request) {
	req, ok := ctrl.resource(w, r)
	if !ok {
		return
	}
	form := req.screen.OpenCreateForm(r.Context(), req.identity)
	ctrl.renderForm(w, req, constvars.StatusOK, form, viewPath(req.view)+"/items")
}

func (ctrl *ViewController) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := ctrl.resource(w, r)
	if !ok {
		return
	}
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ViewController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewKey, req.view),
	)

	form := req.screen.OpenCreateForm(r.Context(), req.identity)
	ctrl.submit(w, r, req, form, viewPath(req.view)+"/items")
}

func (ctrl *ViewController) Edit(w http.ResponseWriter, r *http.Request) {
	req, ok := ctrl.resource(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))

	form, err := req.screen.OpenEditForm(r.Context(), req.identity, id)
	if err != nil {
		ctrl.logFailure(r, "ViewController.Edit", err)
		ctrl.renderList(w, r, req, statusFor(err), exceptions.ClientMessage(err))
		return
	}
	ctrl.renderForm(w, req, constvars.StatusOK, form, itemPath(req.view, id))
}

func (ctrl *ViewController) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := ctrl.resource(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))
	ctrl.Log.Info("ViewController.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingViewKey, req.view),
		zap.String(constvars.LoggingResourceIDKey, id.String()),
	)

	form, err := req.screen.OpenEditForm(r.Context(), req.identity, id)
	if err != nil {
		ctrl.logFailure(r, "ViewController.Update", err)
		ctrl.renderList(w, r, req, statusFor(err), exceptions.ClientMessage(err))
		return
	}
	ctrl.submit(w, r, req, form, itemPath(req.view, id))
}

func (ctrl *ViewController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	req, ok := ctrl.resource(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))

	page := views.ConfirmPage{
		Layout:  ctrl.layout(req.shell, req.screen.Heading()),
		Message: req.screen.ConfirmDeleteMessage(),
		Action:  itemPath(req.view, id) + "/delete",
		Cancel:  viewPath(req.view),
	}
	ctrl.Renderer.Render(w, constvars.StatusOK, views.PageConfirm, page)
}

// Delete removes the record once the confirmation page is posted. A failure
// shows the list as the view model left it, with the error on top.
func (ctrl *ViewController) Delete(w http.ResponseWriter, r *http.Request) {
	req, ok := ctrl.resource(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ViewController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingViewKey, req.view),
		zap.String(constvars.LoggingResourceIDKey, id.String()),
	)

	if _, err := req.screen.RequestDelete(r.Context(), id, postedConfirmation); err != nil {
		ctrl.logFailure(r, "ViewController.Delete", err)
		ctrl.renderList(w, r, req, statusFor(err), exceptions.ClientMessage(err))
		return
	}

	ctrl.Log.Info("ViewController.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id.String()),
	)
	redirect(w, r, viewPath(req.view))
}

// resource resolves the view of a resource route. Anything that is not a
// resource the identity may open redirects to the view the shell falls
// back to.
func (ctrl *ViewController) resource(w http.ResponseWriter, r *http.Request) (request, bool) {
	sh, identity, ok := ctrl.authenticated(w, r)
	if !ok {
		return request{}, false
	}
	view := chi.URLParam(r, "view")
	resolved := sh.Navigate(view)
	screen := sh.ActiveScreen()
	if resolved != view || screen == nil {
		redirect(w, r, viewPath(resolved))
		return request{}, false
	}
	return request{shell: sh, identity: identity, screen: screen, view: view}, true
}

func (ctrl *ViewController) submit(w http.ResponseWriter, r *http.Request, req request, form forms.Form, action string) {
	if err := r.ParseForm(); err == nil {
		applyValues(form, r.PostForm)
	}

	if err := form.Submit(r.Context()); err != nil {
		ctrl.logFailure(r, "ViewController.Submit", err)
		ctrl.renderForm(w, req, statusFor(err), form, action)
		return
	}
	redirect(w, r, viewPath(req.view))
}

func (ctrl *ViewController) renderForm(w http.ResponseWriter, req request, status int, form forms.Form, action string) {
	page := views.FormPage{
		Layout: ctrl.layout(req.shell, form.Title()),
		Form:   views.NewFormView(form, action, "Save", viewPath(req.view)),
	}
	ctrl.Renderer.Render(w, status, views.PageForm, page)
}

func (ctrl *ViewController) renderList(w http.ResponseWriter, r *http.Request, req request, status int, message string) {
	page := views.ResourcePage{
		Layout:   ctrl.layout(req.shell, req.screen.Heading()),
		View:     req.view,
		Heading:  req.screen.Heading(),
		AddLabel: req.screen.AddLabel(),
	}
	page.Error = message
	if page.Error == "" {
		page.Error = req.screen.State().ActiveError
	}

	projected, err := req.screen.Table(r.Context(), req.identity, postedConfirmation)
	if err != nil {
		ctrl.logFailure(r, "ViewController.renderList", err)
		page.Error = constvars.ErrClientOperationFailed
	}
	page.Table = projected
	ctrl.Renderer.Render(w, status, views.PageResource, page)
}
