package controllers

import (
	"fmt"
	"net/http"
	"net/url"

	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/delivery/http/middlewares"
	"medicare-frontend/internal/app/delivery/http/views"
	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/app/services/forms"
	"medicare-frontend/internal/app/services/session"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	routeLogin    = "/login"
	routeRegister = "/register"
	routeHome     = "/"
)

// ShellFactory builds a shell over one browser's session slot.
type ShellFactory func(store contracts.SessionStore) *shell.Shell

// shellLoader rebuilds the shell for every request from the browser's
// session slot, so no per-user state lives in the server between requests.
type shellLoader struct {
	Log      *zap.Logger
	Sessions session.Provider
	NewShell ShellFactory
	Renderer *views.Renderer
}

func (l *shellLoader) load(r *http.Request) (*shell.Shell, error) {
	sessionID := middlewares.SessionIDFromContext(r.Context())
	sh := l.NewShell(l.Sessions.ForSession(sessionID))
	return sh, sh.Start(r.Context())
}

// authenticated loads the shell and redirects to the login page when the
// session holds no identity.
func (l *shellLoader) authenticated(w http.ResponseWriter, r *http.Request) (*shell.Shell, models.Identity, bool) {
	sh, err := l.load(r)
	identity, ok := sh.Identity()
	if err != nil || !ok {
		redirect(w, r, routeLogin)
		return nil, models.Identity{}, false
	}
	return sh, identity, true
}

func (l *shellLoader) layout(sh *shell.Shell, title string) views.Layout {
	layout := views.Layout{Title: title, Current: sh.CurrentView()}
	if identity, ok := sh.Identity(); ok {
		layout.Identity = &identity
		layout.Menu = sh.Menu()
	}
	return layout
}

func (l *shellLoader) logFailure(r *http.Request, operation string, err error) {
	l.Log.Error(operation+" failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		zap.String(constvars.LoggingClientMessageKey, exceptions.ClientMessage(err)),
		zap.Error(err),
	)
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, constvars.StatusSeeOther)
}

func viewPath(view string) string {
	return fmt.Sprintf("/views/%s", view)
}

func itemPath(view string, id models.ID) string {
	return fmt.Sprintf("/views/%s/items/%s", view, url.PathEscape(id.String()))
}

// applyValues copies posted values onto form. Fields named in first are set
// before the rest since they may change which fields exist. Absent fields
// keep their current value.
func applyValues(form forms.Form, values url.Values, first ...string) {
	for _, name := range first {
		if _, ok := values[name]; ok {
			_ = form.Set(name, values.Get(name))
		}
	}
	for _, field := range form.Fields() {
		if _, ok := values[field.Name]; !ok {
			continue
		}
		_ = form.Set(field.Name, values.Get(field.Name))
	}
}

// statusFor maps a failed operation onto the status of the page that
// reports it.
func statusFor(err error) int {
	switch exceptions.KindOf(err) {
	case exceptions.KindAuth:
		return constvars.StatusUnauthorized
	case exceptions.KindValidation:
		return constvars.StatusUnprocessableEntity
	case exceptions.KindNotFound:
		return constvars.StatusNotFound
	case exceptions.KindHTTP:
		if status := exceptions.StatusOf(err); status >= 400 && status < 500 {
			return constvars.StatusUnprocessableEntity
		}
		return constvars.StatusBadGateway
	case exceptions.KindNetwork, exceptions.KindDecode:
		return constvars.StatusBadGateway
	case exceptions.KindStorage:
		return constvars.StatusInternalServerError
	}
	return constvars.StatusBadRequest
}
