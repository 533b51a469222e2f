package controllers

import (
	"net/http"

	"medicare-frontend/internal/app/delivery/http/views"
	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/services/forms"
	"medicare-frontend/internal/app/services/session"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/exceptions"
	"medicare-frontend/internal/pkg/utils"

	"go.uber.org/zap"
)

const registeredQuery = "registered"

type AuthController struct {
	shellLoader
}

func NewAuthController(logger *zap.Logger, sessions session.Provider, newShell ShellFactory, renderer *views.Renderer) *AuthController {
	return &AuthController{shellLoader{
		Log:      logger,
		Sessions: sessions,
		NewShell: newShell,
		Renderer: renderer,
	}}
}

func (ctrl *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	sh, err := ctrl.load(r)
	if err == nil && sh.Authenticated() {
		redirect(w, r, routeHome)
		return
	}

	page := ctrl.loginPage(sh, sh.LoginForm(), sh.RegisterForm())
	if err != nil {
		page.Error = exceptions.ClientMessage(err)
	}
	if r.URL.Query().Get(registeredQuery) != "" {
		page.Notice = constvars.SuccessClientRegistrationComplete
	}
	ctrl.Renderer.Render(w, constvars.StatusOK, views.PageLogin, page)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sh, _ := ctrl.load(r)
	form := sh.LoginForm()
	if err := r.ParseForm(); err == nil {
		applyValues(form, r.PostForm)
	}

	if err := form.Submit(r.Context()); err != nil {
		ctrl.logFailure(r, "AuthController.Login", err)
		ctrl.Renderer.Render(w, statusFor(err), views.PageLogin, ctrl.loginPage(sh, form, sh.RegisterForm()))
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, r.PostForm.Get("username")),
	)
	redirect(w, r, routeHome)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sh, _ := ctrl.load(r)
	form := sh.RegisterForm()
	if err := r.ParseForm(); err == nil {
		applyValues(form, r.PostForm, "role")
	}

	if err := form.Submit(r.Context()); err != nil {
		ctrl.logFailure(r, "AuthController.Register", err)
		ctrl.Renderer.Render(w, statusFor(err), views.PageLogin, ctrl.loginPage(sh, sh.LoginForm(), form))
		return
	}

	ctrl.Log.Info("AuthController.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	redirect(w, r, routeLogin+"?"+registeredQuery+"=1")
}

// Logout always lands on the login page.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sh, _ := ctrl.load(r)
	sh.Logout(r.Context())

	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)
	redirect(w, r, routeLogin)
}

func (ctrl *AuthController) loginPage(sh *shell.Shell, login, register forms.Form) views.LoginPage {
	return views.LoginPage{
		Layout:   ctrl.layout(sh, "Login"),
		Login:    views.NewFormView(login, routeLogin, "Login", ""),
		Register: views.NewFormView(register, routeRegister, "Register", ""),
	}
}
