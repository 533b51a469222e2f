package shell

import (
	"context"
	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/delivery/navigation"
	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/app/services/forms"
	hospitalapi "medicare-frontend/internal/app/services/hospital_api"
	"medicare-frontend/internal/app/services/viewmodels"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Clients are the API gateway clients every screen draws on.
type Clients struct {
	Session      contracts.SessionClient
	Dashboard    contracts.DashboardClient
	Admins       contracts.AdminClient
	Doctors      contracts.DoctorClient
	Patients     contracts.PatientClient
	Appointments contracts.AppointmentClient
}

// NewClients builds every client over one API connection.
func NewClients(api *hospitalapi.APIClient) Clients {
	return Clients{
		Session:      hospitalapi.NewSessionClient(api),
		Dashboard:    hospitalapi.NewDashboardClient(api),
		Admins:       hospitalapi.NewAdminClient(api),
		Doctors:      hospitalapi.NewDoctorClient(api),
		Patients:     hospitalapi.NewPatientClient(api),
		Appointments: hospitalapi.NewAppointmentClient(api),
	}
}

// Shell holds the authenticated identity and the current view, and routes
// to the screen that matches it. Unknown views and views the identity may
// not see resolve to the dashboard.
type Shell struct {
	clients  Clients
	store    contracts.SessionStore
	log      *zap.Logger
	location *time.Location

	mu          sync.Mutex
	identity    *models.Identity
	currentView string
	notice      string
	dashboard   *viewmodels.DashboardViewModel
	screens     map[string]ResourceScreen
}

func New(clients Clients, store contracts.SessionStore, location *time.Location, logger *zap.Logger) *Shell {
	if location == nil {
		location = time.Local
	}
	s := &Shell{
		clients:     clients,
		store:       store,
		log:         logger,
		location:    location,
		currentView: constvars.ViewAuth,
	}
	s.reset()
	return s
}

func (s *Shell) reset() {
	s.dashboard = viewmodels.NewDashboardViewModel(s.clients.Dashboard, s.log)
	s.screens = s.buildScreens()
}

// Start reads the stored identity. A read failure leaves the shell on the
// auth screen.
func (s *Shell) Start(ctx context.Context) error {
	ctx, requestID := utils.EnsureRequestID(ctx)

	identity, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("Shell.Start cannot read session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	if identity == nil {
		s.currentView = constvars.ViewAuth
		return nil
	}
	s.currentView = constvars.ViewDashboard
	return nil
}

// Identity returns the authenticated identity, if any.
func (s *Shell) Identity() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

func (s *Shell) Authenticated() bool {
	_, ok := s.Identity()
	return ok
}

// TakeNotice returns the pending one-off message and clears it.
func (s *Shell) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notice := s.notice
	s.notice = ""
	return notice
}

func (s *Shell) LoginForm() forms.Form {
	return forms.NewLoginForm(s.clients.Session, s.loggedIn)
}

func (s *Shell) loggedIn(ctx context.Context, identity models.Identity) error {
	if err := s.store.Save(ctx, identity); err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = &identity
	s.currentView = constvars.ViewDashboard
	s.notice = ""
	s.mu.Unlock()

	s.log.Info("Shell.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUsernameKey, identity.Username),
		zap.String(constvars.LoggingRoleKey, string(identity.Role)),
	)
	return nil
}

// RegisterForm returns to the login screen with a notice once the API
// accepts the registration.
func (s *Shell) RegisterForm() forms.Form {
	return forms.NewRegisterForm(s.clients.Session, func(ctx context.Context, _ string) {
		s.mu.Lock()
		s.notice = constvars.SuccessClientRegistrationComplete
		s.currentView = constvars.ViewAuth
		s.mu.Unlock()
	})
}

// Logout always ends on the auth screen, whatever the API or the session
// slot report.
func (s *Shell) Logout(ctx context.Context) {
	ctx, requestID := utils.EnsureRequestID(ctx)

	s.clients.Session.Logout(ctx)
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error("Shell.Logout cannot clear session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.currentView = constvars.ViewAuth
	s.reset()
}

// Navigate switches to view and returns the view actually shown.
func (s *Shell) Navigate(view string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		s.currentView = constvars.ViewAuth
		return s.currentView
	}
	s.currentView = s.resolve(view)
	return s.currentView
}

func (s *Shell) resolve(view string) string {
	if view == constvars.ViewDashboard {
		return view
	}
	if _, ok := s.screens[view]; ok && navigation.CanVisit(s.identity.Role, view) {
		return view
	}
	s.log.Debug("Shell.Navigate falling back to dashboard",
		zap.String(constvars.LoggingViewKey, view),
		zap.String(constvars.LoggingRoleKey, string(s.identity.Role)),
	)
	return constvars.ViewDashboard
}

func (s *Shell) CurrentView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView
}

// Menu lists the views the current identity may open.
func (s *Shell) Menu() []navigation.Item {
	identity, ok := s.Identity()
	if !ok {
		return nil
	}
	return navigation.VisibleItems(identity.Role)
}

func (s *Shell) Dashboard() *viewmodels.DashboardViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// Screen returns the resource screen for view when the identity may see it.
func (s *Shell) Screen(view string) (ResourceScreen, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil || !navigation.CanVisit(s.identity.Role, view) {
		return nil, false
	}
	screen, ok := s.screens[view]
	return screen, ok
}

// ActiveScreen is nil on the auth and dashboard views.
func (s *Shell) ActiveScreen() ResourceScreen {
	screen, ok := s.Screen(s.CurrentView())
	if !ok {
		return nil
	}
	return screen
}
