package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_ID_KEY ContextKey = "session_id"
)

// API resources, named by their collection path segment.
const (
	ResourceAdmins       = "admins"
	ResourceDoctors      = "doctors"
	ResourcePatients     = "patients"
	ResourceAppointments = "appointments"
	ResourceDashboard    = "dashboard"
	ResourceSession      = "session"
)

// Envelope keys used by the API for single-record responses.
const (
	EnvelopeAdmin       = "admin"
	EnvelopeDoctor      = "doctor"
	EnvelopePatient     = "patient"
	EnvelopeAppointment = "appointment"
	EnvelopeUser        = "user"
	EnvelopeStats       = "stats"
)

const (
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathLogout         = "/logout"
	PathDashboardStats = "/dashboard/stats"
)

// View identifiers understood by the shell.
const (
	ViewAuth         = "auth"
	ViewDashboard    = "dashboard"
	ViewAdmins       = "admins"
	ViewDoctors      = "doctors"
	ViewPatients     = "patients"
	ViewAppointments = "appointments"
)

const (
	DefaultSessionKey   = "currentUser"
	SessionRedisPrefix  = "medicare:session"
	DisplayDateLayout   = "01/02/2006"
	InvalidDateText     = "Invalid Date"
	NoDataAvailableText = "No data available"
)
