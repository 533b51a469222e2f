// Package fakeapi serves an in-memory hospital API for tests of the
// front-ends.
package fakeapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"medicare-frontend/internal/app/models"
	"medicare-frontend/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type Request struct {
	Method string
	Path   string
	Body   string
}

type Account struct {
	Password string
	Identity models.Identity
}

type cannedResponse struct {
	status int
	body   string
}

// Server holds the records. Tests change them through Seed.
type Server struct {
	mu sync.Mutex

	Admins       []models.Admin
	Doctors      []models.Doctor
	Patients     []models.Patient
	Appointments []models.Appointment
	Accounts     map[string]Account
	Stats        models.DashboardSummary

	requests []Request
	canned   map[string]cannedResponse
	nextID   int
	server   *httptest.Server
}

func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		Accounts: map[string]Account{},
		canned:   map[string]cannedResponse{},
		nextID:   100,
	}

	router := chi.NewRouter()
	router.Use(s.record)
	router.Route("/api", func(r chi.Router) {
		r.Post(constvars.PathLogin, s.login)
		r.Post(constvars.PathRegister, s.register)
		r.Post(constvars.PathLogout, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, `{"message": "Logged out"}`)
		})
		r.Get(constvars.PathDashboardStats, s.stats)

		mount(s, r, constvars.ResourceAdmins, constvars.EnvelopeAdmin, &s.Admins, nil)
		mount(s, r, constvars.ResourceDoctors, constvars.EnvelopeDoctor, &s.Doctors, nil)
		mount(s, r, constvars.ResourcePatients, constvars.EnvelopePatient, &s.Patients, nil)
		mount(s, r, constvars.ResourceAppointments, constvars.EnvelopeAppointment, &s.Appointments, s.denormalize)
	})

	s.server = httptest.NewServer(router)
	t.Cleanup(s.server.Close)
	return s
}

// BaseURL is the API root, ending in /api.
func (s *Server) BaseURL() string {
	return s.server.URL + "/api"
}

// Respond makes every later "METHOD /api/path" request answer with status
// and body instead of the in-memory behaviour.
func (s *Server) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned[method+" "+path] = cannedResponse{status: status, body: body}
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Seed runs change while the server is locked.
func (s *Server) Seed(change func(s *Server)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	change(s)
}

func (s *Server) HasAccount(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Accounts[username]
	return ok
}

func (s *Server) AddAccount(password string, identity models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Accounts[identity.Username] = Account{Password: password, Identity: identity}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		canned, ok := s.canned[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if ok {
			writeJSON(w, canned.status, canned.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
		UserType string `json:"user_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeJSON(w, http.StatusBadRequest, `{"error": "Invalid request"}`)
		return
	}

	s.mu.Lock()
	account, ok := s.Accounts[credentials.Username]
	s.mu.Unlock()
	if !ok || account.Password != credentials.Password || string(account.Identity.Role) != credentials.UserType {
		writeJSON(w, http.StatusUnauthorized, `{"error": "Invalid credentials"}`)
		return
	}
	writeEnvelope(w, http.StatusOK, constvars.EnvelopeUser, account.Identity)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		models.Profile
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, `{"error": "Invalid request"}`)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.Accounts[payload.Username]; taken {
		writeJSON(w, http.StatusBadRequest, `{"error": "Username already exists"}`)
		return
	}
	payload.Profile.ID = s.newID()
	s.Accounts[payload.Username] = Account{
		Password: payload.Password,
		Identity: models.Identity{Profile: payload.Profile, Role: payload.Role},
	}
	writeJSON(w, http.StatusCreated, `{"message": "User registered successfully"}`)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats := s.Stats
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, constvars.EnvelopeStats, stats)
}

// denormalize copies the joined names onto an appointment. Callers hold mu.
func (s *Server) denormalize(appointment *models.Appointment) {
	for _, patient := range s.Patients {
		if patient.ID == appointment.PatientID {
			appointment.PatientName = patient.Name
		}
	}
	for _, doctor := range s.Doctors {
		if doctor.ID == appointment.DoctorID {
			appointment.DoctorName = doctor.Name
			appointment.Specialization = doctor.Specialization
		}
	}
}

func (s *Server) newID() models.ID {
	s.nextID++
	return models.ID(strconv.Itoa(s.nextID))
}

// mount serves one collection over items. The records must carry their id
// under the "id" key.
func mount[R models.Entity](s *Server, r chi.Router, resource, envelope string, items *[]R, enrich func(*R)) {
	find := func(id models.ID) int {
		for i, item := range *items {
			if item.EntityID() == id {
				return i
			}
		}
		return -1
	}
	notFound := func(w http.ResponseWriter) {
		writeJSON(w, http.StatusNotFound, fmt.Sprintf(`{"error": "%s not found"}`, envelope))
	}

	r.Get("/"+resource, func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := append([]R{}, (*items)...)
		writeEnvelope(w, http.StatusOK, resource, list)
	})

	r.Get("/"+resource+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		index := find(models.ID(chi.URLParam(r, "id")))
		if index < 0 {
			notFound(w)
			return
		}
		writeEnvelope(w, http.StatusOK, envelope, (*items)[index])
	})

	r.Post("/"+resource, func(w http.ResponseWriter, r *http.Request) {
		var item R
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeJSON(w, http.StatusBadRequest, `{"error": "Invalid request"}`)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		id := s.newID()
		raw, _ := json.Marshal(item)
		raw, _ = withID(raw, id)
		item = *new(R)
		_ = json.Unmarshal(raw, &item)
		if enrich != nil {
			enrich(&item)
		}
		*items = append(*items, item)
		writeJSON(w, http.StatusCreated, fmt.Sprintf(`{"message": "%s created successfully", "id": %s}`, envelope, id))
	})

	r.Put("/"+resource+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		index := find(models.ID(chi.URLParam(r, "id")))
		if index < 0 {
			notFound(w)
			return
		}

		updated := (*items)[index]
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			writeJSON(w, http.StatusBadRequest, `{"error": "Invalid request"}`)
			return
		}
		if enrich != nil {
			enrich(&updated)
		}
		(*items)[index] = updated
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"message": "%s updated successfully"}`, envelope))
	})

	r.Delete("/"+resource+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		index := find(models.ID(chi.URLParam(r, "id")))
		if index < 0 {
			notFound(w)
			return
		}
		*items = append((*items)[:index], (*items)[index+1:]...)
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"message": "%s deleted successfully"}`, envelope))
	})
}

func withID(raw []byte, id models.ID) ([]byte, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["id"] = id.String()
	return json.Marshal(fields)
}

func writeEnvelope(w http.ResponseWriter, status int, key string, value interface{}) {
	body, err := json.Marshal(map[string]interface{}{key: value})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, `{"error": "Internal server error"}`)
		return
	}
	writeJSON(w, status, string(body))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	io.WriteString(w, body)
}
