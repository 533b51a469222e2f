package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAPICall(t *testing.T) {
	before := testutil.ToFloat64(apiCalls.WithLabelValues("patients", "GET", "success"))

	RecordAPICall("patients", "get", "", 10*time.Millisecond)

	after := testutil.ToFloat64(apiCalls.WithLabelValues("patients", "GET", "success"))
	assert.Equal(t, before+1, after)
}

func TestInstrumentHandler_UsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(InstrumentHandler)
	router.Get("/views/{view}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/views/{view}", "418"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/views/doctors", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/views/{view}", "418")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RecordAPICall("doctors", "DELETE", "http_error", time.Millisecond)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "medicare_api_client_calls_total")
}
