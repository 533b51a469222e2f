package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medicare-frontend/internal/app/config"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cookieName = "medicare_session"

func newMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{
			LoginMaxAttempts:    2,
			LoginBlockInMinutes: 1,
			SessionCookieName:   cookieName,
		},
	})
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiter_BlocksThenRecovers(t *testing.T) {
	limiter := newMiddlewares().NewLoginRateLimiter()
	clock := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }
	handler := limiter.Limit(okHandler)

	hit := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("192.0.2.1:4000"))
	assert.Equal(t, http.StatusOK, hit("192.0.2.1:4001"))
	assert.Equal(t, http.StatusTooManyRequests, hit("192.0.2.1:4002"))
	assert.Equal(t, http.StatusOK, hit("192.0.2.2:4000"), "other addresses keep their own budget")

	clock = clock.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, hit("192.0.2.1:4003"))

	clock = clock.Add(31 * time.Second)
	assert.Equal(t, http.StatusOK, hit("192.0.2.1:4004"))
}

func TestRateLimiter_UnsplittableAddress(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, time.Minute)
	handler := limiter.Limit(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "unix-socket"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, tracked := limiter.limiters["unix-socket"]
	assert.True(t, tracked)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestSessionCookie(t *testing.T) {
	m := newMiddlewares()
	var seen string
	handler := m.SessionCookie(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))

	t.Run("issues a cookie to a new browser", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookieName, cookies[0].Name)
		assert.Equal(t, seen, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Secure)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("keeps a valid cookie", func(t *testing.T) {
		existing := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: existing})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, existing, seen)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("replaces a forged cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "../../etc/passwd"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEqual(t, "../../etc/passwd", seen)
		require.Len(t, rec.Result().Cookies(), 1)
		assert.Equal(t, seen, rec.Result().Cookies()[0].Value)
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	m := newMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientOperationFailed)
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	m := newMiddlewares()
	handler := m.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
