package middlewares

import (
	"medicare-frontend/internal/pkg/constvars"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter allows requests per IP at one every per, with bursts of
// requests. An IP that exceeds it is refused until blockTime has passed.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// NewLoginRateLimiter limits login attempts from the app settings.
func (m *Middlewares) NewLoginRateLimiter() *RateLimiter {
	app := m.InternalConfig.App
	return NewRateLimiter(app.LoginMaxAttempts, time.Minute, time.Duration(app.LoginBlockInMinutes)*time.Minute)
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()

				http.Error(w, constvars.ErrClientTooManyLoginAttempts, http.StatusTooManyRequests)
				return
			}

			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.AllowN(r.now(), 1) {
			r.mu.Lock()
			r.blocked[ip] = r.now().Add(r.blockTime)
			r.mu.Unlock()

			http.Error(w, constvars.ErrClientTooManyLoginAttempts, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}
