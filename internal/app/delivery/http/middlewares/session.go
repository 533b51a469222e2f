package middlewares

import (
	"context"
	"medicare-frontend/internal/pkg/constvars"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie gives every browser an opaque session id. An absent or
// malformed cookie is replaced by a fresh one.
func (m *Middlewares) SessionCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := m.InternalConfig.App.SessionCookieName

		sessionID := ""
		if cookie, err := r.Cookie(name); err == nil {
			if parsed, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = parsed.String()
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     name,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   m.InternalConfig.App.Env == "production",
			})
			m.Log.Debug("Web session created",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			)
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}
