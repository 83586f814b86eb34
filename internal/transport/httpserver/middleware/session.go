package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"zentravel-go/internal/domain/trip"
)

type contextKey int

const userKey contextKey = iota

// Session resolves the acting trip member from the X-User-ID
// header. This is a device-local role selection, not authentication:
// the roster is fixed and there are no credentials.
type Session struct {
	users *trip.Registry
}

func NewSession(users *trip.Registry) *Session {
	return &Session{users: users}
}

func (s *Session) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if id == "" {
			writeError(w, http.StatusUnauthorized, "user_not_selected", "select a member via the X-User-ID header")
			return
		}

		user, err := s.users.Get(id)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "user_not_selected", "unknown member id")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func WithUser(ctx context.Context, user trip.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFrom(ctx context.Context) (trip.User, bool) {
	user, ok := ctx.Value(userKey).(trip.User)
	return user, ok
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {"code": code, "message": message},
	})
}
