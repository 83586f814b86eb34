package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"zentravel-go/internal/domain/trip"
	"zentravel-go/internal/transport/httpserver/middleware"
)

func indexParam(r *http.Request, name string) (int, error) {
	value := chi.URLParam(r, name)
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid index %q", value)
	}
	return parsed, nil
}

// sessionUser pulls the member resolved by the session middleware. The
// middleware guards every route that calls this, so a miss is a wiring
// bug surfaced as a 401 rather than a panic.
func sessionUser(w http.ResponseWriter, r *http.Request) (trip.User, bool) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user_not_selected", "no member selected")
		return trip.User{}, false
	}
	return user, true
}
