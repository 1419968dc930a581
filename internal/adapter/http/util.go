package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"habittracker/internal/app"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeServiceError maps application errors onto HTTP statuses. Anything the
// services did not classify is treated as the store being unreachable.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrEmptyName), errors.Is(err, app.ErrBadDate), errors.Is(err, app.ErrInvalidSignUp):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, app.ErrInvalidCredentials), errors.Is(err, app.ErrSessionNotFound), errors.Is(err, app.ErrSessionExpired):
		writeError(w, http.StatusUnauthorized, err)
	case errors.Is(err, app.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, err)
	case errors.Is(err, app.ErrHabitNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, app.ErrEmailTaken):
		writeError(w, http.StatusConflict, err)
	default:
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "store unavailable, please retry"})
	}
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func localDayString(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func pageFromDisk(dir, file string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, dir+"/"+file)
	})
}

// pagesFromDisk serves the public pages and static assets. "/" is the sign-up
// entry point, matching the application's navigation.
func pagesFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/signup":
			http.ServeFile(w, r, dir+"/signup.html")
		case "/login":
			http.ServeFile(w, r, dir+"/login.html")
		default:
			fileServer.ServeHTTP(w, r)
		}
	})
}
