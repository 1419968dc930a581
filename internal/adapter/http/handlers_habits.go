package adapthttp

import (
	"net/http"
	"strings"
	"time"
)

func (s *Server) handleHabits(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		habits, err := s.habits.List(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": habits})

	case http.MethodPost:
		var body struct {
			Name string `json:"name"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		habit, err := s.habits.Create(r.Context(), user.ID, body.Name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, habit)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleHabitByID routes /habits/{id}, /habits/{id}/completion,
// /habits/{id}/toggle and /habits/{id}/heatmap.
func (s *Server) handleHabitByID(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r)

	rest := strings.TrimPrefix(r.URL.Path, "/habits/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := s.habits.Delete(r.Context(), user.ID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	case "completion":
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			Date      string `json:"date"`
			Completed bool   `json:"completed"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		habit, err := s.habits.SetCompletion(r.Context(), user.ID, id, body.Date, body.Completed)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, habit)

	case "toggle":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		habit, err := s.habits.Toggle(r.Context(), user.ID, id, localDayString(time.Now()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, habit)

	case "heatmap":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		today := r.URL.Query().Get("today")
		if today == "" {
			today = localDayString(time.Now())
		}
		cells, err := s.heatmap.GetYear(r.Context(), user.ID, id, today)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cells)

	default:
		http.NotFound(w, r)
	}
}
