package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	adapthttp "habittracker/internal/adapter/http"
	"habittracker/internal/adapter/memory"
	"habittracker/internal/app"
	"habittracker/internal/domain"
)

// newTestServer wires the handler against the in-memory adapter, with a
// throwaway web dir holding the three pages.
func newTestServer(t *testing.T) (http.Handler, *memory.DB) {
	t.Helper()

	webDir := t.TempDir()
	for _, page := range []string{"login.html", "signup.html", "dashboard.html"} {
		content := "<html>" + page + "</html>"
		if err := os.WriteFile(filepath.Join(webDir, page), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", page, err)
		}
	}

	db := memory.New()
	habitSvc := app.NewHabitService(db)
	heatmapSvc := app.NewHeatmapService(db)
	authSvc := app.NewAuthService(db.NewUserRepo(), db.NewSessionRepo())

	h := adapthttp.New(habitSvc, heatmapSvc, authSvc, adapthttp.OIDCConfig{}, webDir, nil).Handler()
	return h, db
}

func signUp(t *testing.T, h http.Handler, email string) *http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":"secret"}`, email)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("signup did not set a session cookie")
	return nil
}

func doJSON(h http.Handler, method, path string, cookie *http.Cookie, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHabitsAPI_RequiresSession(t *testing.T) {
	h, _ := newTestServer(t)

	w := doJSON(h, http.MethodGet, "/api/habits", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("items")) {
		t.Fatal("unauthenticated response must not carry the habit list")
	}
}

func TestDashboard_RedirectsWithoutSession(t *testing.T) {
	h, _ := newTestServer(t)

	w := doJSON(h, http.MethodGet, "/dashboard", nil, "")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("dashboard.html")) {
		t.Fatal("protected page bytes written before redirect")
	}
}

func TestDashboard_ServedWithSession(t *testing.T) {
	h, _ := newTestServer(t)
	cookie := signUp(t, h, "a@example.com")

	w := doJSON(h, http.MethodGet, "/dashboard", cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("dashboard.html")) {
		t.Fatalf("expected dashboard page, got %q", w.Body.String())
	}
}

func TestLoginFlow(t *testing.T) {
	h, _ := newTestServer(t)
	signUp(t, h, "a@example.com")

	w := doJSON(h, http.MethodPost, "/api/auth/login", nil, `{"email":"a@example.com","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(h, http.MethodPost, "/api/auth/login", nil, `{"email":"a@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}
}

func TestSignUp_Duplicate(t *testing.T) {
	h, _ := newTestServer(t)
	signUp(t, h, "a@example.com")

	w := doJSON(h, http.MethodPost, "/api/auth/signup", nil, `{"email":"a@example.com","password":"secret"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHabitLifecycleOverHTTP(t *testing.T) {
	h, _ := newTestServer(t)
	cookie := signUp(t, h, "a@example.com")

	// Create: name is normalized.
	w := doJSON(h, http.MethodPost, "/api/habits", cookie, `{"name":"run"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var habit domain.Habit
	if err := json.Unmarshal(w.Body.Bytes(), &habit); err != nil {
		t.Fatalf("decode habit: %v", err)
	}
	if habit.Name != "Run" || habit.ID == "" || len(habit.CompletedDates) != 0 {
		t.Fatalf("unexpected habit: %+v", habit)
	}

	// List contains it.
	w = doJSON(h, http.MethodGet, "/api/habits", cookie, "")
	var list struct {
		Items []domain.Habit `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != habit.ID {
		t.Fatalf("unexpected list: %+v", list.Items)
	}

	// Set a specific date completed, then incomplete.
	w = doJSON(h, http.MethodPut, "/api/habits/"+habit.ID+"/completion", cookie, `{"date":"2024-01-01","completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("completion: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated domain.Habit
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if !domain.IsCompletedOn(updated.CompletedDates, "2024-01-01") {
		t.Fatalf("expected 2024-01-01 completed, got %v", updated.CompletedDates)
	}

	w = doJSON(h, http.MethodPut, "/api/habits/"+habit.ID+"/completion", cookie, `{"date":"2024-01-01","completed":false}`)
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if len(updated.CompletedDates) != 0 {
		t.Fatalf("expected empty set, got %v", updated.CompletedDates)
	}

	// Heatmap over a window that includes a completed date.
	w = doJSON(h, http.MethodPut, "/api/habits/"+habit.ID+"/completion", cookie, `{"date":"2024-01-01","completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("completion: %d", w.Code)
	}
	w = doJSON(h, http.MethodGet, "/api/habits/"+habit.ID+"/heatmap?today=2024-06-15", cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("heatmap: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var year app.YearCells
	if err := json.Unmarshal(w.Body.Bytes(), &year); err != nil {
		t.Fatalf("decode heatmap: %v", err)
	}
	if len(year.Cells) != 1 || year.Cells[0].Date != "2024-01-01" {
		t.Fatalf("unexpected cells: %+v", year.Cells)
	}

	// Delete, then delete again.
	w = doJSON(h, http.MethodDelete, "/api/habits/"+habit.ID, cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	w = doJSON(h, http.MethodDelete, "/api/habits/"+habit.ID, cookie, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestHabits_ScopedToOwner(t *testing.T) {
	h, _ := newTestServer(t)
	alice := signUp(t, h, "alice@example.com")
	bob := signUp(t, h, "bob@example.com")

	w := doJSON(h, http.MethodPost, "/api/habits", alice, `{"name":"run"}`)
	var habit domain.Habit
	if err := json.Unmarshal(w.Body.Bytes(), &habit); err != nil {
		t.Fatalf("decode habit: %v", err)
	}

	// Bob's list is empty; Alice's habit never appears in it.
	w = doJSON(h, http.MethodGet, "/api/habits", bob, "")
	var list struct {
		Items []domain.Habit `json:"items"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Items) != 0 {
		t.Fatalf("expected empty list for bob, got %+v", list.Items)
	}

	// Bob cannot mutate Alice's habit.
	w = doJSON(h, http.MethodPost, "/api/habits/"+habit.ID+"/toggle", bob, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("toggle: expected 403, got %d", w.Code)
	}
	w = doJSON(h, http.MethodDelete, "/api/habits/"+habit.ID, bob, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("delete: expected 403, got %d", w.Code)
	}
}

func TestCreateHabit_EmptyNameRejected(t *testing.T) {
	h, db := newTestServer(t)
	cookie := signUp(t, h, "a@example.com")

	w := doJSON(h, http.MethodPost, "/api/habits", cookie, `{"name":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	habits, _ := db.ListByOwner(context.Background(), 1)
	if len(habits) != 0 {
		t.Fatalf("no record should be persisted, got %+v", habits)
	}
}

func TestLogout_InvalidatesSession(t *testing.T) {
	h, _ := newTestServer(t)
	cookie := signUp(t, h, "a@example.com")

	w := doJSON(h, http.MethodPost, "/api/auth/logout", cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}

	w = doJSON(h, http.MethodGet, "/api/habits", cookie, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t)

	w := doJSON(h, http.MethodGet, "/api/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
