package adapthttp

import (
	"net/http"

	"habittracker/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the optional federated sign-in configuration.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	habits  *app.HabitService
	heatmap *app.HeatmapService
	auth    *app.AuthService
	oidc    OIDCConfig
	webDir  string
	logger  *zap.Logger
}

// New creates a Server wired to the given application services.
func New(hs *app.HabitService, hm *app.HeatmapService, as *app.AuthService, oidcCfg OIDCConfig, webDir string, logger *zap.Logger) *Server {
	return &Server{habits: hs, heatmap: hm, auth: as, oidc: oidcCfg, webDir: webDir, logger: logger}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/signup", s.handleSignUp)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/config", s.handleConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)
	api.Handle("/auth/me", s.requireSession(http.HandlerFunc(s.handleMe)))

	api.Handle("/habits", s.requireSession(http.HandlerFunc(s.handleHabits)))
	api.Handle("/habits/", s.requireSession(http.HandlerFunc(s.handleHabitByID)))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/dashboard", s.requirePage(pageFromDisk(s.webDir, "dashboard.html")))
	root.Handle("/", pagesFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
