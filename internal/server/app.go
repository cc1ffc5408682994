package server

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/identops/sysid/internal/auth"
	"github.com/identops/sysid/internal/config"
)

type App struct {
	secret     []byte
	cookieName string
	tokenTTL   time.Duration
	noticePath string
}

func newApp(cfg config.Config) (*App, error) {
	secretText := cfg.Auth.Secret
	if secretText == "" {
		// Generate ephemeral secret if not configured.
		s, err := auth.NewRandomSecretB64(32)
		if err != nil {
			return nil, err
		}
		secretText = s
	}
	secretRaw, err := base64.RawURLEncoding.DecodeString(secretText)
	if err != nil {
		// Fallback: accept raw string.
		secretRaw = []byte(secretText)
	}
	if len(secretRaw) < 16 {
		// Avoid trivially weak secrets.
		pad := make([]byte, 16)
		copy(pad, secretRaw)
		secretRaw = pad
	}

	return &App{
		secret:     secretRaw,
		cookieName: auth.DefaultCookieName,
		tokenTTL:   cfg.Auth.TTL(),
		noticePath: cfg.NoticePath,
	}, nil
}

func (a *App) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /api/notice", a.handleNotice)
	mux.HandleFunc("POST /api/login", a.handleLogin)
	mux.HandleFunc("POST /api/logout", a.handleLogout)

	mux.HandleFunc("GET /api/whoami", a.requireAuth(a.handleWhoami))
	mux.HandleFunc("GET /api/node", a.requireAuth(a.handleNode))

	// Directory queries about arbitrary accounts are admin-only.
	mux.HandleFunc("GET /api/users/{name}/attrs", a.requireAdmin(a.handleUserAttrs))
	mux.HandleFunc("GET /api/passwd", a.requireAdmin(a.handlePasswd))
	mux.HandleFunc("GET /api/groups", a.requireAdmin(a.handleGroups))

	return a.withAuthContext(mux)
}
