package httpapi

import (
	"crypto/rand"
	"net/http"
	"time"

	"autolist/portal/internal/config"
	"autolist/portal/internal/store"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Server struct {
	cfg        config.Config
	store      store.Store
	log        *zap.Logger
	signingKey []byte
}

func NewServer(cfg config.Config, st store.Store, log *zap.Logger) *Server {
	key := []byte(cfg.JWTSecret)
	if len(key) == 0 {
		// Generate a random key if no secret is configured; tokens then die
		// with the process.
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic("failed to generate signing key: " + err.Error())
		}
	}
	return &Server{
		cfg:        cfg,
		store:      st,
		log:        log,
		signingKey: key,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(chiMiddleware.Recoverer)

	if s.cfg.FrontendOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{s.cfg.FrontendOrigin},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)

		// Protected group: requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/vehicle-submission", s.handleVehicleSubmission)
			r.Get("/vehicle-submissions", s.handleListSubmissions)
		})
	})

	// Persisted/public assets.
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(s.cfg.PublicDir))))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
