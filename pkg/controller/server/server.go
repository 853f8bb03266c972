package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/utils/ratelimit"
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	session  interfaces.SessionService
	profiles interfaces.ProfileRepository
	limiter  *ratelimit.Limiter
}

type Option func(*config)

func WithSession(svc interfaces.SessionService) Option {
	return func(cfg *config) {
		cfg.session = svc
	}
}

func WithProfiles(repo interfaces.ProfileRepository) Option {
	return func(cfg *config) {
		cfg.profiles = repo
	}
}

func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(cfg *config) {
		cfg.limiter = limiter
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		limiter: ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow),
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/list-pages-sites", handleListPagesSites(uc, cfg))
		r.Post("/get-pages-info", handleGetPagesInfo(uc, cfg))
		r.Post("/enable-github-pages", handleEnablePages(uc, cfg))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
