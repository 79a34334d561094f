package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"nexus-backend-go/internal/config"
	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

type Server struct {
	Store  *store.Store
	Config config.Config
	Tokens services.TokenService
	Media  services.MediaStore
	Logger *zap.Logger

	// lifetime ends when Close is called. Hijacked stats sockets watch it
	// because http.Server.Shutdown does not close them.
	lifetime context.Context
	stop     context.CancelFunc
}

func NewServer(st *store.Store, cfg config.Config, media services.MediaStore, logger *zap.Logger) *Server {
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: cfg.TokenTTL(),
	}
	if media == nil {
		media = services.DisabledMediaStore{}
	}
	lifetime, stop := context.WithCancel(context.Background())
	return &Server{
		Store:    st,
		Config:   cfg,
		Tokens:   tokens,
		Media:    media,
		Logger:   logger,
		lifetime: lifetime,
		stop:     stop,
	}
}

// Close ends open stats sockets. It is safe to call more than once.
func (s *Server) Close() {
	s.stop()
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.Logger))
	r.Use(middleware.Recoverer)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	function := s.dispatch(s.functionActions())
	auth := s.dispatch(s.authActions())

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.Health)

		api.Get("/function", function)
		api.Post("/function", function)
		api.Put("/function", function)
		api.Delete("/function", function)

		api.Get("/auth", auth)
		api.Post("/auth", auth)

		api.Group(func(upload chi.Router) {
			upload.Use(WithAuth(s.Tokens, s.Config.AuthRequired))
			upload.Post("/upload", s.Upload)
			upload.Delete("/upload", s.DeleteUpload)
		})
	})

	r.Get("/ws/stats", s.StatsSocket)
	return r
}
