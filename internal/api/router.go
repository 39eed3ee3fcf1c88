package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/okellojun/HackLab/internal/api/handler"
	"github.com/okellojun/HackLab/internal/api/middleware"
	"github.com/okellojun/HackLab/internal/app/service"
	"github.com/okellojun/HackLab/internal/common/security"
	"go.uber.org/zap"
)

type Services struct {
	Auth      *service.AuthService
	Profile   *service.ProfileService
	Problem   *service.ProblemService
	Hackathon *service.HackathonService
	Analytics *service.AnalyticsService
	Dashboard *service.DashboardService
}

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(
	cfg RouterConfig,
	services Services,
	tokens *security.TokenService,
	db handler.Pinger,
	log *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	if cfg.RequestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	handler.NewHealthHandler(db, log).RegisterRoutes(r)

	authHandler := handler.NewAuthHandler(services.Auth, log)
	problemHandler := handler.NewProblemHandler(services.Problem, log)
	hackathonHandler := handler.NewHackathonHandler(services.Hackathon, log)
	profileHandler := handler.NewProfileHandler(services.Profile, services.Analytics, services.Dashboard, log)

	mount := func(api chi.Router) {
		// Auth routes (public)
		authHandler.RegisterRoutes(api)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticator(tokens))
			profileHandler.RegisterRoutes(protected)
			problemHandler.RegisterRoutes(protected)
			hackathonHandler.RegisterRoutes(protected)
		})
	}

	// Served at the root for existing clients and under /api/v1.
	mount(r)
	r.Route("/api/v1", mount)

	return r
}
