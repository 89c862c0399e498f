// Package api provides the HTTP API server and handlers for the Usher service.
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/usherapp/usher-server/internal/i18n"
	"github.com/usherapp/usher-server/internal/logger"
	"github.com/usherapp/usher-server/internal/ratelimit"
	"github.com/usherapp/usher-server/internal/service"
)

// Services bundles the application services the handlers depend on.
type Services struct {
	Guest  *service.GuestService
	Table  *service.TableService
	Venue  *service.VenueService
	Reload *service.ReloadService
}

// Options configures the HTTP server.
type Options struct {
	Services      *Services
	Holder        *service.Holder
	Logger        *logger.Logger
	CORSOrigins   []string
	DefaultLocale i18n.Locale
	SearchLimiter *ratelimit.KeyedRateLimiter // optional, limits the guest lookup endpoints per IP
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services      *Services
	holder        *service.Holder
	router        *chi.Mux
	api           huma.API
	logger        *logger.Logger
	defaultLocale i18n.Locale
	limiter       *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(opts Options) *Server {
	s := &Server{
		services:      opts.Services,
		holder:        opts.Holder,
		router:        chi.NewRouter(),
		logger:        opts.Logger,
		defaultLocale: opts.DefaultLocale,
		limiter:       opts.SearchLimiter,
	}
	if s.defaultLocale == "" {
		s.defaultLocale = i18n.LocaleEnglish
	}

	s.setupMiddleware(opts.CORSOrigins)

	humaConfig := huma.DefaultConfig("Usher API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(corsOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	if len(corsOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
			MaxAge:         300,
		}))
	}

	if s.limiter != nil {
		s.router.Use(s.rateLimitGuestLookups)
	}
}

// setupRoutes registers all huma operations.
func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerGuestRoutes()
	s.registerTableRoutes()
	s.registerVenueRoutes()
	s.registerAdminRoutes()
}

// locale resolves the response locale from the explicit lang query parameter
// and the Accept-Language header.
func (s *Server) locale(lang, acceptLanguage string) i18n.Locale {
	return i18n.Negotiate(lang, acceptLanguage, s.defaultLocale)
}
