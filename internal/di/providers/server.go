package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/samber/do/v2"

	"github.com/usherapp/usher-server/internal/api"
	"github.com/usherapp/usher-server/internal/config"
	"github.com/usherapp/usher-server/internal/i18n"
	"github.com/usherapp/usher-server/internal/logger"
	"github.com/usherapp/usher-server/internal/ratelimit"
	"github.com/usherapp/usher-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Search endpoints get a generous per-IP budget: a guest tapping through the
// frontend never hits it, a scraper does.
const (
	searchRatePerSecond = 5
	searchBurst         = 20
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideRateLimiter provides the per-IP search rate limiter.
func ProvideRateLimiter(i do.Injector) (*ratelimit.KeyedRateLimiter, error) {
	return ratelimit.New(searchRatePerSecond, searchBurst), nil
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	limiter := do.MustInvoke[*ratelimit.KeyedRateLimiter](i)

	services := &api.Services{
		Guest:  do.MustInvoke[*service.GuestService](i),
		Table:  do.MustInvoke[*service.TableService](i),
		Venue:  do.MustInvoke[*service.VenueService](i),
		Reload: do.MustInvoke[*service.ReloadService](i),
	}
	holder := do.MustInvoke[*service.Holder](i)

	handler := api.NewServer(api.Options{
		Services:      services,
		Holder:        holder,
		Logger:        log,
		CORSOrigins:   cfg.Server.CORSOrigins,
		DefaultLocale: i18n.Locale(cfg.App.DefaultLocale),
		SearchLimiter: limiter,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
