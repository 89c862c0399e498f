// Package di provides dependency injection configuration for the Usher server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/usherapp/usher-server/internal/config"
	"github.com/usherapp/usher-server/internal/di/providers"
	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/ingest"
	"github.com/usherapp/usher-server/internal/logger"
	"github.com/usherapp/usher-server/internal/ratelimit"
	"github.com/usherapp/usher-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Guest data layer
	do.Provide(injector, providers.ProvideLoader)
	do.Provide(injector, providers.ProvideBuilder)
	do.Provide(injector, providers.ProvideHolder)
	do.Provide(injector, providers.ProvideReloadService)

	// Business services
	do.Provide(injector, providers.ProvideGuestService)
	do.Provide(injector, providers.ProvideTableService)
	do.Provide(injector, providers.ProvideVenueService)

	// Workers
	do.Provide(injector, providers.ProvideGuestListWatcher)

	// Server
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of every provider, including the initial
// guest list load.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)

	// Guest data layer; the reload provider performs the initial load
	_ = do.MustInvoke[*ingest.Loader](injector)
	_ = do.MustInvoke[*directory.Builder](injector)
	_ = do.MustInvoke[*service.Holder](injector)
	_ = do.MustInvoke[*service.ReloadService](injector)

	// Business services
	_ = do.MustInvoke[*service.GuestService](injector)
	_ = do.MustInvoke[*service.TableService](injector)
	_ = do.MustInvoke[*service.VenueService](injector)

	// Workers
	_ = do.MustInvoke[*providers.GuestListWatcherHandle](injector)

	// Server
	_ = do.MustInvoke[*ratelimit.KeyedRateLimiter](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
