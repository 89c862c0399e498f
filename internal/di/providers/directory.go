package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/usherapp/usher-server/internal/config"
	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/ingest"
	"github.com/usherapp/usher-server/internal/logger"
	"github.com/usherapp/usher-server/internal/service"
)

// ProvideLoader provides the guest list loader.
func ProvideLoader(i do.Injector) (*ingest.Loader, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return ingest.NewLoader(ingest.LoaderOptions{
		Path:    cfg.GuestList.Path,
		URL:     cfg.GuestList.URL,
		Timeout: cfg.GuestList.FetchTimeout,
		Retries: cfg.GuestList.FetchRetries,
	}, log.Logger), nil
}

// ProvideBuilder provides the directory builder.
func ProvideBuilder(i do.Injector) (*directory.Builder, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return directory.NewBuilder(log.Logger), nil
}

// ProvideHolder provides the snapshot holder.
func ProvideHolder(i do.Injector) (*service.Holder, error) {
	return service.NewHolder(), nil
}

// ProvideReloadService provides the reload service and performs the initial
// load so the server starts with a directory in place.
func ProvideReloadService(i do.Injector) (*service.ReloadService, error) {
	loader := do.MustInvoke[*ingest.Loader](i)
	builder := do.MustInvoke[*directory.Builder](i)
	holder := do.MustInvoke[*service.Holder](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc := service.NewReloadService(loader, builder, holder, log.Logger)

	if _, err := svc.Reload(context.Background()); err != nil {
		return nil, err
	}

	return svc, nil
}
