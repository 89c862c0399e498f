package providers

import (
	"github.com/samber/do/v2"

	"github.com/usherapp/usher-server/internal/logger"
	"github.com/usherapp/usher-server/internal/service"
)

// ProvideGuestService provides the guest lookup service.
func ProvideGuestService(i do.Injector) (*service.GuestService, error) {
	holder := do.MustInvoke[*service.Holder](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewGuestService(holder, log.Logger), nil
}

// ProvideTableService provides the table registry service.
func ProvideTableService(i do.Injector) (*service.TableService, error) {
	holder := do.MustInvoke[*service.Holder](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewTableService(holder, log.Logger), nil
}

// ProvideVenueService provides the venue layout service.
func ProvideVenueService(i do.Injector) (*service.VenueService, error) {
	holder := do.MustInvoke[*service.Holder](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewVenueService(holder, log.Logger), nil
}
