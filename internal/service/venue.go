package service

import (
	"log/slog"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/errors"
	"github.com/usherapp/usher-server/internal/i18n"
	"github.com/usherapp/usher-server/internal/venue"
)

// VenueService serves the floor plan for the map renderer.
type VenueService struct {
	holder *Holder
	logger *slog.Logger
}

// NewVenueService creates a venue layout service.
func NewVenueService(holder *Holder, logger *slog.Logger) *VenueService {
	return &VenueService{holder: holder, logger: logger}
}

// Layout builds the localized floor plan from the current snapshot. The
// layout is cheap to assemble, so it is built per request rather than cached
// per locale.
func (s *VenueService) Layout(locale i18n.Locale) (*domain.VenueLayout, error) {
	snap := s.holder.Get()
	if snap == nil {
		return nil, errors.Unavailable("guest directory not loaded yet")
	}
	return venue.BuildLayout(snap.Directory, locale), nil
}
