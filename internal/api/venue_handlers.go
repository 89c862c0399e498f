package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/usherapp/usher-server/internal/domain"
)

func (s *Server) registerVenueRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-venue-layout",
		Method:      http.MethodGet,
		Path:        "/api/v1/venue/layout",
		Summary:     "Get the venue layout",
		Description: "Returns the floor plan for the map renderer: fixed elements plus positioned tables.",
		Tags:        []string{"Venue"},
	}, s.handleGetVenueLayout)
}

// GetVenueLayoutInput contains parameters for the layout request.
type GetVenueLayoutInput struct {
	Lang           string `query:"lang" enum:"en,vi" doc:"Response language override"`
	AcceptLanguage string `header:"Accept-Language"`
}

// GetVenueLayoutOutput wraps the layout for Huma. The domain types carry
// their own JSON shape; the map renderer consumes them directly.
type GetVenueLayoutOutput struct {
	Body domain.VenueLayout
}

func (s *Server) handleGetVenueLayout(_ context.Context, input *GetVenueLayoutInput) (*GetVenueLayoutOutput, error) {
	locale := s.locale(input.Lang, input.AcceptLanguage)

	layout, err := s.services.Venue.Layout(locale)
	if err != nil {
		return nil, err
	}

	return &GetVenueLayoutOutput{Body: *layout}, nil
}
