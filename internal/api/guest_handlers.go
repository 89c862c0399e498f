package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/service"
)

func (s *Server) registerGuestRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search-guest",
		Method:      http.MethodGet,
		Path:        "/api/v1/guests/search",
		Summary:     "Find a guest",
		Description: "Finds the single best matching guest on the declared side and resolves their seating.",
		Tags:        []string{"Guests"},
	}, s.handleSearchGuest)

	huma.Register(s.api, huma.Operation{
		OperationID: "list-guest-matches",
		Method:      http.MethodGet,
		Path:        "/api/v1/guests/matches",
		Summary:     "List matching guests",
		Description: "Lists every candidate for a query across both sides, for disambiguation.",
		Tags:        []string{"Guests"},
	}, s.handleListGuestMatches)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-guest",
		Method:      http.MethodGet,
		Path:        "/api/v1/guests/{id}",
		Summary:     "Get a guest",
		Description: "Resolves seating for a guest picked from a disambiguation list.",
		Tags:        []string{"Guests"},
	}, s.handleGetGuest)
}

// === DTOs ===

// SearchGuestInput contains parameters for the single-guest search.
type SearchGuestInput struct {
	Query          string `query:"q" required:"true" minLength:"1" maxLength:"200" doc:"Guest name to search for"`
	Side           string `query:"side" enum:"bride,groom" doc:"Declared side; defaults to bride"`
	Lang           string `query:"lang" enum:"en,vi" doc:"Response language override"`
	AcceptLanguage string `header:"Accept-Language"`
}

// GuestResult is the resolved seating payload for one guest.
type GuestResult struct {
	ID             string   `json:"id" doc:"Guest ID"`
	Name           string   `json:"name" doc:"Guest name as ingested"`
	VietnameseName string   `json:"vietnamese_name,omitempty" doc:"Vietnamese name, when present"`
	Side           string   `json:"side" doc:"bride or groom"`
	TableID        int      `json:"table_id" doc:"Assigned table number"`
	TableLabel     string   `json:"table_label" doc:"Localized table display name"`
	Seat           *int     `json:"seat,omitempty" doc:"Seat number, when assigned"`
	SeatText       string   `json:"seat_text,omitempty" doc:"Localized seat number line"`
	Tablemates     []string `json:"tablemates" doc:"Names of other guests at the same table"`
	TablematesNote string   `json:"tablemates_note,omitempty" doc:"Localized note when the table has no other guests"`
	Match          string   `json:"match,omitempty" doc:"Matching tier that produced this result"`
	Score          float64  `json:"score,omitempty" doc:"Similarity score, fuzzy matches only"`
	Notice         string   `json:"notice,omitempty" doc:"Localized closest-match notice, fuzzy matches only"`
}

// SearchGuestResponse is the search outcome. A miss is a normal response.
type SearchGuestResponse struct {
	Found   bool         `json:"found" doc:"Whether a guest matched"`
	Message string       `json:"message,omitempty" doc:"Localized no-match message"`
	Result  *GuestResult `json:"result,omitempty" doc:"Resolved guest, when found"`
}

// SearchGuestOutput wraps the search response for Huma.
type SearchGuestOutput struct {
	Body SearchGuestResponse
}

// ListGuestMatchesInput contains parameters for the disambiguation listing.
type ListGuestMatchesInput struct {
	Query          string `query:"q" required:"true" minLength:"1" maxLength:"200" doc:"Guest name to search for"`
	Lang           string `query:"lang" enum:"en,vi" doc:"Response language override"`
	AcceptLanguage string `header:"Accept-Language"`
}

// GuestMatchRow is one disambiguation candidate.
type GuestMatchRow struct {
	ID             string  `json:"id" doc:"Guest ID"`
	Name           string  `json:"name" doc:"Guest name"`
	VietnameseName string  `json:"vietnamese_name,omitempty" doc:"Vietnamese name, when present"`
	Side           string  `json:"side" doc:"bride or groom"`
	TableID        int     `json:"table_id" doc:"Assigned table number"`
	TableLabel     string  `json:"table_label" doc:"Localized table display name"`
	Match          string  `json:"match" doc:"Matching tier that produced this candidate"`
	Score          float64 `json:"score,omitempty" doc:"Similarity score, fuzzy matches only"`
}

// ListGuestMatchesResponse lists disambiguation candidates for a query.
type ListGuestMatchesResponse struct {
	Query   string          `json:"query" doc:"Original search query"`
	Matches []GuestMatchRow `json:"matches" doc:"Candidates, best first"`
}

// ListGuestMatchesOutput wraps the matches response for Huma.
type ListGuestMatchesOutput struct {
	Body ListGuestMatchesResponse
}

// GetGuestInput identifies a guest by ID.
type GetGuestInput struct {
	ID             string `path:"id" doc:"Guest ID"`
	Lang           string `query:"lang" enum:"en,vi" doc:"Response language override"`
	AcceptLanguage string `header:"Accept-Language"`
}

// GetGuestOutput wraps the resolved guest for Huma.
type GetGuestOutput struct {
	Body GuestResult
}

// === Handlers ===

func (s *Server) handleSearchGuest(_ context.Context, input *SearchGuestInput) (*SearchGuestOutput, error) {
	locale := s.locale(input.Lang, input.AcceptLanguage)
	side := domain.ParseSide(input.Side)

	outcome, err := s.services.Guest.Search(input.Query, side, locale)
	if err != nil {
		return nil, err
	}

	resp := SearchGuestResponse{Found: outcome.Found}
	if outcome.Found {
		resp.Result = toGuestResult(outcome.Result)
	} else {
		resp.Message = outcome.NoMatchMessage
	}

	return &SearchGuestOutput{Body: resp}, nil
}

func (s *Server) handleListGuestMatches(_ context.Context, input *ListGuestMatchesInput) (*ListGuestMatchesOutput, error) {
	locale := s.locale(input.Lang, input.AcceptLanguage)

	matches, err := s.services.Guest.Matches(input.Query, locale)
	if err != nil {
		return nil, err
	}

	resp := ListGuestMatchesResponse{
		Query:   input.Query,
		Matches: make([]GuestMatchRow, 0, len(matches)),
	}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, GuestMatchRow{
			ID:             m.GuestID,
			Name:           m.Name,
			VietnameseName: m.VietnameseName,
			Side:           string(m.Side),
			TableID:        m.TableID,
			TableLabel:     m.TableLabel,
			Match:          string(m.Tier),
			Score:          m.Score,
		})
	}

	return &ListGuestMatchesOutput{Body: resp}, nil
}

func (s *Server) handleGetGuest(_ context.Context, input *GetGuestInput) (*GetGuestOutput, error) {
	locale := s.locale(input.Lang, input.AcceptLanguage)

	resolution, err := s.services.Guest.Resolve(input.ID, locale)
	if err != nil {
		return nil, err
	}

	return &GetGuestOutput{Body: *toGuestResult(resolution)}, nil
}

// toGuestResult converts a service resolution to its wire shape.
func toGuestResult(r *service.GuestResolution) *GuestResult {
	return &GuestResult{
		ID:             r.GuestID,
		Name:           r.Name,
		VietnameseName: r.VietnameseName,
		Side:           string(r.Side),
		TableID:        r.TableID,
		TableLabel:     r.TableLabel,
		Seat:           r.Seat,
		SeatText:       r.SeatText,
		Tablemates:     r.Tablemates,
		TablematesNote: r.TablematesNote,
		Match:          string(r.Tier),
		Score:          r.Score,
		Notice:         r.Notice,
	}
}
