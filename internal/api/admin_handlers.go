package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerAdminRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "reload-guest-list",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/reload",
		Summary:     "Reload the guest list",
		Description: "Discards the current directory and rebuilds it from the configured source.",
		Tags:        []string{"Admin"},
	}, s.handleReload)
}

// ReloadResponse summarizes a completed reload.
type ReloadResponse struct {
	Source   string    `json:"source" doc:"Where the guest list was loaded from: file, url, or sample"`
	Guests   int       `json:"guests" doc:"Number of guests in the rebuilt directory"`
	Tables   int       `json:"tables" doc:"Number of tables in the rebuilt registry"`
	LoadedAt time.Time `json:"loaded_at" doc:"When the snapshot was built"`
}

// ReloadOutput wraps the reload summary for Huma.
type ReloadOutput struct {
	Body ReloadResponse
}

func (s *Server) handleReload(ctx context.Context, _ *struct{}) (*ReloadOutput, error) {
	result, err := s.services.Reload.Reload(ctx)
	if err != nil {
		s.logger.Error("manual reload failed", "error", err)
		return nil, err
	}

	return &ReloadOutput{Body: ReloadResponse{
		Source:   string(result.Source),
		Guests:   result.Guests,
		Tables:   result.Tables,
		LoadedAt: result.LoadedAt,
	}}, nil
}
