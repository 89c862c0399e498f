package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse reports server health and directory state.
type HealthResponse struct {
	Status   string    `json:"status" doc:"healthy once a directory is loaded, starting before"`
	Source   string    `json:"source,omitempty" doc:"Where the current guest list came from"`
	Guests   int       `json:"guests,omitempty" doc:"Number of guests in the current directory"`
	LoadedAt time.Time `json:"loaded_at,omitzero" doc:"When the current snapshot was built"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	resp := HealthResponse{Status: "starting"}

	if snap := s.holder.Get(); snap != nil {
		resp.Status = "healthy"
		resp.Source = string(snap.Source)
		resp.Guests = len(snap.Directory.Guests())
		resp.LoadedAt = snap.LoadedAt
	}

	return &HealthOutput{Body: resp}, nil
}
