package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/service"
)

func (s *Server) registerTableRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-tables",
		Method:      http.MethodGet,
		Path:        "/api/v1/tables",
		Summary:     "List tables",
		Description: "Lists the table registry in ingest order with seated guests.",
		Tags:        []string{"Tables"},
	}, s.handleListTables)

	huma.Register(s.api, huma.Operation{
		OperationID: "get-table",
		Method:      http.MethodGet,
		Path:        "/api/v1/tables/{id}",
		Summary:     "Get a table",
		Tags:        []string{"Tables"},
	}, s.handleGetTable)
}

// === DTOs ===

// ListTablesInput contains parameters for listing tables.
type ListTablesInput struct {
	Lang           string `query:"lang" enum:"en,vi" doc:"Response language override"`
	AcceptLanguage string `header:"Accept-Language"`
}

// TableGuestRow is one seated guest in a table view.
type TableGuestRow struct {
	ID   string `json:"id" doc:"Guest ID"`
	Name string `json:"name" doc:"Guest name"`
	Seat *int   `json:"seat,omitempty" doc:"Seat number, when assigned"`
	Side string `json:"side" doc:"bride or groom"`
}

// TableResult is the registry view of one table.
type TableResult struct {
	ID     int             `json:"id" doc:"Table number"`
	Name   string          `json:"name" doc:"Localized table display name"`
	VIP    bool            `json:"vip" doc:"Whether this is the VIP aggregate table"`
	Guests []TableGuestRow `json:"guests" doc:"Seated guests in ingest order"`
}

// ListTablesResponse lists the full registry.
type ListTablesResponse struct {
	Tables []TableResult `json:"tables" doc:"Tables in ingest order"`
}

// ListTablesOutput wraps the registry for Huma.
type ListTablesOutput struct {
	Body ListTablesResponse
}

// GetTableInput identifies a table by number.
type GetTableInput struct {
	ID             int    `path:"id" doc:"Table number"`
	Lang           string `query:"lang" enum:"en,vi" doc:"Response language override"`
	AcceptLanguage string `header:"Accept-Language"`
}

// GetTableOutput wraps a single table for Huma.
type GetTableOutput struct {
	Body TableResult
}

// === Handlers ===

func (s *Server) handleListTables(_ context.Context, input *ListTablesInput) (*ListTablesOutput, error) {
	locale := s.locale(input.Lang, input.AcceptLanguage)

	tables, err := s.services.Table.Tables(locale)
	if err != nil {
		return nil, err
	}

	resp := ListTablesResponse{Tables: make([]TableResult, 0, len(tables))}
	for i := range tables {
		resp.Tables = append(resp.Tables, toTableResult(&tables[i]))
	}

	return &ListTablesOutput{Body: resp}, nil
}

func (s *Server) handleGetTable(_ context.Context, input *GetTableInput) (*GetTableOutput, error) {
	locale := s.locale(input.Lang, input.AcceptLanguage)

	table, err := s.services.Table.Table(input.ID, locale)
	if err != nil {
		return nil, err
	}

	return &GetTableOutput{Body: toTableResult(table)}, nil
}

// toTableResult converts a service table view to its wire shape.
func toTableResult(t *service.TableView) TableResult {
	result := TableResult{
		ID:     t.ID,
		Name:   t.Name,
		VIP:    t.VIP,
		Guests: make([]TableGuestRow, 0, len(t.Guests)),
	}
	for _, g := range t.Guests {
		result.Guests = append(result.Guests, toTableGuestRow(g))
	}
	return result
}

func toTableGuestRow(g *domain.Guest) TableGuestRow {
	return TableGuestRow{
		ID:   g.ID,
		Name: g.Name,
		Seat: g.Seat,
		Side: string(g.Side),
	}
}
