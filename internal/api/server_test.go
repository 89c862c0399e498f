package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/i18n"
	"github.com/usherapp/usher-server/internal/ingest"
	"github.com/usherapp/usher-server/internal/logger"
	"github.com/usherapp/usher-server/internal/match"
	"github.com/usherapp/usher-server/internal/service"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api    humatest.TestAPI
	holder *service.Holder
}

func testRows() []ingest.Row {
	return []ingest.Row{
		{Name: "Naruto Uzumaki", TableID: "2", TableName: "Mimosa", Seat: "3", Side: "bride"},
		{Name: "Sakura Haruno", TableID: "2", TableName: "Mimosa", Side: "bride"},
		{Name: "Sasuke Uchiha", TableID: "9", Side: "groom"},
		{Name: "Boa Hancock", TableID: "46", Side: "bride"},
	}
}

// setupTestServer creates a test server over the given rows. An empty guest
// list path means the reload endpoint lands on the bundled sample.
func setupTestServer(t *testing.T, rows []ingest.Row, guestListPath string) *testServer {
	t.Helper()

	log := logger.New(logger.Config{
		Writer: io.Discard,
		Format: "json",
		Level:  slog.LevelError,
	})

	builder := directory.NewBuilder(log.Logger)
	holder := service.NewHolder()
	if rows != nil {
		dir := builder.Build(rows)
		holder.Swap(&service.Snapshot{
			Directory: dir,
			Matcher:   match.New(dir),
			Source:    ingest.SourceSample,
			LoadedAt:  time.Now(),
		})
	}

	loader := ingest.NewLoader(ingest.LoaderOptions{Path: guestListPath}, log.Logger)

	services := &Services{
		Guest:  service.NewGuestService(holder, log.Logger),
		Table:  service.NewTableService(holder, log.Logger),
		Venue:  service.NewVenueService(holder, log.Logger),
		Reload: service.NewReloadService(loader, builder, holder, log.Logger),
	}

	router := chi.NewRouter()
	humaConfig := huma.DefaultConfig("Usher API Test", "1.0.0")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		services:      services,
		holder:        holder,
		router:        router,
		api:           api,
		logger:        log,
		defaultLocale: i18n.LocaleEnglish,
	}
	s.setupRoutes()

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, api),
		holder: holder,
	}
}

// decode unmarshals a humatest response body into the given DTO.
func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}
