package service

import (
	"log/slog"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/errors"
	"github.com/usherapp/usher-server/internal/i18n"
)

// TableView is the registry view of one table with its seated guests.
type TableView struct {
	ID     int
	Name   string
	VIP    bool
	Guests []*domain.Guest
}

// TableService answers table registry queries against the current snapshot.
type TableService struct {
	holder *Holder
	logger *slog.Logger
}

// NewTableService creates a table registry service.
func NewTableService(holder *Holder, logger *slog.Logger) *TableService {
	return &TableService{holder: holder, logger: logger}
}

// Tables returns the registry in ingest order with localized VIP naming.
func (s *TableService) Tables(locale i18n.Locale) ([]TableView, error) {
	snap := s.holder.Get()
	if snap == nil {
		return nil, errors.Unavailable("guest directory not loaded yet")
	}

	tables := snap.Directory.Tables()
	out := make([]TableView, 0, len(tables))
	for _, t := range tables {
		out = append(out, s.view(t, locale))
	}
	return out, nil
}

// Table returns one table by ID.
func (s *TableService) Table(tableID int, locale i18n.Locale) (*TableView, error) {
	snap := s.holder.Get()
	if snap == nil {
		return nil, errors.Unavailable("guest directory not loaded yet")
	}

	table, ok := snap.Directory.Table(tableID)
	if !ok {
		return nil, errors.NotFoundf("table %d not found", tableID)
	}

	view := s.view(table, locale)
	return &view, nil
}

func (s *TableService) view(t *domain.Table, locale i18n.Locale) TableView {
	view := TableView{
		ID:     t.ID,
		Name:   t.Name,
		VIP:    t.ID == domain.VIPTableID,
		Guests: t.Guests,
	}
	if view.VIP {
		view.Name = i18n.T(locale, "vip-table")
	}
	return view
}
