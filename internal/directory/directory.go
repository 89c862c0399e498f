// Package directory builds the in-memory guest directory and table registry
// from ingested rows and answers table resolution queries against them.
//
// The directory is immutable once built. Reloads discard and rebuild it from
// scratch; there is no incremental merge.
package directory

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/id"
	"github.com/usherapp/usher-server/internal/ingest"
	"github.com/usherapp/usher-server/internal/validation"
)

// Directory holds every guest in ingest order plus the derived table registry.
// Guests are the canonical owners of guest data; tables hold grouping
// references only.
type Directory struct {
	guests     []*domain.Guest
	guestsByID map[string]*domain.Guest
	tables     map[int]*domain.Table
	tableOrder []int
}

// Builder constructs directories from ingested rows.
type Builder struct {
	validate *validation.Validator
	logger   *slog.Logger
}

// NewBuilder creates a directory builder.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{
		validate: validation.New(),
		logger:   logger,
	}
}

// Build coerces raw rows into typed guests and groups them into tables.
//
// Routing rules:
//   - table_id 46, or a table name of "vip" in any case, sends the guest to
//     the VIP aggregate table instead of an ordinary per-table group.
//   - tables are created lazily on the first guest encountered for their ID,
//     with the row's table name or a "Table {id}" default.
//   - rows without a usable name or table ID are skipped silently; this is a
//     deliberate policy carried over from the source data pipeline.
func (b *Builder) Build(rows []ingest.Row) *Directory {
	dir := &Directory{
		guestsByID: make(map[string]*domain.Guest),
		tables:     make(map[int]*domain.Table),
	}

	skipped := 0
	for _, row := range rows {
		guest, tableName, ok := b.coerce(row)
		if !ok {
			skipped++
			continue
		}

		dir.guests = append(dir.guests, guest)
		dir.guestsByID[guest.ID] = guest

		table, exists := dir.tables[guest.TableID]
		if !exists {
			table = &domain.Table{ID: guest.TableID, Name: tableName}
			if guest.IsVIP() {
				table.Name = "VIP Table"
			}
			dir.tables[guest.TableID] = table
			dir.tableOrder = append(dir.tableOrder, guest.TableID)
		}
		table.Guests = append(table.Guests, guest)
	}

	if skipped > 0 {
		b.logger.Debug("skipped malformed guest rows", "count", skipped)
	}
	b.logger.Info("built guest directory",
		"guests", len(dir.guests),
		"tables", len(dir.tables),
	)

	return dir
}

// coerce turns a raw row into a typed guest, reporting whether it is usable.
func (b *Builder) coerce(row ingest.Row) (*domain.Guest, string, bool) {
	tableID, err := strconv.Atoi(strings.TrimSpace(row.TableID))
	if err != nil {
		b.logger.Debug("skipping row with non-integer table id", "table_id", row.TableID)
		return nil, "", false
	}

	tableName := strings.TrimSpace(row.TableName)
	if tableID == domain.VIPTableID || strings.EqualFold(tableName, "vip") {
		tableID = domain.VIPTableID
	}
	if tableName == "" {
		tableName = domain.DefaultTableName(tableID)
	}

	guest := &domain.Guest{
		ID:             id.MustGenerate("gst"),
		Name:           strings.TrimSpace(row.Name),
		VietnameseName: strings.TrimSpace(row.VietnameseName),
		TableID:        tableID,
		Side:           domain.ParseSide(row.Side),
	}

	if seat, err := strconv.Atoi(strings.TrimSpace(row.Seat)); err == nil && seat > 0 {
		guest.Seat = &seat
	}

	if err := b.validate.Validate(guest); err != nil {
		b.logger.Debug("skipping invalid guest row", "name", row.Name, "error", err)
		return nil, "", false
	}

	return guest, tableName, true
}

// Guests returns every guest in ingest order.
func (d *Directory) Guests() []*domain.Guest {
	return d.guests
}

// Guest looks up a guest by its assigned ID.
func (d *Directory) Guest(guestID string) (*domain.Guest, bool) {
	g, ok := d.guestsByID[guestID]
	return g, ok
}

// Table looks up a table by ID.
func (d *Directory) Table(tableID int) (*domain.Table, bool) {
	t, ok := d.tables[tableID]
	return t, ok
}

// Tables returns the registry in creation (ingest) order.
func (d *Directory) Tables() []*domain.Table {
	out := make([]*domain.Table, 0, len(d.tableOrder))
	for _, tid := range d.tableOrder {
		out = append(out, d.tables[tid])
	}
	return out
}

// Tablemates returns every other guest sharing the given guest's table, in
// ingest order. VIP guests get every other VIP guest. A missing table yields
// an empty list, never an error.
func (d *Directory) Tablemates(guest *domain.Guest) []*domain.Guest {
	table, ok := d.tables[guest.TableID]
	if !ok {
		return nil
	}

	mates := make([]*domain.Guest, 0, len(table.Guests)-1)
	for _, g := range table.Guests {
		if g.ID == guest.ID {
			continue
		}
		mates = append(mates, g)
	}
	return mates
}

// TableLabel resolves the display label for a guest's table, falling back to
// "Table {id}" when the table cannot be located. VIP localization is applied
// by the presentation layer on top of this.
func (d *Directory) TableLabel(guest *domain.Guest) string {
	if table, ok := d.tables[guest.TableID]; ok && table.Name != "" {
		return table.Name
	}
	return domain.DefaultTableName(guest.TableID)
}
