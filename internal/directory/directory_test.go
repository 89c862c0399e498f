package directory

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/ingest"
)

func newTestBuilder() *Builder {
	return NewBuilder(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBuild_GroupsGuestsIntoTables(t *testing.T) {
	rows := []ingest.Row{
		{Name: "Luffy Monkey", TableID: "1", TableName: "Freesia", Seat: "1", Side: "bride"},
		{Name: "Roronoa Zoro", TableID: "1", TableName: "Freesia", Seat: "2", Side: "groom"},
		{Name: "Nami", TableID: "2", Side: "bride"},
	}

	dir := newTestBuilder().Build(rows)

	require.Len(t, dir.Guests(), 3)

	table1, ok := dir.Table(1)
	require.True(t, ok)
	assert.Equal(t, "Freesia", table1.Name)
	require.Len(t, table1.Guests, 2)
	assert.Equal(t, "Luffy Monkey", table1.Guests[0].Name)
	assert.Equal(t, "Roronoa Zoro", table1.Guests[1].Name)

	// Table without a name falls back to the default.
	table2, ok := dir.Table(2)
	require.True(t, ok)
	assert.Equal(t, "Table 2", table2.Name)
}

func TestBuild_AssignsIDsAndCoercesFields(t *testing.T) {
	rows := []ingest.Row{
		{Name: " Luffy Monkey ", TableID: " 3 ", TableName: "Rose", Seat: "4", VietnameseName: " Lưu Phi ", Side: "GROOM"},
	}

	dir := newTestBuilder().Build(rows)
	require.Len(t, dir.Guests(), 1)

	g := dir.Guests()[0]
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "Luffy Monkey", g.Name)
	assert.Equal(t, "Lưu Phi", g.VietnameseName)
	assert.Equal(t, 3, g.TableID)
	assert.Equal(t, domain.SideGroom, g.Side)
	require.NotNil(t, g.Seat)
	assert.Equal(t, 4, *g.Seat)

	byID, ok := dir.Guest(g.ID)
	require.True(t, ok)
	assert.Same(t, g, byID)
}

func TestBuild_BlankFieldsDefault(t *testing.T) {
	rows := []ingest.Row{
		{Name: "Nami", TableID: "2"},
	}

	dir := newTestBuilder().Build(rows)
	require.Len(t, dir.Guests(), 1)

	g := dir.Guests()[0]
	assert.Equal(t, domain.SideBride, g.Side)
	assert.Nil(t, g.Seat)
	assert.Empty(t, g.VietnameseName)
}

func TestBuild_VIPRouting(t *testing.T) {
	rows := []ingest.Row{
		{Name: "Boa Hancock", TableID: "46", TableName: "Head Table", Side: "bride"},
		{Name: "Jimbei", TableID: "7", TableName: "vip", Side: "groom"},
		{Name: "Shanks", TableID: "7", TableName: "VIP", Side: "groom"},
	}

	dir := newTestBuilder().Build(rows)

	// A "vip" table name routes to the aggregate regardless of table_id.
	vip, ok := dir.Table(domain.VIPTableID)
	require.True(t, ok)
	assert.Equal(t, "VIP Table", vip.Name)
	require.Len(t, vip.Guests, 3)

	_, ok = dir.Table(7)
	assert.False(t, ok)

	for _, g := range dir.Guests() {
		assert.True(t, g.IsVIP())
	}
}

func TestBuild_SkipsMalformedRows(t *testing.T) {
	rows := []ingest.Row{
		{Name: "Valid Guest", TableID: "1", Side: "bride"},
		{Name: "", TableID: "1", Side: "bride"},
		{Name: "No Table", TableID: "", Side: "bride"},
		{Name: "Bad Table", TableID: "abc", Side: "bride"},
		{Name: "Zero Table", TableID: "0", Side: "bride"},
	}

	dir := newTestBuilder().Build(rows)

	require.Len(t, dir.Guests(), 1)
	assert.Equal(t, "Valid Guest", dir.Guests()[0].Name)
}

func TestBuild_NonNumericSeatDropped(t *testing.T) {
	rows := []ingest.Row{
		{Name: "Nami", TableID: "2", Seat: "front"},
		{Name: "Usopp", TableID: "2", Seat: "-1"},
	}

	dir := newTestBuilder().Build(rows)
	require.Len(t, dir.Guests(), 2)
	assert.Nil(t, dir.Guests()[0].Seat)
	assert.Nil(t, dir.Guests()[1].Seat)
}

func TestTables_KeepCreationOrder(t *testing.T) {
	rows := []ingest.Row{
		{Name: "A", TableID: "5", Side: "bride"},
		{Name: "B", TableID: "2", Side: "bride"},
		{Name: "C", TableID: "5", Side: "bride"},
		{Name: "D", TableID: "9", Side: "bride"},
	}

	dir := newTestBuilder().Build(rows)

	tables := dir.Tables()
	require.Len(t, tables, 3)
	assert.Equal(t, []int{5, 2, 9}, []int{tables[0].ID, tables[1].ID, tables[2].ID})
}

func TestTablemates(t *testing.T) {
	rows := []ingest.Row{
		{Name: "Luffy Monkey", TableID: "1", Side: "bride"},
		{Name: "Roronoa Zoro", TableID: "1", Side: "bride"},
		{Name: "Nami", TableID: "1", Side: "bride"},
		{Name: "Solo Diner", TableID: "2", Side: "groom"},
	}

	dir := newTestBuilder().Build(rows)

	luffy := dir.Guests()[0]
	mates := dir.Tablemates(luffy)
	require.Len(t, mates, 2)
	assert.Equal(t, "Roronoa Zoro", mates[0].Name)
	assert.Equal(t, "Nami", mates[1].Name)

	solo := dir.Guests()[3]
	assert.Empty(t, dir.Tablemates(solo))
}

func TestTablemates_MissingTable(t *testing.T) {
	dir := newTestBuilder().Build(nil)

	orphan := &domain.Guest{ID: "gst-x", Name: "Orphan", TableID: 99}
	assert.Empty(t, dir.Tablemates(orphan))
}

func TestTableLabel(t *testing.T) {
	rows := []ingest.Row{
		{Name: "Luffy Monkey", TableID: "1", TableName: "Freesia", Side: "bride"},
	}

	dir := newTestBuilder().Build(rows)

	assert.Equal(t, "Freesia", dir.TableLabel(dir.Guests()[0]))

	orphan := &domain.Guest{ID: "gst-y", Name: "Orphan", TableID: 12}
	assert.Equal(t, "Table 12", dir.TableLabel(orphan))
}
