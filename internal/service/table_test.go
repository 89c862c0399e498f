package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/errors"
	"github.com/usherapp/usher-server/internal/i18n"
)

func TestTableService_Tables(t *testing.T) {
	svc := NewTableService(newTestHolder(t, seatedRows()), testLogger())

	tables, err := svc.Tables(i18n.LocaleEnglish)
	require.NoError(t, err)
	require.Len(t, tables, 3)

	assert.Equal(t, 2, tables[0].ID)
	assert.Equal(t, "Mimosa", tables[0].Name)
	assert.False(t, tables[0].VIP)
	assert.Len(t, tables[0].Guests, 2)

	assert.Equal(t, 9, tables[1].ID)
	assert.Equal(t, "Table 9", tables[1].Name)

	assert.Equal(t, domain.VIPTableID, tables[2].ID)
	assert.True(t, tables[2].VIP)
	assert.Equal(t, "VIP Table", tables[2].Name)
}

func TestTableService_Table_VIPLocalized(t *testing.T) {
	svc := NewTableService(newTestHolder(t, seatedRows()), testLogger())

	table, err := svc.Table(domain.VIPTableID, i18n.LocaleVietnamese)
	require.NoError(t, err)
	assert.Equal(t, "Bàn VIP", table.Name)
	assert.True(t, table.VIP)
	assert.Len(t, table.Guests, 2)
}

func TestTableService_Table_NotFound(t *testing.T) {
	svc := NewTableService(newTestHolder(t, seatedRows()), testLogger())

	_, err := svc.Table(99, i18n.LocaleEnglish)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestTableService_NotLoaded(t *testing.T) {
	svc := NewTableService(NewHolder(), testLogger())

	_, err := svc.Tables(i18n.LocaleEnglish)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnavailable))
}

func TestVenueService_Layout(t *testing.T) {
	svc := NewVenueService(newTestHolder(t, seatedRows()), testLogger())

	layout, err := svc.Layout(i18n.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, 950, layout.Width)

	// Regular tables only; VIP rides on its fixed element.
	require.Len(t, layout.Tables, 2)
}

func TestVenueService_NotLoaded(t *testing.T) {
	svc := NewVenueService(NewHolder(), testLogger())

	_, err := svc.Layout(i18n.LocaleEnglish)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnavailable))
}
