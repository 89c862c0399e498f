package domain

import "fmt"

// VIPTableID is the reserved ID of the VIP aggregate table. Guests land there
// when their row carries this table ID or a table name of "vip" (any case),
// regardless of how VIP status was denoted in the source data.
const VIPTableID = 46

// Table groups the guests seated together. The table does not own the guest
// data; it holds grouping references into the directory, in ingest order.
type Table struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Guests []*Guest `json:"guests"`
}

// DefaultTableName is the display label used when the source row carries no
// table name, and the fallback label when a guest's table cannot be located.
func DefaultTableName(id int) string {
	return fmt.Sprintf("Table %d", id)
}
