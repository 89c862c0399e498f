package domain

// VenueLayout is the schematic floor plan served to the map renderer.
// Coordinates are a fixed static layout, not computed.
type VenueLayout struct {
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	FixedElements []FixedElement `json:"fixed_elements"`
	Tables        []*VenueTable  `json:"tables"`
}

// FixedElement is a non-table feature of the floor plan: stage, dance floor,
// bar, and so on. The VIP table is modeled as a fixed element carrying its
// guest list, mirroring how the venue treats it.
type FixedElement struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	TableID int      `json:"table_id,omitempty"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Label   string   `json:"label"`
	Guests  []*Guest `json:"guests,omitempty"`
}

// VenueTable is an ordinary table placed on the floor plan.
type VenueTable struct {
	*Table
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}
