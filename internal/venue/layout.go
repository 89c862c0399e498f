// Package venue projects a built guest directory onto the static floor plan
// served to the map renderer.
//
// The floor plan is fixed: a 950x1300 canvas with hand-placed coordinates
// matching the printed seating chart. Positions are not computed from guest
// data; only the set of occupied tables and their guest lists vary between
// reloads.
package venue

import (
	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/i18n"
)

// Canvas dimensions and table marker size, in layout pixels.
const (
	canvasWidth  = 950
	canvasHeight = 1300
	tableSize    = 60
)

type point struct {
	x, y int
}

// tablePositions places tables 1-45 on the floor plan: five rows of dining
// tables at the top, then twelve tables ringing the dance floor.
var tablePositions = map[int]point{
	// Row 1
	1: {158, 126}, 2: {264, 126}, 3: {370, 126}, 4: {476, 126},
	5: {582, 126}, 6: {688, 126}, 7: {794, 126},

	// Row 2
	8: {158, 202}, 9: {264, 202}, 10: {370, 202}, 11: {476, 202},
	12: {582, 202}, 13: {688, 202}, 14: {794, 202},

	// Row 3
	15: {158, 278}, 16: {264, 278}, 17: {370, 278}, 18: {476, 278},
	19: {582, 278}, 20: {688, 278}, 21: {794, 278},

	// Row 4
	22: {158, 354}, 23: {264, 354}, 24: {370, 354}, 25: {476, 354},
	26: {582, 354}, 27: {688, 354}, 28: {794, 354},

	// Row 5 flanks the VIP table and cake area
	29: {158, 430}, 30: {264, 430}, 31: {370, 430}, 32: {688, 430},
	33: {794, 430},

	// Around the dance floor
	34: {264, 826}, 35: {794, 826},
	36: {158, 902}, 37: {688, 902},
	38: {264, 978}, 39: {794, 978},
	40: {158, 1054}, 41: {688, 1054},
	42: {264, 1130}, 43: {794, 1130},
	44: {158, 1206}, 45: {688, 1206},
}

// position returns the placement for a table ID. IDs beyond the charted range
// line up along the bottom edge so unexpected tables still render somewhere.
func position(tableID int) point {
	if p, ok := tablePositions[tableID]; ok {
		return p
	}
	extra := tableID - 45
	return point{x: 400 + extra*80, y: 1250}
}

// fixedElement describes one non-table feature before localization.
type fixedElement struct {
	name    string
	tableID int
	x, y    int
	w, h    int
}

// fixedElements lists the floor plan features in render order. The VIP table
// is a fixed element rather than a regular table; its guests are attached at
// layout build time.
var fixedElements = []fixedElement{
	{name: "stage", x: 475, y: 1275, w: 300, h: 70},
	{name: "brideGroom", x: 875, y: 630, w: 70, h: 100},
	{name: "danceFloor", x: 475, y: 975, w: 300, h: 300},
	{name: "cakeGifts", x: 875, y: 430, w: 70, h: 100},
	{name: "bar", x: 60, y: 660, w: 60, h: 200},
	{name: "vipTable", tableID: domain.VIPTableID, x: 535, y: 430, w: 120, h: 70},
}

// BuildLayout assembles the localized floor plan for a directory. Regular
// tables appear in ingest order with their fixed positions; the VIP table's
// guest list rides on its fixed element. The VIP aggregate never appears in
// the regular tables slice.
func BuildLayout(dir *directory.Directory, locale i18n.Locale) *domain.VenueLayout {
	layout := &domain.VenueLayout{
		Width:  canvasWidth,
		Height: canvasHeight,
	}

	layout.FixedElements = make([]domain.FixedElement, 0, len(fixedElements))
	for _, fe := range fixedElements {
		elem := domain.FixedElement{
			Type:    "rectangle",
			Name:    fe.name,
			TableID: fe.tableID,
			X:       fe.x,
			Y:       fe.y,
			Width:   fe.w,
			Height:  fe.h,
			Label:   i18n.T(locale, fe.name+"-label"),
		}
		if fe.tableID == domain.VIPTableID {
			if vip, ok := dir.Table(domain.VIPTableID); ok {
				elem.Guests = vip.Guests
			}
		}
		layout.FixedElements = append(layout.FixedElements, elem)
	}

	tables := dir.Tables()
	layout.Tables = make([]*domain.VenueTable, 0, len(tables))
	for _, t := range tables {
		if t.ID == domain.VIPTableID {
			continue
		}
		p := position(t.ID)
		layout.Tables = append(layout.Tables, &domain.VenueTable{
			Table: t,
			X:     p.x,
			Y:     p.y,
			Size:  tableSize,
		})
	}

	return layout
}
