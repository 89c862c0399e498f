// Package domain contains the core entities for the wedding seating service.
package domain

import "strings"

// Side is a guest's declared affiliation: bride or groom.
type Side string

// Guest affiliations.
const (
	SideBride Side = "bride"
	SideGroom Side = "groom"
)

// ParseSide normalizes a raw side value. Blank or unrecognized values
// default to the bride's side, matching the source guest list convention.
func ParseSide(raw string) Side {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SideGroom):
		return SideGroom
	default:
		return SideBride
	}
}

// Valid reports whether the side is one of the two known values.
func (s Side) Valid() bool {
	return s == SideBride || s == SideGroom
}

// Guest is a single entry from the guest list. Guests are immutable after
// directory construction; all lookups are read-only.
type Guest struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required"`
	VietnameseName string `json:"vietnamese_name,omitempty"`
	TableID        int    `json:"table_id" validate:"gte=1"`
	Seat           *int   `json:"seat,omitempty"`
	Side           Side   `json:"side" validate:"oneof=bride groom"`
}

// IsVIP reports whether the guest sits at the VIP aggregate table.
// The table ID is definitive; no denormalized flag is consulted.
func (g *Guest) IsVIP() bool {
	return g.TableID == VIPTableID
}

// DisplayNames returns the guest's searchable names: the primary name and,
// when present, the Vietnamese name.
func (g *Guest) DisplayNames() []string {
	if g.VietnameseName == "" {
		return []string{g.Name}
	}
	return []string{g.Name, g.VietnameseName}
}

// MatchTier identifies which matching strategy produced a candidate.
type MatchTier string

// Matching tiers, in precedence order.
const (
	TierExact   MatchTier = "exact"
	TierPartial MatchTier = "partial"
	TierFuzzy   MatchTier = "fuzzy"
)

// MatchCandidate is a guest annotated with how it was matched. Score is only
// meaningful for fuzzy candidates; exact and partial matches leave it at zero.
type MatchCandidate struct {
	Guest *Guest
	Tier  MatchTier
	Score float64
}
