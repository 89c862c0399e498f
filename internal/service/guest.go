// Package service holds the application layer: it resolves matcher output
// into localized display payloads and owns the reload lifecycle.
package service

import (
	"fmt"
	"log/slog"

	"github.com/usherapp/usher-server/internal/domain"
	"github.com/usherapp/usher-server/internal/errors"
	"github.com/usherapp/usher-server/internal/i18n"
)

// GuestResolution is the fully resolved display payload for one guest: who
// they are, where they sit, and who they sit with, localized for the caller.
type GuestResolution struct {
	GuestID        string
	Name           string
	VietnameseName string
	Side           domain.Side
	TableID        int
	TableLabel     string
	Seat           *int
	SeatText       string
	Tablemates     []string
	TablematesNote string
	Tier           domain.MatchTier
	Score          float64
	Notice         string
}

// SearchOutcome is the result of a single-guest search. A miss is a normal
// outcome carrying a localized message, not an error.
type SearchOutcome struct {
	Found          bool
	NoMatchMessage string
	Result         *GuestResolution
}

// MatchSummary is one disambiguation candidate: enough to render a picker row
// and fetch the full resolution by ID afterwards.
type MatchSummary struct {
	GuestID        string
	Name           string
	VietnameseName string
	Side           domain.Side
	TableID        int
	TableLabel     string
	Tier           domain.MatchTier
	Score          float64
}

// GuestService answers guest lookups against the current snapshot.
type GuestService struct {
	holder *Holder
	logger *slog.Logger
}

// NewGuestService creates a guest lookup service.
func NewGuestService(holder *Holder, logger *slog.Logger) *GuestService {
	return &GuestService{holder: holder, logger: logger}
}

// Search finds the single best guest for a query on the declared side and
// resolves their seating. A fuzzy hit carries a localized "closest match"
// notice so the frontend can flag the approximation.
func (s *GuestService) Search(query string, side domain.Side, locale i18n.Locale) (*SearchOutcome, error) {
	snap := s.holder.Get()
	if snap == nil {
		return nil, errors.Unavailable("guest directory not loaded yet")
	}

	candidate := snap.Matcher.Find(query, side)
	if candidate == nil {
		s.logger.Debug("no guest matched", "query", query, "side", side)
		return &SearchOutcome{
			NoMatchMessage: i18n.T(locale, "no-result"),
		}, nil
	}

	resolution := s.resolve(snap, candidate.Guest, locale)
	resolution.Tier = candidate.Tier
	resolution.Score = candidate.Score
	if candidate.Tier == domain.TierFuzzy {
		resolution.Notice = fmt.Sprintf("%s %q", i18n.T(locale, "fuzzy-match"), query)
	}

	return &SearchOutcome{Found: true, Result: resolution}, nil
}

// Matches returns every candidate for a query across both sides, for the
// disambiguation picker. An empty list is a normal result.
func (s *GuestService) Matches(query string, locale i18n.Locale) ([]MatchSummary, error) {
	snap := s.holder.Get()
	if snap == nil {
		return nil, errors.Unavailable("guest directory not loaded yet")
	}

	candidates := snap.Matcher.FindAll(query)
	out := make([]MatchSummary, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, MatchSummary{
			GuestID:        c.Guest.ID,
			Name:           c.Guest.Name,
			VietnameseName: c.Guest.VietnameseName,
			Side:           c.Guest.Side,
			TableID:        c.Guest.TableID,
			TableLabel:     s.tableLabel(snap, c.Guest, locale),
			Tier:           c.Tier,
			Score:          c.Score,
		})
	}
	return out, nil
}

// Resolve fetches the full resolution for a guest picked from a
// disambiguation list.
func (s *GuestService) Resolve(guestID string, locale i18n.Locale) (*GuestResolution, error) {
	snap := s.holder.Get()
	if snap == nil {
		return nil, errors.Unavailable("guest directory not loaded yet")
	}

	guest, ok := snap.Directory.Guest(guestID)
	if !ok {
		return nil, errors.NotFoundf("guest %s not found", guestID)
	}

	return s.resolve(snap, guest, locale), nil
}

// resolve assembles the localized seating payload for a guest.
func (s *GuestService) resolve(snap *Snapshot, guest *domain.Guest, locale i18n.Locale) *GuestResolution {
	res := &GuestResolution{
		GuestID:        guest.ID,
		Name:           guest.Name,
		VietnameseName: guest.VietnameseName,
		Side:           guest.Side,
		TableID:        guest.TableID,
		TableLabel:     s.tableLabel(snap, guest, locale),
		Seat:           guest.Seat,
	}

	if guest.Seat != nil {
		res.SeatText = i18n.SeatNumberText(locale, *guest.Seat)
	}

	mates := snap.Directory.Tablemates(guest)
	res.Tablemates = make([]string, 0, len(mates))
	for _, m := range mates {
		res.Tablemates = append(res.Tablemates, m.Name)
	}
	if len(res.Tablemates) == 0 {
		res.TablematesNote = i18n.T(locale, "no-tablemate")
	}

	return res
}

// tableLabel localizes the VIP aggregate's name; ordinary tables keep their
// ingested or defaulted name.
func (s *GuestService) tableLabel(snap *Snapshot, guest *domain.Guest, locale i18n.Locale) string {
	if guest.IsVIP() {
		return i18n.T(locale, "vip-table")
	}
	return snap.Directory.TableLabel(guest)
}
