// Package match implements the tiered guest name matching pipeline:
// exact equality, then substring containment, then a bag-of-characters
// fuzzy fallback.
package match

import (
	"sort"

	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/domain"
)

// MaxCandidates caps the number of results FindAll returns.
const MaxCandidates = 5

// Matcher answers search queries against a built directory. It is read-only
// and safe for concurrent use.
type Matcher struct {
	dir   *directory.Directory
	tiers []strategy
}

// New creates a matcher over the given directory.
func New(dir *directory.Directory) *Matcher {
	return &Matcher{
		dir:   dir,
		tiers: []strategy{exactStrategy{}, partialStrategy{}, fuzzyStrategy{}},
	}
}

// Find returns the single best candidate for a query on the given side, or
// nil when nothing matches. Tiers run in order and the first tier that
// produces anything wins: the first exact match, else the first partial
// match, else the highest-scoring fuzzy candidate above the threshold (ties
// resolve to the earlier guest in directory order).
func (m *Matcher) Find(query string, side domain.Side) *domain.MatchCandidate {
	query = normalize(query)
	if query == "" {
		return nil
	}

	guests := m.sideGuests(side)

	for _, tier := range m.tiers {
		candidates := tier.Match(query, guests)
		if len(candidates) == 0 {
			continue
		}
		if tier.Tier() == domain.TierFuzzy {
			best := candidates[0]
			for _, c := range candidates[1:] {
				if c.Score > best.Score {
					best = c
				}
			}
			return &best
		}
		return &candidates[0]
	}

	return nil
}

// FindAll returns every candidate for a query across both sides, for
// disambiguation. Exact matches come first in directory order, then partial
// matches (excluding guests already matched exactly). Fuzzy candidates are
// considered only when the combined list is empty, sorted descending by
// score with directory order breaking ties. At most MaxCandidates results
// are returned. The caller applies any side-priority re-sorting.
func (m *Matcher) FindAll(query string) []domain.MatchCandidate {
	query = normalize(query)
	if query == "" {
		return nil
	}

	guests := m.dir.Guests()

	results := exactStrategy{}.Match(query, guests)
	seen := make(map[string]bool, len(results))
	for _, c := range results {
		seen[c.Guest.ID] = true
	}

	partials := partialStrategy{}.Match(query, guests)
	for _, c := range partials {
		if seen[c.Guest.ID] {
			continue
		}
		results = append(results, c)
	}

	if len(results) == 0 {
		results = fuzzyStrategy{}.Match(query, guests)
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}

	if len(results) > MaxCandidates {
		results = results[:MaxCandidates]
	}
	return results
}

// sideGuests filters the directory to the declared side, preserving order.
func (m *Matcher) sideGuests(side domain.Side) []*domain.Guest {
	all := m.dir.Guests()
	out := make([]*domain.Guest, 0, len(all))
	for _, g := range all {
		if g.Side == side {
			out = append(out, g)
		}
	}
	return out
}
