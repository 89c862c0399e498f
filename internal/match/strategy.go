package match

import (
	"strings"

	"github.com/usherapp/usher-server/internal/domain"
)

// fuzzyThreshold is the minimum similarity score for a fuzzy candidate.
// Scores at or below it are discarded.
const fuzzyThreshold = 0.4

// strategy is one tier of the matching pipeline. Each tier returns every
// candidate it accepts, in directory scan order; the pipeline decides how to
// combine and short-circuit tiers.
type strategy interface {
	Tier() domain.MatchTier
	Match(query string, guests []*domain.Guest) []domain.MatchCandidate
}

// exactStrategy matches on case-insensitive trimmed equality against the
// primary or Vietnamese name.
type exactStrategy struct{}

func (exactStrategy) Tier() domain.MatchTier { return domain.TierExact }

func (exactStrategy) Match(query string, guests []*domain.Guest) []domain.MatchCandidate {
	var out []domain.MatchCandidate
	for _, g := range guests {
		for _, name := range g.DisplayNames() {
			if normalize(name) == query {
				out = append(out, domain.MatchCandidate{Guest: g, Tier: domain.TierExact})
				break
			}
		}
	}
	return out
}

// partialStrategy matches when either string contains the other, against the
// primary or Vietnamese name.
type partialStrategy struct{}

func (partialStrategy) Tier() domain.MatchTier { return domain.TierPartial }

func (partialStrategy) Match(query string, guests []*domain.Guest) []domain.MatchCandidate {
	var out []domain.MatchCandidate
	for _, g := range guests {
		for _, name := range g.DisplayNames() {
			normalized := normalize(name)
			if strings.Contains(normalized, query) || strings.Contains(query, normalized) {
				out = append(out, domain.MatchCandidate{Guest: g, Tier: domain.TierPartial})
				break
			}
		}
	}
	return out
}

// fuzzyStrategy scores every guest with the bag-of-characters similarity,
// keeping the better of the two names, and accepts scores above the threshold.
type fuzzyStrategy struct{}

func (fuzzyStrategy) Tier() domain.MatchTier { return domain.TierFuzzy }

func (fuzzyStrategy) Match(query string, guests []*domain.Guest) []domain.MatchCandidate {
	var out []domain.MatchCandidate
	for _, g := range guests {
		score := bestScore(query, g)
		if score > fuzzyThreshold {
			out = append(out, domain.MatchCandidate{Guest: g, Tier: domain.TierFuzzy, Score: score})
		}
	}
	return out
}

// bestScore returns the better similarity of the query against the guest's
// primary and Vietnamese names.
func bestScore(query string, g *domain.Guest) float64 {
	score := Similarity(query, normalize(g.Name))
	if g.VietnameseName != "" {
		if vn := Similarity(query, normalize(g.VietnameseName)); vn > score {
			score = vn
		}
	}
	return score
}

// normalize lowercases and trims a name or query for comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
