package match

// Similarity computes a crude bag-of-characters overlap score in [0, 1].
//
// The longer string (ties: the first argument) is the reference. Every
// character of the shorter string counts as a hit if it occurs anywhere in
// the longer one; repeated characters each count independently. The score is
// hits divided by the longer length.
//
// This is deliberately not Levenshtein or Jaro-Winkler. The downstream
// threshold (0.4) and the recorded scores depend on this exact behavior,
// including the double-counting of repeats.
func Similarity(a, b string) float64 {
	longer, shorter := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	if len(longer) == 0 {
		return 0
	}

	hits := 0
	for _, r := range shorter {
		if containsRune(longer, r) {
			hits++
		}
	}

	return float64(hits) / float64(len(longer))
}

func containsRune(runes []rune, r rune) bool {
	for _, candidate := range runes {
		if candidate == r {
			return true
		}
	}
	return false
}
