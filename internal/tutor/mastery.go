package tutor

// UpdateMastery returns a copy of mastery with each studied concept raised
// by delta from its current score (or DefaultMastery), clamped to [0, 1].
// The input map is not modified.
func UpdateMastery(mastery map[string]float64, studied []string, delta float64) map[string]float64 {
	updated := copyMastery(mastery)
	for _, c := range studied {
		current, ok := updated[c]
		if !ok {
			current = DefaultMastery
		}
		updated[c] = clamp(current+delta, 0, 1)
	}
	return updated
}

// SeedMastery returns a copy of mastery in which every concept has a score,
// defaulting absent ones to DefaultMastery.
func SeedMastery(mastery map[string]float64, concepts []string) map[string]float64 {
	seeded := copyMastery(mastery)
	for _, c := range concepts {
		if _, ok := seeded[c]; !ok {
			seeded[c] = DefaultMastery
		}
	}
	return seeded
}

func copyMastery(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
