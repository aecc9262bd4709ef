package hardware

import "strings"

// tokenOverlapThreshold is the fraction of a candidate's name tokens that
// must appear in the input text before token overlap counts as a match.
const tokenOverlapThreshold = 0.6

// candidate is the precomputed match form of one catalog entry.
type candidate struct {
	strippedID string
	tokens     []string
	score      float64
}

func newCandidate(id, name string, score float64) candidate {
	var tokens []string
	for _, t := range strings.Fields(Normalize(name)) {
		if len(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	return candidate{
		strippedID: stripAlnum(strings.ToLower(id)),
		tokens:     tokens,
		score:      score,
	}
}

// MatchCPU resolves free-form requirement text ("Intel Core i5-8400",
// "i5 8400 or better") to the best-matching catalog CPU, or nil when nothing
// matches. Absence of a match is an expected outcome, not an error.
func (s *Store) MatchCPU(text string) *CPU {
	if i := bestMatch(text, s.cpuCands); i >= 0 {
		return &s.cpus[i]
	}
	return nil
}

// MatchGPU resolves free-form requirement text to the best-matching catalog
// GPU, or nil when nothing matches.
func (s *Store) MatchGPU(text string) *GPU {
	if i := bestMatch(text, s.gpuCands); i >= 0 {
		return &s.gpus[i]
	}
	return nil
}

// bestMatch returns the index of the strongest candidate match, or -1.
//
// Two signals feed one shared strength tracker:
//   - stripped-id containment, strength = id length, so longer and more
//     specific identifiers outrank shorter ones;
//   - name-token overlap, strength = matched token count, gated on the input
//     covering more than tokenOverlapThreshold of the name's tokens.
//
// Equal strength is broken in favor of the higher benchmark score rather than
// catalog order.
func bestMatch(text string, cands []candidate) int {
	norm := Normalize(text)
	if norm == "" {
		return -1
	}
	stripped := stripAlnum(norm)

	best := -1
	bestStrength := 0
	take := func(i, strength int) {
		if strength > bestStrength ||
			(strength == bestStrength && best >= 0 && cands[i].score > cands[best].score) {
			best = i
			bestStrength = strength
		}
	}

	for i := range cands {
		c := &cands[i]
		if c.strippedID != "" && strings.Contains(stripped, c.strippedID) {
			take(i, len(c.strippedID))
		}
		if len(c.tokens) == 0 {
			continue
		}
		matched := 0
		for _, t := range c.tokens {
			if strings.Contains(norm, t) {
				matched++
			}
		}
		if matched >= bestStrength && matched > 0 &&
			float64(matched)/float64(len(c.tokens)) > tokenOverlapThreshold {
			take(i, matched)
		}
	}
	return best
}
