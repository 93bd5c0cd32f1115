package primitives

import "unicode/utf8"

// Candidate is a dictionary word together with its precomputed letter counts.
type Candidate struct {
	Word    string
	Letters LetterBag
	set     CharSet
	runes   int
}

// NewCandidate precomputes the letter bag and letter set of word.
func NewCandidate(word string) *Candidate {
	return &Candidate{
		Word:    word,
		Letters: NewLetterBag(word),
		set:     CharSetOf(word),
		runes:   utf8.RuneCountInString(word),
	}
}

// Len returns the number of runes in the word, spaces included.
func (c *Candidate) Len() int {
	return c.runes
}

// spendable reports whether every rune of the word can be taken from a bag. Letter bags never
// hold spaces, so a word containing one is never spendable.
func (c *Candidate) spendable() bool {
	return c.runes > 0 && c.runes == c.Letters.Len()
}

// NewCandidates builds candidates from words, preserving order and dropping empty words.
//
// With dedupe set, only the first occurrence of each word is kept.
func NewCandidates(words []string, dedupe bool) []*Candidate {
	var seen map[string]struct{}
	if dedupe {
		seen = make(map[string]struct{}, len(words))
	}
	candidates := make([]*Candidate, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if dedupe {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
		}
		candidates = append(candidates, NewCandidate(word))
	}
	return candidates
}

// ReduceCandidates returns the candidates, in their original order, whose letters can all be
// spent against remaining.
//
// The input slice is never modified. When every candidate fits, the input slice itself is
// returned, so callers must treat the result as read-only too.
func ReduceCandidates(candidates []*Candidate, remaining LetterBag) []*Candidate {
	available := remaining.CharSet()

	var reduced []*Candidate
	changed := false
	for idx, c := range candidates {
		// Cheap length check first, then the letter mask, then the full count comparison.
		keep := c.Len() <= remaining.Len() && c.spendable() &&
			available.ContainsAll(&c.set) && remaining.Contains(c.Letters)

		if !keep && !changed {
			// This is the first rejection, so start building 'reduced' from what was kept so far.
			changed = true
			reduced = make([]*Candidate, idx, len(candidates)-1)
			copy(reduced, candidates[:idx])
		}
		if keep && changed {
			reduced = append(reduced, c)
		}
	}
	if !changed {
		return candidates
	}
	return reduced
}

// Reduce filters candidates down to the words whose letters are all contained in phrase,
// respecting multiplicity, in their original relative order.
//
// Words longer than phrase are dropped before any letter is compared. When dedupe is set a word
// already kept is skipped; this is only needed on the first, root-level call.
func Reduce(candidates []string, phrase string, dedupe bool) []string {
	reduced := ReduceCandidates(NewCandidates(candidates, dedupe), NewLetterBag(phrase))
	words := make([]string, 0, len(reduced))
	for _, c := range reduced {
		words = append(words, c.Word)
	}
	return words
}
