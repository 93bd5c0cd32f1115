package search

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Sink receives every combination that completes the phrase, together with its fingerprint.
//
// Record may be called from several goroutines when a search fans out.
type Sink interface {
	Record(fingerprint, text string)
}

// Solution is a single matched combination.
type Solution struct {
	Fingerprint string
	Text        string
}

// SolutionSet maps fingerprints to solution text. It is safe for concurrent use.
//
// Recording the same fingerprint twice overwrites the text; the position of a fingerprint in
// Solutions is the position of its first Record.
type SolutionSet struct {
	mu            sync.RWMutex
	byFingerprint map[string]string
	order         []string
}

// NewSolutionSet creates an empty set.
func NewSolutionSet() *SolutionSet {
	return &SolutionSet{byFingerprint: make(map[string]string)}
}

// Record implements Sink.
func (s *SolutionSet) Record(fingerprint, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byFingerprint[fingerprint]; !ok {
		s.order = append(s.order, fingerprint)
	}
	s.byFingerprint[fingerprint] = text
}

// Lookup returns the text recorded under fingerprint.
func (s *SolutionSet) Lookup(fingerprint string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.byFingerprint[fingerprint]
	return text, ok
}

// Len returns the number of distinct fingerprints recorded.
func (s *SolutionSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byFingerprint)
}

// Solutions returns the recorded solutions in discovery order.
func (s *SolutionSet) Solutions() []Solution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Solution, 0, len(s.order))
	for _, fp := range s.order {
		out = append(out, Solution{Fingerprint: fp, Text: s.byFingerprint[fp]})
	}
	return out
}

// Sorted returns the recorded solutions ordered by text, then fingerprint.
func (s *SolutionSet) Sorted() []Solution {
	out := s.Solutions()
	slices.SortFunc(out, func(a, b Solution) int {
		return cmp.Or(strings.Compare(a.Text, b.Text), strings.Compare(a.Fingerprint, b.Fingerprint))
	})
	return out
}

// Map returns a copy of the fingerprint to text mapping.
func (s *SolutionSet) Map() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.byFingerprint)
}
