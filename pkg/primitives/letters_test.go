package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsAnagram(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"trustpilot", "toliptsurt", true},
		{"trustpilot", "somethingelse", false},
		{"trustpilot", "to lip tsurt", true},
		{"poultryoutwitsants", "printout stout yawls", true},
		{"aab", "abb", false},
		{"abc", "abcd", false},
		{"", "", true},
		{"   ", "", true},
		{"Abc", "abc", false},
		{"it's", "s'ti", true},
	}
	for _, tt := range tests {
		if got := IsAnagram(tt.a, tt.b); got != tt.want {
			t.Errorf("IsAnagram(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := IsAnagram(tt.b, tt.a); got != tt.want {
			t.Errorf("IsAnagram(%q, %q) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestIsAnagramReflexive(t *testing.T) {
	for _, s := range []string{"trustpilot", "a b c", "printout stout yawls", "zz"} {
		if !IsAnagram(s, s) {
			t.Errorf("IsAnagram(%q, %q) = false", s, s)
		}
	}
}

func TestSubtractWord(t *testing.T) {
	tests := []struct {
		remaining, word, want string
	}{
		{"myphrase", "phrase", "my"},
		{"dlkgnveidsn", "king", "dlvedsn"},
		{"poultryoutwitsants", "printout", "lyouwtsats"},
		{"aabb", "ab", "ab"},
		// Letters that are not present are skipped.
		{"abc", "abz", "c"},
		{"abc", "", "abc"},
	}
	for _, tt := range tests {
		got := SubtractWord(tt.remaining, tt.word)
		if got != tt.want {
			t.Errorf("SubtractWord(%q, %q) = %q, want %q", tt.remaining, tt.word, got, tt.want)
		}
	}

	if got := SubtractWord("myphrase", "phrase"); got == "phrase" {
		t.Errorf("SubtractWord(%q, %q) returned the subtracted word", "myphrase", "phrase")
	}
}

func TestReduce(t *testing.T) {
	words := []string{"this", "this", "is", "a", "unit", "test"}

	got := Reduce(words, "tsettniu", true)
	want := []string{"is", "unit", "test"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceKeepsDuplicatesWithoutDedupe(t *testing.T) {
	words := []string{"unit", "test", "unit", "toolong", "tent"}

	got := Reduce(words, "tsettniu", false)
	want := []string{"unit", "test", "unit", "tent"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceRespectsMultiplicity(t *testing.T) {
	// "tt" fits in "test", "ttt" does not.
	got := Reduce([]string{"ttt", "tt", "set", "sett", "", "x"}, "test", true)
	want := []string{"tt", "set", "sett"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceRejectsWordsWithSpaces(t *testing.T) {
	got := Reduce([]string{"printout stout", "yawls", "out wit"}, "poultryoutwitsants", true)
	want := []string{"yawls"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reduce() mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidateLenCountsSpaces(t *testing.T) {
	if got := NewCandidate("printout stout").Len(); got != 14 {
		t.Errorf("Len() = %d, want 14", got)
	}
}

func TestReduceEmptyInput(t *testing.T) {
	if got := Reduce(nil, "abc", true); len(got) != 0 {
		t.Errorf("Reduce(nil) = %v, want empty", got)
	}
	if got := Reduce([]string{"a", "b"}, "", true); len(got) != 0 {
		t.Errorf("Reduce() against empty phrase = %v, want empty", got)
	}
}

func TestReduceCandidatesDoesNotModifyInput(t *testing.T) {
	candidates := NewCandidates([]string{"stout", "yawls", "printout"}, true)
	before := make([]*Candidate, len(candidates))
	copy(before, candidates)

	reduced := ReduceCandidates(candidates, NewLetterBag("stoutyawls"))

	if diff := cmp.Diff([]string{"stout", "yawls"}, wordsOf(reduced)); diff != "" {
		t.Errorf("ReduceCandidates() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wordsOf(before), wordsOf(candidates)); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func wordsOf(candidates []*Candidate) []string {
	words := make([]string, 0, len(candidates))
	for _, c := range candidates {
		words = append(words, c.Word)
	}
	return words
}

func TestReduceCandidatesAllFit(t *testing.T) {
	candidates := NewCandidates([]string{"stout", "yawls", "stout"}, false)
	reduced := ReduceCandidates(candidates, NewLetterBag("poultryoutwitsants"))
	if len(reduced) != 3 || &reduced[0] != &candidates[0] {
		t.Errorf("ReduceCandidates() = %v, want the input slice back", reduced)
	}
}
