package search

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSolutionSet(t *testing.T) {
	s := NewSolutionSet()
	s.Record("b", "second")
	s.Record("a", "first")
	s.Record("b", "second")

	assert.Equal(t, 2, s.Len())
	text, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "first", text)
	_, ok = s.Lookup("missing")
	assert.False(t, ok)

	want := []Solution{{"b", "second"}, {"a", "first"}}
	if diff := cmp.Diff(want, s.Solutions()); diff != "" {
		t.Errorf("Solutions() mismatch (-want +got):\n%s", diff)
	}
	wantSorted := []Solution{{"a", "first"}, {"b", "second"}}
	if diff := cmp.Diff(wantSorted, s.Sorted()); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestSolutionSetMapIsACopy(t *testing.T) {
	s := NewSolutionSet()
	s.Record("a", "first")
	m := s.Map()
	m["z"] = "injected"
	assert.Equal(t, 1, s.Len())
}

func TestSolutionSetConcurrentRecord(t *testing.T) {
	s := NewSolutionSet()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				// Every writer records the same keys with the same text.
				s.Record(fmt.Sprint(i), fmt.Sprintf("text %d", i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, s.Len())
	text, _ := s.Lookup("42")
	assert.Equal(t, "text 42", text)
}
