// Package search finds combinations of dictionary words whose letters form an exact anagram of a
// phrase.
//
// The search is a depth-first walk of word combinations. At every level the word list is reduced
// to the words that still fit in the letters left, so branches die out quickly as the remaining
// letters shrink. The depth is bounded by a maximum word count.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rabbithole.dev/anagrams/pkg/fingerprint"
	"rabbithole.dev/anagrams/pkg/primitives"
)

// DefaultMaxWords is the word limit of the reference puzzle.
const DefaultMaxWords = 3

// Options configures a search.
type Options struct {
	// MaxWords bounds the number of words in a combination. Values below 1 find nothing.
	MaxWords int

	// Workers is the number of top-level words explored concurrently. 0 or 1 searches on the
	// calling goroutine, in word order.
	Workers int

	// Fingerprint keys each solution. Defaults to fingerprint.MD5.
	Fingerprint fingerprint.Func
}

// Stats counts the work done by a search.
type Stats struct {
	Nodes      int64
	Reductions int64
	Solutions  int64
	Elapsed    time.Duration
}

// Searcher searches for anagrams of a single phrase.
type Searcher struct {
	phrase      string
	letters     primitives.LetterBag
	maxWords    int
	workers     int
	fingerprint fingerprint.Func

	nodes      atomic.Int64
	reductions atomic.Int64
	solutions  atomic.Int64
	elapsed    atomic.Int64 // nanoseconds
}

// NewSearcher prepares a search for phrase. The phrase must already be lowercase; spaces in it
// are ignored.
func NewSearcher(phrase string, opts Options) *Searcher {
	fp := opts.Fingerprint
	if fp == nil {
		fp = fingerprint.MD5
	}
	return &Searcher{
		phrase:      phrase,
		letters:     primitives.NewLetterBag(phrase),
		maxWords:    opts.MaxWords,
		workers:     opts.Workers,
		fingerprint: fp,
	}
}

// Stats returns the counters of the last run. It may be called while Into is running.
func (s *Searcher) Stats() Stats {
	return Stats{
		Nodes:      s.nodes.Load(),
		Reductions: s.reductions.Load(),
		Solutions:  s.solutions.Load(),
		Elapsed:    time.Duration(s.elapsed.Load()),
	}
}

// Into searches words and records every solution into sink.
//
// words must already be lowercase. They are deduplicated once here; order decides the order in
// which solutions are found, not which ones are found. The only error returned is the context's,
// in which case sink holds whatever was found before cancellation.
func (s *Searcher) Into(ctx context.Context, words []string, sink Sink) error {
	s.nodes.Store(0)
	s.reductions.Store(0)
	s.solutions.Store(0)
	start := time.Now()
	s.elapsed.Store(0)
	defer func() { s.elapsed.Store(int64(time.Since(start))) }()

	if s.maxWords < 1 || s.letters.Empty() {
		return nil
	}

	root := primitives.ReduceCandidates(primitives.NewCandidates(words, true), s.letters)
	s.reductions.Add(1)
	letters := s.letters.CharSet()
	log.Debug().
		Str("phrase", s.phrase).
		Str("letters", letters.String()).
		Int("distinct-letters", letters.Count()).
		Int("words", len(words)).
		Int("candidates", len(root)).
		Int("max-words", s.maxWords).
		Msg("search-start")

	var err error
	if s.workers > 1 {
		err = s.fanOut(ctx, root, sink)
	} else {
		err = s.dive(ctx, root, s.letters, nil, sink)
	}

	log.Debug().
		Int64("nodes", s.nodes.Load()).
		Int64("solutions", s.solutions.Load()).
		Dur("elapsed", time.Since(start)).
		AnErr("err", err).
		Msg("search-done")
	return err
}

// fanOut explores each top-level word in its own goroutine. The subtrees are independent; they
// only share the sink.
func (s *Searcher) fanOut(ctx context.Context, root []*primitives.Candidate, sink Sink) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, w := range root {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log.Debug().Str("word", w.Word).Msg("top-level-word")
			return s.try(gctx, root, w, s.letters, nil, sink)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// dive walks one level of the combination tree, extending soFar with each candidate in turn.
func (s *Searcher) dive(ctx context.Context, candidates []*primitives.Candidate, lettersLeft primitives.LetterBag, soFar primitives.Combination, sink Sink) error {
	for _, w := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		if soFar.Depth() == 0 {
			log.Debug().Str("word", w.Word).Msg("top-level-word")
		}
		if err := s.try(ctx, candidates, w, lettersLeft, soFar, sink); err != nil {
			return err
		}
	}
	return nil
}

// try extends soFar with w. candidates is the word list of w's level; the next level is reduced
// from it.
func (s *Searcher) try(ctx context.Context, candidates []*primitives.Candidate, w *primitives.Candidate, lettersLeft primitives.LetterBag, soFar primitives.Combination, sink Sink) error {
	s.nodes.Add(1)
	combination := soFar.With(w.Word)

	// Every word on the path was reduced against the letters left at its level, so the
	// combination is an anagram of the phrase exactly when w uses up all the letters left.
	if lettersLeft.Equal(w.Letters) {
		text := combination.String()
		sink.Record(s.fingerprint(text), text)
		s.solutions.Add(1)
		return nil
	}
	if combination.Depth() >= s.maxWords {
		return nil
	}

	adjusted := lettersLeft.Minus(w.Letters)
	if adjusted.Empty() {
		return nil
	}
	next := primitives.ReduceCandidates(candidates, adjusted)
	s.reductions.Add(1)
	if len(next) == 0 {
		return nil
	}
	return s.dive(ctx, next, adjusted, combination, sink)
}

// Search finds every combination of at most opts.MaxWords words whose letters are an exact
// anagram of phrase.
func Search(ctx context.Context, words []string, phrase string, opts Options) (*SolutionSet, error) {
	solutions := NewSolutionSet()
	err := NewSearcher(phrase, opts).Into(ctx, words, solutions)
	return solutions, err
}

// Anagrams runs a single-threaded search to completion and returns fingerprint to text, using
// MD5 fingerprints.
func Anagrams(words []string, phrase string, maxWords int) map[string]string {
	solutions, _ := Search(context.Background(), words, phrase, Options{MaxWords: maxWords})
	return solutions.Map()
}
