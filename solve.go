package anagrams

import (
	"context"

	"github.com/rs/zerolog/log"

	"rabbithole.dev/anagrams/pkg/fingerprint"
	"rabbithole.dev/anagrams/pkg/search"
)

// SolveOptions tunes how a puzzle is searched.
type SolveOptions struct {
	Workers int
}

// Result is the lookup of one target in a finished search.
type Result struct {
	Target Target
	Text   string
	Found  bool
}

// Report is the outcome of Solve.
type Report struct {
	Puzzle    Puzzle
	Solutions *search.SolutionSet
	Results   []Result
	Stats     search.Stats
}

// Found returns the number of targets that were resolved.
func (r *Report) Found() int {
	n := 0
	for _, res := range r.Results {
		if res.Found {
			n++
		}
	}
	return n
}

// Solve searches words for anagrams of the puzzle's phrase and resolves each target.
//
// When ctx is cancelled the report covers what was found so far and the context error is
// returned alongside it.
func Solve(ctx context.Context, p Puzzle, words []string, opts SolveOptions) (*Report, error) {
	p.Phrase = NormalizePhrase(p.Phrase)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	fp, err := fingerprint.ByName(p.Hash)
	if err != nil {
		return nil, err
	}

	searcher := search.NewSearcher(p.Phrase, search.Options{
		MaxWords:    p.MaxWords,
		Workers:     opts.Workers,
		Fingerprint: fp,
	})
	solutions := search.NewSolutionSet()
	searchErr := searcher.Into(ctx, words, solutions)

	report := &Report{Puzzle: p, Solutions: solutions, Stats: searcher.Stats()}
	for _, t := range p.Targets {
		text, ok := solutions.Lookup(t.Fingerprint)
		report.Results = append(report.Results, Result{Target: t, Text: text, Found: ok})
	}

	log.Info().
		Str("phrase", p.Phrase).
		Int("solutions", solutions.Len()).
		Int("targets-found", report.Found()).
		Int("targets", len(p.Targets)).
		Dur("elapsed", report.Stats.Elapsed).
		Msg("puzzle-solved")
	return report, searchErr
}
