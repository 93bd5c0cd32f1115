package anagrams

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"rabbithole.dev/anagrams/pkg/fingerprint"
	"rabbithole.dev/anagrams/pkg/search"
)

// ErrInvalidPuzzle is wrapped by every puzzle validation failure.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

// Target is a known answer, identified only by its fingerprint.
type Target struct {
	Label       string `yaml:"label"`
	Fingerprint string `yaml:"fingerprint"`
}

// Puzzle describes a phrase to hunt anagrams for and the answers worth looking up.
type Puzzle struct {
	Phrase   string   `yaml:"phrase"`
	MaxWords int      `yaml:"max_words"`
	WordList string   `yaml:"word_list,omitempty"`
	Hash     string   `yaml:"hash,omitempty"`
	Targets  []Target `yaml:"targets,omitempty"`
}

// DefaultWordListURL is where the reference puzzle's word list is published.
const DefaultWordListURL = "https://followthewhiterabbit.trustpilot.com/cs/wordlist"

// DefaultPuzzle returns the reference puzzle.
func DefaultPuzzle() Puzzle {
	return Puzzle{
		Phrase:   "poultryoutwitsants",
		MaxWords: search.DefaultMaxWords,
		WordList: DefaultWordListURL,
		Hash:     "md5",
		Targets: []Target{
			{Label: "Easy", Fingerprint: "e4820b45d2277f3844eac66c903e84be"},
			{Label: "Medium", Fingerprint: "23170acc097c24edb98fc5488ab033fe"},
			{Label: "Hardest", Fingerprint: "665e5bcb0c20062fe8abaaf4628bb154"},
		},
	}
}

// ParsePuzzle decodes a YAML puzzle. Missing fields take their value from DefaultPuzzle, except
// targets, which are only looked up when listed.
func ParsePuzzle(data []byte) (Puzzle, error) {
	def := DefaultPuzzle()
	p := Puzzle{MaxWords: def.MaxWords, WordList: def.WordList, Hash: def.Hash}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Puzzle{}, fmt.Errorf("%w: %w", ErrInvalidPuzzle, err)
	}
	p.Phrase = NormalizePhrase(p.Phrase)
	if err := p.Validate(); err != nil {
		return Puzzle{}, err
	}
	return p, nil
}

// LoadPuzzle reads a YAML puzzle file.
func LoadPuzzle(path string) (Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading puzzle: %w", err)
	}
	return ParsePuzzle(data)
}

// Marshal encodes the puzzle as YAML.
func (p Puzzle) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Validate checks that the puzzle can be searched.
func (p Puzzle) Validate() error {
	if strings.TrimSpace(p.Phrase) == "" {
		return fmt.Errorf("%w: phrase is empty", ErrInvalidPuzzle)
	}
	if p.MaxWords < 1 {
		return fmt.Errorf("%w: max_words must be at least 1, got %d", ErrInvalidPuzzle, p.MaxWords)
	}
	if _, err := fingerprint.ByName(p.Hash); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPuzzle, err)
	}
	for i, t := range p.Targets {
		if t.Fingerprint == "" {
			return fmt.Errorf("%w: target %d (%s) has no fingerprint", ErrInvalidPuzzle, i, t.Label)
		}
	}
	return nil
}

// NormalizePhrase trims and lowercases a phrase the same way word lists are lowercased, since the
// search itself does no case folding.
func NormalizePhrase(phrase string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(phrase))
}
