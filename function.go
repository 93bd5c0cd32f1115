package anagrams

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rabbithole.dev/anagrams/pkg/search"
)

const (
	// FunctionName is the name the HTTP function is registered under.
	FunctionName = "SolveAnagram"

	maxFunctionWords   = 4
	maxFunctionWorkers = 8
	maxFunctionTimeout = 2 * time.Minute
)

func init() {
	functions.HTTP(FunctionName, NewHandler(cachedWords(wordListFromEnv())).ServeHTTP)
}

func wordListFromEnv() string {
	if loc := os.Getenv("ANAGRAM_WORDLIST"); loc != "" {
		return loc
	}
	return DefaultWordListURL
}

// cachedWords loads the word list from location on first use. A failed load is retried on the
// next call.
func cachedWords(location string) func(context.Context) ([]string, error) {
	var (
		mu    sync.Mutex
		words []string
	)
	return func(ctx context.Context) ([]string, error) {
		mu.Lock()
		defer mu.Unlock()
		if words != nil {
			return words, nil
		}
		w, err := LoadWords(ctx, location)
		if err != nil {
			return nil, err
		}
		words = w
		return words, nil
	}
}

// Handler answers anagram searches over HTTP.
//
// Query parameters: phrase (required), max_words (default 3, at most 4), hash (md5 or sha256),
// workers, and any number of target=<fingerprint> values to look up.
type Handler struct {
	Words   func(context.Context) ([]string, error)
	Timeout time.Duration
}

// NewHandler creates a handler that searches the words returned by words.
func NewHandler(words func(context.Context) ([]string, error)) *Handler {
	return &Handler{Words: words, Timeout: maxFunctionTimeout}
}

type solutionJSON struct {
	Fingerprint string `json:"fingerprint"`
	Text        string `json:"text"`
}

type targetJSON struct {
	Fingerprint string `json:"fingerprint"`
	Text        string `json:"text,omitempty"`
	Found       bool   `json:"found"`
}

type responseJSON struct {
	RequestID string         `json:"request_id"`
	Phrase    string         `json:"phrase"`
	MaxWords  int            `json:"max_words"`
	Complete  bool           `json:"complete"`
	Solutions []solutionJSON `json:"solutions"`
	Targets   []targetJSON   `json:"targets,omitempty"`
	Nodes     int64          `json:"nodes"`
	ElapsedMS int64          `json:"elapsed_ms"`
}

type errorJSON struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := log.With().Str("request-id", requestID).Logger()

	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorJSON{RequestID: requestID, Error: "method not allowed"})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{RequestID: requestID, Error: err.Error()})
		return
	}

	p, err := puzzleFromForm(r)
	if err != nil {
		logger.Debug().Err(err).Msg("bad-request")
		writeJSON(w, http.StatusBadRequest, errorJSON{RequestID: requestID, Error: err.Error()})
		return
	}
	workers, err := workersFromForm(r)
	if err != nil {
		logger.Debug().Err(err).Msg("bad-request")
		writeJSON(w, http.StatusBadRequest, errorJSON{RequestID: requestID, Error: err.Error()})
		return
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	words, err := h.Words(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("word-list-unavailable")
		writeJSON(w, http.StatusServiceUnavailable, errorJSON{RequestID: requestID, Error: err.Error()})
		return
	}

	report, err := Solve(ctx, p, words, SolveOptions{Workers: workers})
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("solve-failed")
		writeJSON(w, http.StatusInternalServerError, errorJSON{RequestID: requestID, Error: err.Error()})
		return
	}

	resp := responseJSON{
		RequestID: requestID,
		Phrase:    p.Phrase,
		MaxWords:  p.MaxWords,
		Complete:  err == nil,
		Solutions: toSolutionsJSON(report.Solutions.Sorted()),
		Nodes:     report.Stats.Nodes,
		ElapsedMS: report.Stats.Elapsed.Milliseconds(),
	}
	for _, res := range report.Results {
		resp.Targets = append(resp.Targets, targetJSON{Fingerprint: res.Target.Fingerprint, Text: res.Text, Found: res.Found})
	}
	logger.Info().Str("phrase", p.Phrase).Int("solutions", len(resp.Solutions)).Bool("complete", resp.Complete).Msg("request-done")
	writeJSON(w, http.StatusOK, resp)
}

func puzzleFromForm(r *http.Request) (Puzzle, error) {
	p := Puzzle{
		Phrase:   NormalizePhrase(r.Form.Get("phrase")),
		MaxWords: search.DefaultMaxWords,
		Hash:     r.Form.Get("hash"),
	}
	if v := r.Form.Get("max_words"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Puzzle{}, errors.New("max_words must be an integer")
		}
		p.MaxWords = n
	}
	if p.MaxWords > maxFunctionWords {
		return Puzzle{}, errors.New("max_words is limited to " + strconv.Itoa(maxFunctionWords))
	}
	for _, fp := range r.Form["target"] {
		p.Targets = append(p.Targets, Target{Fingerprint: fp})
	}
	return p, p.Validate()
}

func workersFromForm(r *http.Request) (int, error) {
	v := r.Form.Get("workers")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("workers must be an integer")
	}
	if n < 0 || n > maxFunctionWorkers {
		return 0, errors.New("workers must be between 0 and " + strconv.Itoa(maxFunctionWorkers))
	}
	return n, nil
}

func toSolutionsJSON(solutions []search.Solution) []solutionJSON {
	out := make([]solutionJSON, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, solutionJSON{Fingerprint: s.Fingerprint, Text: s.Text})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("writing-response")
	}
}
