package anagrams

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ErrWordList is wrapped by every failure to obtain a word list.
var ErrWordList = errors.New("word list unavailable")

// ReadWords reads one word per line, trimming surrounding whitespace and lowercasing each word.
// Blank lines are skipped; duplicates and order are kept.
func ReadWords(r io.Reader) ([]string, error) {
	lower := cases.Lower(language.Und)

	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		word := strings.TrimSpace(s.Text())
		if word == "" {
			continue
		}
		words = append(words, lower.String(word))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordList, err)
	}
	return words, nil
}

func readMaybeGzip(r io.Reader, gzipped bool) ([]string, error) {
	if !gzipped {
		return ReadWords(r)
	}
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordList, err)
	}
	defer zr.Close()
	return ReadWords(zr)
}

// LoadWordsFromFile reads a word list from path. Files ending in ".gz" are decompressed.
func LoadWordsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordList, err)
	}
	defer f.Close()
	return readMaybeGzip(f, strings.HasSuffix(path, ".gz"))
}

// LoadWordsFromURL downloads a word list. URLs ending in ".gz" are decompressed.
func LoadWordsFromURL(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordList, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: downloading %s: %w", ErrWordList, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: downloading %s: %s", ErrWordList, url, resp.Status)
	}
	return readMaybeGzip(resp.Body, strings.HasSuffix(url, ".gz"))
}

// CloudOptions selects the BigQuery table that holds the word list.
type CloudOptions struct {
	ProjectID       string
	Dataset         string
	Table           string
	Column          string // defaults to "word"
	MaxLength       int    // words longer than this are not fetched; 0 fetches all
	CredentialsFile string
}

type wordRow struct {
	Word string `bigquery:"word"`
}

// LoadWordsFromCloud reads the word list from a BigQuery table.
func LoadWordsFromCloud(ctx context.Context, opts CloudOptions) ([]string, error) {
	if opts.ProjectID == "" || opts.Dataset == "" || opts.Table == "" {
		return nil, fmt.Errorf("%w: project, dataset and table are required", ErrWordList)
	}
	column := opts.Column
	if column == "" {
		column = "word"
	}

	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	client, err := bigquery.NewClient(ctx, opts.ProjectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: creating bigquery client: %w", ErrWordList, err)
	}
	defer client.Close()

	sql := fmt.Sprintf("SELECT LOWER(`%s`) AS word FROM `%s.%s.%s`", column, opts.ProjectID, opts.Dataset, opts.Table)
	var params []bigquery.QueryParameter
	if opts.MaxLength > 0 {
		sql += fmt.Sprintf(" WHERE CHAR_LENGTH(`%s`) <= @maxlen", column)
		params = append(params, bigquery.QueryParameter{Name: "maxlen", Value: opts.MaxLength})
	}
	q := client.Query(sql)
	q.Parameters = params

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: querying words: %w", ErrWordList, err)
	}
	var words []string
	for {
		var row wordRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading words: %w", ErrWordList, err)
		}
		if row.Word != "" {
			words = append(words, row.Word)
		}
	}
	return words, nil
}

// LoadWords loads a word list from location: an http(s) URL, a "bq://project/dataset/table"
// reference, or a local file path.
func LoadWords(ctx context.Context, location string) ([]string, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return LoadWordsFromURL(ctx, location)
	case strings.HasPrefix(location, "bq://"):
		opts, err := ParseCloudLocation(location)
		if err != nil {
			return nil, err
		}
		return LoadWordsFromCloud(ctx, opts)
	case location == "":
		return nil, fmt.Errorf("%w: no location given", ErrWordList)
	default:
		return LoadWordsFromFile(location)
	}
}

// ParseCloudLocation parses "bq://project/dataset/table".
func ParseCloudLocation(location string) (CloudOptions, error) {
	parts := strings.Split(strings.TrimPrefix(location, "bq://"), "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return CloudOptions{}, fmt.Errorf("%w: bad bigquery location %q, want bq://project/dataset/table", ErrWordList, location)
	}
	return CloudOptions{ProjectID: parts[0], Dataset: parts[1], Table: parts[2]}, nil
}
