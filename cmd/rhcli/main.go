package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-runewidth"

	"rabbithole.dev/anagrams"
)

func main() {

	puzzleFile := flag.String("puzzle", "", "YAML puzzle file (defaults to the reference puzzle)")
	phrase := flag.String("phrase", "", "Override the puzzle phrase")
	maxWords := flag.Int("max-words", 0, "Override the maximum number of words per anagram")
	hash := flag.String("hash", "", "Override the fingerprint: md5 or sha256")
	wordList := flag.String("words", "", "Word list location: file path, http(s) URL or bq://project/dataset/table")
	loadWordsFromCloud := flag.Bool("cloud", false, "Load words from BigQuery")
	project := flag.String("project", os.Getenv("GOOGLE_CLOUD_PROJECT"), "BigQuery project")
	dataset := flag.String("dataset", "words", "BigQuery dataset")
	table := flag.String("table", "wordlist", "BigQuery table")
	credentials := flag.String("credentials", "", "Service account credentials file for BigQuery")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of top-level words searched concurrently")
	printAll := flag.Bool("all", false, "Print every solution found")
	dumpPuzzle := flag.Bool("dump", false, "Print the effective puzzle as YAML and exit")
	verbose := flag.Bool("v", false, "Log search progress")
	timeout := flag.Duration("timeout", 30*time.Minute, "The timeout for the search")

	flag.Parse()

	anagrams.ConfigureLogging(*verbose)

	puzzle := anagrams.DefaultPuzzle()
	if *puzzleFile != "" {
		p, err := anagrams.LoadPuzzle(*puzzleFile)
		if err != nil {
			fmt.Println("Error loading puzzle:", err)
			os.Exit(1)
		}
		puzzle = p
	}
	if *phrase != "" {
		puzzle.Phrase = anagrams.NormalizePhrase(*phrase)
	}
	if *maxWords > 0 {
		puzzle.MaxWords = *maxWords
	}
	if *hash != "" {
		puzzle.Hash = *hash
	}
	if *wordList != "" {
		puzzle.WordList = *wordList
	}
	if err := puzzle.Validate(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if *dumpPuzzle {
		out, err := puzzle.Marshal()
		if err != nil {
			fmt.Println("Error encoding puzzle:", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var words []string
	var err error
	if *loadWordsFromCloud {
		fmt.Println("Loading words from cloud...")
		words, err = anagrams.LoadWordsFromCloud(ctx, anagrams.CloudOptions{
			ProjectID:       *project,
			Dataset:         *dataset,
			Table:           *table,
			MaxLength:       len(puzzle.Phrase),
			CredentialsFile: *credentials,
		})
	} else {
		fmt.Println("Loading words from", puzzle.WordList)
		words, err = anagrams.LoadWords(ctx, puzzle.WordList)
	}
	if err != nil {
		fmt.Println("Error loading words:", err)
		os.Exit(1)
	}
	fmt.Println("Words:", len(words))

	report, err := anagrams.Solve(ctx, puzzle, words, anagrams.SolveOptions{Workers: *workers})
	if err != nil && report == nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Println("--------------------------------")
	if *printAll {
		for _, s := range report.Solutions.Sorted() {
			fmt.Printf("%s  %s\n", s.Fingerprint, s.Text)
		}
		fmt.Println("--------------------------------")
	}
	printResults(report)
	fmt.Printf("Solutions: %d, nodes: %d, elapsed: %s\n", report.Solutions.Len(), report.Stats.Nodes, report.Stats.Elapsed.Round(time.Millisecond))

	if errors.Is(err, context.DeadlineExceeded) {
		fmt.Println("Context error:", err)
		os.Exit(2)
	}
}

func printResults(report *anagrams.Report) {
	width := 0
	for _, res := range report.Results {
		width = max(width, runewidth.StringWidth(res.Target.Label))
	}
	for _, res := range report.Results {
		label := runewidth.FillRight(res.Target.Label, width)
		text := res.Text
		if !res.Found {
			text = "(not found)"
		}
		fmt.Printf("%s = %s\n", label, text)
	}
}
