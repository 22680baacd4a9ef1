// internal/words/words.go
//
// Word list management for the Evil Hangman engine.
//
// Responsibilities:
//   - Load the dictionary from an environment-provided file or fall back to
//     the embedded default list.
//   - Normalize words (lowercase, alphabetic-only, length 2..24) so the
//     engine can length-bucket them without further validation.
//   - Supply utility functions: All, Lengths, Stats.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load the dictionary from that file.
//   2. Otherwise use the embedded default list from assets/words.txt.
//
// Environment variables:
//   WORDS_FILE=/path/to/dictionary.txt
//
// Constraints:
//   • Words must be 2–24 ASCII letters (a–z).
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/RGonza1529/evil-hangman/assets"
)

const (
	minLen = 2
	maxLen = 24
)

var (
	initOnce   sync.Once
	all        []string // the full normalized dictionary
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the resulting word list is empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			raw, err := assets.WordList()
			if err != nil {
				initialErr = err
				return
			}
			list = keepValid(raw)
		}

		all = list
		if len(all) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid alphabetic words within the accepted length range.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if valid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepValid filters an already-lowercased list down to valid words.
func keepValid(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if valid(w) {
			out = append(out, w)
		}
	}
	return out
}

// valid reports whether w is an acceptable dictionary word.
func valid(w string) bool {
	return len(w) >= minLen && len(w) <= maxLen && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// All returns the loaded dictionary.
func All() []string {
	return all
}

// Lengths returns the distinct word lengths present, ascending.
func Lengths() []int {
	return lengthsOf(all)
}

// lengthsOf computes the distinct lengths in a word list, ascending.
func lengthsOf(list []string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, w := range list {
		if !seen[len(w)] {
			seen[len(w)] = true
			out = append(out, len(w))
		}
	}
	sort.Ints(out)
	return out
}

// Stats returns the word count and the number of distinct lengths.
func Stats() (wordCount, lengthCount int) {
	return len(all), len(lengthsOf(all))
}
