// internal/game/types.go
//
// Core type definitions for the Evil Hangman engine.
// Defines:
//   - Difficulty: selection policy for the adversarial word keeper.
//   - Group / Partition: candidate words keyed by the pattern a guess induces.
//   - Sentinel errors for the two caller-contract violations.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty controls which partition group survives each guess.
// Possible values:
//   - "easy":   largest group, except every second guess takes the runner-up.
//   - "medium": largest group, except every fourth guess takes the runner-up.
//   - "hard":   always the largest group.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps user input to a Difficulty, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, nil
	case Medium:
		return Medium, nil
	case Hard:
		return Hard, nil
	}
	return "", fmt.Errorf("game: unknown difficulty %q", s)
}

var (
	// ErrNoWords is returned when an Index is built from an empty word list.
	ErrNoWords = errors.New("game: word list is empty")

	// ErrAlreadyGuessed is returned by MakeGuess for a repeated letter.
	// The round state is left untouched; the caller may pick another letter.
	ErrAlreadyGuessed = errors.New("game: letter already guessed")

	// ErrNoCandidates is returned by SecretWord when no candidate words
	// remain, which only happens before PrepForRound has been called.
	ErrNoCandidates = errors.New("game: no candidate words")
)

// Group pairs a reveal pattern with the candidate words that produce it.
type Group struct {
	Pattern Pattern
	Words   []string
}

// Size reports the number of words in the group.
func (g Group) Size() int { return len(g.Words) }

// Partition is the grouping of the candidate set induced by one guess,
// ordered ascending by pattern. Every pre-guess candidate appears in
// exactly one group.
type Partition []Group

// Counts renders the partition as pattern → word count, the shape exposed
// on the wire and in debug output.
func (p Partition) Counts() map[string]int {
	m := make(map[string]int, len(p))
	for _, g := range p {
		m[g.Pattern.String()] = len(g.Words)
	}
	return m
}
