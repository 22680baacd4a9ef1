// internal/game/engine.go
//
// Round engine for Evil Hangman.
// Responsibilities:
//   - Index: words grouped by length, built once, read-only afterwards.
//   - Manager: state for one round (pattern, live candidates, guess budget,
//     guessed letters), advanced one guessed letter at a time.
//
// The engine never commits to a secret word. Each guess partitions the live
// candidate set by the pattern the guess would reveal, then the difficulty
// policy picks which group survives. Words are only regrouped, never
// dropped, so the candidate set can shrink but never empty out mid-round.
//
// A single Index is safe to share across concurrent rounds; a Manager is
// not, and each round owns its own.

package game

import (
	"sort"
	"strings"
)

// Index groups dictionary words by length. Insertion order within a bucket
// is preserved. Words are lowercased at ingestion.
type Index struct {
	byLen map[int][]string
}

// NewIndex builds an Index from a word list.
// Returns ErrNoWords for an empty or nil list.
func NewIndex(words []string) (*Index, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	byLen := make(map[int][]string)
	for _, w := range words {
		w = strings.ToLower(w)
		n := len([]rune(w))
		byLen[n] = append(byLen[n], w)
	}
	return &Index{byLen: byLen}, nil
}

// NumWords reports how many indexed words have the given length.
func (ix *Index) NumWords(length int) int {
	return len(ix.byLen[length])
}

// Lengths returns the word lengths present in the index, ascending.
func (ix *Index) Lengths() []int {
	out := make([]int, 0, len(ix.byLen))
	for n := range ix.byLen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Manager runs rounds of Evil Hangman against a shared Index.
// Create one per round (or reuse across rounds via PrepForRound); it is not
// safe for concurrent use.
type Manager struct {
	index *Index

	length      int
	guessesLeft int
	difficulty  Difficulty
	pattern     Pattern
	candidates  []string
	guessed     []rune
}

// NewManager returns a Manager over the given index. PrepForRound must be
// called before the first guess.
func NewManager(ix *Index) *Manager {
	return &Manager{index: ix}
}

// Index returns the shared dictionary index.
func (m *Manager) Index() *Index { return m.index }

// PrepForRound resets the manager for a fresh round.
// Preconditions: the index has words of the given length
// (NumWords(length) > 0) and guesses >= 1.
func (m *Manager) PrepForRound(length, guesses int, diff Difficulty) {
	m.length = length
	m.guessesLeft = guesses
	m.difficulty = diff
	m.pattern = newHiddenPattern(length)
	m.candidates = m.index.byLen[length]
	m.guessed = nil
}

// MakeGuess advances the round by one guessed letter.
//
// Precondition: the letter has not been guessed this round. A repeat
// returns ErrAlreadyGuessed and changes nothing.
//
// On success the guess is recorded, the candidate set is partitioned by
// induced pattern, the difficulty policy picks the surviving group, and the
// guess budget drops by one iff the surviving pattern does not contain the
// letter. The full partition is returned for observability; live state is
// read through the accessors.
func (m *Manager) MakeGuess(letter rune) (Partition, error) {
	if m.AlreadyGuessed(letter) {
		return nil, ErrAlreadyGuessed
	}
	m.guessed = append(m.guessed, letter)

	part := partitionWords(m.candidates, m.pattern, letter)
	chosen := selectGroup(part, len(m.guessed), m.difficulty)
	m.pattern = chosen.Pattern
	m.candidates = chosen.Words

	if !m.pattern.Contains(letter) {
		m.guessesLeft--
	}
	return part, nil
}

// partitionWords groups words by the pattern the guess would reveal,
// starting from the current pattern. Groups come back in ascending pattern
// order; hidden slots sort before any letter.
func partitionWords(words []string, current Pattern, guess rune) Partition {
	groups := make(map[string]*Group, len(words))
	for _, w := range words {
		p := current.revealWith(w, guess)
		k := p.key()
		g, ok := groups[k]
		if !ok {
			g = &Group{Pattern: p}
			groups[k] = g
		}
		g.Words = append(g.Words, w)
	}

	out := make(Partition, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Pattern.Compare(out[j].Pattern) < 0
	})
	return out
}

// NumWordsCurrent reports the size of the live candidate set.
func (m *Manager) NumWordsCurrent() int { return len(m.candidates) }

// GuessesLeft reports the remaining guess budget. The engine only ever
// decrements; ending the round at zero is the caller's job.
func (m *Manager) GuessesLeft() int { return m.guessesLeft }

// AlreadyGuessed reports whether the letter was guessed this round.
// The check is literal: 'A' and 'a' are distinct.
func (m *Manager) AlreadyGuessed(letter rune) bool {
	for _, r := range m.guessed {
		if r == letter {
			return true
		}
	}
	return false
}

// GuessedLetters returns the guessed letters in ascending order.
func (m *Manager) GuessedLetters() []rune {
	out := append([]rune(nil), m.guessed...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GuessesMade renders the guessed letters in ascending order as a
// bracketed list, e.g. "[a, c, e, s, t, z]".
func (m *Manager) GuessesMade() string {
	letters := m.GuessedLetters()
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Pattern renders the current pattern, '-' for unrevealed slots.
func (m *Manager) Pattern() string { return m.pattern.String() }

// SecretWord reports the word the round settled on: the first surviving
// candidate. With one candidate left that is the only consistent word; when
// guesses run out with several left, returning the first keeps repeated
// runs reproducible.
// Precondition: NumWordsCurrent() > 0.
func (m *Manager) SecretWord() (string, error) {
	if len(m.candidates) == 0 {
		return "", ErrNoCandidates
	}
	return m.candidates[0], nil
}
