// internal/game/game.go
//
// Game: one playable Evil Hangman session for the HTTP layer.
// Responsibilities:
//   - Validate round setup (available length, guess budget, difficulty).
//   - Validate and normalize incoming guesses (single letter a-z).
//   - Track state transitions: playing → won/lost, and reveal the secret
//     word once the round is over.
//
// The Manager holds the round mechanics; Game adds identity and the
// end-of-round rules the engine itself leaves to its caller.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// State is the coarse lifecycle of a session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

var (
	// ErrFinished is returned for guesses after the round ended.
	ErrFinished = errors.New("game: round finished")

	// ErrBadLetter is returned when a guess is not a single letter a-z.
	ErrBadLetter = errors.New("game: guess must be a single letter a-z")
)

// Game holds one in-progress or finished session.
type Game struct {
	ID         string     // unique session identifier (random hex string)
	Length     int        // word length for this round
	Difficulty Difficulty //
	Budget     int        // guess budget the round started with
	CreatedAt  time.Time  //
	Finished   bool       // true once the round is over
	Won        bool       // true if the player revealed the whole word

	mgr *Manager
}

// New starts a session against the shared index.
// Fails if the index has no words of the requested length or the budget is
// below 1. Difficulty is assumed valid; parse user input with
// ParseDifficulty first.
func New(ix *Index, length, guesses int, diff Difficulty) (*Game, error) {
	if ix.NumWords(length) == 0 {
		return nil, fmt.Errorf("game: no words of length %d", length)
	}
	if guesses < 1 {
		return nil, errors.New("game: guess budget must be at least 1")
	}
	m := NewManager(ix)
	m.PrepForRound(length, guesses, diff)
	return &Game{
		ID:         randomID(),
		Length:     length,
		Difficulty: diff,
		Budget:     guesses,
		CreatedAt:  time.Now().UTC(),
		mgr:        m,
	}, nil
}

// Manager exposes the round state accessors.
func (g *Game) Manager() *Manager { return g.mgr }

// State reports playing/won/lost.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// WrongGuesses reports how much of the budget has been spent.
func (g *Game) WrongGuesses() int { return g.Budget - g.mgr.GuessesLeft() }

// GuessResult is what one applied guess looks like from the outside.
type GuessResult struct {
	Pattern     string    // pattern after the keeper picked a group
	Correct     bool      // the letter appears in the new pattern
	GuessesLeft int       //
	WordsLeft   int       // live candidate count
	Groups      Partition // full partition, ascending pattern order
	State       State     //
	SecretWord  string    // revealed word, set once finished
}

// ApplyGuess validates and applies one guessed letter, mutating the session.
//
// Validation rules:
//   - Session must not be finished (ErrFinished).
//   - Guess must normalize to exactly one letter a-z (ErrBadLetter).
//   - Letter must be new this round (ErrAlreadyGuessed, no mutation).
//
// State transitions:
//   - Pattern fully revealed → Finished, Won.
//   - Guess budget exhausted → Finished (loss).
func (g *Game) ApplyGuess(letter string) (*GuessResult, error) {
	if g.Finished {
		return nil, ErrFinished
	}
	r, ok := normalizeLetter(letter)
	if !ok {
		return nil, ErrBadLetter
	}

	part, err := g.mgr.MakeGuess(r)
	if err != nil {
		return nil, err
	}

	res := &GuessResult{
		Pattern:     g.mgr.Pattern(),
		Correct:     g.mgr.pattern.Contains(r),
		GuessesLeft: g.mgr.GuessesLeft(),
		WordsLeft:   g.mgr.NumWordsCurrent(),
		Groups:      part,
	}

	if g.mgr.pattern.Revealed() {
		g.Finished, g.Won = true, true
	} else if g.mgr.GuessesLeft() <= 0 {
		g.Finished = true
	}
	res.State = g.State()
	if g.Finished {
		res.SecretWord, _ = g.mgr.SecretWord()
	}
	return res, nil
}

// normalizeLetter lowercases and trims a guess and requires a single a-z rune.
func normalizeLetter(s string) (rune, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	rs := []rune(s)
	if len(rs) != 1 || rs[0] < 'a' || rs[0] > 'z' {
		return 0, false
	}
	return rs[0], true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
