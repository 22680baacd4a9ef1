// internal/daily/daily.go
//
// Deterministic daily challenge selection.
//
// Unlike a daily Wordle there is no answer word to pick: the evil engine is
// deterministic for a given (dictionary, setup, guess sequence), so fixing
// the round setup per date is enough to give every player the same
// adversary. HMAC(salt, YYYY-MM-DD) drives the choice so the schedule is
// stable but not guessable without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/RGonza1529/evil-hangman/internal/game"
)

// defaultGuesses is the wrong-guess budget for every daily round.
const defaultGuesses = 8

// difficulties in rotation order for the daily schedule.
var difficulties = []game.Difficulty{game.Easy, game.Medium, game.Hard}

// Challenge is one day's round configuration.
type Challenge struct {
	Date       string          `json:"date"` // YYYY-MM-DD (UTC cutoff)
	Length     int             `json:"length"`
	Difficulty game.Difficulty `json:"difficulty"`
	Guesses    int             `json:"guesses"`
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ChallengeFor derives the challenge for a date from HMAC(salt, date key).
// lengths must be the word lengths the dictionary actually offers,
// ascending; an empty slice yields a zero-length challenge the caller must
// treat as unavailable.
func ChallengeFor(date time.Time, salt string, lengths []int) Challenge {
	dk := DateKey(date)
	ch := Challenge{Date: dk, Guesses: defaultGuesses}
	if len(lengths) == 0 {
		return ch
	}

	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)

	// First 8 bytes pick the length, next 8 the difficulty.
	n := binary.BigEndian.Uint64(sum[:8])
	d := binary.BigEndian.Uint64(sum[8:16])
	ch.Length = lengths[n%uint64(len(lengths))]
	ch.Difficulty = difficulties[d%uint64(len(difficulties))]
	return ch
}
