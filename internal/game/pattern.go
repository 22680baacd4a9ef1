// internal/game/pattern.go
//
// Pattern: the player-visible knowledge of the secret word.
// One slot per position, either hidden or a revealed letter. Hidden slots
// are encoded as the zero rune so that pattern comparison orders them below
// every letter without depending on the printable placeholder character.

package game

import "strings"

// hiddenSlot marks an unrevealed position. Sorts below every letter.
const hiddenSlot = rune(0)

// placeholder is how hidden slots are rendered for display.
const placeholder = '-'

// Pattern is a fixed-length sequence of slots.
type Pattern []rune

// newHiddenPattern returns an all-hidden pattern of n slots.
func newHiddenPattern(n int) Pattern {
	p := make(Pattern, n)
	for i := range p {
		p[i] = hiddenSlot
	}
	return p
}

// revealWith returns a copy of p with the guessed letter revealed at every
// position where word carries it. Slots already revealed by earlier guesses
// are untouched.
func (p Pattern) revealWith(word string, guess rune) Pattern {
	out := make(Pattern, len(p))
	copy(out, p)
	for i, r := range []rune(word) {
		if r == guess {
			out[i] = guess
		}
	}
	return out
}

// Contains reports whether r is revealed anywhere in the pattern.
func (p Pattern) Contains(r rune) bool {
	for _, s := range p {
		if s == r {
			return true
		}
	}
	return false
}

// Revealed reports whether every slot has been revealed.
func (p Pattern) Revealed() bool {
	for _, s := range p {
		if s == hiddenSlot {
			return false
		}
	}
	return true
}

// Compare orders patterns lexicographically slot by slot, hidden first.
// Returns -1, 0, or 1.
func (p Pattern) Compare(q Pattern) int {
	for i := 0; i < len(p) && i < len(q); i++ {
		if p[i] != q[i] {
			if p[i] < q[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	}
	return 0
}

// key is the raw slot encoding, used to group patterns in a map.
func (p Pattern) key() string { return string(p) }

// String renders the pattern with '-' for hidden slots, e.g. "c--".
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, s := range p {
		if s == hiddenSlot {
			b.WriteRune(placeholder)
		} else {
			b.WriteRune(s)
		}
	}
	return b.String()
}
