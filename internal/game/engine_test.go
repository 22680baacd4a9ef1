package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	_, err := NewIndex(nil)
	assert.ErrorIs(t, err, ErrNoWords)
	_, err = NewIndex([]string{})
	assert.ErrorIs(t, err, ErrNoWords)

	ix, err := NewIndex([]string{"cat", "car", "cop", "big", "house", "CRANE"})
	require.NoError(t, err)
	assert.Equal(t, 4, ix.NumWords(3))
	assert.Equal(t, 2, ix.NumWords(5)) // ingestion lowercases
	assert.Equal(t, 0, ix.NumWords(7))
	assert.Equal(t, []int{3, 5}, ix.Lengths())
}

func newTestManager(t *testing.T, words []string, length, guesses int, diff Difficulty) *Manager {
	t.Helper()
	ix, err := NewIndex(words)
	require.NoError(t, err)
	m := NewManager(ix)
	m.PrepForRound(length, guesses, diff)
	return m
}

func TestHardRoundScenario(t *testing.T) {
	m := newTestManager(t, []string{"cat", "car", "cop", "big"}, 3, 5, Hard)
	require.Equal(t, 4, m.NumWordsCurrent())
	require.Equal(t, "---", m.Pattern())

	// 'c' splits {big} from {cat,car,cop}; the keeper holds the big group.
	part, err := m.MakeGuess('c')
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"---": 1, "c--": 3}, part.Counts())
	assert.Equal(t, "c--", m.Pattern())
	assert.Equal(t, 3, m.NumWordsCurrent())
	assert.Equal(t, 5, m.GuessesLeft(), "revealed letter must not cost a guess")

	// 'a' splits {cop} from {cat,car}.
	part, err = m.MakeGuess('a')
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"c--": 1, "ca-": 2}, part.Counts())
	assert.Equal(t, "ca-", m.Pattern())
	assert.Equal(t, 5, m.GuessesLeft())

	// 'z' appears nowhere: one group, one guess burned.
	part, err = m.MakeGuess('z')
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ca-": 2}, part.Counts())
	assert.Equal(t, "ca-", m.Pattern())
	assert.Equal(t, 4, m.GuessesLeft())
	assert.Equal(t, 2, m.NumWordsCurrent())
}

func TestAlreadyGuessedLeavesStateUntouched(t *testing.T) {
	m := newTestManager(t, []string{"cat", "car", "cop", "big"}, 3, 5, Hard)

	_, err := m.MakeGuess('c')
	require.NoError(t, err)
	pattern, left, words := m.Pattern(), m.GuessesLeft(), m.NumWordsCurrent()

	part, err := m.MakeGuess('c')
	assert.ErrorIs(t, err, ErrAlreadyGuessed)
	assert.Nil(t, part)
	assert.Equal(t, pattern, m.Pattern())
	assert.Equal(t, left, m.GuessesLeft())
	assert.Equal(t, words, m.NumWordsCurrent())
	assert.Equal(t, "[c]", m.GuessesMade())
}

func TestAlreadyGuessedIsCaseSensitive(t *testing.T) {
	m := newTestManager(t, []string{"cat", "car"}, 3, 5, Hard)
	_, err := m.MakeGuess('a')
	require.NoError(t, err)
	assert.True(t, m.AlreadyGuessed('a'))
	assert.False(t, m.AlreadyGuessed('A'))
}

func TestGuessesMadeRendering(t *testing.T) {
	m := newTestManager(t, []string{"teas", "cast"}, 4, 10, Hard)
	assert.Equal(t, "[]", m.GuessesMade())
	for _, r := range "tzac" {
		_, err := m.MakeGuess(r)
		require.NoError(t, err)
	}
	assert.Equal(t, "[a, c, t, z]", m.GuessesMade())
}

func TestPartitionCompletenessAndConsistency(t *testing.T) {
	words := []string{"ally", "beta", "cool", "deal", "else", "flew", "good", "hope", "ibex", "lamb"}
	m := newTestManager(t, words, 4, 26, Hard)

	guessed := map[rune]bool{}
	for _, g := range []rune{'e', 'o', 'l', 'a'} {
		candidates := append([]string(nil), m.candidates...)
		part, err := m.MakeGuess(g)
		require.NoError(t, err)
		guessed[g] = true

		// Union of groups is exactly the pre-guess candidate set.
		var union []string
		for _, grp := range part {
			require.NotEmpty(t, grp.Words)
			union = append(union, grp.Words...)
		}
		assert.ElementsMatch(t, candidates, union)

		// Groups come back in ascending pattern order.
		for i := 1; i < len(part); i++ {
			assert.Negative(t, part[i-1].Pattern.Compare(part[i].Pattern))
		}

		// Every word is consistent with its group's pattern: revealed slots
		// match, hidden slots hold no guessed letter.
		for _, grp := range part {
			for _, w := range grp.Words {
				rs := []rune(w)
				require.Len(t, rs, len(grp.Pattern))
				for i, slot := range grp.Pattern {
					if slot == hiddenSlot {
						assert.False(t, guessed[rs[i]],
							"%s has guessed letter %c at hidden slot %d of %s", w, rs[i], i, grp.Pattern)
					} else {
						assert.Equal(t, slot, rs[i])
					}
				}
			}
		}
	}
}

func TestMonotonicInformation(t *testing.T) {
	words := []string{"stone", "slate", "crane", "brick", "shine", "plant", "grape", "chess"}
	m := newTestManager(t, words, 5, 26, Medium)

	prev := append(Pattern(nil), m.pattern...)
	for _, g := range []rune{'e', 'a', 's', 'n', 't', 'r'} {
		_, err := m.MakeGuess(g)
		require.NoError(t, err)
		for i, slot := range prev {
			if slot != hiddenSlot {
				assert.Equal(t, slot, m.pattern[i], "revealed slot %d re-hidden after %c", i, g)
			}
		}
		prev = append(Pattern(nil), m.pattern...)
	}
}

func TestDeterministicTrajectory(t *testing.T) {
	words := []string{"stone", "slate", "crane", "brick", "shine", "plant", "grape", "chess", "quilt", "zesty"}
	run := func() []string {
		m := newTestManager(t, words, 5, 26, Easy)
		var trail []string
		for _, g := range []rune{'e', 's', 'a', 't', 'n'} {
			_, err := m.MakeGuess(g)
			require.NoError(t, err)
			trail = append(trail, m.Pattern())
			trail = append(trail, m.GuessesMade())
		}
		return trail
	}
	assert.Equal(t, run(), run())
}

func TestSecretWord(t *testing.T) {
	m := NewManager(mustIndex(t, []string{"cat", "car"}))
	_, err := m.SecretWord()
	assert.ErrorIs(t, err, ErrNoCandidates)

	m.PrepForRound(3, 5, Hard)
	w, err := m.SecretWord()
	require.NoError(t, err)
	assert.Equal(t, "cat", w, "first surviving word")

	_, err = m.MakeGuess('r')
	require.NoError(t, err)
	// Size tie between {car} ("--r") and {cat} ("---"); hidden sorts
	// first, so {cat} survives.
	w, err = m.SecretWord()
	require.NoError(t, err)
	assert.Equal(t, "cat", w)
}

func mustIndex(t *testing.T, words []string) *Index {
	t.Helper()
	ix, err := NewIndex(words)
	require.NoError(t, err)
	return ix
}

func TestPrepForRoundResets(t *testing.T) {
	m := newTestManager(t, []string{"cat", "car", "cop", "big"}, 3, 5, Hard)
	_, err := m.MakeGuess('z')
	require.NoError(t, err)
	require.Equal(t, 4, m.GuessesLeft())

	m.PrepForRound(3, 7, Easy)
	assert.Equal(t, "---", m.Pattern())
	assert.Equal(t, 7, m.GuessesLeft())
	assert.Equal(t, 4, m.NumWordsCurrent())
	assert.Equal(t, "[]", m.GuessesMade())
	assert.False(t, m.AlreadyGuessed('z'))
}
