package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "Cat\n  DOG \ncrane\nx\nit's\nnumb3r\n\nsupercalifragilisticexpialidocious\nok\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "crane", "ok"}, got)
}

func TestReadWordFileMissing(t *testing.T) {
	_, err := readWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, valid("ox"))
	assert.True(t, valid("cat"))
	assert.False(t, valid("a"), "below minimum length")
	assert.False(t, valid("it's"))
	assert.False(t, valid("Cat"), "must already be lowercased")
	assert.False(t, valid(""))
}

func TestKeepValid(t *testing.T) {
	got := keepValid([]string{"cat", "x", "dog", "don't", "bird"})
	assert.Equal(t, []string{"cat", "dog", "bird"}, got)
}

func TestLengthsOf(t *testing.T) {
	assert.Equal(t, []int{3, 4, 6}, lengthsOf([]string{"bird", "cat", "dog", "turtle", "frog"}))
	assert.Empty(t, lengthsOf(nil))
}
