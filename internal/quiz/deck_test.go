package quiz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeckIsValid(t *testing.T) {
	d := DefaultDeck()

	assert.Greater(t, d.Len(), 1)
	assert.NoError(t, d.Validate())
}

func TestParseDeck(t *testing.T) {
	data := []byte(`
quizzes:
  - question: "2 + 2?"
    answer: "4"
    wrong_answers: ["3", "5"]
`)
	d, err := ParseDeck(data)
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	assert.Equal(t, "2 + 2?", d.Quizzes[0].Question)
	assert.Equal(t, "4", d.Quizzes[0].Answer)
	assert.Equal(t, []string{"3", "5"}, d.Quizzes[0].WrongAnswers)
}

func TestParseDeckRejectsBadYAML(t *testing.T) {
	_, err := ParseDeck([]byte("quizzes: [unterminated"))
	assert.Error(t, err)
}

func TestValidateEmptyDeck(t *testing.T) {
	err := (&Deck{}).Validate()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	d := &Deck{Quizzes: []Quiz{
		{Question: "", Answer: "a", WrongAnswers: []string{"b"}},
		{Question: "q", Answer: "", WrongAnswers: []string{"b"}},
		{Question: "q", Answer: "a"},
		{Question: "q", Answer: "a", WrongAnswers: []string{"b", "c", "d", "e"}},
		{Question: "q", Answer: "a", WrongAnswers: []string{"a", " "}},
	}}

	err := d.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "quiz 1: question is empty")
	assert.Contains(t, msg, "quiz 2: answer is empty")
	assert.Contains(t, msg, "quiz 3: needs at least one wrong answer")
	assert.Contains(t, msg, "quiz 4: 4 wrong answers")
	assert.Contains(t, msg, `quiz 5: "a" is listed as both right and wrong`)
	assert.Contains(t, msg, "quiz 5: wrong answer is empty")
}

func TestLoadDeckCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	data := []byte(`
quizzes:
  - question: "Capital of France?"
    answer: "Paris"
    wrong_answers: ["Lyon", "Nice", "Lille"]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	d, err := LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, "Paris", d.Quizzes[0].Answer)
}

func TestLoadDeckCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDeck(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("quizzes: []\n"), 0o644))
	_, err = LoadDeck(empty)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestLoadDeckFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	d, err := LoadDeck("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDeck().Len(), d.Len())
}
