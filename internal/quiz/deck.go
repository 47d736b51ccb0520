// Package quiz provides multiple-choice question decks and the session that
// serves them during a game. A wrong answer is what triggers a punishment on
// the board; this package only decides right or wrong.
package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxChoices is the number of answer slots a question can offer.
const MaxChoices = 4

//go:embed decks/default.yaml
var defaultDeckYAML []byte

// ErrEmptyDeck is returned when a deck has no questions.
var ErrEmptyDeck = errors.New("quiz: deck has no questions")

// Quiz is a single question with its right answer and distractors.
type Quiz struct {
	Question     string   `yaml:"question"`
	Answer       string   `yaml:"answer"`
	WrongAnswers []string `yaml:"wrong_answers"`
}

// Deck is an ordered collection of questions.
type Deck struct {
	Quizzes []Quiz `yaml:"quizzes"`
}

// Len returns the number of questions in the deck.
func (d *Deck) Len() int {
	return len(d.Quizzes)
}

// Validate checks every question and reports all problems at once.
func (d *Deck) Validate() error {
	if len(d.Quizzes) == 0 {
		return ErrEmptyDeck
	}

	var errs []error
	for i, q := range d.Quizzes {
		n := i + 1
		if strings.TrimSpace(q.Question) == "" {
			errs = append(errs, fmt.Errorf("quiz %d: question is empty", n))
		}
		if strings.TrimSpace(q.Answer) == "" {
			errs = append(errs, fmt.Errorf("quiz %d: answer is empty", n))
		}
		switch {
		case len(q.WrongAnswers) == 0:
			errs = append(errs, fmt.Errorf("quiz %d: needs at least one wrong answer", n))
		case len(q.WrongAnswers) > MaxChoices-1:
			errs = append(errs, fmt.Errorf("quiz %d: %d wrong answers, at most %d fit", n, len(q.WrongAnswers), MaxChoices-1))
		}
		for _, wrong := range q.WrongAnswers {
			if strings.TrimSpace(wrong) == "" {
				errs = append(errs, fmt.Errorf("quiz %d: wrong answer is empty", n))
			} else if wrong == q.Answer {
				errs = append(errs, fmt.Errorf("quiz %d: %q is listed as both right and wrong", n, wrong))
			}
		}
	}
	return errors.Join(errs...)
}

// ParseDeck decodes and validates a YAML deck.
func ParseDeck(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("quiz: cannot parse deck: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// DefaultDeck returns the built-in deck.
func DefaultDeck() *Deck {
	d, err := ParseDeck(defaultDeckYAML)
	if err != nil {
		// Embedded deck is broken; keep the game playable.
		return &Deck{Quizzes: []Quiz{{
			Question:     "How many cells does every tetromino have?",
			Answer:       "4",
			WrongAnswers: []string{"3", "5", "6"},
		}}}
	}
	return d
}

// DefaultDeckYAML returns the embedded deck source, a template for custom
// decks.
func DefaultDeckYAML() []byte {
	return defaultDeckYAML
}

// LoadDeck loads a question deck.
// Search order: customPath -> ~/.quiztris/quizzes.yaml -> ./configs/quizzes.yaml -> embedded default
func LoadDeck(customPath string) (*Deck, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("quiz: cannot read deck %s: %w", customPath, err)
		}
		d, err := ParseDeck(data)
		if err != nil {
			return nil, fmt.Errorf("quiz: invalid deck %s: %w", customPath, err)
		}
		return d, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		if d, ok := tryDeck(filepath.Join(home, ".quiztris", "quizzes.yaml")); ok {
			return d, nil
		}
	}

	if d, ok := tryDeck(filepath.Join("configs", "quizzes.yaml")); ok {
		return d, nil
	}

	return DefaultDeck(), nil
}

// tryDeck loads an optional deck, ignoring missing or invalid files.
func tryDeck(path string) (*Deck, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	d, err := ParseDeck(data)
	if err != nil {
		return nil, false
	}
	return d, true
}
