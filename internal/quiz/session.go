package quiz

import (
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"
)

// Source is the randomness a session draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Outcome is the result of answering (or failing to answer) a round.
type Outcome int

const (
	OutcomeNone    Outcome = iota // nothing answered yet
	OutcomeCorrect                // right answer
	OutcomeWrong                  // wrong answer or timeout
	OutcomeInvalid                // choice out of range, or no round to answer
)

// String returns a readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// Round is one question as presented to the player.
type Round struct {
	Index   int      // position of the question in the deck
	Quiz    Quiz     // the question itself
	Choices []string // answer and distractors, shuffled
	Correct int      // index into Choices of the right answer
}

// Session serves rounds from a deck and keeps the tally. Questions asked the
// fewest times are preferred, so a deck is exhausted before anything repeats.
type Session struct {
	deck  *Deck
	rng   Source
	asked *intmap.Map[int, int]

	round    Round
	hasRound bool

	correct    int
	wrong      int
	last       Outcome
	lastAnswer string
}

// NewSession creates a session over deck and deals the first round.
// A nil source falls back to a time-seeded one.
func NewSession(deck *Deck, rng Source) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{deck: deck, rng: rng}
	s.Reset()
	return s
}

// Reset clears the tally and deals a fresh round.
func (s *Session) Reset() {
	s.asked = intmap.New[int, int](s.deck.Len())
	s.correct = 0
	s.wrong = 0
	s.last = OutcomeNone
	s.lastAnswer = ""
	s.hasRound = false
	s.deal()
}

// Round returns the current round and whether one is available.
func (s *Session) Round() (Round, bool) {
	return s.round, s.hasRound
}

// Answer picks choice (0-based) for the current round. Valid answers are
// tallied and the next round is dealt; invalid ones change nothing.
func (s *Session) Answer(choice int) Outcome {
	if !s.hasRound || choice < 0 || choice >= len(s.round.Choices) {
		return OutcomeInvalid
	}

	outcome := OutcomeWrong
	if choice == s.round.Correct {
		outcome = OutcomeCorrect
	}
	s.finish(outcome)
	return outcome
}

// Expire ends the current round unanswered, which counts as wrong.
func (s *Session) Expire() Outcome {
	if !s.hasRound {
		return OutcomeInvalid
	}
	s.finish(OutcomeWrong)
	return OutcomeWrong
}

func (s *Session) finish(outcome Outcome) {
	if outcome == OutcomeCorrect {
		s.correct++
	} else {
		s.wrong++
	}
	s.last = outcome
	s.lastAnswer = s.round.Quiz.Answer
	s.deal()
}

// deal picks the next question among the least-asked ones, avoiding an
// immediate repeat when there is any alternative.
func (s *Session) deal() {
	n := s.deck.Len()
	if n == 0 {
		s.hasRound = false
		return
	}

	prev := -1
	if s.hasRound {
		prev = s.round.Index
	}

	fewest := -1
	var candidates []int
	for i := range n {
		count, _ := s.asked.Get(i)
		switch {
		case fewest < 0 || count < fewest:
			fewest = count
			candidates = append(candidates[:0], i)
		case count == fewest:
			candidates = append(candidates, i)
		}
	}
	if len(candidates) > 1 {
		for i, c := range candidates {
			if c == prev {
				candidates = append(candidates[:i], candidates[i+1:]...)
				break
			}
		}
	}

	idx := candidates[s.rng.Intn(len(candidates))]
	count, _ := s.asked.Get(idx)
	s.asked.Put(idx, count+1)

	q := s.deck.Quizzes[idx]
	choices := make([]string, 0, len(q.WrongAnswers)+1)
	choices = append(choices, q.Answer)
	choices = append(choices, q.WrongAnswers...)
	if len(choices) > MaxChoices {
		choices = choices[:MaxChoices]
	}
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correct := 0
	for i, c := range choices {
		if c == q.Answer {
			correct = i
			break
		}
	}

	s.round = Round{Index: idx, Quiz: q, Choices: choices, Correct: correct}
	s.hasRound = true
}

// Asked returns how many times the question at index has been dealt.
func (s *Session) Asked(index int) int {
	count, _ := s.asked.Get(index)
	return count
}

// Correct returns the number of right answers.
func (s *Session) Correct() int { return s.correct }

// Wrong returns the number of wrong or expired answers.
func (s *Session) Wrong() int { return s.wrong }

// Last returns the outcome of the most recently finished round.
func (s *Session) Last() Outcome { return s.last }

// LastAnswer returns the right answer of the most recently finished round.
func (s *Session) LastAnswer() string { return s.lastAnswer }
