package main

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"
)

var ErrFinished = errors.New("quiz already completed")

const (
	msgCorrect   = "✅ Correct!"
	msgCompleted = "You've completed all questions!"
)

// Result is the outcome of checking one selection.
type Result struct {
	Correct bool   `json:"isCorrect"`
	Answer  string `json:"correctAnswer"`
	Message string `json:"message"`
}

// Score counts the first check made at each position.
type Score struct {
	Answered int      `json:"answered"`
	Correct  int      `json:"correct"`
	Accuracy *float64 `json:"accuracy,omitempty"` // percent
}

// Session is the single cursor walking the store. Once it runs past the
// last question it stays finished until Restart.
type Session struct {
	mu       sync.Mutex
	store    *Store
	pos      int
	finished bool
	checked  map[int]bool
	score    Score
}

func NewSession(store *Store) *Session {
	return &Session{store: store, checked: map[int]bool{}}
}

// Current returns the question under the cursor and its position.
// ok is false once the quiz is finished.
func (s *Session) Current() (q Question, pos int, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err = s.currentLocked()
	if errors.Is(err, ErrFinished) {
		return Question{}, s.pos, false, nil
	}
	if err != nil {
		return Question{}, s.pos, false, err
	}
	return q, s.pos, true, nil
}

// Next moves the cursor forward and reports whether the quiz is finished.
func (s *Session) Next() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return true, nil
	}
	n, err := s.store.Len()
	if err != nil {
		return false, err
	}
	s.pos++
	if s.pos >= n {
		s.finished = true
	}
	return s.finished, nil
}

// Check compares selected with the current answer. selected is the option
// key, i.e. the first character of the chosen option.
func (s *Session) Check(selected string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.currentLocked()
	if err != nil {
		return Result{}, err
	}

	res := Result{Correct: selected == q.Answer, Answer: q.Answer}
	if res.Correct {
		res.Message = msgCorrect
	} else {
		res.Message = fmt.Sprintf("❌ Incorrect! The correct answer is: %s", q.Answer)
	}

	if !s.checked[s.pos] {
		s.checked[s.pos] = true
		s.score.Answered++
		if res.Correct {
			s.score.Correct++
		}
	}
	return res, nil
}

func (s *Session) Score() Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.score
	if out.Answered > 0 {
		acc := float64(out.Correct) * 100.0 / float64(out.Answered)
		out.Accuracy = &acc
	}
	return out
}

func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Restart rewinds to the first question and clears the score.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
	s.finished = false
	s.checked = map[int]bool{}
	s.score = Score{}
}

func (s *Session) currentLocked() (Question, error) {
	if s.finished {
		return Question{}, ErrFinished
	}
	q, err := s.store.At(s.pos)
	if errors.Is(err, ErrOutOfRange) {
		s.finished = true
		return Question{}, ErrFinished
	}
	return q, err
}

// OptionKey returns the selection value of an option such as "B. text".
func OptionKey(option string) string {
	r, size := utf8.DecodeRuneInString(option)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return option[:size]
}
