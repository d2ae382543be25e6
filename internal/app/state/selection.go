package state

import (
	"sync"

	"codecontest_client/internal/domain/model"
)

// Selection is the cross-view cache of the user's last picks: at most one
// contest and one question. It is not a source of truth; views that depend
// on a slot must check presence and bounce back to the contest list when it
// is empty. Writes are pure overwrites, last one wins.
type Selection struct {
	mu       sync.Mutex
	contest  model.Contest
	question model.Question
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) SelectContest(c model.Contest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contest = c
}

// Contest returns the selected contest and whether one is selected.
func (s *Selection) Contest() (model.Contest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contest, !s.contest.IsZero()
}

func (s *Selection) SelectQuestion(q model.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.question = q
}

// Question returns the selected question and whether one is selected.
func (s *Selection) Question() (model.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.question, !s.question.IsZero()
}

// Clear empties both slots, e.g. when navigating back to the contest list.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contest = model.Contest{}
	s.question = model.Question{}
}
