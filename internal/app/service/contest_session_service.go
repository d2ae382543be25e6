package service

import (
	"context"
	"log"
	"sync"
	"time"

	"codecontest_client/internal/app/state"
	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
	"codecontest_client/internal/platform/session"
)

type SessionPhase string

const (
	PhaseInfo      SessionPhase = "info"
	PhaseCountdown SessionPhase = "countdown"
	PhaseActive    SessionPhase = "active"
)

type SessionAPI interface {
	StartContest(ctx context.Context, id string) (model.Contest, error)
	FetchQuestions(ctx context.Context, ids []string) ([]model.Question, error)
}

// EntryDecision is the outcome of opening the contest view: which phase to
// land in and whether to bounce straight to the ranking view instead.
type EntryDecision struct {
	Phase       SessionPhase
	ShowRanking bool
}

// ContestSessionService drives the per-contest view through its linear
// phases: info, countdown, active. There is no backward transition; a new
// service instance is created per visit.
type ContestSessionService struct {
	api          SessionAPI
	selection    *state.Selection
	sessions     *session.Store
	ticks        int
	tickInterval time.Duration
	now          func() time.Time

	mu    sync.Mutex
	phase SessionPhase
}

func NewContestSessionService(
	api SessionAPI,
	selection *state.Selection,
	sessions *session.Store,
	ticks int,
	tickInterval time.Duration,
) *ContestSessionService {
	if ticks <= 0 {
		ticks = 3
	}
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	return &ContestSessionService{
		api:          api,
		selection:    selection,
		sessions:     sessions,
		ticks:        ticks,
		tickInterval: tickInterval,
		now:          time.Now,
		phase:        PhaseInfo,
	}
}

func (s *ContestSessionService) Phase() SessionPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *ContestSessionService) setPhase(p SessionPhase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

// Enter evaluates the entry rules for the contest view. Viewers who already
// joined skip the countdown; ended contests also skip it and additionally
// redirect to the ranking view. Without a selected contest the caller must
// navigate back to the contest list.
func (s *ContestSessionService) Enter() (EntryDecision, error) {
	contest, ok := s.selection.Contest()
	if !ok {
		return EntryDecision{}, common.ErrNoSelection
	}

	status := contest.StatusAt(s.now())
	if status == model.ContestEnded {
		s.setPhase(PhaseActive)
		return EntryDecision{Phase: PhaseActive, ShowRanking: true}, nil
	}

	viewer, _ := s.sessions.Current()
	if contest.HasParticipant(viewer.ID) {
		s.setPhase(PhaseActive)
		return EntryDecision{Phase: PhaseActive}, nil
	}

	s.setPhase(PhaseInfo)
	return EntryDecision{Phase: PhaseInfo}, nil
}

// Begin starts the contest from the info phase: it fires the join request,
// then counts down. onTick, if non-nil, is invoked with the remaining tick
// count after every elapsed second. Cancelling ctx stops the countdown
// before the next tick and leaves the phase at countdown; the ticker never
// outlives the call.
func (s *ContestSessionService) Begin(ctx context.Context, onTick func(remaining int)) error {
	if s.Phase() != PhaseInfo {
		return common.Errorf("contest already started: %w", common.ErrConflict)
	}
	contest, ok := s.selection.Contest()
	if !ok {
		return common.ErrNoSelection
	}

	s.setPhase(PhaseCountdown)

	// Join side effect. The refreshed record is merged into the selection;
	// a failure is logged and the countdown proceeds regardless, matching
	// the join call's fire-and-forget contract.
	if joined, err := s.api.StartContest(ctx, contest.ID); err != nil {
		log.Printf("start contest %s: %v", contest.ID, err)
	} else if !joined.IsZero() {
		s.selection.SelectContest(joined)
	}

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for remaining := s.ticks; remaining > 0; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			remaining--
			if onTick != nil {
				onTick(remaining)
			}
		}
	}

	s.setPhase(PhaseActive)
	return nil
}

// Questions fetches the contest's question list. Only valid in the active
// phase; an empty question-id list short-circuits without a network call.
func (s *ContestSessionService) Questions(ctx context.Context) ([]model.Question, error) {
	if s.Phase() != PhaseActive {
		return nil, common.Errorf("contest not active yet: %w", common.ErrForbidden)
	}
	contest, ok := s.selection.Contest()
	if !ok {
		return nil, common.ErrNoSelection
	}
	if len(contest.QuestionIDs) == 0 {
		return nil, nil
	}
	questions, err := s.api.FetchQuestions(ctx, contest.QuestionIDs)
	if err != nil {
		return nil, common.Errorf("fetch questions: %w", err)
	}
	return questions, nil
}

// PickQuestion records the question as the current selection, handing
// context to the submission view.
func (s *ContestSessionService) PickQuestion(q model.Question) {
	s.selection.SelectQuestion(q)
}
