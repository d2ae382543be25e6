package service

import (
	"context"
	"time"

	"codecontest_client/internal/app/state"
	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
)

type ContestLister interface {
	ListContests(ctx context.Context) ([]model.Contest, error)
}

// ContestSummary is a contest enriched with the display fields derived on
// every fetch: status from the clock, counts from the id lists.
type ContestSummary struct {
	model.Contest
	Status         model.ContestStatus
	Difficulty     model.ContestDifficulty
	Participants   int
	TotalQuestions int
}

// BrowserService backs the contest list view.
type BrowserService struct {
	api       ContestLister
	selection *state.Selection
	now       func() time.Time
}

func NewBrowserService(api ContestLister, selection *state.Selection) *BrowserService {
	return &BrowserService{api: api, selection: selection, now: time.Now}
}

// Browse fetches the contest list and enriches each entry. Status is derived
// here and nowhere cached; a later fetch may flip it.
func (s *BrowserService) Browse(ctx context.Context) ([]ContestSummary, error) {
	contests, err := s.api.ListContests(ctx)
	if err != nil {
		return nil, common.Errorf("fetch contests: %w", err)
	}
	now := s.now()
	summaries := make([]ContestSummary, 0, len(contests))
	for _, c := range contests {
		summaries = append(summaries, ContestSummary{
			Contest:        c,
			Status:         c.StatusAt(now),
			Difficulty:     model.DifficultyMedium, // the list endpoint carries no difficulty
			Participants:   len(c.ParticipantIDs),
			TotalQuestions: len(c.QuestionIDs),
		})
	}
	return summaries, nil
}

// FilterByStatus keeps the contests matching status; an empty status means
// no filtering.
func FilterByStatus(list []ContestSummary, status model.ContestStatus) []ContestSummary {
	if status == "" {
		return list
	}
	filtered := make([]ContestSummary, 0, len(list))
	for _, c := range list {
		if c.Status == status {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Pick records the contest as the current selection.
func (s *BrowserService) Pick(c ContestSummary) {
	s.selection.SelectContest(c.Contest)
}
