package service

import (
	"context"
	"time"

	"codecontest_client/internal/api"
	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ContestCreator interface {
	CreateContest(ctx context.Context, req api.CreateContestRequest) error
}

// QuestionDraft is one problem being authored, identified locally by a
// generated id until the server assigns real ones on creation.
type QuestionDraft struct {
	DraftID        string
	Title          string
	Description    string
	Difficulty     model.ContestDifficulty
	TimeLimit      int
	MemoryLimit    int
	Points         int
	Input          string
	ExpectedOutput string
}

// ContestDraft is the creator form state: contest metadata plus an ordered
// question list that never shrinks below one entry.
type ContestDraft struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Difficulty  model.ContestDifficulty
	Questions   []QuestionDraft
}

// CreatorService assembles and saves new contests.
type CreatorService struct {
	api ContestCreator
}

func NewCreatorService(api ContestCreator) *CreatorService {
	return &CreatorService{api: api}
}

// NewDraft returns a fresh draft with a single empty question, mirroring the
// initial creator form.
func (s *CreatorService) NewDraft() ContestDraft {
	return ContestDraft{
		Difficulty: model.DifficultyMedium,
		Questions:  []QuestionDraft{s.newQuestionDraft()},
	}
}

func (s *CreatorService) newQuestionDraft() QuestionDraft {
	return QuestionDraft{
		DraftID:     uuid.NewString(),
		Difficulty:  model.DifficultyEasy,
		TimeLimit:   2,
		MemoryLimit: 256,
		Points:      100,
	}
}

// AddQuestion appends an empty question draft and returns its index.
func (s *CreatorService) AddQuestion(d *ContestDraft) int {
	d.Questions = append(d.Questions, s.newQuestionDraft())
	return len(d.Questions) - 1
}

// RemoveQuestion deletes the question at i; the last remaining question
// cannot be removed.
func (s *CreatorService) RemoveQuestion(d *ContestDraft, i int) error {
	if i < 0 || i >= len(d.Questions) {
		return common.Errorf("no question at index %d: %w", i, common.ErrBadRequest)
	}
	if len(d.Questions) == 1 {
		return common.Errorf("a contest needs at least one question: %w", common.ErrValidation)
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
	return nil
}

// Slug derives the URL-safe name the contest will be listed under.
func (s *CreatorService) Slug(d ContestDraft) string {
	return slug.Make(d.Title)
}

func (s *CreatorService) validate(d ContestDraft) error {
	if d.Title == "" || d.Description == "" {
		return common.Errorf("contest title and description are required: %w", common.ErrValidation)
	}
	if d.StartTime.IsZero() || d.EndTime.IsZero() || !d.StartTime.Before(d.EndTime) {
		return common.Errorf("contest window must start before it ends: %w", common.ErrValidation)
	}
	for i, q := range d.Questions {
		if q.Title == "" {
			return common.Errorf("question %d needs a title: %w", i+1, common.ErrValidation)
		}
		if q.Points <= 0 {
			return common.Errorf("question %d needs a positive point value: %w", i+1, common.ErrValidation)
		}
	}
	return nil
}

// Save validates the draft and creates the contest in one API call.
func (s *CreatorService) Save(ctx context.Context, d ContestDraft) error {
	if err := s.validate(d); err != nil {
		return err
	}
	ques := make([]api.QuestionDraft, len(d.Questions))
	for i, q := range d.Questions {
		ques[i] = api.QuestionDraft{
			Title:       q.Title,
			Description: q.Description,
			Difficulty:  q.Difficulty,
			TimeLimit:   q.TimeLimit,
			MemoryLimit: q.MemoryLimit,
			Points:      q.Points,
			TestCases: api.TestCasePair{
				Input:          q.Input,
				ExpectedOutput: q.ExpectedOutput,
			},
		}
	}
	req := api.CreateContestRequest{
		MultipleQues: ques,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Title:        d.Title,
		Description:  d.Description,
	}
	if err := s.api.CreateContest(ctx, req); err != nil {
		return common.Errorf("create contest: %w", err)
	}
	return nil
}
