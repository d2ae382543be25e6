package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"codecontest_client/internal/api"
	"codecontest_client/internal/common"
)

type fakeContestCreator struct {
	createFn func(req api.CreateContestRequest) error

	calls []api.CreateContestRequest
}

func (f *fakeContestCreator) CreateContest(_ context.Context, req api.CreateContestRequest) error {
	f.calls = append(f.calls, req)
	if f.createFn == nil {
		return nil
	}
	return f.createFn(req)
}

func validDraft(svc *CreatorService) ContestDraft {
	d := svc.NewDraft()
	d.Title = "Spring Open 2025"
	d.Description = "Four problems, two hours."
	d.StartTime = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	d.EndTime = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	d.Questions[0].Title = "Warmup"
	d.Questions[0].Input = "1###2"
	d.Questions[0].ExpectedOutput = "1###2"
	return d
}

func TestNewDraftHasOneQuestionWithLocalID(t *testing.T) {
	svc := NewCreatorService(&fakeContestCreator{})
	d := svc.NewDraft()
	if len(d.Questions) != 1 {
		t.Fatalf("new draft has %d questions, want 1", len(d.Questions))
	}
	if d.Questions[0].DraftID == "" {
		t.Fatal("question draft needs a local id")
	}
}

func TestAddAndRemoveQuestions(t *testing.T) {
	svc := NewCreatorService(&fakeContestCreator{})
	d := svc.NewDraft()

	i := svc.AddQuestion(&d)
	if i != 1 || len(d.Questions) != 2 {
		t.Fatalf("add returned %d with %d questions, want 1 and 2", i, len(d.Questions))
	}
	if d.Questions[0].DraftID == d.Questions[1].DraftID {
		t.Fatal("draft ids must be unique")
	}

	if err := svc.RemoveQuestion(&d, 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveQuestion(&d, 0); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("removing the last question: err = %v, want ErrValidation", err)
	}
}

func TestSlugFromTitle(t *testing.T) {
	svc := NewCreatorService(&fakeContestCreator{})
	d := svc.NewDraft()
	d.Title = "Spring Open 2025!"
	if got := svc.Slug(d); got != "spring-open-2025" {
		t.Fatalf("slug = %q", got)
	}
}

func TestSaveValidatesBeforeCalling(t *testing.T) {
	creator := &fakeContestCreator{}
	svc := NewCreatorService(creator)

	cases := []struct {
		name   string
		mutate func(d *ContestDraft)
	}{
		{"missing title", func(d *ContestDraft) { d.Title = "" }},
		{"window reversed", func(d *ContestDraft) { d.StartTime, d.EndTime = d.EndTime, d.StartTime }},
		{"question untitled", func(d *ContestDraft) { d.Questions[0].Title = "" }},
		{"no points", func(d *ContestDraft) { d.Questions[0].Points = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft(svc)
			tc.mutate(&d)
			if err := svc.Save(context.Background(), d); !errors.Is(err, common.ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
	if len(creator.calls) != 0 {
		t.Fatalf("invalid drafts reached the API %d times", len(creator.calls))
	}
}

func TestSaveSendsWireShape(t *testing.T) {
	creator := &fakeContestCreator{}
	svc := NewCreatorService(creator)
	d := validDraft(svc)

	if err := svc.Save(context.Background(), d); err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(creator.calls) != 1 {
		t.Fatalf("save fired %d calls, want 1", len(creator.calls))
	}
	req := creator.calls[0]
	if req.Title != d.Title || req.Description != d.Description {
		t.Errorf("metadata = %q/%q", req.Title, req.Description)
	}
	if len(req.MultipleQues) != 1 {
		t.Fatalf("sent %d questions, want 1", len(req.MultipleQues))
	}
	q := req.MultipleQues[0]
	if q.Title != "Warmup" || q.TestCases.Input != "1###2" {
		t.Errorf("question wire shape = %+v", q)
	}
}
