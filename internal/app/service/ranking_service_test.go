package service

import (
	"context"
	"errors"
	"testing"

	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
)

type fakeRankingAPI struct {
	rankingsFn func(contestID string) ([]model.RankingUser, error)
}

func (f *fakeRankingAPI) Rankings(_ context.Context, contestID string) ([]model.RankingUser, error) {
	if f.rankingsFn == nil {
		return nil, errors.New("Rankings not implemented")
	}
	return f.rankingsFn(contestID)
}

func TestRankingsRequireContestID(t *testing.T) {
	svc := NewRankingService(&fakeRankingAPI{})
	if _, err := svc.Rankings(context.Background(), ""); !errors.Is(err, common.ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
}

func TestRankingsPreserveServerOrder(t *testing.T) {
	svc := NewRankingService(&fakeRankingAPI{
		rankingsFn: func(contestID string) ([]model.RankingUser, error) {
			if contestID != "c1" {
				t.Fatalf("contest id = %q", contestID)
			}
			return []model.RankingUser{
				{ID: "u2", Username: "bob", Score: 300, TotalTimeTaken: 5400},
				{ID: "u1", Username: "alice", Score: 300, TotalTimeTaken: 6100},
				{ID: "u3", Username: "eve", Score: 100, TotalTimeTaken: 900},
			}, nil
		},
	})

	rankings, err := svc.Rankings(context.Background(), "c1")
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	if len(rankings) != 3 || rankings[0].Username != "bob" || rankings[2].Username != "eve" {
		t.Fatalf("server order not preserved: %+v", rankings)
	}
}
