package service

import (
	"context"

	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
)

type RankingAPI interface {
	Rankings(ctx context.Context, contestID string) ([]model.RankingUser, error)
}

// RankingService backs the per-contest score table: one fetch per visit,
// rendered in the server's order.
type RankingService struct {
	api RankingAPI
}

func NewRankingService(api RankingAPI) *RankingService {
	return &RankingService{api: api}
}

func (s *RankingService) Rankings(ctx context.Context, contestID string) ([]model.RankingUser, error) {
	if contestID == "" {
		return nil, common.Errorf("contest id required: %w", common.ErrBadRequest)
	}
	rankings, err := s.api.Rankings(ctx, contestID)
	if err != nil {
		return nil, common.Errorf("fetch rankings: %w", err)
	}
	return rankings, nil
}
