package api

import (
	"context"
	"net/http"
	"time"

	"codecontest_client/internal/domain/model"
)

type contestListResponse struct {
	AllList []model.Contest `json:"alllist"`
}

func (c *Client) ListContests(ctx context.Context) ([]model.Contest, error) {
	var resp contestListResponse
	if err := c.do(ctx, http.MethodGet, "/api/contest/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.AllList, nil
}

type fetchQuestionsRequest struct {
	IDs []string `json:"ids"`
}

type fetchQuestionsResponse struct {
	Questions []model.Question `json:"questions"`
}

func (c *Client) FetchQuestions(ctx context.Context, ids []string) ([]model.Question, error) {
	var resp fetchQuestionsResponse
	err := c.do(ctx, http.MethodPost, "/api/contest/fetch-multiple", fetchQuestionsRequest{IDs: ids}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

type startContestRequest struct {
	ID string `json:"id"`
}

type startContestResponse struct {
	Contest model.Contest `json:"contest"`
}

// StartContest joins the caller to the contest and returns the refreshed
// contest record. The server treats repeated joins as a no-op.
func (c *Client) StartContest(ctx context.Context, id string) (model.Contest, error) {
	var resp startContestResponse
	err := c.do(ctx, http.MethodPost, "/api/contest/start", startContestRequest{ID: id}, &resp)
	return resp.Contest, err
}

// QuestionDraft is the creation-time wire form of a question. Each draft
// carries exactly one delimited test-case pair, matching the creator form.
type QuestionDraft struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Difficulty  model.ContestDifficulty `json:"difficulty"`
	TimeLimit   int                     `json:"timeLimit"`
	MemoryLimit int                     `json:"memoryLimit"`
	Points      int                     `json:"points"`
	TestCases   TestCasePair            `json:"testCases"`
}

type TestCasePair struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

type CreateContestRequest struct {
	MultipleQues []QuestionDraft `json:"multipleQues"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      time.Time       `json:"endTime"`
	Title        string          `json:"contesttitle"`
	Description  string          `json:"contestdesc"`
}

func (c *Client) CreateContest(ctx context.Context, req CreateContestRequest) error {
	return c.do(ctx, http.MethodPost, "/api/contest/create", req, nil)
}

func (c *Client) Rankings(ctx context.Context, contestID string) ([]model.RankingUser, error) {
	var resp []model.RankingUser
	err := c.do(ctx, http.MethodGet, "/api/contest/rankings/"+contestID, nil, &resp)
	return resp, err
}
