package api

import (
	"context"
	"net/http"

	"codecontest_client/internal/domain/model"
)

// SubmitRequest carries one full judge run: the code and every known test
// case (visible and hidden) concatenated with the case delimiter. Timeout is
// in seconds, string-encoded as the judge expects.
type SubmitRequest struct {
	Code       string         `json:"code"`
	QuestionID string         `json:"qId"`
	Language   model.Language `json:"language"`
	Input      string         `json:"input"`
	Output     string         `json:"output"`
	Timeout    string         `json:"timeout"`
}

// SubmitResponse holds the judge's verdict list, one entry per test case in
// the ordinal order of the request.
type SubmitResponse struct {
	Message   string             `json:"message"`
	AllPassed bool               `json:"allPassed"`
	JobID     string             `json:"jobId"`
	Results   []model.TestResult `json:"results"`
}

func (c *Client) Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	var resp SubmitResponse
	err := c.do(ctx, http.MethodPost, "/api/submit", req, &resp)
	return resp, err
}
