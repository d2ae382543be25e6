package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"codecontest_client/internal/api"
	"codecontest_client/internal/common"
	"codecontest_client/internal/domain/model"
)

type SubmissionState string

const (
	SubmissionIdle      SubmissionState = "idle"
	SubmissionRunning   SubmissionState = "running"
	SubmissionCompleted SubmissionState = "completed"
	SubmissionError     SubmissionState = "error"
)

type JudgeAPI interface {
	Submit(ctx context.Context, req api.SubmitRequest) (api.SubmitResponse, error)
}

// SubmissionService backs the per-question submission panel. It owns the
// test-case lists rebuilt from the question's delimited sample fields and
// reconciles judge verdicts back onto them by ordinal position.
type SubmissionService struct {
	api      JudgeAPI
	question model.Question

	mu       sync.Mutex
	state    SubmissionState
	language model.Language
	filePath string
	cases    []model.TestCase
	last     *api.SubmitResponse
}

func NewSubmissionService(judge JudgeAPI, question model.Question) *SubmissionService {
	cases, dropped := model.SplitTestCases(question.Input, question.ExpectedOutput)
	if dropped > 0 {
		log.Printf("question %s: dropped %d unpaired test-case segments", question.ID, dropped)
	}
	return &SubmissionService{
		api:      judge,
		question: question,
		state:    SubmissionIdle,
		language: model.LanguagePython,
		cases:    cases,
	}
}

func (s *SubmissionService) State() SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastResponse returns the judge response of the most recent completed
// submission, if any.
func (s *SubmissionService) LastResponse() (api.SubmitResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return api.SubmitResponse{}, false
	}
	return *s.last, true
}

func (s *SubmissionService) SetLanguage(l model.Language) error {
	if !l.Valid() {
		return common.Errorf("unknown language %q: %w", l, common.ErrValidation)
	}
	s.mu.Lock()
	s.language = l
	s.mu.Unlock()
	return nil
}

// AttachFile records the solution file to submit and resets the panel to
// idle from any terminal state. The extension check against the selected
// language is advisory: a mismatch is reported but the file stays attached.
func (s *SubmissionService) AttachFile(path string) (extensionMatches bool, err error) {
	if _, err := os.Stat(path); err != nil {
		return false, common.Errorf("solution file: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SubmissionRunning {
		return false, common.Errorf("submission in progress: %w", common.ErrConflict)
	}
	s.filePath = path
	s.state = SubmissionIdle
	s.last = nil
	return strings.EqualFold(filepath.Ext(path), s.language.Extension()), nil
}

// Cases returns the visible prefix and hidden remainder of the test cases.
func (s *SubmissionService) Cases() (visible, hidden []model.TestCase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tc := range s.cases {
		if tc.Visible {
			visible = append(visible, tc)
		} else {
			hidden = append(hidden, tc)
		}
	}
	return visible, hidden
}

// Submit sends the attached file and the full test-case batch to the judge
// in a single round trip and reconciles the verdicts. No retry: a transport
// or API failure moves the panel to the error state and forces every case to
// fail without fabricating output.
func (s *SubmissionService) Submit(ctx context.Context) (api.SubmitResponse, error) {
	s.mu.Lock()
	if s.state == SubmissionRunning {
		s.mu.Unlock()
		return api.SubmitResponse{}, common.Errorf("submission in progress: %w", common.ErrConflict)
	}
	if s.filePath == "" {
		s.mu.Unlock()
		return api.SubmitResponse{}, common.Errorf("no solution file attached: %w", common.ErrValidation)
	}
	s.state = SubmissionRunning
	s.last = nil
	for i := range s.cases {
		s.cases[i].Verdict = model.VerdictPending
		s.cases[i].ActualOutput = ""
		s.cases[i].ExecutionTime = ""
	}
	filePath := s.filePath
	language := s.language
	req := api.SubmitRequest{
		QuestionID: s.question.ID,
		Language:   language,
		Input:      model.JoinInputs(s.cases),
		Output:     model.JoinExpectedOutputs(s.cases),
		Timeout:    strconv.Itoa(s.question.SubmitTimeoutSeconds()),
	}
	s.mu.Unlock()

	code, err := os.ReadFile(filePath)
	if err != nil {
		s.fail()
		return api.SubmitResponse{}, common.Errorf("read solution file: %w", err)
	}
	req.Code = string(code)

	resp, err := s.api.Submit(ctx, req)
	if err != nil {
		s.fail()
		return api.SubmitResponse{}, common.Errorf("submit: %w", err)
	}

	s.mu.Lock()
	s.reconcile(resp.Results)
	s.last = &resp
	s.state = SubmissionCompleted
	s.mu.Unlock()
	return resp, nil
}

// fail marks every case failed after a transport or API error. Actual
// output and timing stay empty; nothing from a partial response is kept.
func (s *SubmissionService) fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cases {
		s.cases[i].Verdict = model.VerdictFail
		s.cases[i].ActualOutput = ""
		s.cases[i].ExecutionTime = ""
	}
	s.state = SubmissionError
}

// reconcile maps result i onto test case i. The judge preserves the ordinal
// order of the concatenated request, so position is the only join key.
func (s *SubmissionService) reconcile(results []model.TestResult) {
	for i := range s.cases {
		if i >= len(results) {
			break
		}
		r := results[i]
		if r.Correct {
			s.cases[i].Verdict = model.VerdictPass
		} else {
			s.cases[i].Verdict = model.VerdictFail
		}
		s.cases[i].ActualOutput = strings.TrimSpace(r.Output)
		s.cases[i].ExecutionTime = r.Timeout
	}
}
