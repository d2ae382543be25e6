package model

import "strings"

// CaseDelimiter separates the logical test cases packed into a question's
// input and expected-output fields.
const CaseDelimiter = "###"

// VisibleCaseCount is the fixed number of leading test cases shown to the
// participant; everything after them is hidden. Not configurable per question.
const VisibleCaseCount = 2

type Verdict string

const (
	VerdictPending Verdict = "pending"
	VerdictPass    Verdict = "pass"
	VerdictFail    Verdict = "fail"
)

// TestCase is rebuilt from the question's delimited fields every time a
// question is opened; it is never persisted.
type TestCase struct {
	Index          int
	Input          string
	ExpectedOutput string
	Visible        bool
	Verdict        Verdict
	ActualOutput   string
	ExecutionTime  string
}

// SplitTestCases splits the delimited input and expected-output strings into
// ordered test cases, pairing segment i of one with segment i of the other.
// When the two sides disagree on segment count the list is truncated to the
// shorter side; the second return value is how many segments were dropped.
// All verdicts start out pending. A question with either field blank has no
// test cases at all.
func SplitTestCases(input, expectedOutput string) ([]TestCase, int) {
	if strings.TrimSpace(input) == "" || strings.TrimSpace(expectedOutput) == "" {
		return nil, 0
	}
	inputs := splitSegments(input)
	outputs := splitSegments(expectedOutput)

	n := len(inputs)
	if len(outputs) < n {
		n = len(outputs)
	}
	dropped := len(inputs) + len(outputs) - 2*n

	cases := make([]TestCase, 0, n)
	for i := 0; i < n; i++ {
		cases = append(cases, TestCase{
			Index:          i,
			Input:          inputs[i],
			ExpectedOutput: outputs[i],
			Visible:        i < VisibleCaseCount,
			Verdict:        VerdictPending,
		})
	}
	return cases, dropped
}

func splitSegments(s string) []string {
	parts := strings.Split(s, CaseDelimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// JoinInputs concatenates the cases' inputs back into the wire form sent to
// the judge, preserving ordinal order.
func JoinInputs(cases []TestCase) string {
	parts := make([]string, len(cases))
	for i, tc := range cases {
		parts[i] = tc.Input
	}
	return strings.Join(parts, CaseDelimiter)
}

// JoinExpectedOutputs is the expected-output counterpart of JoinInputs.
func JoinExpectedOutputs(cases []TestCase) string {
	parts := make([]string, len(cases))
	for i, tc := range cases {
		parts[i] = tc.ExpectedOutput
	}
	return strings.Join(parts, CaseDelimiter)
}
