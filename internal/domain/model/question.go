package model

// Question is a single contest problem. Input and ExpectedOutput each pack
// the ordered sample cases into one string, separated by CaseDelimiter.
type Question struct {
	ID             string            `json:"_id"`
	ContestID      string            `json:"contestId"`
	Title          string            `json:"title"`
	Description    string            `json:"desc"`
	Difficulty     ContestDifficulty `json:"difficulty"`
	TimeLimit      int               `json:"timeLimit"`   // seconds
	MemoryLimit    int               `json:"memoryLimit"` // megabytes
	Points         int               `json:"points"`
	Input          string            `json:"input"`
	ExpectedOutput string            `json:"expectedOutput"`
}

func (q Question) IsZero() bool {
	return q.ID == ""
}

// DefaultSubmitTimeoutSeconds applies when a question has no time limit set.
const DefaultSubmitTimeoutSeconds = 3

// SubmitTimeoutSeconds is the judge-side timeout for one submission run.
func (q Question) SubmitTimeoutSeconds() int {
	if q.TimeLimit > 0 {
		return q.TimeLimit
	}
	return DefaultSubmitTimeoutSeconds
}
