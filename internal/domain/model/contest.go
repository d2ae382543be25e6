package model

import "time"

type ContestStatus string

const (
	ContestUpcoming ContestStatus = "upcoming"
	ContestActive   ContestStatus = "active"
	ContestEnded    ContestStatus = "ended"
)

type ContestDifficulty string

const (
	DifficultyEasy   ContestDifficulty = "Easy"
	DifficultyMedium ContestDifficulty = "Medium"
	DifficultyHard   ContestDifficulty = "Hard"
)

// Contest mirrors the record stored by the contest API. Status is never part
// of the stored record; it is derived from the time window on every read.
type Contest struct {
	ID             string    `json:"_id"`
	Title          string    `json:"contesttitle"`
	Description    string    `json:"contestdesc"`
	CreatedBy      string    `json:"createdby"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	QuestionIDs    []string  `json:"quesId"`
	ParticipantIDs []string  `json:"userId"`
}

func (c Contest) IsZero() bool {
	return c.ID == ""
}

// StatusAt derives the contest status from the stored time window. The three
// outcomes partition the timeline: strictly before the window is upcoming,
// inside it (both bounds inclusive) is active, after it is ended.
func (c Contest) StatusAt(now time.Time) ContestStatus {
	if now.Before(c.StartTime) {
		return ContestUpcoming
	}
	if !now.After(c.EndTime) {
		return ContestActive
	}
	return ContestEnded
}

// HasParticipant reports whether the user already joined the contest.
func (c Contest) HasParticipant(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}
