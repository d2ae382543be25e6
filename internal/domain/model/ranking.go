package model

// RankingUser is one row of a contest's score table. The API returns the
// list already sorted; the client never re-sorts it.
type RankingUser struct {
	ID             string `json:"_id"`
	Username       string `json:"username"`
	Score          int    `json:"score"`
	TotalTimeTaken int64  `json:"totalTimeTaken"` // milliseconds
}
