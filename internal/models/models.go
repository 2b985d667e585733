package models

import "time"

// FetchedQuestion marks a trivia API question id as already posted.
type FetchedQuestion struct {
	QuestionID string    `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// RankingEntry is one correct answer. Points are counted by row, not
// accumulated in a column.
type RankingEntry struct {
	UserID   int64     `json:"user_id"`
	ChatID   int64     `json:"chat_id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
}

// ChatRank is an aggregated ranking row for a single chat.
type ChatRank struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}
