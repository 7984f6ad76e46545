package domain

import "time"

// QuizAttempt tracks one learner's progress through a module quiz.
type QuizAttempt struct {
	ID        string      `json:"id"`
	Module    int         `json:"module"`
	Current   int         `json:"current"`
	Answers   map[int]int `json:"answers"`
	Finished  bool        `json:"finished"`
	Score     int         `json:"score"`
	StartedAt time.Time   `json:"startedAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
