package model

import "math"

// UserProfile mirrors the server's user shape. AttemptedQuestions >= Solved is
// assumed by CompletionPercent; the server maintains that invariant.
type UserProfile struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	QuestionsSolved    int    `json:"no_of_questions_solved"`
	AttemptedQuestions int    `json:"attempted_questions"`
	BadgesEarned       int    `json:"badges_earned"`
	EarnedPoints       int    `json:"earned_points"`
}

// CompletionPercent is solved/attempted as a rounded percentage. A user with
// zero attempts is 0%, not a division by zero.
func (u UserProfile) CompletionPercent() int {
	attempted := u.AttemptedQuestions
	if attempted < 1 {
		attempted = 1
	}
	return int(math.Round(float64(u.QuestionsSolved) / float64(attempted) * 100))
}
