package model

type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "Easy"
	DifficultyMedium ChallengeDifficulty = "Medium"
	DifficultyHard   ChallengeDifficulty = "Hard"
)

// Challenge is one coding problem as shown in the workspace and the entry
// listing. Instances are immutable once loaded; the slug is derived
// client-side from the title since the server does not provide one.
type Challenge struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	Difficulty  ChallengeDifficulty `json:"difficulty"`
}
