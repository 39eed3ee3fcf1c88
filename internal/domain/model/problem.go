package model

type ProblemDifficulty string
type ProblemStatus string

const (
	DifficultyEasy   ProblemDifficulty = "Easy"
	DifficultyMedium ProblemDifficulty = "Medium"
	DifficultyHard   ProblemDifficulty = "Hard"

	StatusDraft  ProblemStatus = "Draft"
	StatusActive ProblemStatus = "Active"
	StatusClosed ProblemStatus = "Closed"
)

type Problem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Difficulty  ProblemDifficulty `json:"difficulty"`
	Bounty      float64           `json:"bounty"`
	Deadline    Date              `json:"deadline"`
	Submissions int               `json:"submissions"`
	Status      ProblemStatus     `json:"status"`
	Company     string            `json:"company"`
	Skills      []string          `json:"skills"`
}
