package model

// HackerProfile holds the columns of hacker_profiles. It is embedded by
// pointer in Profile so that a missing row contributes no fields.
type HackerProfile struct {
	Name           string  `json:"name"`
	Title          string  `json:"title"`
	Location       string  `json:"location"`
	JoinDate       Date    `json:"joinDate"`
	Avatar         string  `json:"avatar"`
	Rating         float64 `json:"rating"`
	ProblemsSolved int     `json:"problemsSolved"`
	HackathonsWon  int     `json:"hackathonsWon"`
	TotalEarnings  float64 `json:"totalEarnings"`
	Bio            string  `json:"bio"`
}

type Achievement struct {
	Title string  `json:"title"`
	Date  Date    `json:"date"`
	Prize float64 `json:"prize"`
}

type RecentProblem struct {
	Title   string  `json:"title"`
	Status  string  `json:"status"`
	Bounty  float64 `json:"bounty"`
	Company string  `json:"company"`
}

type SocialLinks struct {
	GitHub   *string `json:"github,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// Profile is the merged GET /profile payload.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	*HackerProfile
	Skills         []string        `json:"skills"`
	Achievements   []Achievement   `json:"achievements"`
	RecentProblems []RecentProblem `json:"recentProblems"`
	Social         SocialLinks     `json:"social"`
}
