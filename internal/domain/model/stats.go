package model

import (
	"strconv"
)

// StatCard is one labelled figure on the analytics or dashboard page.
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// FormatMoney renders a currency amount the way stat cards show it, e.g. "$1500"
// or "$1500.50".
func FormatMoney(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

func FormatCount(n int) string {
	return strconv.Itoa(n)
}

type PlatformStats struct {
	TotalProblems    int
	ActiveHackers    int
	HackathonsHosted int
	TotalBountyPaid  float64
}

func (s PlatformStats) Cards() []StatCard {
	return []StatCard{
		{Label: "Total Problems Posted", Value: FormatCount(s.TotalProblems)},
		{Label: "Active Hackers", Value: FormatCount(s.ActiveHackers)},
		{Label: "Hackathons Hosted", Value: FormatCount(s.HackathonsHosted)},
		{Label: "Total Bounty Paid", Value: FormatMoney(s.TotalBountyPaid)},
	}
}

type TopHacker struct {
	Name     string  `json:"name"`
	Solved   int     `json:"solved"`
	Earnings float64 `json:"earnings"`
	Rating   float64 `json:"rating"`
}

type Analytics struct {
	Stats          []StatCard      `json:"stats"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
	TopHackers     []TopHacker     `json:"topHackers"`
}

type CompanyStats struct {
	ActiveProblems   int
	TotalHackers     int
	HackathonsHosted int
	BountyPaid       float64
}

func (s CompanyStats) Cards() []StatCard {
	return []StatCard{
		{Label: "Active Problems", Value: FormatCount(s.ActiveProblems)},
		{Label: "Total Hackers", Value: FormatCount(s.TotalHackers)},
		{Label: "Hackathons Hosted", Value: FormatCount(s.HackathonsHosted)},
		{Label: "Bounty Paid", Value: FormatMoney(s.BountyPaid)},
	}
}

type HackerStats struct {
	ProblemsSolved  int
	ReputationScore float64
	HackathonsWon   int
	Earnings        float64
}

func (s HackerStats) Cards() []StatCard {
	return []StatCard{
		{Label: "Problems Solved", Value: FormatCount(s.ProblemsSolved)},
		{Label: "Reputation Score", Value: strconv.FormatFloat(s.ReputationScore, 'f', -1, 64)},
		{Label: "Hackathons Won", Value: FormatCount(s.HackathonsWon)},
		{Label: "Earnings", Value: FormatMoney(s.Earnings)},
	}
}
