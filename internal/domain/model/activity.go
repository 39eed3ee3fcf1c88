package model

import "time"

// ActivityEntry is one row of a recent-activity feed. Title and Hacker are
// nil when the entry is not tied to a problem or a user.
type ActivityEntry struct {
	Action string    `json:"action"`
	Title  *string   `json:"title"`
	Hacker *string   `json:"hacker"`
	Bounty *float64  `json:"bounty"`
	Time   time.Time `json:"time"`
}
