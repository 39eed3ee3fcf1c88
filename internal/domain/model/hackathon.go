package model

type HackathonType string
type HackathonStatus string

const (
	HackathonVirtual  HackathonType = "Virtual"
	HackathonInPerson HackathonType = "In-person"
	HackathonHybrid   HackathonType = "Hybrid"

	HackathonUpcoming  HackathonStatus = "Upcoming"
	HackathonActive    HackathonStatus = "Active"
	HackathonCompleted HackathonStatus = "Completed"
)

type Hackathon struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	StartDate       Date            `json:"startDate"`
	EndDate         Date            `json:"endDate"`
	Type            HackathonType   `json:"type"`
	Participants    int             `json:"participants"`
	MaxParticipants int             `json:"maxParticipants"`
	Prize           float64         `json:"prize"`
	Status          HackathonStatus `json:"status"`
	Location        *string         `json:"location,omitempty"`
}

// UpcomingEvent is the dashboard's short form of a hackathon.
type UpcomingEvent struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	StartDate Date    `json:"startDate"`
	Prize     float64 `json:"prize"`
}
