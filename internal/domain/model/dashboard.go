package model

// Dashboard is the role-branched GET /dashboard payload. Exactly one of
// CompanyDashboard or HackerDashboard implements it.
type Dashboard interface {
	DashboardRole() string
}

type CompanyDashboard struct {
	CompanyStats   []StatCard      `json:"companyStats"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
	UpcomingEvents []UpcomingEvent `json:"upcomingEvents"`
}

func (CompanyDashboard) DashboardRole() string { return RoleCompany }

type HackerDashboard struct {
	HackerStats    []StatCard      `json:"hackerStats"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
	UpcomingEvents []UpcomingEvent `json:"upcomingEvents"`
}

func (HackerDashboard) DashboardRole() string { return RoleHacker }
