package view

import "github.com/okellojun/HackLab/internal/domain/model"

type NavItem struct {
	ID    string
	Label string
}

var (
	companyNav = []NavItem{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "problems", Label: "Problems"},
		{ID: "hackathons", Label: "Hackathons"},
		{ID: "analytics", Label: "Analytics"},
	}
	hackerNav = []NavItem{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "browse", Label: "Browse Problems"},
		{ID: "hackathons", Label: "Hackathons"},
		{ID: "profile", Label: "Profile"},
	}
)

// Navigation lists the menu for a role. Anything that is not a company gets
// the hacker menu.
func Navigation(role string) []NavItem {
	if role == model.RoleCompany {
		return append([]NavItem(nil), companyNav...)
	}
	return append([]NavItem(nil), hackerNav...)
}

type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenCompanyProblems
	ScreenHackerBrowse
	ScreenHackathons
	ScreenAnalytics
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenCompanyProblems:
		return "CompanyProblems"
	case ScreenHackerBrowse:
		return "HackerBrowse"
	case ScreenHackathons:
		return "HackathonManagement"
	case ScreenAnalytics:
		return "Analytics"
	case ScreenProfile:
		return "HackerProfile"
	default:
		return "Dashboard"
	}
}

// Route maps a navigation id to the screen that renders it. "problems" is
// role dependent and unknown ids fall back to the dashboard.
func Route(id, role string) Screen {
	switch id {
	case "problems":
		if role == model.RoleCompany {
			return ScreenCompanyProblems
		}
		return ScreenHackerBrowse
	case "browse":
		return ScreenHackerBrowse
	case "hackathons":
		return ScreenHackathons
	case "analytics":
		return ScreenAnalytics
	case "profile":
		return ScreenProfile
	default:
		return ScreenDashboard
	}
}
