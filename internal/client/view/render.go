package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/okellojun/HackLab/internal/domain/model"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func renderCards(w io.Writer, cards []model.StatCard) {
	tw := newTable(w)
	for _, c := range cards {
		if c.Change != "" {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Label, c.Value, c.Change)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", c.Label, c.Value)
	}
	tw.Flush()
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func renderActivity(w io.Writer, entries []model.ActivityEntry) {
	fmt.Fprintln(w, "Recent Activity")
	if len(entries) == 0 {
		fmt.Fprintln(w, "  no recent activity")
		return
	}
	tw := newTable(w)
	for _, e := range entries {
		bounty := ""
		if e.Bounty != nil {
			bounty = model.FormatMoney(*e.Bounty)
		}
		fmt.Fprintf(tw, "  %s: %s\t%s\t%s\t%s\n",
			e.Action, deref(e.Title, "-"), deref(e.Hacker, "-"), bounty, e.Time.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func renderUpcoming(w io.Writer, events []model.UpcomingEvent) {
	fmt.Fprintln(w, "Upcoming Events")
	if len(events) == 0 {
		fmt.Fprintln(w, "  no upcoming events")
		return
	}
	tw := newTable(w)
	for _, e := range events {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Title, e.StartDate, model.FormatMoney(e.Prize))
	}
	tw.Flush()
}

func RenderDashboard(w io.Writer, d model.Dashboard) error {
	switch d := d.(type) {
	case model.CompanyDashboard:
		fmt.Fprintln(w, "Company Dashboard")
		renderCards(w, d.CompanyStats)
		fmt.Fprintln(w)
		renderActivity(w, d.RecentActivity)
		fmt.Fprintln(w)
		renderUpcoming(w, d.UpcomingEvents)
	case model.HackerDashboard:
		fmt.Fprintln(w, "Hacker Dashboard")
		renderCards(w, d.HackerStats)
		fmt.Fprintln(w)
		renderActivity(w, d.RecentActivity)
		fmt.Fprintln(w)
		renderUpcoming(w, d.UpcomingEvents)
	default:
		return fmt.Errorf("unsupported dashboard %T", d)
	}
	return nil
}

func RenderAnalytics(w io.Writer, a *model.Analytics) error {
	fmt.Fprintln(w, "Analytics Dashboard")
	renderCards(w, a.Stats)
	fmt.Fprintln(w)
	renderActivity(w, a.RecentActivity)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Hackers")
	tw := newTable(w)
	for i, h := range a.TopHackers {
		fmt.Fprintf(tw, "  %d. %s\t%d solved\t%s\t%.1f\n", i+1, h.Name, h.Solved, model.FormatMoney(h.Earnings), h.Rating)
	}
	return tw.Flush()
}

func renderProblemTable(w io.Writer, problems []model.Problem, withCompany bool) error {
	if len(problems) == 0 {
		fmt.Fprintln(w, "No problems match your filters.")
		return nil
	}
	tw := newTable(w)
	if withCompany {
		fmt.Fprintln(tw, "TITLE\tCATEGORY\tDIFFICULTY\tBOUNTY\tDEADLINE\tCOMPANY\tSKILLS")
	} else {
		fmt.Fprintln(tw, "TITLE\tCATEGORY\tDIFFICULTY\tBOUNTY\tDEADLINE\tSTATUS\tSUBMISSIONS")
	}
	for _, p := range problems {
		if withCompany {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", p.Title, p.Category, p.Difficulty,
				model.FormatMoney(p.Bounty), p.Deadline, p.Company, strings.Join(p.Skills, ", "))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n", p.Title, p.Category, p.Difficulty,
			model.FormatMoney(p.Bounty), p.Deadline, p.Status, p.Submissions)
	}
	return tw.Flush()
}

// RenderCompanyProblems lists a company's view of the marketplace.
func RenderCompanyProblems(w io.Writer, problems []model.Problem, f ProblemFilter) error {
	fmt.Fprintln(w, "Problems")
	return renderProblemTable(w, FilterProblems(problems, f), false)
}

func RenderHackerBrowse(w io.Writer, problems []model.Problem, f ProblemFilter) error {
	filtered := FilterProblems(problems, f)
	fmt.Fprintf(w, "Browse Problems (%d of %d)\n", len(filtered), len(problems))
	return renderProblemTable(w, filtered, true)
}

func RenderHackathons(w io.Writer, hackathons []model.Hackathon) error {
	fmt.Fprintln(w, "Hackathons")
	if len(hackathons) == 0 {
		fmt.Fprintln(w, "No hackathons yet.")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "TITLE\tDATES\tTYPE\tPARTICIPANTS\tPRIZE\tSTATUS\tLOCATION")
	for _, h := range hackathons {
		fmt.Fprintf(tw, "%s\t%s to %s\t%s\t%d/%d\t%s\t%s\t%s\n", h.Title, h.StartDate, h.EndDate, h.Type,
			h.Participants, h.MaxParticipants, model.FormatMoney(h.Prize), h.Status, deref(h.Location, "-"))
	}
	return tw.Flush()
}

func RenderProfile(w io.Writer, p *model.Profile) error {
	fmt.Fprintf(w, "%s (%s)\n", p.Username, p.Role)
	fmt.Fprintf(w, "Email: %s\n", p.Email)
	if hp := p.HackerProfile; hp != nil {
		fmt.Fprintf(w, "%s, %s\n", hp.Name, hp.Title)
		if hp.Location != "" {
			fmt.Fprintf(w, "Location: %s\n", hp.Location)
		}
		fmt.Fprintf(w, "Member since %s, rating %.1f\n", hp.JoinDate, hp.Rating)
		fmt.Fprintf(w, "Solved %d, won %d hackathons, earned %s\n",
			hp.ProblemsSolved, hp.HackathonsWon, model.FormatMoney(hp.TotalEarnings))
		if hp.Bio != "" {
			fmt.Fprintf(w, "\n%s\n", hp.Bio)
		}
	}

	if len(p.Skills) > 0 {
		fmt.Fprintf(w, "\nSkills: %s\n", strings.Join(p.Skills, ", "))
	}

	if len(p.Achievements) > 0 {
		fmt.Fprintln(w, "\nAchievements")
		tw := newTable(w)
		for _, a := range p.Achievements {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.Title, a.Date, model.FormatMoney(a.Prize))
		}
		tw.Flush()
	}

	if len(p.RecentProblems) > 0 {
		fmt.Fprintln(w, "\nRecent Problems")
		tw := newTable(w)
		for _, rp := range p.RecentProblems {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", rp.Title, rp.Status, model.FormatMoney(rp.Bounty), rp.Company)
		}
		tw.Flush()
	}

	for _, link := range []struct {
		name string
		url  *string
	}{{"GitHub", p.Social.GitHub}, {"LinkedIn", p.Social.LinkedIn}, {"Website", p.Social.Website}} {
		if link.url != nil {
			fmt.Fprintf(w, "%s: %s\n", link.name, *link.url)
		}
	}
	return nil
}

// RenderMenu prints the navigation for role with the id to pass to view.
func RenderMenu(w io.Writer, role string) error {
	fmt.Fprintln(w, "Menu")
	tw := newTable(w)
	for _, item := range Navigation(role) {
		fmt.Fprintf(tw, "  %s\t%s\n", item.ID, item.Label)
	}
	return tw.Flush()
}
