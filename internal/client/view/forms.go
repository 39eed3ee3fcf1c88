package view

import (
	"fmt"
	"io"
)

// The create and edit forms hold values and a modal flag only. Submitting
// closes the modal; nothing is sent to the API.

type FormField struct {
	Label string
	Value *string
}

type Form interface {
	Heading() string
	Fields() []FormField
	Show()
	Cancel()
	Submit()
	IsOpen() bool
}

// NewForm returns the empty form for "problem", "hackathon" or "profile".
func NewForm(kind string) (Form, error) {
	switch kind {
	case "problem":
		return &ProblemForm{}, nil
	case "hackathon":
		return &HackathonForm{}, nil
	case "profile":
		return &ProfileForm{}, nil
	default:
		return nil, fmt.Errorf("unknown form %q", kind)
	}
}

type ProblemForm struct {
	Open        bool
	Title       string
	Description string
	Category    string
	Difficulty  string
	Bounty      string
	Deadline    string
	Skills      string
}

func (f *ProblemForm) Show()        { f.Open = true }
func (f *ProblemForm) Cancel()      { f.Open = false }
func (f *ProblemForm) Submit()      { f.Open = false }
func (f *ProblemForm) IsOpen() bool { return f.Open }

func (f *ProblemForm) Heading() string { return "Post New Problem" }

func (f *ProblemForm) Fields() []FormField {
	return []FormField{
		{"Problem Title", &f.Title},
		{"Description", &f.Description},
		{"Category", &f.Category},
		{"Difficulty", &f.Difficulty},
		{"Bounty Amount", &f.Bounty},
		{"Deadline", &f.Deadline},
		{"Required Skills", &f.Skills},
	}
}

type HackathonForm struct {
	Open            bool
	Title           string
	Description     string
	StartDate       string
	EndDate         string
	Type            string
	MaxParticipants string
	Prize           string
	Location        string
}

func (f *HackathonForm) Show()        { f.Open = true }
func (f *HackathonForm) Cancel()      { f.Open = false }
func (f *HackathonForm) Submit()      { f.Open = false }
func (f *HackathonForm) IsOpen() bool { return f.Open }

func (f *HackathonForm) Heading() string { return "Create New Hackathon" }

func (f *HackathonForm) Fields() []FormField {
	return []FormField{
		{"Hackathon Title", &f.Title},
		{"Description", &f.Description},
		{"Start Date", &f.StartDate},
		{"End Date", &f.EndDate},
		{"Type", &f.Type},
		{"Max Participants", &f.MaxParticipants},
		{"Prize Pool", &f.Prize},
		{"Location", &f.Location},
	}
}

type ProfileForm struct {
	Open   bool
	Name   string
	Title  string
	Bio    string
	Skills string
}

func (f *ProfileForm) Show()        { f.Open = true }
func (f *ProfileForm) Cancel()      { f.Open = false }
func (f *ProfileForm) Submit()      { f.Open = false }
func (f *ProfileForm) IsOpen() bool { return f.Open }

func (f *ProfileForm) Heading() string { return "Edit Profile" }

func (f *ProfileForm) Fields() []FormField {
	return []FormField{
		{"Name", &f.Name},
		{"Title", &f.Title},
		{"Bio", &f.Bio},
		{"Skills", &f.Skills},
	}
}

// RenderForm prints the form's current values.
func RenderForm(w io.Writer, f Form) error {
	fmt.Fprintln(w, f.Heading())
	tw := newTable(w)
	for _, fl := range f.Fields() {
		fmt.Fprintf(tw, "  %s\t%s\n", fl.Label, *fl.Value)
	}
	return tw.Flush()
}
