package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okellojun/HackLab/internal/domain/model"
)

const All = "All"

var (
	Categories   = []string{All, "Frontend", "Backend", "Mobile", "AI/ML", "Cybersecurity", "Database"}
	Difficulties = []string{All, "Easy", "Medium", "Hard"}
)

var ErrUnknownChoice = errors.New("unknown choice")

// Choice checks v against a dropdown's options. Empty selects All.
func Choice(options []string, v string) (string, error) {
	if v == "" {
		return All, nil
	}
	for _, o := range options {
		if o == v {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w %q, want one of %s", ErrUnknownChoice, v, strings.Join(options, ", "))
}

// ProblemFilter is the browse page's search box and two dropdowns. Empty
// Category or Difficulty behave like All.
type ProblemFilter struct {
	Search     string
	Category   string
	Difficulty string
}

func (f ProblemFilter) Matches(p model.Problem) bool {
	return f.matchesSearch(p) &&
		matchesChoice(f.Category, p.Category) &&
		matchesChoice(f.Difficulty, string(p.Difficulty))
}

func (f ProblemFilter) matchesSearch(p model.Problem) bool {
	term := strings.ToLower(f.Search)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func matchesChoice(choice, value string) bool {
	return choice == "" || choice == All || choice == value
}

// FilterProblems keeps the input order.
func FilterProblems(problems []model.Problem, f ProblemFilter) []model.Problem {
	out := make([]model.Problem, 0, len(problems))
	for _, p := range problems {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
