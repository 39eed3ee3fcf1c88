package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okellojun/HackLab/internal/domain/model"
)

type ProblemRepository interface {
	// ListPublic returns every problem that is not a Draft, skills attached,
	// in creation order.
	ListPublic(ctx context.Context) ([]model.Problem, error)
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

func (r *pgProblemRepository) ListPublic(ctx context.Context) ([]model.Problem, error) {
	query := `
        SELECT p.id, p.title, p.description, p.category, p.difficulty, p.bounty::float8,
               p.deadline, p.submissions, p.status, COALESCE(c.username, '')
        FROM problems p
        LEFT JOIN users c ON p.company_id = c.id
        WHERE p.status <> 'Draft'
        ORDER BY p.created_at, p.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgProblemRepository.ListPublic: %w", err)
	}
	defer rows.Close()

	problems := []model.Problem{}
	index := make(map[string]int)
	for rows.Next() {
		var p model.Problem
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Difficulty, &p.Bounty,
			&p.Deadline, &p.Submissions, &p.Status, &p.Company,
		); err != nil {
			return nil, fmt.Errorf("pgProblemRepository.ListPublic scan: %w", err)
		}
		p.Skills = []string{}
		index[p.ID] = len(problems)
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.ListPublic rows: %w", err)
	}
	if len(problems) == 0 {
		return problems, nil
	}

	if err := r.attachSkills(ctx, problems, index); err != nil {
		return nil, err
	}
	return problems, nil
}

func (r *pgProblemRepository) attachSkills(ctx context.Context, problems []model.Problem, index map[string]int) error {
	query := `
        SELECT ps.problem_id, ps.skill
        FROM problem_skills ps
        JOIN problems p ON ps.problem_id = p.id
        WHERE p.status <> 'Draft'
        ORDER BY ps.problem_id, ps.skill`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.attachSkills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var problemID, skill string
		if err := rows.Scan(&problemID, &skill); err != nil {
			return fmt.Errorf("pgProblemRepository.attachSkills scan: %w", err)
		}
		// a problem published between the two queries has no slot yet
		if i, ok := index[problemID]; ok {
			problems[i].Skills = append(problems[i].Skills, skill)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("pgProblemRepository.attachSkills rows: %w", err)
	}
	return nil
}
