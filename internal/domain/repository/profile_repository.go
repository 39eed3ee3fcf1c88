package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okellojun/HackLab/internal/domain/model"
)

// ProfileRepository reads the hacker-facing child rows of a user. Absent rows
// are not errors: single-row lookups return nil, lists return empty slices.
type ProfileRepository interface {
	FindHackerProfile(ctx context.Context, userID string) (*model.HackerProfile, error)
	ListSkills(ctx context.Context, userID string) ([]string, error)
	ListAchievements(ctx context.Context, userID string) ([]model.Achievement, error)
	ListRecentProblems(ctx context.Context, userID string, limit int) ([]model.RecentProblem, error)
	FindSocial(ctx context.Context, userID string) (model.SocialLinks, error)
}

type pgProfileRepository struct {
	db *sql.DB
}

func NewPgProfileRepository(db *sql.DB) ProfileRepository {
	return &pgProfileRepository{db: db}
}

func (r *pgProfileRepository) FindHackerProfile(ctx context.Context, userID string) (*model.HackerProfile, error) {
	query := `SELECT name, title, location, join_date, avatar, rating::float8,
	                 problems_solved, hackathons_won, total_earnings::float8, bio
	          FROM hacker_profiles WHERE user_id = $1`
	p := &model.HackerProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.Name, &p.Title, &p.Location, &p.JoinDate, &p.Avatar, &p.Rating,
		&p.ProblemsSolved, &p.HackathonsWon, &p.TotalEarnings, &p.Bio,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("pgProfileRepository.FindHackerProfile: %w", err)
	}
	return p, nil
}

func (r *pgProfileRepository) ListSkills(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT skill FROM hacker_skills WHERE user_id = $1 ORDER BY skill`, userID)
	if err != nil {
		return nil, fmt.Errorf("pgProfileRepository.ListSkills: %w", err)
	}
	defer rows.Close()

	skills := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("pgProfileRepository.ListSkills scan: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProfileRepository.ListSkills rows: %w", err)
	}
	return skills, nil
}

func (r *pgProfileRepository) ListAchievements(ctx context.Context, userID string) ([]model.Achievement, error) {
	query := `SELECT title, date, prize::float8 FROM hacker_achievements
	          WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgProfileRepository.ListAchievements: %w", err)
	}
	defer rows.Close()

	achievements := []model.Achievement{}
	for rows.Next() {
		var a model.Achievement
		if err := rows.Scan(&a.Title, &a.Date, &a.Prize); err != nil {
			return nil, fmt.Errorf("pgProfileRepository.ListAchievements scan: %w", err)
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProfileRepository.ListAchievements rows: %w", err)
	}
	return achievements, nil
}

func (r *pgProfileRepository) ListRecentProblems(ctx context.Context, userID string, limit int) ([]model.RecentProblem, error) {
	query := `
        SELECT p.title, pp.status, p.bounty::float8, COALESCE(c.username, '')
        FROM problem_progress pp
        JOIN problems p ON pp.problem_id = p.id
        LEFT JOIN users c ON p.company_id = c.id
        WHERE pp.user_id = $1
        ORDER BY pp.updated_at DESC
        LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("pgProfileRepository.ListRecentProblems: %w", err)
	}
	defer rows.Close()

	problems := []model.RecentProblem{}
	for rows.Next() {
		var p model.RecentProblem
		if err := rows.Scan(&p.Title, &p.Status, &p.Bounty, &p.Company); err != nil {
			return nil, fmt.Errorf("pgProfileRepository.ListRecentProblems scan: %w", err)
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProfileRepository.ListRecentProblems rows: %w", err)
	}
	return problems, nil
}

func (r *pgProfileRepository) FindSocial(ctx context.Context, userID string) (model.SocialLinks, error) {
	var s model.SocialLinks
	err := r.db.QueryRowContext(ctx, `SELECT github, linkedin, website FROM hacker_social WHERE user_id = $1`, userID).
		Scan(&s.GitHub, &s.LinkedIn, &s.Website)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SocialLinks{}, nil
		}
		return model.SocialLinks{}, fmt.Errorf("pgProfileRepository.FindSocial: %w", err)
	}
	return s, nil
}
