package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okellojun/HackLab/internal/domain/model"
)

// StatsRepository computes aggregates on every call; nothing is cached.
type StatsRepository interface {
	PlatformStats(ctx context.Context) (model.PlatformStats, error)
	TopHackers(ctx context.Context, limit int) ([]model.TopHacker, error)
	CompanyStats(ctx context.Context, companyID string) (model.CompanyStats, error)
	HackerStats(ctx context.Context, userID string) (model.HackerStats, error)
}

type pgStatsRepository struct {
	db *sql.DB
}

func NewPgStatsRepository(db *sql.DB) StatsRepository {
	return &pgStatsRepository{db: db}
}

func (r *pgStatsRepository) PlatformStats(ctx context.Context) (model.PlatformStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM problems),
            (SELECT COUNT(DISTINCT user_id) FROM solutions),
            (SELECT COUNT(*) FROM hackathons),
            (SELECT COALESCE(SUM(bounty), 0)::float8 FROM solutions)`
	var s model.PlatformStats
	err := r.db.QueryRowContext(ctx, query).Scan(&s.TotalProblems, &s.ActiveHackers, &s.HackathonsHosted, &s.TotalBountyPaid)
	if err != nil {
		return model.PlatformStats{}, fmt.Errorf("pgStatsRepository.PlatformStats: %w", err)
	}
	return s, nil
}

// TopHackers ranks every user by solved count, so users without solutions
// still fill the list with zero counts.
func (r *pgStatsRepository) TopHackers(ctx context.Context, limit int) ([]model.TopHacker, error) {
	query := `
        SELECT u.username, COUNT(s.id), COALESCE(SUM(s.bounty), 0)::float8,
               COALESCE(AVG(hp.rating), 0)::float8
        FROM users u
        LEFT JOIN solutions s ON s.user_id = u.id
        LEFT JOIN hacker_profiles hp ON hp.user_id = u.id
        GROUP BY u.id, u.username, u.created_at
        ORDER BY COUNT(s.id) DESC, u.created_at, u.id
        LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pgStatsRepository.TopHackers: %w", err)
	}
	defer rows.Close()

	hackers := []model.TopHacker{}
	for rows.Next() {
		var h model.TopHacker
		if err := rows.Scan(&h.Name, &h.Solved, &h.Earnings, &h.Rating); err != nil {
			return nil, fmt.Errorf("pgStatsRepository.TopHackers scan: %w", err)
		}
		hackers = append(hackers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgStatsRepository.TopHackers rows: %w", err)
	}
	return hackers, nil
}

func (r *pgStatsRepository) CompanyStats(ctx context.Context, companyID string) (model.CompanyStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM problems WHERE company_id = $1 AND status = 'Active'),
            (SELECT COUNT(*) FROM users WHERE role = 'hacker'),
            (SELECT COUNT(*) FROM hackathons WHERE created_by = $1),
            (SELECT COALESCE(SUM(s.bounty), 0)::float8
               FROM solutions s JOIN problems p ON s.problem_id = p.id
              WHERE p.company_id = $1)`
	var s model.CompanyStats
	err := r.db.QueryRowContext(ctx, query, companyID).Scan(&s.ActiveProblems, &s.TotalHackers, &s.HackathonsHosted, &s.BountyPaid)
	if err != nil {
		return model.CompanyStats{}, fmt.Errorf("pgStatsRepository.CompanyStats: %w", err)
	}
	return s, nil
}

// HackerStats returns zeroed stats for an unknown user.
func (r *pgStatsRepository) HackerStats(ctx context.Context, userID string) (model.HackerStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM solutions WHERE user_id = u.id),
            u.reputation::float8,
            (SELECT COUNT(*) FROM hackathon_winners WHERE user_id = u.id),
            (SELECT COALESCE(SUM(bounty), 0)::float8 FROM solutions WHERE user_id = u.id)
        FROM users u
        WHERE u.id = $1`
	var s model.HackerStats
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.ProblemsSolved, &s.ReputationScore, &s.HackathonsWon, &s.Earnings)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.HackerStats{}, nil
		}
		return model.HackerStats{}, fmt.Errorf("pgStatsRepository.HackerStats: %w", err)
	}
	return s, nil
}
