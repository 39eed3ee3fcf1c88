package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okellojun/HackLab/internal/domain/model"
)

// ActivityScope narrows a recent-activity feed. The zero value is the whole
// platform feed.
type ActivityScope struct {
	// CompanyID selects entries on the company's problems or by the company.
	CompanyID string
	// HackerID selects the hacker's own entries plus entries with no user.
	HackerID string
}

type ActivityRepository interface {
	ListRecent(ctx context.Context, scope ActivityScope, limit int) ([]model.ActivityEntry, error)
}

type pgActivityRepository struct {
	db *sql.DB
}

func NewPgActivityRepository(db *sql.DB) ActivityRepository {
	return &pgActivityRepository{db: db}
}

const activitySelect = `
        SELECT a.action, p.title, u.username, a.bounty::float8, a.time
        FROM activity a
        LEFT JOIN problems p ON a.problem_id = p.id
        LEFT JOIN users u ON a.user_id = u.id`

func (r *pgActivityRepository) ListRecent(ctx context.Context, scope ActivityScope, limit int) ([]model.ActivityEntry, error) {
	var (
		query string
		args  []any
	)
	switch {
	case scope.CompanyID != "":
		query = activitySelect + `
        WHERE p.company_id::text = $1 OR a.user_id::text = $1
        ORDER BY a.time DESC, a.id DESC
        LIMIT $2`
		args = []any{scope.CompanyID, limit}
	case scope.HackerID != "":
		query = activitySelect + `
        WHERE a.user_id::text = $1 OR a.user_id IS NULL
        ORDER BY a.time DESC, a.id DESC
        LIMIT $2`
		args = []any{scope.HackerID, limit}
	default:
		query = activitySelect + `
        ORDER BY a.time DESC, a.id DESC
        LIMIT $1`
		args = []any{limit}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgActivityRepository.ListRecent: %w", err)
	}
	defer rows.Close()

	entries := []model.ActivityEntry{}
	for rows.Next() {
		var (
			e      model.ActivityEntry
			title  sql.NullString
			hacker sql.NullString
			bounty sql.NullFloat64
		)
		if err := rows.Scan(&e.Action, &title, &hacker, &bounty, &e.Time); err != nil {
			return nil, fmt.Errorf("pgActivityRepository.ListRecent scan: %w", err)
		}
		if title.Valid {
			e.Title = &title.String
		}
		if hacker.Valid {
			e.Hacker = &hacker.String
		}
		if bounty.Valid {
			e.Bounty = &bounty.Float64
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgActivityRepository.ListRecent rows: %w", err)
	}
	return entries, nil
}
