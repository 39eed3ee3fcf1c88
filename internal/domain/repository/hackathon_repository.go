package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/okellojun/HackLab/internal/domain/model"
)

type HackathonRepository interface {
	ListAll(ctx context.Context) ([]model.Hackathon, error)
	// ListUpcoming returns hackathons starting today or later, soonest first.
	// An empty createdBy means hackathons from every organiser.
	ListUpcoming(ctx context.Context, createdBy string, limit int) ([]model.UpcomingEvent, error)
}

type pgHackathonRepository struct {
	db *sql.DB
}

func NewPgHackathonRepository(db *sql.DB) HackathonRepository {
	return &pgHackathonRepository{db: db}
}

func (r *pgHackathonRepository) ListAll(ctx context.Context) ([]model.Hackathon, error) {
	query := `
        SELECT id, title, description, start_date, end_date, type, participants,
               max_participants, prize::float8, status, location
        FROM hackathons
        ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgHackathonRepository.ListAll: %w", err)
	}
	defer rows.Close()

	hackathons := []model.Hackathon{}
	for rows.Next() {
		var h model.Hackathon
		var location sql.NullString
		if err := rows.Scan(
			&h.ID, &h.Title, &h.Description, &h.StartDate, &h.EndDate, &h.Type,
			&h.Participants, &h.MaxParticipants, &h.Prize, &h.Status, &location,
		); err != nil {
			return nil, fmt.Errorf("pgHackathonRepository.ListAll scan: %w", err)
		}
		if location.Valid {
			h.Location = &location.String
		}
		hackathons = append(hackathons, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgHackathonRepository.ListAll rows: %w", err)
	}
	return hackathons, nil
}

func (r *pgHackathonRepository) ListUpcoming(ctx context.Context, createdBy string, limit int) ([]model.UpcomingEvent, error) {
	query := `
        SELECT id, title, start_date, prize::float8
        FROM hackathons
        WHERE start_date >= CURRENT_DATE
          AND ($1 = '' OR created_by::text = $1)
        ORDER BY start_date, id
        LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, createdBy, limit)
	if err != nil {
		return nil, fmt.Errorf("pgHackathonRepository.ListUpcoming: %w", err)
	}
	defer rows.Close()

	events := []model.UpcomingEvent{}
	for rows.Next() {
		var e model.UpcomingEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.StartDate, &e.Prize); err != nil {
			return nil, fmt.Errorf("pgHackathonRepository.ListUpcoming scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgHackathonRepository.ListUpcoming rows: %w", err)
	}
	return events, nil
}
