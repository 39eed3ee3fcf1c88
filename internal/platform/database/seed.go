package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password123"

var seedNamespace = uuid.MustParse("8f6c1f0e-4d7a-4a57-9a51-6c0b7f1d2e30")

// SeedID derives a stable id from a name so that seeding twice is a no-op.
func SeedID(name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(name)).String()
}

type seedStatement struct {
	query string
	args  []any
}

// Seed inserts the demo marketplace: one company, two hackers, its problems
// (one still a Draft), hackathons, solutions and an activity feed. Rows that
// already exist are left untouched.
func Seed(ctx context.Context, db *sql.DB, hashPassword func(string) (string, error), now time.Time, log *zap.Logger) error {
	hash, err := hashPassword(SeedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	var (
		techcorp = SeedID("user:techcorp")
		alex     = SeedID("user:alex")
		sarah    = SeedID("user:sarah")

		rateLimit = SeedID("problem:rate-limiting")
		chat      = SeedID("problem:chat")
		mobile    = SeedID("problem:mobile")

		aiChallenge = SeedID("hackathon:ai-innovation")
		blockchain  = SeedID("hackathon:blockchain")
	)
	day := func(offset int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, time.UTC)
	}

	stmts := []seedStatement{
		{`INSERT INTO users (id, username, email, password_hash, role, reputation) VALUES
		    ($1, 'techcorp', 'hiring@techcorp.example', $4, 'company', 0),
		    ($2, 'alex', 'alex@hacklab.example', $4, 'hacker', 4.8),
		    ($3, 'sarah', 'sarah@hacklab.example', $4, 'hacker', 4.9)
		  ON CONFLICT DO NOTHING`, []any{techcorp, alex, sarah, hash}},
		{`INSERT INTO hacker_profiles (user_id, name, title, location, join_date, avatar, rating,
		                               problems_solved, hackathons_won, total_earnings, bio)
		  VALUES ($1, 'Alex Rodriguez', 'Full Stack Developer', 'San Francisco, CA', '2024-03-15', '', 4.8, 12, 3, 2340,
		          'Full-stack developer working with React, Node.js and cloud infrastructure.')
		  ON CONFLICT DO NOTHING`, []any{alex}},
		{`INSERT INTO hacker_skills (user_id, skill)
		  SELECT $1::uuid, unnest(ARRAY['React', 'Node.js', 'Python', 'AWS', 'Docker', 'PostgreSQL', 'GraphQL', 'TypeScript'])
		  ON CONFLICT DO NOTHING`, []any{alex}},
		{`INSERT INTO hacker_achievements (id, user_id, title, date, prize) VALUES
		    ($2, $1, 'AI Innovation Challenge Winner', '2024-12-15', 5000),
		    ($3, $1, 'Mobile App Excellence Award', '2024-11-20', 2500),
		    ($4, $1, 'Best API Design', '2024-10-10', 1500)
		  ON CONFLICT DO NOTHING`, []any{alex, SeedID("achievement:ai"), SeedID("achievement:mobile"), SeedID("achievement:api")}},
		{`INSERT INTO hacker_social (user_id, github, linkedin, website)
		  VALUES ($1, 'https://github.com/alexrodriguez', 'https://linkedin.com/in/alexrodriguez', NULL)
		  ON CONFLICT DO NOTHING`, []any{alex}},
		{`INSERT INTO problems (id, company_id, title, description, category, difficulty, bounty, deadline, submissions, status, created_at) VALUES
		    ($1, $4, 'API Rate Limiting Implementation',
		     'Implement rate limiting for a REST API that absorbs burst traffic and returns clear errors.',
		     'Backend', 'Medium', 1500, $5, 12, 'Active', $8),
		    ($2, $4, 'Real-time Chat System',
		     'Build a scalable chat service with presence, typing indicators and message history.',
		     'Backend', 'Hard', 2000, $6, 8, 'Active', $9),
		    ($3, $4, 'Mobile Optimization',
		     'Reduce cold start time and memory use of the companion mobile app.',
		     'Mobile', 'Easy', 2000, $7, 0, 'Draft', $10)
		  ON CONFLICT DO NOTHING`, []any{rateLimit, chat, mobile, techcorp, day(30), day(45), day(60),
			now.Add(-3 * time.Hour), now.Add(-2 * time.Hour), now.Add(-time.Hour)}},
		{`INSERT INTO problem_skills (problem_id, skill) VALUES
		    ($1, 'Node.js'), ($1, 'Redis'), ($1, 'API Design'),
		    ($2, 'WebSockets'), ($2, 'Go'), ($2, 'PostgreSQL'),
		    ($3, 'React Native')
		  ON CONFLICT DO NOTHING`, []any{rateLimit, chat, mobile}},
		{`INSERT INTO problem_progress (user_id, problem_id, status, updated_at) VALUES
		    ($1, $2, 'Completed', $4),
		    ($1, $3, 'In Progress', $5)
		  ON CONFLICT DO NOTHING`, []any{alex, rateLimit, chat, now.Add(-2 * time.Hour), now.Add(-time.Hour)}},
		{`INSERT INTO hackathons (id, created_by, title, description, start_date, end_date, type,
		                          participants, max_participants, prize, status, location, created_at) VALUES
		    ($1, $3, 'AI Innovation Challenge', 'Build AI-powered tools that help developers ship faster.',
		     $4, $5, 'Virtual', 156, 200, 10000, 'Upcoming', NULL, $8),
		    ($2, $3, 'Blockchain Summit Hack', 'Two days of building on decentralised infrastructure.',
		     $6, $7, 'In-person', 40, 50, 5000, 'Upcoming', 'Austin, TX', $9)
		  ON CONFLICT DO NOTHING`, []any{aiChallenge, blockchain, techcorp, day(14), day(16), day(40), day(41),
			now.Add(-48 * time.Hour), now.Add(-24 * time.Hour)}},
		{`INSERT INTO hackathon_winners (hackathon_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			[]any{aiChallenge, alex}},
		{`INSERT INTO solutions (id, problem_id, user_id, bounty, created_at) VALUES
		    ($1, $2, $3, 1500, $4)
		  ON CONFLICT DO NOTHING`, []any{SeedID("solution:alex:rate-limiting"), rateLimit, alex, now.Add(-2 * time.Hour)}},
		// activity has no natural key; only seed it into an empty table
		{`INSERT INTO activity (action, problem_id, user_id, bounty, time)
		  SELECT v.action, v.problem_id, v.user_id, v.bounty, v.time
		  FROM (VALUES
		    ('Problem posted', $1::uuid, NULL::uuid, 1500::numeric, $4::timestamptz),
		    ('Problem solved', $1::uuid, $3::uuid, 1500::numeric, $5::timestamptz),
		    ('New submission', $2::uuid, $3::uuid, NULL::numeric, $6::timestamptz),
		    ('New hackathon announced', NULL::uuid, NULL::uuid, NULL::numeric, $7::timestamptz)
		  ) AS v(action, problem_id, user_id, bounty, time)
		  WHERE NOT EXISTS (SELECT 1 FROM activity)`, []any{rateLimit, chat, alex,
			now.Add(-3 * time.Hour), now.Add(-2 * time.Hour), now.Add(-time.Hour), now.Add(-30 * time.Minute)}},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for i, s := range stmts {
		if _, err := tx.ExecContext(ctx, s.query, s.args...); err != nil {
			return fmt.Errorf("seed statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Info("seed data applied", zap.Int("statements", len(stmts)))
	return nil
}
