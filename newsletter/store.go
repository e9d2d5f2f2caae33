package newsletter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// ErrDuplicateEmail is returned by AddSubscriber when the email is already
// present, e.g. when two concurrent subscribes race past the existence check.
var ErrDuplicateEmail = errors.New("email already subscribed")

// schema is applied idempotently when the store is opened.
const schema = `
CREATE TABLE IF NOT EXISTS subscribers (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	email         TEXT NOT NULL UNIQUE,
	status        TEXT NOT NULL DEFAULT 'active',
	subscribed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS campaigns (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	subject TEXT NOT NULL,
	body    TEXT NOT NULL,
	sent_at DATETIME
);
CREATE TABLE IF NOT EXISTS email_metrics (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	campaign_id   INTEGER,
	subscriber_id INTEGER,
	event         TEXT NOT NULL,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Subscriber is a persisted newsletter subscriber.
type Subscriber struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Status       string    `db:"status" json:"status"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribedAt"`
}

// Campaign is a stored newsletter campaign.
type Campaign struct {
	ID      int64        `db:"id" json:"id"`
	Subject string       `db:"subject" json:"subject"`
	Body    string       `db:"body" json:"body"`
	SentAt  sql.NullTime `db:"sent_at" json:"sentAt"`
}

// Store persists subscribers, campaigns, and email metrics in sqlite.
type Store struct {
	db *sqlx.DB
}

// OpenStore opens (creating if needed) the sqlite database at path and
// ensures the schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subscriber database: %w", err)
	}
	// sqlite serializes writes anyway; a single connection also keeps
	// :memory: databases coherent across the pool.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddSubscriber inserts a new active subscriber and returns its row ID.
// Inserting a duplicate email returns ErrDuplicateEmail.
func (s *Store) AddSubscriber(ctx context.Context, email string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO subscribers (email, status) VALUES (?, 'active')`, email)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return res.LastInsertId()
}

// FindSubscriber returns the subscriber with the given email, or nil when
// no such subscriber exists.
func (s *Store) FindSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	var sub Subscriber
	err := s.db.GetContext(ctx, &sub,
		`SELECT id, email, status, subscribed_at FROM subscribers WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriber: %w", err)
	}
	return &sub, nil
}

// SetSubscriberStatus updates a subscriber's status (active, unsubscribed).
func (s *Store) SetSubscriberStatus(ctx context.Context, id int64, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE subscribers SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update subscriber status: %w", err)
	}
	return nil
}

// SubscriberStats summarizes the subscriber table.
type SubscriberStats struct {
	Total  int `db:"total" json:"total"`
	Active int `db:"active" json:"active"`
}

// Stats returns total and active subscriber counts.
func (s *Store) Stats(ctx context.Context) (SubscriberStats, error) {
	var stats SubscriberStats
	err := s.db.GetContext(ctx, &stats, `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active
		FROM subscribers`)
	if err != nil {
		return stats, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return stats, nil
}

// AddCampaign stores a campaign draft and returns its ID.
func (s *Store) AddCampaign(ctx context.Context, subject, body string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO campaigns (subject, body) VALUES (?, ?)`, subject, body)
	if err != nil {
		return 0, fmt.Errorf("failed to insert campaign: %w", err)
	}
	return res.LastInsertId()
}

// ListCampaigns returns all campaigns, newest first.
func (s *Store) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns,
		`SELECT id, subject, body, sent_at FROM campaigns ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// RecordMetric stores a delivery event (sent, opened, bounced) for a
// subscriber, optionally tied to a campaign.
func (s *Store) RecordMetric(ctx context.Context, campaignID, subscriberID int64, event string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO email_metrics (campaign_id, subscriber_id, event) VALUES (?, ?, ?)`,
		nullableID(campaignID), subscriberID, event)
	if err != nil {
		return fmt.Errorf("failed to record metric: %w", err)
	}
	return nil
}

func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
