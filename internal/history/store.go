// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package history provides conversation history persistence. It records chat
// turns and captured contact metadata keyed by (bot_id, session_id) so the
// response layer can build session context without holding state in memory.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	log "github.com/sirupsen/logrus"
)

// Turn is a single message in a conversation.
type Turn struct {
	ID         int64     `json:"id"`
	BotID      string    `json:"bot_id"`
	SessionID  string    `json:"session_id"`
	Role       string    `json:"role"` // user or assistant
	Content    string    `json:"content"`
	Route      string    `json:"route,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Contact is the contact metadata captured for a session, filled in as the
// scheduler and agent_request flows collect it.
type Contact struct {
	BotID     string    `json:"bot_id"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists turns and contacts in SQLite.
type Store struct {
	db       *sql.DB
	dbPath   string
	maxTurns int
	enabled  bool
	mu       sync.RWMutex
}

// NewStore creates a store instance. No resources are acquired until
// Initialize.
func NewStore(dbPath string, maxTurns int) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if maxTurns <= 0 {
		maxTurns = 10
	}
	return &Store{dbPath: dbPath, maxTurns: maxTurns}, nil
}

// Initialize opens the database and creates the schema.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		bot_id TEXT NOT NULL,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		route TEXT,
		confidence REAL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(bot_id, session_id, created_at);

	CREATE TABLE IF NOT EXISTS contacts (
		bot_id TEXT NOT NULL,
		session_id TEXT NOT NULL,
		name TEXT,
		email TEXT,
		phone TEXT,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (bot_id, session_id)
	);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	s.enabled = true
	log.Infof("History store initialized (db: %s, max turns: %d)", s.dbPath, s.maxTurns)
	return nil
}

// IsEnabled returns whether the store is active.
func (s *Store) IsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// RecordTurn stores one conversation turn.
func (s *Store) RecordTurn(ctx context.Context, turn *Turn) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.enabled {
		return fmt.Errorf("history store not enabled")
	}
	if turn == nil {
		return fmt.Errorf("turn cannot be nil")
	}
	if turn.BotID == "" || turn.SessionID == "" {
		return fmt.Errorf("turn requires bot_id and session_id")
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}

	query := `
	INSERT INTO turns (bot_id, session_id, role, content, route, confidence, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		turn.BotID,
		turn.SessionID,
		turn.Role,
		turn.Content,
		turn.Route,
		turn.Confidence,
		turn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert turn: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		turn.ID = id
	}
	return nil
}

// RecentTurns retrieves the session's most recent turns in chronological
// order. A non-positive limit uses the store's configured cap.
func (s *Store) RecentTurns(ctx context.Context, botID, sessionID string, limit int) ([]*Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.enabled {
		return nil, fmt.Errorf("history store not enabled")
	}
	if limit <= 0 {
		limit = s.maxTurns
	}

	query := `
	SELECT id, bot_id, session_id, role, content, route, confidence, created_at
	FROM turns
	WHERE bot_id = ? AND session_id = ?
	ORDER BY created_at DESC, id DESC
	LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, botID, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []*Turn
	for rows.Next() {
		t, err := scanTurn(rows)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turns: %w", err)
	}

	// The query returns newest first; callers want conversation order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// UpsertContact creates or updates the session's contact metadata. Empty
// fields in the update do not overwrite previously captured values.
func (s *Store) UpsertContact(ctx context.Context, contact *Contact) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.enabled {
		return fmt.Errorf("history store not enabled")
	}
	if contact == nil {
		return fmt.Errorf("contact cannot be nil")
	}
	if contact.BotID == "" || contact.SessionID == "" {
		return fmt.Errorf("contact requires bot_id and session_id")
	}
	contact.UpdatedAt = time.Now()

	query := `
	INSERT INTO contacts (bot_id, session_id, name, email, phone, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(bot_id, session_id) DO UPDATE SET
		name = CASE WHEN excluded.name != '' THEN excluded.name ELSE contacts.name END,
		email = CASE WHEN excluded.email != '' THEN excluded.email ELSE contacts.email END,
		phone = CASE WHEN excluded.phone != '' THEN excluded.phone ELSE contacts.phone END,
		updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query,
		contact.BotID,
		contact.SessionID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to upsert contact: %w", err)
	}
	return nil
}

// GetContact retrieves the session's contact metadata, or nil when none has
// been captured.
func (s *Store) GetContact(ctx context.Context, botID, sessionID string) (*Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.enabled {
		return nil, fmt.Errorf("history store not enabled")
	}

	query := `
	SELECT bot_id, session_id, name, email, phone, updated_at
	FROM contacts
	WHERE bot_id = ? AND session_id = ?
	`
	row := s.db.QueryRowContext(ctx, query, botID, sessionID)

	var c Contact
	var name, email, phone sql.NullString
	err := row.Scan(&c.BotID, &c.SessionID, &name, &email, &phone, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	c.Name = name.String
	c.Email = email.String
	c.Phone = phone.String
	return &c, nil
}

// Shutdown closes the database.
func (s *Store) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return nil
	}
	s.enabled = false
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		s.db = nil
	}
	log.Info("History store shut down")
	return nil
}

func scanTurn(rows *sql.Rows) (*Turn, error) {
	var t Turn
	var route sql.NullString
	var confidence sql.NullFloat64
	if err := rows.Scan(
		&t.ID,
		&t.BotID,
		&t.SessionID,
		&t.Role,
		&t.Content,
		&route,
		&confidence,
		&t.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan turn: %w", err)
	}
	t.Route = route.String
	t.Confidence = confidence.Float64
	return &t, nil
}
