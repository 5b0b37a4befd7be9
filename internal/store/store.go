// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sporetrack/sporetrack/internal/activity"
	"github.com/sporetrack/sporetrack/internal/profile"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store persists the profile snapshot and activity feed behind the tracker.
// The profile tab itself never touches it; the application shell wires the
// tab's update sink through here.
type Store struct {
	db *sql.DB
}

// New wraps an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init creates the schema if it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			join_date TEXT NOT NULL,
			experience_level TEXT NOT NULL,
			favorite_method TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS activity (
			id INTEGER PRIMARY KEY,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			time TEXT NOT NULL,
			status TEXT NOT NULL,
			status_color TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Profile loads the stored profile snapshot, or ErrNotFound when none has
// been saved yet.
func (s *Store) Profile(ctx context.Context) (profile.Snapshot, error) {
	const query = `
		SELECT name, email, phone, join_date, experience_level, favorite_method, avatar
		FROM profile WHERE id = 1`

	var snap profile.Snapshot
	err := s.db.QueryRowContext(ctx, query).Scan(
		&snap.Name, &snap.Email, &snap.Phone,
		&snap.JoinDate, &snap.ExperienceLevel, &snap.FavoriteMethod, &snap.Avatar,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Snapshot{}, ErrNotFound
		}
		return profile.Snapshot{}, err
	}

	return snap, nil
}

// SaveProfile upserts the singleton profile row with the full snapshot.
func (s *Store) SaveProfile(ctx context.Context, snap profile.Snapshot) error {
	const query = `
		INSERT INTO profile (id, name, email, phone, join_date, experience_level, favorite_method, avatar)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			join_date = excluded.join_date,
			experience_level = excluded.experience_level,
			favorite_method = excluded.favorite_method,
			avatar = excluded.avatar`

	_, err := s.db.ExecContext(ctx, query,
		snap.Name, snap.Email, snap.Phone,
		snap.JoinDate, snap.ExperienceLevel, snap.FavoriteMethod, snap.Avatar,
	)
	return err
}

// Activity loads the feed in display order, newest first. Rows with enum
// values outside the closed type/color sets fail the load rather than
// reaching the renderer.
func (s *Store) Activity(ctx context.Context) ([]activity.Item, error) {
	const query = `
		SELECT id, type, title, time, status, status_color
		FROM activity ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []activity.Item
	for rows.Next() {
		var item activity.Item
		if err := rows.Scan(&item.ID, &item.Type, &item.Title, &item.Time, &item.Status, &item.StatusColor); err != nil {
			return nil, err
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// AddActivity appends one feed entry.
func (s *Store) AddActivity(ctx context.Context, item activity.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	const query = `
		INSERT INTO activity (type, title, time, status, status_color)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		string(item.Type), item.Title, item.Time, item.Status, string(item.StatusColor),
	)
	return err
}
