// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/storage.go
// Summary: Best-effort per-app key/value persistence, sqlite-backed in
// production and map-backed for tests.

package pixel

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStorage persists app key/value pairs in a single sqlite database.
// Guarantees are best effort: a failed write is logged and reported, never
// fatal to the scheduler.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenStorage opens (creating if needed) the storage database at path.
// Use ":memory:" for a throwaway store.
func OpenStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_kv (
		app   TEXT NOT NULL,
		key   TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (app, key)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init storage schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(app, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM app_kv WHERE app = ? AND key = ?`, app, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Printf("Storage: get %s/%s failed: %v", app, key, err)
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStorage) Put(app, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO app_kv (app, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (app, key) DO UPDATE SET value = excluded.value`,
		app, key, value,
	)
	if err != nil {
		log.Printf("Storage: put %s/%s failed: %v", app, key, err)
	}
	return err
}

func (s *SQLiteStorage) Close() error { return s.db.Close() }

// MemoryStorage is the in-memory StorageService used by the test harness.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[[2]string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[[2]string]string)}
}

func (m *MemoryStorage) Get(app, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[[2]string{app, key}]
	return v, ok, nil
}

func (m *MemoryStorage) Put(app, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[[2]string{app, key}] = value
	return nil
}

func (m *MemoryStorage) Close() error { return nil }
