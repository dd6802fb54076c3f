// Package cache stores successful raw menu fetches in SQLite so repeated
// views of the same date and meal slot do not re-hit the remote API.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"welboard/internal/menu"
)

// Entries older than this are treated as misses; menus can change during
// the day.
const maxAge = time.Hour

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS menus (
		menu_date  TEXT NOT NULL,
		meal_slot  TEXT NOT NULL,
		payload    TEXT NOT NULL,
		fetched_at DATETIME NOT NULL,
		PRIMARY KEY (menu_date, meal_slot)
	)`,
}

// Cache is a same-day cache of raw meal lists keyed by date and meal slot.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the cache database at the given path, enables
// WAL mode, and runs migrations.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("setting WAL mode: %w (also failed to close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			closeErr := db.Close()
			if closeErr != nil {
				return nil, fmt.Errorf("migration %d: %w (also failed to close: %v)", i, err, closeErr)
			}
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}

	return &Cache{db: db, now: time.Now}, nil
}

// Get returns the cached meal list for a date and slot, if present and
// fresh enough.
func (c *Cache) Get(date time.Time, mealSlot string) ([]menu.RawMeal, bool, error) {
	var payload string
	var fetchedAt time.Time

	err := c.db.QueryRow(
		"SELECT payload, fetched_at FROM menus WHERE menu_date = ? AND meal_slot = ?",
		date.Format("20060102"), mealSlot,
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}

	if c.now().Sub(fetchedAt) > maxAge {
		return nil, false, nil
	}

	var meals []menu.RawMeal
	if err := json.Unmarshal([]byte(payload), &meals); err != nil {
		return nil, false, fmt.Errorf("decoding cached payload: %w", err)
	}
	return meals, true, nil
}

// Put stores a fetched meal list, replacing any previous entry for the
// same date and slot.
func (c *Cache) Put(date time.Time, mealSlot string, meals []menu.RawMeal) error {
	payload, err := json.Marshal(meals)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	_, err = c.db.Exec(
		"INSERT OR REPLACE INTO menus (menu_date, meal_slot, payload, fetched_at) VALUES (?, ?, ?, ?)",
		date.Format("20060102"), mealSlot, string(payload), c.now(),
	)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
