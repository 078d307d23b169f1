package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fittrack/internal/modules/workout/domain"
	workoutout "fittrack/internal/modules/workout/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteCache is the local projection of the last fetched workout list.
// Replace swaps the whole table in one transaction so readers never see
// a half-refreshed list.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	cache := &SQLiteCache{db: db}
	if err := cache.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

var _ workoutout.Cache = (*SQLiteCache)(nil)

func (c *SQLiteCache) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS workouts (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  workout_date TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL,
  calories_burned INTEGER NOT NULL,
  intensity TEXT NOT NULL,
  notes TEXT,
  exercises_json TEXT NOT NULL
);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create workouts table: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Replace(ctx context.Context, workouts []domain.Workout) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache refresh: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
		return fmt.Errorf("reset workouts: %w", err)
	}
	const stmt = `
INSERT INTO workouts (id, name, description, workout_date, duration_minutes, calories_burned, intensity, notes, exercises_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	for _, w := range workouts {
		exercises, err := json.Marshal(w.Exercises)
		if err != nil {
			return fmt.Errorf("marshal exercises: %w", err)
		}
		if _, err := tx.ExecContext(ctx, stmt,
			w.ID,
			w.Name,
			w.Description,
			w.Date.Format(time.RFC3339),
			w.DurationMinutes,
			w.CaloriesBurned,
			string(w.Intensity),
			w.Notes,
			string(exercises),
		); err != nil {
			return fmt.Errorf("insert workout %d: %w", w.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache refresh: %w", err)
	}
	return nil
}

func (c *SQLiteCache) List(ctx context.Context) ([]domain.Workout, error) {
	rows, err := c.db.QueryContext(ctx, `
SELECT id, name, description, workout_date, duration_minutes, calories_burned, intensity, notes, exercises_json
FROM workouts ORDER BY workout_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		var date, exercises string
		var intensity string
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &date, &w.DurationMinutes, &w.CaloriesBurned, &intensity, &w.Notes, &exercises); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		w.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("parse cached date: %w", err)
		}
		w.Intensity = domain.Intensity(intensity)
		if err := json.Unmarshal([]byte(exercises), &w.Exercises); err != nil {
			return nil, fmt.Errorf("decode cached exercises: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
