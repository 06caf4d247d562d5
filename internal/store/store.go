package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/util"
)

var ErrNoChange = errs.New("no change")

// Run lifecycle states.
const (
	RunStatusAlive = "alive"
	RunStatusDead  = "dead"
)

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to Postgres per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, wrap(err, "open postgres")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, wrap(err, "ping")
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// Run is one playthrough of the caverns.
type Run struct {
	ID       uuid.UUID
	SeedText string
	Turn     int
	Status   string
	Created  time.Time
}

// RunRepo persists runs.
type RunRepo struct{ db *DB }

func NewRunRepo(db *DB) *RunRepo { return &RunRepo{db: db} }

// Create inserts a fresh alive run for a seed.
func (r *RunRepo) Create(ctx context.Context, seedText string) (Run, error) {
	id := uuid.New()
	err := r.db.gorm.WithContext(ctx).Exec(
		`INSERT INTO runs(id, seed_text, turn, status) VALUES (?,?,0,?)`,
		id, seedText, RunStatusAlive,
	).Error
	if err != nil {
		return Run{}, wrap(err, "create run")
	}
	return Run{ID: id, SeedText: seedText, Status: RunStatusAlive}, nil
}

// Latest returns the most recently saved alive run, ok=false when none exists.
func (r *RunRepo) Latest(ctx context.Context) (Run, bool, error) {
	row := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, seed_text, turn, status, created_at FROM runs
		 WHERE status = ? ORDER BY updated_at DESC LIMIT 1`, RunStatusAlive,
	).Row()
	var run Run
	if err := row.Scan(&run.ID, &run.SeedText, &run.Turn, &run.Status, &run.Created); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, wrap(err, "latest run")
	}
	return run, true, nil
}

// UpdateProgress records the clock and status inside a save transaction.
func (r *RunRepo) UpdateProgress(ctx context.Context, tx *gorm.DB, id uuid.UUID, turn int, status string) error {
	err := tx.Exec(
		`UPDATE runs SET turn = ?, status = ?, updated_at = now() WHERE id = ?`,
		turn, status, id,
	).Error
	return wrap(err, "update run")
}

// CharacterRepo persists one JSON state snapshot per run.
type CharacterRepo struct{ db *DB }

func NewCharacterRepo(db *DB) *CharacterRepo { return &CharacterRepo{db: db} }

// Upsert writes the character snapshot for a run.
func (c *CharacterRepo) Upsert(ctx context.Context, tx *gorm.DB, runID uuid.UUID, snap game.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return wrap(err, "marshal snapshot")
	}
	err = tx.Exec(
		`INSERT INTO characters(id, run_id, name, race, background, state)
		 VALUES (?,?,?,?,?,?)
		 ON CONFLICT (run_id) DO UPDATE SET
		   name = EXCLUDED.name, race = EXCLUDED.race,
		   background = EXCLUDED.background, state = EXCLUDED.state,
		   updated_at = now()`,
		uuid.New(), runID, snap.Player.Name, string(snap.Player.Race), string(snap.Player.Background), raw,
	).Error
	return wrap(err, "upsert character")
}

// Get loads the snapshot for a run.
func (c *CharacterRepo) Get(ctx context.Context, runID uuid.UUID) (game.Snapshot, error) {
	row := c.db.gorm.WithContext(ctx).Raw(
		`SELECT state FROM characters WHERE run_id = ?`, runID,
	).Row()
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		return game.Snapshot{}, wrap(err, "load character")
	}
	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return game.Snapshot{}, wrap(err, "decode snapshot")
	}
	return snap, nil
}

// JournalRepo persists the message log.
type JournalRepo struct{ db *DB }

func NewJournalRepo(db *DB) *JournalRepo { return &JournalRepo{db: db} }

// Append inserts journal lines for a run at a turn.
func (j *JournalRepo) Append(ctx context.Context, tx *gorm.DB, runID uuid.UUID, turn int, lines []string) error {
	for _, line := range lines {
		if err := tx.Exec(
			`INSERT INTO journal_entries(id, run_id, turn, line) VALUES (?,?,?,?)`,
			uuid.New(), runID, turn, line,
		).Error; err != nil {
			return wrap(err, "append journal")
		}
	}
	return nil
}

// Recent returns up to limit newest lines, oldest of those first.
func (j *JournalRepo) Recent(ctx context.Context, runID uuid.UUID, limit int) ([]string, error) {
	rows, err := j.db.gorm.WithContext(ctx).Raw(
		`SELECT line FROM (
		   SELECT line, created_at FROM journal_entries
		   WHERE run_id = ? ORDER BY created_at DESC LIMIT ?
		 ) t ORDER BY created_at ASC`, runID, limit,
	).Rows()
	if err != nil {
		return nil, wrap(err, "recent journal")
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, wrap(err, "scan journal")
		}
		out = append(out, line)
	}
	return out, rows.Err()
}

// SettingsRepo persists per-run preferences.
type SettingsRepo struct{ db *DB }

func NewSettingsRepo(db *DB) *SettingsRepo { return &SettingsRepo{db: db} }

// UpsertTheme stores the chosen palette for a run.
func (s *SettingsRepo) UpsertTheme(ctx context.Context, runID uuid.UUID, theme string) error {
	err := s.db.gorm.WithContext(ctx).Exec(
		`INSERT INTO settings(run_id, theme) VALUES (?,?)
		 ON CONFLICT (run_id) DO UPDATE SET theme = EXCLUDED.theme`,
		runID, theme,
	).Error
	return wrap(err, "upsert settings")
}

// Theme returns the saved palette, ok=false when unset.
func (s *SettingsRepo) Theme(ctx context.Context, runID uuid.UUID) (string, bool, error) {
	row := s.db.gorm.WithContext(ctx).Raw(
		`SELECT theme FROM settings WHERE run_id = ?`, runID,
	).Row()
	var theme string
	if err := row.Scan(&theme); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, wrap(err, "load settings")
	}
	return theme, true, nil
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
