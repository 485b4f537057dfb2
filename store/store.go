// Package store persists parsed arrivals and their line items in
// SQLite. Arrivals are keyed by bill of lading: saving the same BL
// again replaces the header and rewrites its items, so re-uploading a
// corrected manifest never duplicates merchandise.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/ebarrera/manifiesto/model"
)

// ErrNotFound is returned when the requested bill of lading has no
// stored arrival.
var ErrNotFound = errors.New("arrival not found")

// Arrival is one container arrival: the header plus its line items.
type Arrival struct {
	BL    string
	Date  string // YYYY-MM-DD
	Port  string
	Notes string
	Items []model.LineItem
}

// Event is a calendar entry derived from an arrival, shaped for
// calendar front ends.
type Event struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
}

// Store wraps the SQLite database holding arrivals.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the SQLite database at path with WAL
// mode and foreign keys enabled. A nil logger discards log output.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS arrivals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	bl TEXT UNIQUE,
	date TEXT,
	port TEXT,
	notes TEXT
);

CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	arrival_bl TEXT,
	code TEXT,
	description TEXT,
	meters REAL,
	rolls INTEGER,
	FOREIGN KEY(arrival_bl) REFERENCES arrivals(bl)
);

CREATE INDEX IF NOT EXISTS idx_items_arrival_bl ON items(arrival_bl);
CREATE INDEX IF NOT EXISTS idx_arrivals_date ON arrivals(date);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// UpsertArrival saves an arrival by BL. An existing header is replaced
// and its items rewritten from scratch. Items are deleted before the
// header replace so the foreign key never sees an orphaned child.
func (s *Store) UpsertArrival(ctx context.Context, a Arrival) error {
	if a.BL == "" {
		return errors.New("upsert arrival: empty BL")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE arrival_bl = ?", a.BL); err != nil {
		return fmt.Errorf("delete items for %s: %w", a.BL, err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO arrivals(bl, date, port, notes) VALUES(?, ?, ?, ?)",
		a.BL, a.Date, a.Port, a.Notes,
	); err != nil {
		return fmt.Errorf("upsert arrival %s: %w", a.BL, err)
	}

	for _, item := range a.Items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO items(arrival_bl, code, description, meters, rolls) VALUES(?, ?, ?, ?, ?)",
			a.BL, item.Code, item.Description, item.Meters, item.Rolls,
		); err != nil {
			return fmt.Errorf("insert item %s for %s: %w", item.Code, a.BL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert for %s: %w", a.BL, err)
	}

	s.logger.Info("arrival saved", "bl", a.BL, "date", a.Date, "items", len(a.Items))
	return nil
}

// Events lists all arrivals as calendar events ordered by date.
func (s *Store) Events(ctx context.Context) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT bl, date FROM arrivals ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var bl, date string
		if err := rows.Scan(&bl, &date); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, Event{
			ID:     bl,
			Title:  "Llegada: " + bl,
			Start:  date,
			AllDay: true,
		})
	}
	return events, rows.Err()
}

// Arrival loads one arrival with its items in insertion order.
func (s *Store) Arrival(ctx context.Context, bl string) (*Arrival, error) {
	a := &Arrival{BL: bl}
	err := s.db.QueryRowContext(ctx,
		"SELECT date, port, notes FROM arrivals WHERE bl = ?", bl,
	).Scan(&a.Date, &a.Port, &a.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("arrival %s: %w", bl, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load arrival %s: %w", bl, err)
	}

	items, err := s.items(ctx, bl)
	if err != nil {
		return nil, err
	}
	a.Items = items
	return a, nil
}

// Arrivals lists arrivals with their items, ordered by date. A
// non-empty from/to bounds the date range inclusively; empty bounds are
// open ended.
func (s *Store) Arrivals(ctx context.Context, from, to string) ([]Arrival, error) {
	query := "SELECT bl, date, port, notes FROM arrivals"
	var (
		conds []string
		args  []any
	)
	if from != "" {
		conds = append(conds, "date >= ?")
		args = append(args, from)
	}
	if to != "" {
		conds = append(conds, "date <= ?")
		args = append(args, to)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY date, bl"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list arrivals: %w", err)
	}
	defer rows.Close()

	var arrivals []Arrival
	for rows.Next() {
		var a Arrival
		if err := rows.Scan(&a.BL, &a.Date, &a.Port, &a.Notes); err != nil {
			return nil, fmt.Errorf("scan arrival: %w", err)
		}
		arrivals = append(arrivals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range arrivals {
		items, err := s.items(ctx, arrivals[i].BL)
		if err != nil {
			return nil, err
		}
		arrivals[i].Items = items
	}
	return arrivals, nil
}

// DeleteArrival removes an arrival and its items.
func (s *Store) DeleteArrival(ctx context.Context, bl string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE arrival_bl = ?", bl); err != nil {
		return fmt.Errorf("delete items for %s: %w", bl, err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM arrivals WHERE bl = ?", bl)
	if err != nil {
		return fmt.Errorf("delete arrival %s: %w", bl, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("arrival %s: %w", bl, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete for %s: %w", bl, err)
	}
	s.logger.Info("arrival deleted", "bl", bl)
	return nil
}

func (s *Store) items(ctx context.Context, bl string) ([]model.LineItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT code, description, meters, rolls FROM items WHERE arrival_bl = ? ORDER BY id", bl)
	if err != nil {
		return nil, fmt.Errorf("load items for %s: %w", bl, err)
	}
	defer rows.Close()

	var items []model.LineItem
	for rows.Next() {
		var item model.LineItem
		if err := rows.Scan(&item.Code, &item.Description, &item.Meters, &item.Rolls); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
