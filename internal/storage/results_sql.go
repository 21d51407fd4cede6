package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/pickadate/internal/models"
)

// resultTables holds the queries shared by the SQLite and Postgres backends.
// Queries are written with ? and rebound to $n when dollar is set.
type resultTables struct {
	db     *sql.DB
	dollar bool
}

func (t resultTables) bind(query string) string {
	if !t.dollar {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (t resultTables) save(r models.Result) error {
	if t.db == nil {
		return errors.New("storage not loaded")
	}
	if r.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	tx, err := t.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(t.bind(`
		INSERT INTO results (id, slug, display_name, input_mode, policy, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		r.ID, r.Slug, r.DisplayName, r.InputMode, r.Policy, formatTime(r.CompletedAt))
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	picked := make(map[int]bool, len(r.Picks))
	for _, p := range r.Picks {
		picked[p.ItemID] = true
	}

	insert := t.bind(`
		INSERT INTO result_ratings (result_id, position, item_id, title, value, picked)
		VALUES (?, ?, ?, ?, ?, ?)`)
	for i, rated := range r.Ratings {
		flag := 0
		if picked[rated.ItemID] {
			flag = 1
		}
		if _, err := tx.Exec(insert, r.ID, i, rated.ItemID, rated.Title, rated.Value, flag); err != nil {
			return fmt.Errorf("failed to insert rating %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit result: %w", err)
	}
	return nil
}

func (t resultTables) list(limit int) ([]models.Result, error) {
	if t.db == nil {
		return nil, errors.New("storage not loaded")
	}

	query := `SELECT id, slug, display_name, input_mode, policy, completed_at
		FROM results ORDER BY completed_at DESC, id`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := t.db.Query(t.bind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}

	var results []models.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	rows.Close()

	for i := range results {
		if err := t.loadRatings(&results[i]); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (t resultTables) get(id string) (models.Result, error) {
	if t.db == nil {
		return models.Result{}, errors.New("storage not loaded")
	}

	row := t.db.QueryRow(t.bind(`SELECT id, slug, display_name, input_mode, policy, completed_at
		FROM results WHERE id = ?`), id)
	r, err := scanResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Result{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return models.Result{}, err
	}
	if err := t.loadRatings(&r); err != nil {
		return models.Result{}, err
	}
	return r, nil
}

func (t resultTables) loadRatings(r *models.Result) error {
	rows, err := t.db.Query(t.bind(`SELECT item_id, title, value, picked
		FROM result_ratings WHERE result_id = ? ORDER BY position`), r.ID)
	if err != nil {
		return fmt.Errorf("failed to query ratings for %s: %w", r.ID, err)
	}
	defer rows.Close()

	r.Ratings = nil
	r.Picks = nil
	for rows.Next() {
		var rated models.RatedItem
		var picked int
		if err := rows.Scan(&rated.ItemID, &rated.Title, &rated.Value, &picked); err != nil {
			return fmt.Errorf("failed to scan rating: %w", err)
		}
		r.Ratings = append(r.Ratings, rated)
		if picked != 0 {
			r.Picks = append(r.Picks, rated)
		}
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (models.Result, error) {
	var r models.Result
	var completedAt string
	if err := s.Scan(&r.ID, &r.Slug, &r.DisplayName, &r.InputMode, &r.Policy, &completedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("failed to scan result: %w", err)
	}
	t, err := parseTime(completedAt)
	if err != nil {
		return r, fmt.Errorf("invalid completed_at %q for result %s: %w", completedAt, r.ID, err)
	}
	r.CompletedAt = t
	return r, nil
}
