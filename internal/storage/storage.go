package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/pickadate/internal/migration"
)

var (
	// ErrNotInitialized is returned by Load when the backing store has never been created
	ErrNotInitialized = errors.New("storage not initialized, run 'pickadate init' first")
	// ErrNotFound is returned when a result ID does not exist
	ErrNotFound = errors.New("result not found")
)

// timeLayout is fixed width so stored timestamps sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// IsPostgres reports whether a --config value names a Postgres database
func IsPostgres(path string) bool {
	return strings.HasPrefix(path, "postgres://") ||
		strings.HasPrefix(path, "postgresql://") ||
		strings.Contains(path, "host=")
}

// New picks a backend from the shape of path: Postgres connection strings,
// *.json files, and SQLite for everything else.
func New(path string) (Provider, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path cannot be empty")
	}

	switch {
	case IsPostgres(path):
		if _, err := ValidateConnString(path); err != nil {
			return nil, err
		}
		return NewPostgresStore(path), nil
	case strings.EqualFold(filepath.Ext(path), ".json"):
		expanded, err := ExpandPath(path)
		if err != nil {
			return nil, err
		}
		return NewJSONStore(expanded), nil
	default:
		expanded, err := ExpandPath(path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(expanded), nil
	}
}

// Open loads p, creating it first if it has never been initialized.
func Open(p Provider) error {
	err := p.Load()
	if errors.Is(err, ErrNotInitialized) {
		return p.Init()
	}
	return err
}

func schemaVersion(r *migration.Runner) (current, latest int, err error) {
	current, err = r.GetCurrentVersion()
	if err != nil {
		return 0, 0, err
	}
	latest, err = r.GetLatestVersion()
	if err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

// ExpandPath resolves a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
