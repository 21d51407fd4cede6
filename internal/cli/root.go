package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/pickadate/internal/backup"
	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/deck"
	"github.com/julianstephens/pickadate/internal/keyring"
	"github.com/julianstephens/pickadate/internal/logger"
	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/storage"
)

type Context struct {
	Store    storage.Provider
	DeckPath string
}

// Items loads the deck and rejects it if it has conflicts
func (c *Context) Items() ([]models.Item, error) {
	return deck.LoadValid(c.DeckPath)
}

// PerformAutomaticBackup snapshots a SQLite result log and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt the visitor
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// sqliteStore returns the result log as SQLite, the only backend backups support
func (c *Context) sqliteStore() (*storage.SQLiteStore, error) {
	s, ok := c.Store.(*storage.SQLiteStore)
	if !ok {
		return nil, fmt.Errorf("backups are only supported for SQLite result logs (using %s)", c.Store.GetConfigPath())
	}
	return s, nil
}

// ResolveStore picks the result log backend. An explicit --config wins; otherwise a Postgres
// connection string from the environment or keyring is used, then the default SQLite file.
// Strings from the keyring or environment may carry credentials; --config values may not.
func ResolveStore(config string) (storage.Provider, error) {
	if config != "" {
		return storage.New(config)
	}

	connStr, source, err := keyring.ResolveConnectionString()
	switch {
	case err == nil:
		logger.Debug("Using Postgres result log", "source", source)
		return storage.NewPostgresStore(connStr), nil
	case errors.Is(err, keyring.ErrNotFound):
	default:
		logger.Debug("Keyring lookup failed, using default result log", "error", err)
	}
	return storage.New(constants.DefaultConfigPath)
}

// ConfigDir is where logs live: next to a file-backed result log, or the default directory
func ConfigDir(store storage.Provider) (string, error) {
	switch store.(type) {
	case *storage.SQLiteStore, *storage.JSONStore:
		return filepath.Dir(store.GetConfigPath()), nil
	}
	path, err := storage.ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
