package storage

import "github.com/julianstephens/pickadate/internal/models"

// Provider is a result log backend.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Results
	SaveResult(models.Result) error
	// GetResults returns results newest first. A limit of zero or less returns all of them.
	GetResults(limit int) ([]models.Result, error)
	GetResult(id string) (models.Result, error)

	// Utils
	GetConfigPath() string
}

// Versioned is implemented by backends whose schema is applied by migrations.
type Versioned interface {
	SchemaVersion() (current, latest int, err error)
}
