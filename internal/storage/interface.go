package storage

import "github.com/dsouzarc/incast/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// History
	SaveRecord(models.Record) error
	GetRecords(limit int) ([]models.Record, error)
	GetGroups() ([]string, error)

	// Utils
	GetConfigPath() string
}
