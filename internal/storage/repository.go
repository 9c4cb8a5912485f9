// ABOUTME: Repository interface for lifespan-impact data storage.
// ABOUTME: Defines the contract for readings and profile persistence.
package storage

import (
	"github.com/harperreed/longevity/internal/models"
)

// Repository defines the storage interface for readings and the profile.
// This interface allows swapping backends (SQLite, Charm KV, test fakes).
type Repository interface {
	// Reading operations
	CreateReading(r *models.MetricReading) error
	GetReading(idOrPrefix string) (*models.MetricReading, error)
	ListReadings(kind *models.MetricKind, limit int) ([]*models.MetricReading, error)
	DeleteReading(idOrPrefix string) error
	GetLatestReading(kind models.MetricKind) (*models.MetricReading, error)

	// Profile operations. GetProfile returns (nil, nil) when no profile
	// has been saved yet.
	SaveProfile(p *models.UserProfile) error
	GetProfile() (*models.UserProfile, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

// Compile-time check that the SQLite store satisfies the interface.
var _ Repository = (*DB)(nil)
