package service

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/dmerino/portfolio-dashboard/internal/database"
)

// AppVersion is the application version reported by the version endpoint.
const AppVersion = "1.0.0"

// SystemService provides health and version information about the running
// service and its database.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// CheckHealth verifies database connectivity.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// VersionInfo holds application and schema version details.
type VersionInfo struct {
	AppVersion    string `json:"appVersion"`
	SchemaVersion int64  `json:"schemaVersion"`
}

// Version reports the application version and the current goose migration
// version of the database schema.
func (s *SystemService) Version() (VersionInfo, error) {
	schemaVersion, err := goose.GetDBVersion(s.db)
	if err != nil {
		return VersionInfo{}, err
	}

	return VersionInfo{
		AppVersion:    AppVersion,
		SchemaVersion: schemaVersion,
	}, nil
}
