package backend

import (
	"context"

	"jornada/internal/store"
)

// CleanupFunc releases resources held by a repository
type CleanupFunc func() error

// Result contains the repository instance and optional cleanup function
type Result struct {
	Repository store.Repository
	Cleanup    CleanupFunc
}

// Factory creates snapshot repositories based on configuration
type Factory interface {
	CreateRepository(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for repository creation
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// File specific
	DataFilePath string
}

// BackendType represents the type of snapshot backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	FileBackend   BackendType = "file"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
