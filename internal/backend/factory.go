package backend

import (
	"context"
	"fmt"
	"log/slog"

	"jornada/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateRepository implements Factory.CreateRepository
func (f *DefaultFactory) CreateRepository(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteRepository(config)
	case FileBackend:
		return f.createFileRepository(config)
	case MemoryBackend:
		return f.createMemoryRepository()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteRepository(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)

	return &Result{
		Repository: repo,
		Cleanup:    repo.Close,
	}, nil
}

func (f *DefaultFactory) createFileRepository(config Config) (*Result, error) {
	repo := storage.NewFileRepository(config.DataFilePath)

	f.logger.Info("Initialized file backend", "path", config.DataFilePath)

	return &Result{
		Repository: repo,
		Cleanup:    nil,
	}, nil
}

func (f *DefaultFactory) createMemoryRepository() (*Result, error) {
	f.logger.Info("Initialized memory backend")

	return &Result{
		Repository: storage.NewMemoryRepository(),
		Cleanup:    nil,
	}, nil
}
