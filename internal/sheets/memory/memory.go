package memory

import (
	"context"
	"sync"

	"jornada/internal/core"
)

// Store is an in-memory BackupWriter used in tests and local runs without
// Google credentials.
type Store struct {
	mu       sync.Mutex
	rows     []core.WorkDay
	replaces int
}

func New() *Store {
	return &Store{}
}

// ReplaceAll overwrites the stored rows wholesale.
func (s *Store) ReplaceAll(_ context.Context, days []core.WorkDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append([]core.WorkDay(nil), days...)
	s.replaces++
	return nil
}

// Rows returns a copy of the current backup contents.
func (s *Store) Rows() []core.WorkDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.WorkDay(nil), s.rows...)
}

// Replaces reports how many times the backup was rewritten.
func (s *Store) Replaces() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaces
}
