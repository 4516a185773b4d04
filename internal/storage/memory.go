package storage

import (
	"context"
	"sync"

	"jornada/internal/core"
)

// MemoryRepository holds the encoded snapshot in memory. It round-trips
// through the same codec as the durable repositories so tests exercise the
// real persisted format.
type MemoryRepository struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(_ context.Context) ([]core.WorkDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return DecodeSnapshot(r.data)
}

func (r *MemoryRepository) Save(_ context.Context, days []core.WorkDay) error {
	data, err := EncodeSnapshot(days)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	return nil
}
