package amqp

import (
	"encoding/json"
	"time"
)

// SnapshotSyncMessage tells the backup worker that the collection changed.
// It carries only the snapshot revision and not the data itself; the worker
// reads the current snapshot from the repository, so a burst of messages
// collapses into one up-to-date sync.
type SnapshotSyncMessage struct {
	Revision  int64     `json:"revision"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSnapshotSyncMessage(revision int64) *SnapshotSyncMessage {
	return &SnapshotSyncMessage{
		Revision:  revision,
		Timestamp: time.Now(),
	}
}

func (m *SnapshotSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SnapshotSyncMessageFromJSON(data []byte) (*SnapshotSyncMessage, error) {
	var msg SnapshotSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
