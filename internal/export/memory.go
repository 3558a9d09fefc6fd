package export

import (
	"sync"

	"suistream/internal/model"
)

// Memory collects records in memory. Fetch jobs export into one while
// the adapter assembles a round; it is safe for concurrent export from
// parallel chunk workers.
type Memory struct {
	mu    sync.Mutex
	items []model.Record
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Open() error { return nil }

func (m *Memory) ExportItems(items []model.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
	return nil
}

// Items returns everything collected so far.
func (m *Memory) Items() []model.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Record, len(m.items))
	copy(out, m.items)
	return out
}

// ItemsOfType returns collected records with the given discriminant.
func (m *Memory) ItemsOfType(recordType string) []model.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Record
	for _, item := range m.items {
		if item.RecordType() == recordType {
			out = append(out, item)
		}
	}
	return out
}

func (m *Memory) Close() error { return nil }
