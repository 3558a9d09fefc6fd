package export

import (
	"fmt"

	"suistream/internal/model"
)

// Multi fans a batch out to several sinks.
type Multi struct {
	sinks []Sink
}

func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Open() error {
	for _, sink := range m.sinks {
		if err := sink.Open(); err != nil {
			return fmt.Errorf("open sink: %w", err)
		}
	}
	return nil
}

func (m *Multi) ExportItems(items []model.Record) error {
	for _, sink := range m.sinks {
		if err := sink.ExportItems(items); err != nil {
			return fmt.Errorf("export items: %w", err)
		}
	}
	return nil
}

func (m *Multi) Close() error {
	var firstErr error
	for _, sink := range m.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
