package stream

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SyncState is the persisted position of the stream.
type SyncState struct {
	LastSyncedSequence int64  `json:"last_synced_sequence"`
	UpdatedAt          string `json:"updated_at"`
}

// SyncStateStore persists the last fully exported checkpoint sequence
// number to disk so restarts resume where they left off.
type SyncStateStore struct {
	path    string
	enabled bool
}

func NewSyncStateStore(path string, enabled bool) *SyncStateStore {
	return &SyncStateStore{path: path, enabled: enabled}
}

func (s *SyncStateStore) Load() (SyncState, bool, error) {
	if !s.enabled {
		return SyncState{}, false, nil
	}

	stat, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return SyncState{}, false, nil
		}
		return SyncState{}, false, fmt.Errorf("stat sync state: %w", err)
	}
	if stat.IsDir() {
		return SyncState{}, false, fmt.Errorf("sync state path is a directory")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return SyncState{}, false, fmt.Errorf("read sync state: %w", err)
	}

	var state SyncState
	if err := json.Unmarshal(data, &state); err != nil {
		return SyncState{}, false, fmt.Errorf("parse sync state: %w", err)
	}
	return state, true, nil
}

func (s *SyncStateStore) Save(lastSynced int64) error {
	if !s.enabled {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create sync state dir: %w", err)
		}
	}

	state := SyncState{
		LastSyncedSequence: lastSynced,
		UpdatedAt:          time.Now().UTC().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal sync state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write sync state tmp: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename sync state: %w", err)
	}
	return nil
}
