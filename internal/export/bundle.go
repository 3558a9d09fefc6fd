package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"suistream/internal/model"
)

// Bundle groups a round's records per checkpoint and writes one
// <dir>/<sequence>.json file per checkpoint, carrying the checkpoint
// together with its transactions, objects, and events.
type Bundle struct {
	dir string
}

func NewBundle(dir string) *Bundle {
	return &Bundle{dir: dir}
}

type checkpointBundle struct {
	Checkpoint   *model.Checkpoint    `json:"checkpoint"`
	Transactions []*model.Transaction `json:"transactions"`
	Objects      []*model.Object      `json:"objects"`
	Events       []*model.Event       `json:"events"`
}

func (b *Bundle) Open() error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create bundle dir: %w", err)
	}
	return nil
}

func (b *Bundle) ExportItems(items []model.Record) error {
	bundles, err := buildBundles(items)
	if err != nil {
		return err
	}

	for sequence, bundle := range bundles {
		data, err := json.Marshal(bundle)
		if err != nil {
			return fmt.Errorf("marshal bundle: %w", err)
		}

		path := filepath.Join(b.dir, strconv.FormatInt(sequence, 10)+".json")
		tmpPath := path + ".tmp"
		if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
			return fmt.Errorf("write bundle tmp: %w", err)
		}
		if err := os.Rename(tmpPath, path); err != nil {
			return fmt.Errorf("rename bundle: %w", err)
		}
	}
	return nil
}

func (b *Bundle) Close() error { return nil }

// buildBundles groups records by checkpoint sequence number. A batch
// must carry exactly one checkpoint record per sequence number it
// references.
func buildBundles(items []model.Record) (map[int64]*checkpointBundle, error) {
	bundles := make(map[int64]*checkpointBundle)
	get := func(sequence int64) *checkpointBundle {
		bundle, ok := bundles[sequence]
		if !ok {
			bundle = &checkpointBundle{
				Transactions: []*model.Transaction{},
				Objects:      []*model.Object{},
				Events:       []*model.Event{},
			}
			bundles[sequence] = bundle
		}
		return bundle
	}

	for _, item := range items {
		switch record := item.(type) {
		case *model.Checkpoint:
			if record.SequenceNumber == nil {
				return nil, fmt.Errorf("checkpoint record without sequence number")
			}
			bundle := get(*record.SequenceNumber)
			if bundle.Checkpoint != nil {
				return nil, fmt.Errorf("multiple checkpoint records for sequence number %d", *record.SequenceNumber)
			}
			bundle.Checkpoint = record
		case *model.Transaction:
			if record.CheckpointSequenceNumber != nil {
				bundle := get(*record.CheckpointSequenceNumber)
				bundle.Transactions = append(bundle.Transactions, record)
			}
		case *model.Object:
			if record.CheckpointSequenceNumber != nil {
				bundle := get(*record.CheckpointSequenceNumber)
				bundle.Objects = append(bundle.Objects, record)
			}
		case *model.Event:
			if record.CheckpointSequenceNumber != nil {
				bundle := get(*record.CheckpointSequenceNumber)
				bundle.Events = append(bundle.Events, record)
			}
		}
	}

	for sequence, bundle := range bundles {
		if bundle.Checkpoint == nil {
			return nil, fmt.Errorf("no checkpoint record for sequence number %d", sequence)
		}
	}
	return bundles, nil
}
