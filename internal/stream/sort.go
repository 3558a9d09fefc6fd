package stream

import (
	"sort"

	"suistream/internal/model"
)

// Type ranks fix the inter-type order of a batch: the checkpoint
// leads, then transactions, objects, events.
var typeRank = map[string]int{
	model.TypeCheckpoint:  0,
	model.TypeTransaction: 1,
	model.TypeObject:      2,
	model.TypeEvent:       3,
}

type sortKey struct {
	rank     int
	sequence int64
	text     string
	number   int64
}

func recordSortKey(record model.Record) sortKey {
	switch r := record.(type) {
	case *model.Checkpoint:
		return sortKey{rank: typeRank[model.TypeCheckpoint], sequence: int64Or(r.SequenceNumber, -1)}
	case *model.Transaction:
		return sortKey{rank: typeRank[model.TypeTransaction], sequence: int64Or(r.CheckpointSequenceNumber, -1), text: r.Digest}
	case *model.Object:
		return sortKey{rank: typeRank[model.TypeObject], sequence: int64Or(r.CheckpointSequenceNumber, -1), text: r.ObjectID, number: int64Or(r.Version, -1)}
	case *model.Event:
		return sortKey{rank: typeRank[model.TypeEvent], sequence: int64Or(r.CheckpointSequenceNumber, -1), text: r.TransactionDigest, number: int64Or(r.EventSeq, -1)}
	default:
		return sortKey{rank: len(typeRank)}
	}
}

func (k sortKey) less(other sortKey) bool {
	if k.rank != other.rank {
		return k.rank < other.rank
	}
	if k.sequence != other.sequence {
		return k.sequence < other.sequence
	}
	if k.text != other.text {
		return k.text < other.text
	}
	return k.number < other.number
}

// SortRecords orders a mixed batch deterministically by the composite
// type-specific key. The result is independent of input order, which
// makes re-exports after transport-level reordering byte-stable.
func SortRecords(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return recordSortKey(records[i]).less(recordSortKey(records[j]))
	})
}

func int64Or(p *int64, fallback int64) int64 {
	if p == nil {
		return fallback
	}
	return *p
}
