// Package export provides the sinks a sync round hands its assembled
// batch to. Open and Close are idempotent; ExportItems is called once
// per round with the full, pre-sorted batch.
package export

import "suistream/internal/model"

// Sink receives one ordered batch per sync round.
type Sink interface {
	Open() error
	ExportItems(items []model.Record) error
	Close() error
}
