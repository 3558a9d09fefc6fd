// Package stream implements the checkpoint-driven export pipeline:
// one round fetches a single checkpoint and its transactions, maps
// everything into canonical records, assigns identities and
// timestamps, and hands the sink one deterministically ordered batch.
package stream

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"suistream/internal/export"
	"suistream/internal/mapper"
	"suistream/internal/metrics"
	"suistream/internal/model"
	"suistream/internal/rpc"
)

// AdapterConfig holds the per-adapter settings.
type AdapterConfig struct {
	ChunkSize  int
	Workers    int
	MaxRetries int
	Backoff    time.Duration
	Entities   EntitySet
}

// Adapter orchestrates one checkpoint's export round against an
// injected transport and sink.
type Adapter struct {
	caller   rpc.Caller
	sink     export.Sink
	logger   *zap.Logger
	executor Executor
	cfg      AdapterConfig
}

// NewAdapter wires an adapter. All collaborators are explicit; a nil
// logger degrades to a no-op.
func NewAdapter(cfg AdapterConfig, caller rpc.Caller, sink export.Sink, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Entities == nil {
		cfg.Entities = AllEntities()
	}
	if cfg.ChunkSize <= 0 || cfg.ChunkSize > rpc.MultiGetLimit {
		cfg.ChunkSize = rpc.MultiGetLimit
	}
	return &Adapter{
		caller: caller,
		sink:   sink,
		logger: logger,
		executor: Executor{
			Workers:    cfg.Workers,
			MaxRetries: cfg.MaxRetries,
			Backoff:    cfg.Backoff,
		},
		cfg: cfg,
	}
}

// Open prepares the sink.
func (a *Adapter) Open() error { return a.sink.Open() }

// Close tears the sink down.
func (a *Adapter) Close() error { return a.sink.Close() }

// CurrentSequenceNumber resolves the chain head for backlog tracking.
func (a *Adapter) CurrentSequenceNumber(ctx context.Context) (int64, error) {
	result, err := a.caller.Do(ctx, rpc.LatestCheckpointSequenceNumber())
	if err != nil {
		return 0, fmt.Errorf("get latest checkpoint sequence number: %w", err)
	}

	var head rpc.Int64
	if err := head.UnmarshalJSON(result); err != nil || !head.Valid {
		return 0, fmt.Errorf("%w: latest sequence number is not numeric", mapper.ErrMalformedResponse)
	}
	return head.Int64, nil
}

// ExportAll exports one round. Multi-checkpoint ranges are not
// supported: start must equal end, and the surrounding loop advances
// one checkpoint at a time.
func (a *Adapter) ExportAll(ctx context.Context, start, end int64) error {
	began := time.Now()
	err := a.exportRound(ctx, start, end)
	metrics.RoundDuration.Observe(time.Since(began).Seconds())
	if err != nil {
		metrics.RoundsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.RoundsTotal.WithLabelValues("ok").Inc()
	return nil
}

func (a *Adapter) exportRound(ctx context.Context, start, end int64) error {
	if start != end {
		return fmt.Errorf("%w: one round exports exactly one checkpoint, got range [%d, %d]", rpc.ErrInvalidArgument, start, end)
	}

	checkpoint, err := a.exportCheckpoint(ctx, start)
	if err != nil {
		return err
	}

	var transactionRecords []model.Record
	if a.cfg.Entities.WantsTransactions() {
		transactionRecords, err = a.exportTransactions(ctx, checkpoint.Transactions)
		if err != nil {
			return err
		}
	}

	items := make([]model.Record, 0, 1+len(transactionRecords))
	items = append(items, checkpoint)
	for _, record := range transactionRecords {
		if a.cfg.Entities.Keep(record.RecordType()) {
			items = append(items, record)
		}
	}

	SortRecords(items)
	a.assignIdentities(items)
	a.assignTimestamps(items)

	a.logger.Info("export round assembled",
		zap.Int64("sequence_number", start),
		zap.Int("records", len(items)),
	)

	if err := a.sink.ExportItems(items); err != nil {
		return fmt.Errorf("export round %d: %w", start, err)
	}
	for _, item := range items {
		metrics.RecordsExported.WithLabelValues(item.RecordType()).Inc()
	}
	return nil
}

// exportCheckpoint runs the checkpoint job into a collector and
// enforces the one-record invariant.
func (a *Adapter) exportCheckpoint(ctx context.Context, sequenceNumber int64) (*model.Checkpoint, error) {
	collector := export.NewMemory()
	job, err := NewCheckpointJob(sequenceNumber, a.caller, collector)
	if err != nil {
		return nil, err
	}
	if err := job.Run(ctx); err != nil {
		return nil, err
	}

	checkpoints := collector.ItemsOfType(model.TypeCheckpoint)
	if len(checkpoints) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one checkpoint record for sequence number %d, got %d",
			ErrIntegrity, sequenceNumber, len(checkpoints))
	}
	return checkpoints[0].(*model.Checkpoint), nil
}

func (a *Adapter) exportTransactions(ctx context.Context, digests []string) ([]model.Record, error) {
	collector := export.NewMemory()
	job := NewTransactionJob(digests, a.cfg.ChunkSize, a.caller, collector, a.executor)
	if err := job.Run(ctx); err != nil {
		return nil, err
	}
	return collector.Items(), nil
}

func (a *Adapter) assignIdentities(items []model.Record) {
	for _, item := range items {
		id, ok := ItemID(item)
		if !ok {
			a.logger.Warn("item id unavailable", zap.String("record_type", item.RecordType()))
		}
		item.SetItemID(id)
	}
}

func (a *Adapter) assignTimestamps(items []model.Record) {
	for _, item := range items {
		ts, ok := ItemTimestamp(item)
		if !ok {
			a.logger.Warn("item timestamp unavailable", zap.String("record_type", item.RecordType()))
		}
		item.SetItemTimestamp(ts)
	}
}
