package stream

import (
	"context"
	"fmt"

	"suistream/internal/export"
	"suistream/internal/mapper"
	"suistream/internal/model"
	"suistream/internal/rpc"
)

// CheckpointJob fetches exactly one checkpoint by sequence number,
// maps it, and exports the single resulting record.
type CheckpointJob struct {
	sequenceNumber int64
	caller         rpc.Caller
	sink           export.Sink
}

// NewCheckpointJob validates the sequence number before any network
// call is made.
func NewCheckpointJob(sequenceNumber int64, caller rpc.Caller, sink export.Sink) (*CheckpointJob, error) {
	if sequenceNumber < 0 {
		return nil, fmt.Errorf("%w: negative checkpoint number %d", rpc.ErrInvalidArgument, sequenceNumber)
	}
	return &CheckpointJob{
		sequenceNumber: sequenceNumber,
		caller:         caller,
		sink:           sink,
	}, nil
}

func (j *CheckpointJob) Run(ctx context.Context) error {
	req, err := rpc.CheckpointByNumber(j.sequenceNumber)
	if err != nil {
		return err
	}

	result, err := j.caller.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("fetch checkpoint %d: %w", j.sequenceNumber, err)
	}

	checkpoint, err := mapper.Checkpoint(result)
	if err != nil {
		return fmt.Errorf("map checkpoint %d: %w", j.sequenceNumber, err)
	}

	if err := j.sink.ExportItems([]model.Record{checkpoint}); err != nil {
		return fmt.Errorf("export checkpoint %d: %w", j.sequenceNumber, err)
	}
	return nil
}
