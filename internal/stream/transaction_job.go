package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"suistream/internal/export"
	"suistream/internal/mapper"
	"suistream/internal/model"
	"suistream/internal/rpc"
)

// TransactionJob fetches a checkpoint's transactions in multi-get
// chunks and runs all three mappers over every result element. The
// server is assumed to return elements in request order within a
// chunk; global ordering is re-established by the adapter afterwards.
type TransactionJob struct {
	digests   []string
	chunkSize int
	caller    rpc.Caller
	sink      export.Sink
	executor  Executor
}

func NewTransactionJob(digests []string, chunkSize int, caller rpc.Caller, sink export.Sink, executor Executor) *TransactionJob {
	if chunkSize <= 0 || chunkSize > rpc.MultiGetLimit {
		chunkSize = rpc.MultiGetLimit
	}
	return &TransactionJob{
		digests:   digests,
		chunkSize: chunkSize,
		caller:    caller,
		sink:      sink,
		executor:  executor,
	}
}

func (j *TransactionJob) Run(ctx context.Context) error {
	if len(j.digests) == 0 {
		return nil
	}

	chunks, err := ChunkDigests(j.digests, j.chunkSize)
	if err != nil {
		return err
	}
	return j.executor.Execute(ctx, chunks, j.exportChunk)
}

func (j *TransactionJob) exportChunk(ctx context.Context, digests []string) error {
	result, err := j.caller.Do(ctx, rpc.MultiGetTransactionBlocks(digests))
	if err != nil {
		return fmt.Errorf("multi-get transaction blocks: %w", err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(result, &elements); err != nil {
		return fmt.Errorf("%w: multi-get result is not an array", mapper.ErrMalformedResponse)
	}

	for _, element := range elements {
		records, err := mapElement(element)
		if err != nil {
			return err
		}
		if err := j.sink.ExportItems(records); err != nil {
			return fmt.Errorf("export transaction records: %w", err)
		}
	}
	return nil
}

func mapElement(element json.RawMessage) ([]model.Record, error) {
	tx, err := mapper.Transaction(element)
	if err != nil {
		return nil, fmt.Errorf("map transaction: %w", err)
	}

	objects, err := mapper.Objects(element)
	if err != nil {
		return nil, fmt.Errorf("map objects: %w", err)
	}

	events, err := mapper.Events(element)
	if err != nil {
		return nil, fmt.Errorf("map events: %w", err)
	}

	records := make([]model.Record, 0, 1+len(objects)+len(events))
	records = append(records, tx)
	for _, object := range objects {
		records = append(records, object)
	}
	for _, event := range events {
		records = append(records, event)
	}
	return records, nil
}
