package mapper

import (
	"encoding/json"
	"fmt"

	"suistream/internal/model"
	"suistream/internal/rpc"
)

// Events maps one multi-get result element into zero or more event
// records. A transaction without an events array legitimately yields
// an empty list.
func Events(raw json.RawMessage) ([]*model.Event, error) {
	if err := ensureObject(raw); err != nil {
		return nil, err
	}

	var result rpc.TransactionBlockResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	checkpointSeq := result.Checkpoint.Ptr()
	timestampMs := result.TimestampMs.Ptr()
	timestamp := ""
	if timestampMs != nil {
		timestamp = model.FormatTimestampMs(*timestampMs)
	}

	events := make([]*model.Event, 0, len(result.Events))
	for _, entry := range result.Events {
		event := &model.Event{
			Type:                     model.TypeEvent,
			TransactionDigest:        result.Digest,
			CheckpointSequenceNumber: checkpointSeq,
			PackageID:                entry.PackageID,
			TransactionModule:        entry.TransactionModule,
			Sender:                   entry.Sender,
			EventType:                entry.Type,
			ParsedJSON:               rpc.RawText(entry.ParsedJSON),
			Bcs:                      entry.Bcs,
			TimestampMs:              timestampMs,
			Timestamp:                timestamp,
		}
		if entry.ID != nil {
			event.EventSeq = entry.ID.EventSeq.Ptr()
		}
		events = append(events, event)
	}

	return events, nil
}
