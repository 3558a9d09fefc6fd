package stream

import "suistream/internal/model"

// ItemTimestamp derives the canonical display timestamp of a record:
// a pre-computed timestamp field wins, otherwise timestamp_ms converts
// to RFC 3339 UTC truncated to whole seconds. It reports false when
// neither source is available; the caller decides whether to log.
func ItemTimestamp(record model.Record) (string, bool) {
	timestamp, timestampMs := timestampFields(record)
	if timestamp != "" {
		return timestamp, true
	}
	if timestampMs != nil {
		return model.FormatTimestampMs(*timestampMs), true
	}
	return "", false
}

func timestampFields(record model.Record) (string, *int64) {
	switch r := record.(type) {
	case *model.Checkpoint:
		return r.Timestamp, r.TimestampMs
	case *model.Transaction:
		return r.Timestamp, r.TimestampMs
	case *model.Object:
		return r.Timestamp, r.TimestampMs
	case *model.Event:
		return r.Timestamp, r.TimestampMs
	default:
		return "", nil
	}
}
