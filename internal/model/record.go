package model

import "time"

// Record type discriminants as emitted in the "type" field.
const (
	TypeCheckpoint  = "checkpoint"
	TypeTransaction = "transaction"
	TypeObject      = "object"
	TypeEvent       = "event"
)

// Record is the common surface of all exported items. Every record
// carries a type discriminant plus an item identity and display
// timestamp assigned at assembly time.
type Record interface {
	RecordType() string
	SetItemID(id string)
	SetItemTimestamp(ts string)
}

// FormatTimestampMs converts epoch milliseconds into an RFC 3339 UTC
// string truncated to whole seconds.
func FormatTimestampMs(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
