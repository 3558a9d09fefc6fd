package model

// Event is one Move event emitted by a transaction, keyed by
// (transaction_digest, event_seq).
type Event struct {
	Type                     string `json:"type"`
	TransactionDigest        string `json:"transaction_digest"`
	EventSeq                 *int64 `json:"event_seq"`
	CheckpointSequenceNumber *int64 `json:"checkpoint_sequence_number"`
	PackageID                string `json:"package_id"`
	TransactionModule        string `json:"transaction_module"`
	Sender                   string `json:"sender"`
	EventType                string `json:"event_type"`
	ParsedJSON               string `json:"parsed_json"`
	Bcs                      string `json:"bcs"`
	TimestampMs              *int64 `json:"timestamp_ms"`
	Timestamp                string `json:"timestamp"`
	ItemID                   string `json:"item_id"`
	ItemTimestamp            string `json:"item_timestamp"`
}

func (e *Event) RecordType() string         { return TypeEvent }
func (e *Event) SetItemID(id string)        { e.ItemID = id }
func (e *Event) SetItemTimestamp(ts string) { e.ItemTimestamp = ts }
