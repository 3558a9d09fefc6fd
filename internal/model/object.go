package model

// ObjectStatus is the effect bucket an object change came from.
type ObjectStatus string

const (
	ObjectCreated              ObjectStatus = "created"
	ObjectMutated              ObjectStatus = "mutated"
	ObjectUnwrapped            ObjectStatus = "unwrapped"
	ObjectDeleted              ObjectStatus = "deleted"
	ObjectUnwrappedThenDeleted ObjectStatus = "unwrapped_then_deleted"
	ObjectWrapped              ObjectStatus = "wrapped"
)

// Object is one object's state change within one transaction, keyed by
// (object_id, version). Owner fields are populated only for the owned
// buckets (created, mutated, unwrapped).
type Object struct {
	Type                     string       `json:"type"`
	ObjectID                 string       `json:"object_id"`
	Version                  *int64       `json:"version"`
	ObjectDigest             string       `json:"object_digest"`
	CheckpointSequenceNumber *int64       `json:"checkpoint_sequence_number"`
	PreviousTransaction      string       `json:"previous_transaction"`
	ObjectType               string       `json:"object_type"`
	ObjectStatus             ObjectStatus `json:"object_status"`
	OwnerType                string       `json:"owner_type"`
	OwnerAddress             string       `json:"owner_address"`
	InitialSharedVersion     *int64       `json:"initial_shared_version"`
	TimestampMs              *int64       `json:"timestamp_ms"`
	Timestamp                string       `json:"timestamp"`
	ItemID                   string       `json:"item_id"`
	ItemTimestamp            string       `json:"item_timestamp"`
}

func (o *Object) RecordType() string         { return TypeObject }
func (o *Object) SetItemID(id string)        { o.ItemID = id }
func (o *Object) SetItemTimestamp(ts string) { o.ItemTimestamp = ts }
