package model

// GasCostSummary carries the four rolling gas cost figures. The values
// are kept as decimal strings: both integer and string encodings occur
// upstream and u64 magnitudes do not survive a float round trip.
type GasCostSummary struct {
	ComputationCost         string `json:"computation_cost"`
	StorageCost             string `json:"storage_cost"`
	StorageRebate           string `json:"storage_rebate"`
	NonRefundableStorageFee string `json:"non_refundable_storage_fee"`
}

// Commitment is one checkpoint commitment entry. The digest payload is
// passed through verbatim; its inner structure varies by protocol
// version and is not interpreted here.
type Commitment struct {
	Digest string `json:"digest"`
}

// CommitteeMember is one (authority, stake) pair from the next epoch
// committee, taken positionally from a two-element array.
type CommitteeMember struct {
	AuthorityName string `json:"authority_name"`
	StakeUnit     string `json:"stake_unit"`
}

// EndOfEpochData is present only on the last checkpoint of an epoch.
type EndOfEpochData struct {
	NextEpochCommittee       []CommitteeMember `json:"next_epoch_committee"`
	NextEpochProtocolVersion *int64            `json:"next_epoch_protocol_version"`
	EpochCommitments         []Commitment      `json:"epoch_commitments"`
}

// Checkpoint is the normalized form of one sui_getCheckpoint result.
type Checkpoint struct {
	Type                          string          `json:"type"`
	SequenceNumber                *int64          `json:"sequence_number"`
	Digest                        string          `json:"digest"`
	Epoch                         *int64          `json:"epoch"`
	PreviousDigest                string          `json:"previous_digest"`
	NetworkTotalTransactions      *int64          `json:"network_total_transactions"`
	EpochRollingGasCostSummary    *GasCostSummary `json:"epoch_rolling_gas_cost_summary"`
	TimestampMs                   *int64          `json:"timestamp_ms"`
	Timestamp                     string          `json:"timestamp"`
	Transactions                  []string        `json:"transactions"`
	CheckpointCommitments         []Commitment    `json:"checkpoint_commitments"`
	EndOfEpochData                *EndOfEpochData `json:"end_of_epoch_data"`
	ValidatorSignature            string          `json:"validator_signature"`
	ItemID                        string          `json:"item_id"`
	ItemTimestamp                 string          `json:"item_timestamp"`
}

func (c *Checkpoint) RecordType() string         { return TypeCheckpoint }
func (c *Checkpoint) SetItemID(id string)        { c.ItemID = id }
func (c *Checkpoint) SetItemTimestamp(ts string) { c.ItemTimestamp = ts }
