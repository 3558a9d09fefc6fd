package rpc

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Int64 is a nullable integer decoded permissively: JSON numbers and
// numeric strings both parse, anything else (including null) leaves
// the value unset instead of failing.
type Int64 struct {
	Int64 int64
	Valid bool
}

func (v *Int64) UnmarshalJSON(b []byte) error {
	*v = Int64{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return nil
	}
	*v = Int64{Int64: n, Valid: true}
	return nil
}

// Ptr returns the value as a nullable pointer for record fields.
func (v Int64) Ptr() *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// BigString keeps a numeric field verbatim as its decimal text, whether
// the server sent a JSON number or a string. u64 gas values overflow
// float64, so the digits are never run through a number type.
type BigString string

func (s *BigString) UnmarshalJSON(b []byte) error {
	*s = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var q string
		if err := json.Unmarshal(b, &q); err != nil {
			return nil
		}
		*s = BigString(q)
		return nil
	}
	*s = BigString(b)
	return nil
}

func (s BigString) String() string { return string(s) }

// RawText renders a raw JSON value as text: quoted strings are
// unwrapped, everything else is passed through verbatim.
func RawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// GasCostSummary mirrors the four-field gas summary that appears both
// on checkpoints (epochRollingGasCostSummary) and on transaction
// effects (gasUsed).
type GasCostSummary struct {
	ComputationCost         BigString `json:"computationCost"`
	StorageCost             BigString `json:"storageCost"`
	StorageRebate           BigString `json:"storageRebate"`
	NonRefundableStorageFee BigString `json:"nonRefundableStorageFee"`
}

// Commitment is one checkpoint commitment entry; the digest payload is
// version-dependent and kept raw.
type Commitment struct {
	Digest json.RawMessage `json:"digest"`
}

// EndOfEpochData appears on the final checkpoint of an epoch. Committee
// members are two-element [name, stake] arrays.
type EndOfEpochData struct {
	NextEpochCommittee       []json.RawMessage `json:"nextEpochCommittee"`
	NextEpochProtocolVersion Int64             `json:"nextEpochProtocolVersion"`
	EpochCommitments         []Commitment      `json:"epochCommitments"`
}

// CheckpointResult is the raw sui_getCheckpoint result shape.
type CheckpointResult struct {
	Epoch                      Int64           `json:"epoch"`
	SequenceNumber             Int64           `json:"sequenceNumber"`
	Digest                     string          `json:"digest"`
	NetworkTotalTransactions   Int64           `json:"networkTotalTransactions"`
	PreviousDigest             string          `json:"previousDigest"`
	EpochRollingGasCostSummary *GasCostSummary `json:"epochRollingGasCostSummary"`
	TimestampMs                Int64           `json:"timestampMs"`
	Transactions               []string        `json:"transactions"`
	CheckpointCommitments      []Commitment    `json:"checkpointCommitments"`
	ValidatorSignature         string          `json:"validatorSignature"`
	EndOfEpochData             *EndOfEpochData `json:"endOfEpochData"`
}

// ObjectRef identifies one object version.
type ObjectRef struct {
	ObjectID string `json:"objectId"`
	Version  Int64  `json:"version"`
	Digest   string `json:"digest"`
}

// OwnedObjectRef pairs an object reference with its owner union; the
// owner stays raw until model.ParseOwner normalizes it.
type OwnedObjectRef struct {
	Owner     json.RawMessage `json:"owner"`
	Reference *ObjectRef      `json:"reference"`
}

// GasData describes how a transaction pays for gas.
type GasData struct {
	Payment []ObjectRef `json:"payment"`
	Owner   string      `json:"owner"`
	Price   BigString   `json:"price"`
	Budget  BigString   `json:"budget"`
}

// TransactionData is the signed payload of a transaction block.
type TransactionData struct {
	Sender      string          `json:"sender"`
	GasData     *GasData        `json:"gasData"`
	Transaction json.RawMessage `json:"transaction"`
}

// TransactionEnvelope wraps transaction data with its signatures.
type TransactionEnvelope struct {
	Data         *TransactionData `json:"data"`
	TxSignatures []string         `json:"txSignatures"`
}

// ExecutionStatus is the effects-level success/failure marker.
type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ModifiedAtVersion records the pre-execution version of a touched
// object.
type ModifiedAtVersion struct {
	ObjectID       string `json:"objectId"`
	SequenceNumber Int64  `json:"sequenceNumber"`
}

// Effects is the raw transaction effects sub-tree.
type Effects struct {
	Status               *ExecutionStatus    `json:"status"`
	ExecutedEpoch        Int64               `json:"executedEpoch"`
	GasUsed              *GasCostSummary     `json:"gasUsed"`
	ModifiedAtVersions   []ModifiedAtVersion `json:"modifiedAtVersions"`
	SharedObjects        []ObjectRef         `json:"sharedObjects"`
	Created              []OwnedObjectRef    `json:"created"`
	Mutated              []OwnedObjectRef    `json:"mutated"`
	Unwrapped            []OwnedObjectRef    `json:"unwrapped"`
	Deleted              []ObjectRef         `json:"deleted"`
	UnwrappedThenDeleted []ObjectRef         `json:"unwrappedThenDeleted"`
	Wrapped              []ObjectRef         `json:"wrapped"`
	GasObject            *OwnedObjectRef     `json:"gasObject"`
	EventsDigest         string              `json:"eventsDigest"`
	Dependencies         []string            `json:"dependencies"`
}

// EventID keys an event within its transaction.
type EventID struct {
	TxDigest string `json:"txDigest"`
	EventSeq Int64  `json:"eventSeq"`
}

// EventResult is one entry of the events array.
type EventResult struct {
	ID                *EventID        `json:"id"`
	PackageID         string          `json:"packageId"`
	TransactionModule string          `json:"transactionModule"`
	Sender            string          `json:"sender"`
	Type              string          `json:"type"`
	ParsedJSON        json.RawMessage `json:"parsedJson"`
	Bcs               string          `json:"bcs"`
}

// BalanceChangeResult is one entry of the balanceChanges array.
type BalanceChangeResult struct {
	Owner    json.RawMessage `json:"owner"`
	CoinType string          `json:"coinType"`
	Amount   BigString       `json:"amount"`
}

// TransactionBlockResult is one raw element of a
// sui_multiGetTransactionBlocks result.
type TransactionBlockResult struct {
	Digest                  string                `json:"digest"`
	Transaction             *TransactionEnvelope  `json:"transaction"`
	Effects                 *Effects              `json:"effects"`
	Events                  []EventResult         `json:"events"`
	ObjectChanges           []ObjectChange        `json:"objectChanges"`
	BalanceChanges          []BalanceChangeResult `json:"balanceChanges"`
	TimestampMs             Int64                 `json:"timestampMs"`
	Checkpoint              Int64                 `json:"checkpoint"`
	ConfirmedLocalExecution *bool                 `json:"confirmedLocalExecution"`
}
