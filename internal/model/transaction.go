package model

// GasPayment is one coin object consumed to pay gas.
type GasPayment struct {
	ObjectID string `json:"object_id"`
	Version  *int64 `json:"version"`
	Digest   string `json:"digest"`
}

// BalanceChange is one normalized (owner, coin_type, amount) tuple.
type BalanceChange struct {
	OwnerType            string `json:"owner_type"`
	OwnerAddress         string `json:"owner_address"`
	InitialSharedVersion *int64 `json:"initial_shared_version"`
	CoinType             string `json:"coin_type"`
	Amount               string `json:"amount"`
}

// Transaction is the normalized form of one multi-get result element.
// The six effect buckets are flattened to object id lists; the full
// per-object detail lives in the Object records produced alongside.
type Transaction struct {
	Type                     string          `json:"type"`
	Digest                   string          `json:"digest"`
	CheckpointSequenceNumber *int64          `json:"checkpoint_sequence_number"`
	Sender                   string          `json:"sender"`
	TransactionKind          string          `json:"transaction_kind"`
	TransactionJSON          string          `json:"transaction_json"`
	TxSignatures             []string        `json:"tx_signatures"`
	GasPayments              []GasPayment    `json:"gas_payments"`
	GasOwner                 string          `json:"gas_owner"`
	GasPrice                 string          `json:"gas_price"`
	GasBudget                string          `json:"gas_budget"`
	ComputationCost          string          `json:"computation_cost"`
	StorageCost              string          `json:"storage_cost"`
	StorageRebate            string          `json:"storage_rebate"`
	NonRefundableStorageFee  string          `json:"non_refundable_storage_fee"`
	GasObjectID              string          `json:"gas_object_id"`
	GasObjectVersion         *int64          `json:"gas_object_version"`
	GasObjectDigest          string          `json:"gas_object_digest"`
	ExecutionStatus          string          `json:"execution_status"`
	ExecutedEpoch            *int64          `json:"executed_epoch"`
	EventsDigest             string          `json:"events_digest"`
	ConfirmedLocalExecution  *bool           `json:"confirmed_local_execution"`
	TransactionDependencies  []string        `json:"transaction_dependencies"`
	Created                  []string        `json:"created"`
	Mutated                  []string        `json:"mutated"`
	Unwrapped                []string        `json:"unwrapped"`
	Deleted                  []string        `json:"deleted"`
	UnwrappedThenDeleted     []string        `json:"unwrapped_then_deleted"`
	Wrapped                  []string        `json:"wrapped"`
	SharedObjects            []string        `json:"shared_objects"`
	BalanceChanges           []BalanceChange `json:"balance_changes"`
	TimestampMs              *int64          `json:"timestamp_ms"`
	Timestamp                string          `json:"timestamp"`
	ItemID                   string          `json:"item_id"`
	ItemTimestamp            string          `json:"item_timestamp"`
}

func (t *Transaction) RecordType() string         { return TypeTransaction }
func (t *Transaction) SetItemID(id string)        { t.ItemID = id }
func (t *Transaction) SetItemTimestamp(ts string) { t.ItemTimestamp = ts }
