package rpc

import (
	"errors"
	"strconv"
)

// ErrInvalidArgument marks malformed caller input detected before any
// network call is made.
var ErrInvalidArgument = errors.New("invalid argument")

// MultiGetLimit is the server-side result limit for
// sui_multiGetTransactionBlocks. Callers must chunk digest lists to at
// most this many entries per call.
const MultiGetLimit = 25

// Request is a JSON-RPC 2.0 call envelope.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

// TransactionBlockOptions selects which parts of a transaction block
// the server includes in a multi-get result.
type TransactionBlockOptions struct {
	ShowInput          bool `json:"showInput"`
	ShowRawInput       bool `json:"showRawInput"`
	ShowEffects        bool `json:"showEffects"`
	ShowEvents         bool `json:"showEvents"`
	ShowObjectChanges  bool `json:"showObjectChanges"`
	ShowBalanceChanges bool `json:"showBalanceChanges"`
}

func newRequest(method string, params []any) Request {
	return Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}
}

// LatestCheckpointSequenceNumber builds the head-resolution call.
func LatestCheckpointSequenceNumber() Request {
	return newRequest("sui_getLatestCheckpointSequenceNumber", []any{})
}

// CheckpointByNumber builds the single-checkpoint lookup. The sequence
// number travels as a decimal string per the Sui API.
func CheckpointByNumber(sequenceNumber int64) (Request, error) {
	if sequenceNumber < 0 {
		return Request{}, ErrInvalidArgument
	}
	return newRequest("sui_getCheckpoint", []any{strconv.FormatInt(sequenceNumber, 10)}), nil
}

// MultiGetTransactionBlocks builds one batched transaction lookup. The
// builder does not chunk; digests must already be capped at
// MultiGetLimit.
func MultiGetTransactionBlocks(digests []string) Request {
	options := TransactionBlockOptions{
		ShowInput:          true,
		ShowRawInput:       false,
		ShowEffects:        true,
		ShowEvents:         true,
		ShowObjectChanges:  true,
		ShowBalanceChanges: true,
	}
	return newRequest("sui_multiGetTransactionBlocks", []any{digests, options})
}
