package rpc

import (
	"errors"
	"reflect"
	"testing"
)

func TestLatestCheckpointSequenceNumber(t *testing.T) {
	req := LatestCheckpointSequenceNumber()
	if req.JSONRPC != "2.0" {
		t.Fatalf("unexpected jsonrpc version: %s", req.JSONRPC)
	}
	if req.Method != "sui_getLatestCheckpointSequenceNumber" {
		t.Fatalf("unexpected method: %s", req.Method)
	}
	if len(req.Params) != 0 {
		t.Fatalf("expected empty params, got %v", req.Params)
	}
}

func TestCheckpointByNumber(t *testing.T) {
	req, err := CheckpointByNumber(12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != "sui_getCheckpoint" {
		t.Fatalf("unexpected method: %s", req.Method)
	}

	want := []any{"12345"}
	if !reflect.DeepEqual(req.Params, want) {
		t.Fatalf("params mismatch: %v != %v", req.Params, want)
	}
}

func TestCheckpointByNumberNegative(t *testing.T) {
	_, err := CheckpointByNumber(-1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMultiGetTransactionBlocks(t *testing.T) {
	digests := []string{"digestA", "digestB"}
	req := MultiGetTransactionBlocks(digests)

	if req.Method != "sui_multiGetTransactionBlocks" {
		t.Fatalf("unexpected method: %s", req.Method)
	}
	if len(req.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(req.Params))
	}
	if !reflect.DeepEqual(req.Params[0], digests) {
		t.Fatalf("digest param mismatch: %v", req.Params[0])
	}

	options, ok := req.Params[1].(TransactionBlockOptions)
	if !ok {
		t.Fatalf("options param has wrong type: %T", req.Params[1])
	}
	if !options.ShowInput || !options.ShowEffects || !options.ShowEvents ||
		!options.ShowObjectChanges || !options.ShowBalanceChanges {
		t.Fatalf("expected all detail options enabled: %+v", options)
	}
	if options.ShowRawInput {
		t.Fatalf("raw input must not be requested")
	}
}
