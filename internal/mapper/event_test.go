package mapper

import (
	"encoding/json"
	"testing"
)

func TestEventsMapping(t *testing.T) {
	events, err := Events(json.RawMessage(transactionBlockJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event record, got %d", len(events))
	}

	event := events[0]
	if event.Type != "event" {
		t.Fatalf("type mismatch: %q", event.Type)
	}
	if event.TransactionDigest != "TxDigestA" {
		t.Fatalf("transaction digest mismatch: %q", event.TransactionDigest)
	}
	if event.EventSeq == nil || *event.EventSeq != 0 {
		t.Fatalf("event seq mismatch: %v", event.EventSeq)
	}
	if event.CheckpointSequenceNumber == nil || *event.CheckpointSequenceNumber != 12345 {
		t.Fatalf("checkpoint sequence mismatch: %v", event.CheckpointSequenceNumber)
	}
	if event.PackageID != "0xpkg" || event.TransactionModule != "market" {
		t.Fatalf("module mismatch: %q %q", event.PackageID, event.TransactionModule)
	}
	if event.EventType != "0xpkg::market::Listed" {
		t.Fatalf("event type mismatch: %q", event.EventType)
	}
	if event.ParsedJSON != `{"price": "100"}` {
		t.Fatalf("parsed json mismatch: %q", event.ParsedJSON)
	}
	if event.Bcs != "base64bytes" {
		t.Fatalf("bcs mismatch: %q", event.Bcs)
	}
	if event.Timestamp != "2023-11-14T22:13:20Z" {
		t.Fatalf("timestamp mismatch: %q", event.Timestamp)
	}
}

func TestEventsMappingAbsent(t *testing.T) {
	events, err := Events(json.RawMessage(`{"digest":"NoEvents"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
