package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"suistream/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBundleExport(t *testing.T) {
	dir := t.TempDir()
	sink := NewBundle(dir)
	if err := sink.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	seq := int64Ptr(100)
	items := []model.Record{
		&model.Checkpoint{Digest: "Ckpt100", SequenceNumber: seq},
		&model.Transaction{Digest: "TxAlpha", CheckpointSequenceNumber: seq},
		&model.Object{ObjectID: "0xnew", Version: int64Ptr(6), CheckpointSequenceNumber: seq},
		&model.Event{TransactionDigest: "TxAlpha", EventSeq: int64Ptr(0), CheckpointSequenceNumber: seq},
	}
	if err := sink.ExportItems(items); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "100.json"))
	if err != nil {
		t.Fatalf("bundle file missing: %v", err)
	}

	var bundle struct {
		Checkpoint   *model.Checkpoint    `json:"checkpoint"`
		Transactions []*model.Transaction `json:"transactions"`
		Objects      []*model.Object      `json:"objects"`
		Events       []*model.Event       `json:"events"`
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatalf("bundle not valid JSON: %v", err)
	}
	if bundle.Checkpoint == nil || bundle.Checkpoint.Digest != "Ckpt100" {
		t.Fatalf("checkpoint mismatch: %+v", bundle.Checkpoint)
	}
	if len(bundle.Transactions) != 1 || bundle.Transactions[0].Digest != "TxAlpha" {
		t.Fatalf("transactions mismatch: %+v", bundle.Transactions)
	}
	if len(bundle.Objects) != 1 || len(bundle.Events) != 1 {
		t.Fatalf("objects/events mismatch: %d/%d", len(bundle.Objects), len(bundle.Events))
	}
}

func TestBundleRejectsDuplicateCheckpoint(t *testing.T) {
	sink := NewBundle(t.TempDir())
	if err := sink.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	seq := int64Ptr(100)
	items := []model.Record{
		&model.Checkpoint{Digest: "CkptA", SequenceNumber: seq},
		&model.Checkpoint{Digest: "CkptB", SequenceNumber: seq},
	}
	if err := sink.ExportItems(items); err == nil {
		t.Fatal("expected error for duplicate checkpoint records")
	}
}

func TestBundleRejectsOrphanRecords(t *testing.T) {
	sink := NewBundle(t.TempDir())
	if err := sink.Open(); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	items := []model.Record{
		&model.Transaction{Digest: "TxAlpha", CheckpointSequenceNumber: int64Ptr(100)},
	}
	if err := sink.ExportItems(items); err == nil {
		t.Fatal("expected error when no checkpoint record accompanies the batch")
	}
}
