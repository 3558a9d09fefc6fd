// Package postgres persists exported records with pgx. Re-exporting a
// round is safe: every table upserts on item_id, matching the
// idempotent identity contract of the stream.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"suistream/internal/model"
)

// Store is a Postgres export sink.
type Store struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool, timeout: 30 * time.Second}, nil
}

func (s *Store) Open() error { return nil }

func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// ExportItems writes the whole batch in one pgx batch round trip.
func (s *Store) ExportItems(items []model.Record) error {
	if len(items) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	batch := &pgx.Batch{}
	for _, item := range items {
		switch record := item.(type) {
		case *model.Checkpoint:
			queueCheckpoint(batch, record)
		case *model.Transaction:
			queueTransaction(batch, record)
		case *model.Object:
			queueObject(batch, record)
		case *model.Event:
			queueEvent(batch, record)
		default:
			return fmt.Errorf("unsupported record type %T", item)
		}
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert record: %w", err)
		}
	}
	return nil
}

func queueCheckpoint(batch *pgx.Batch, checkpoint *model.Checkpoint) {
	batch.Queue(`
		INSERT INTO checkpoints (
			item_id, sequence_number, digest, epoch, previous_digest,
			network_total_transactions, timestamp_ms, item_timestamp, payload, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (item_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			item_timestamp = EXCLUDED.item_timestamp,
			updated_at = now()
	`,
		checkpoint.ItemID,
		checkpoint.SequenceNumber,
		checkpoint.Digest,
		checkpoint.Epoch,
		checkpoint.PreviousDigest,
		checkpoint.NetworkTotalTransactions,
		checkpoint.TimestampMs,
		nullable(checkpoint.ItemTimestamp),
		asJSON(checkpoint),
	)
}

func queueTransaction(batch *pgx.Batch, tx *model.Transaction) {
	batch.Queue(`
		INSERT INTO transactions (
			item_id, digest, checkpoint_sequence_number, sender,
			execution_status, timestamp_ms, item_timestamp, payload, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (item_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			item_timestamp = EXCLUDED.item_timestamp,
			updated_at = now()
	`,
		tx.ItemID,
		tx.Digest,
		tx.CheckpointSequenceNumber,
		tx.Sender,
		tx.ExecutionStatus,
		tx.TimestampMs,
		nullable(tx.ItemTimestamp),
		asJSON(tx),
	)
}

func queueObject(batch *pgx.Batch, object *model.Object) {
	batch.Queue(`
		INSERT INTO objects (
			item_id, object_id, version, object_digest, checkpoint_sequence_number,
			previous_transaction, object_type, object_status, owner_type, owner_address,
			timestamp_ms, item_timestamp, payload, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())
		ON CONFLICT (item_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			item_timestamp = EXCLUDED.item_timestamp,
			updated_at = now()
	`,
		object.ItemID,
		object.ObjectID,
		object.Version,
		object.ObjectDigest,
		object.CheckpointSequenceNumber,
		object.PreviousTransaction,
		object.ObjectType,
		string(object.ObjectStatus),
		object.OwnerType,
		object.OwnerAddress,
		object.TimestampMs,
		nullable(object.ItemTimestamp),
		asJSON(object),
	)
}

func queueEvent(batch *pgx.Batch, event *model.Event) {
	batch.Queue(`
		INSERT INTO events (
			item_id, transaction_digest, event_seq, checkpoint_sequence_number,
			package_id, transaction_module, sender, event_type,
			timestamp_ms, item_timestamp, payload, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (item_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			item_timestamp = EXCLUDED.item_timestamp,
			updated_at = now()
	`,
		event.ItemID,
		event.TransactionDigest,
		event.EventSeq,
		event.CheckpointSequenceNumber,
		event.PackageID,
		event.TransactionModule,
		event.Sender,
		event.EventType,
		event.TimestampMs,
		nullable(event.ItemTimestamp),
		asJSON(event),
	)
}

// LoadState returns the last synced sequence number for a stream name.
func (s *Store) LoadState(ctx context.Context, name string) (int64, bool, error) {
	if name == "" {
		return 0, false, fmt.Errorf("state name required")
	}
	var sequence int64
	row := s.pool.QueryRow(ctx, `SELECT last_synced_sequence FROM stream_state WHERE name=$1`, name)
	if err := row.Scan(&sequence); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return sequence, true, nil
}

// SaveState upserts the last synced sequence number for a stream name.
func (s *Store) SaveState(ctx context.Context, name string, sequence int64) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO stream_state (name, last_synced_sequence, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET last_synced_sequence = EXCLUDED.last_synced_sequence, updated_at = now()
	`, name, sequence)
	return err
}

func asJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
