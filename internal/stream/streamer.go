package stream

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"suistream/internal/metrics"
)

// StreamerConfig holds the sync loop settings.
type StreamerConfig struct {
	// StartSequence is used when no persisted state exists. Negative
	// means start from the current head.
	StartSequence int64
	// Lag is how many checkpoints to stay behind the head.
	Lag int64
	// Period is the sleep between head polls when caught up.
	Period time.Duration
	// MaxRetries and Backoff govern head-resolution retries.
	MaxRetries int
	Backoff    time.Duration
}

// Streamer drives the adapter continuously, one checkpoint per round,
// persisting progress after every successful round.
type Streamer struct {
	cfg     StreamerConfig
	adapter *Adapter
	state   *SyncStateStore
	logger  *zap.Logger
}

func NewStreamer(cfg StreamerConfig, adapter *Adapter, state *SyncStateStore, logger *zap.Logger) *Streamer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Period <= 0 {
		cfg.Period = 10 * time.Second
	}
	if cfg.Lag < 0 {
		cfg.Lag = 0
	}
	return &Streamer{cfg: cfg, adapter: adapter, state: state, logger: logger}
}

// Run loops until the context is cancelled. A failed round aborts the
// stream; the caller owns restart policy.
func (s *Streamer) Run(ctx context.Context) error {
	if err := s.adapter.Open(); err != nil {
		return fmt.Errorf("open sink: %w", err)
	}
	defer s.adapter.Close()

	lastSynced, err := s.resolveStart(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("resume position resolved", zap.Int64("last_synced", lastSynced))

	for {
		head, err := s.currentHeadWithRetry(ctx)
		if err != nil {
			return fmt.Errorf("resolve head: %w", err)
		}
		metrics.HeadSequence.Set(float64(head))

		target := head - s.cfg.Lag
		if target > lastSynced {
			s.logger.Info("sync backlog",
				zap.Int64("head", head),
				zap.Int64("target", target),
				zap.Int64("last_synced", lastSynced),
			)
		}

		for next := lastSynced + 1; next <= target; next++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err := s.adapter.ExportAll(ctx, next, next); err != nil {
				return fmt.Errorf("export checkpoint %d: %w", next, err)
			}
			if err := s.state.Save(next); err != nil {
				return err
			}
			lastSynced = next
			metrics.LastSyncedSequence.Set(float64(lastSynced))
		}

		timer := time.NewTimer(s.cfg.Period)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// resolveStart picks the resume point: persisted state wins, then the
// configured start, then one before the current head.
func (s *Streamer) resolveStart(ctx context.Context) (int64, error) {
	state, ok, err := s.state.Load()
	if err != nil {
		return 0, err
	}
	if ok {
		return state.LastSyncedSequence, nil
	}

	if s.cfg.StartSequence >= 0 {
		return s.cfg.StartSequence - 1, nil
	}

	head, err := s.currentHeadWithRetry(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve head: %w", err)
	}
	return head - 1, nil
}

func (s *Streamer) currentHeadWithRetry(ctx context.Context) (int64, error) {
	var head int64
	err := withRetry(ctx, s.cfg.MaxRetries, s.cfg.Backoff, func(ctx context.Context) error {
		var err error
		head, err = s.adapter.CurrentSequenceNumber(ctx)
		if err != nil {
			s.logger.Warn("head resolution failed", zap.Error(err))
		}
		return err
	})
	return head, err
}
