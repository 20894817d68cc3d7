package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/config"
	"github.com/openrank/compute-relayer/internal/metrics"
)

// Relayer is the controller for the whole app:
// 1. wakes up every TickInterval
// 2. attempts a batch of sequence numbers starting at the stored cursor, advancing the cursor after each
// 3. sweeps the retry set, dropping the sequence numbers that end up submitted
//
// All attempts run one at a time on the goroutine that calls Run.
type Relayer struct {
	pipeline     Pipeline
	storage      Storage
	logger       *zap.Logger
	tickInterval time.Duration
	batchSize    uint64

	requeueMu sync.Mutex
	requeued  []uint64
}

func NewRelayer(
	cfg config.RelayerConfig,
	pipeline Pipeline,
	storage Storage,
	logger *zap.Logger,
) *Relayer {
	return &Relayer{
		pipeline:     pipeline,
		storage:      storage,
		logger:       logger,
		tickInterval: cfg.TickInterval,
		batchSize:    cfg.BatchSize,
	}
}

// Run ticks until ctx is cancelled. Tick errors are logged and never stop the loop.
func (r *Relayer) Run(ctx context.Context) error {
	r.logger.Info("relayer started",
		zap.Duration("tick_interval", r.tickInterval),
		zap.Uint64("batch_size", r.batchSize))

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	for {
		if err := r.Tick(ctx); err != nil && !errors.Is(err, context.Canceled) {
			r.logger.Error("tick ended early", zap.Error(err))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			r.logger.Info("context cancelled, shutting down relayer...")
			return nil
		}
	}
}

// Requeue schedules failed sequence numbers for the retry sweep. The request is merged into the stored
// retry set at the beginning of the next tick, so the tick loop stays the only writer of the set.
func (r *Relayer) Requeue(seqNumbers ...uint64) {
	r.requeueMu.Lock()
	defer r.requeueMu.Unlock()
	r.requeued = append(r.requeued, seqNumbers...)
}

// Tick runs one forward batch followed by one retry sweep. A storage error ends the tick early; the next
// tick starts over from whatever was last stored.
func (r *Relayer) Tick(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecordTickDuration(time.Since(start).Seconds())
	}()

	if err := r.mergeRequeued(); err != nil {
		metrics.IncTickErrors()
		return fmt.Errorf("failed to merge requeued sequence numbers: %w", err)
	}

	if err := r.relayBatch(ctx); err != nil {
		metrics.IncTickErrors()
		return fmt.Errorf("failed to relay batch: %w", err)
	}

	if err := r.sweepRetrySet(ctx); err != nil {
		metrics.IncTickErrors()
		return fmt.Errorf("failed to sweep retry set: %w", err)
	}

	return nil
}

func (r *Relayer) mergeRequeued() error {
	r.requeueMu.Lock()
	requeued := r.requeued
	r.requeued = nil
	r.requeueMu.Unlock()

	if len(requeued) == 0 {
		return nil
	}

	set, err := r.storage.GetRetrySet()
	if err != nil {
		r.Requeue(requeued...)
		return err
	}
	if err := r.storage.SetRetrySet(set.Union(NewRetrySet(requeued...))); err != nil {
		r.Requeue(requeued...)
		return err
	}

	r.logger.Info("requeued sequence numbers", zap.Uint64s("seq_numbers", requeued))
	return nil
}

// relayBatch attempts batchSize sequence numbers starting at the cursor. NotReady sequence numbers are
// written to the retry set before the cursor moves past them, so a crash can't lose them.
func (r *Relayer) relayBatch(ctx context.Context) error {
	cursor, err := r.storage.GetCursor()
	if err != nil {
		return fmt.Errorf("failed to load cursor: %w", err)
	}

	retrySet, err := r.storage.GetRetrySet()
	if err != nil {
		return fmt.Errorf("failed to load retry set: %w", err)
	}

	for i := uint64(0); i < r.batchSize; i++ {
		seq := cursor + i
		start := time.Now()
		outcome := r.pipeline.Attempt(ctx, seq)
		if ctx.Err() != nil {
			// the attempt was interrupted, leave seq to the next run
			return ctx.Err()
		}
		metrics.AddBatchAttempt(string(outcome.Status), time.Since(start).Seconds())

		switch outcome.Status {
		case Submitted:
			r.logger.Info("sequence number relayed", zap.Uint64("seq_number", seq))
		case NotReady:
			r.logger.Info("sequence number not ready, deferring to retry set", zap.Uint64("seq_number", seq))
			retrySet.Add(seq)
			if err := r.storage.SetRetrySet(retrySet); err != nil {
				return fmt.Errorf("failed to store retry set: %w", err)
			}
		case Failed:
			// Failed sequence numbers are not retried automatically; see Requeue
			r.logger.Error("failed to relay sequence number",
				zap.Uint64("seq_number", seq), zap.Error(outcome.Err))
			if err := r.storage.SetFailedSequence(FailedSequence{
				SeqNumber: seq,
				Message:   outcome.Err.Error(),
				FailedAt:  time.Now(),
			}); err != nil {
				return fmt.Errorf("failed to store failed sequence %d: %w", seq, err)
			}
		}

		if err := r.storage.SetCursor(seq + 1); err != nil {
			return fmt.Errorf("failed to store cursor: %w", err)
		}
		metrics.SetCursor(seq + 1)
	}

	metrics.SetRetrySetSize(len(retrySet))
	return nil
}

// sweepRetrySet re-attempts every member of the stored retry set in ascending order.
func (r *Relayer) sweepRetrySet(ctx context.Context) error {
	retrySet, err := r.storage.GetRetrySet()
	if err != nil {
		return fmt.Errorf("failed to load retry set: %w", err)
	}

	for _, seq := range retrySet.Sorted() {
		start := time.Now()
		outcome := r.pipeline.Attempt(ctx, seq)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		metrics.AddRetryAttempt(string(outcome.Status), time.Since(start).Seconds())

		switch outcome.Status {
		case Submitted:
			retrySet.Remove(seq)
			if err := r.storage.SetRetrySet(retrySet); err != nil {
				return fmt.Errorf("failed to store retry set: %w", err)
			}
			if err := r.storage.RemoveFailedSequence(seq); err != nil {
				return fmt.Errorf("failed to remove failed sequence %d: %w", seq, err)
			}
			r.logger.Info("retried sequence number relayed", zap.Uint64("seq_number", seq))
		case NotReady:
			r.logger.Debug("retried sequence number still not ready", zap.Uint64("seq_number", seq))
		case Failed:
			r.logger.Warn("failed to relay retried sequence number",
				zap.Uint64("seq_number", seq), zap.Error(outcome.Err))
		}
	}

	metrics.SetRetrySetSize(len(retrySet))
	return nil
}
