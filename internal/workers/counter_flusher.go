// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-polip/internal/logger"
)

const (
	DefaultFlushInterval = 5 * time.Second
	finalFlushTimeout    = 2 * time.Second
)

// FlushFunc persists the device counter.
type FlushFunc func(ctx context.Context) error

// CounterFlusher saves the counter every interval and once more on Stop,
// so a shutdown between ticks loses no increments.
type CounterFlusher struct {
	flush    FlushFunc
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewCounterFlusher(flush FlushFunc, interval time.Duration, logger *logger.Logger) *CounterFlusher {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &CounterFlusher{flush: flush, interval: interval, logger: logger}
}

func (f *CounterFlusher) Run(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.wg.Add(1)

	go func() {
		defer f.wg.Done()
		t := time.NewTicker(f.interval)
		defer t.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-t.C:
				f.flushOnce(runCtx)
			}
		}
	}()
}

// Stop ends the loop and runs a final flush. A flusher that never ran only
// flushes.
func (f *CounterFlusher) Stop() {
	f.mu.Lock()
	cancel := f.cancel
	f.cancel = nil
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	f.wg.Wait()

	ctx, cancelFlush := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer cancelFlush()
	f.flushOnce(ctx)
}

func (f *CounterFlusher) flushOnce(ctx context.Context) {
	if err := f.flush(ctx); err != nil {
		f.logger.Err(err).Str("func", "CounterFlusher.flushOnce").Msg("failed to flush counter")
	}
}
