// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/curllabs/curllabs-client/internal/logger"
)

// DefaultInterval is used when a Periodic is built with a non-positive
// interval.
const DefaultInterval = 5 * time.Minute

// Task is the unit of work a Periodic runs.
type Task func(ctx context.Context) error

// Periodic calls its task once on Start and then every interval until it is
// stopped. A failing task is logged and retried on the next tick.
type Periodic struct {
	name     string
	interval time.Duration
	task     Task

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, task Task, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log.WithComponent("worker_" + name),
	}
}

// Interval returns the effective tick interval.
func (p *Periodic) Interval() time.Duration {
	return p.interval
}

// Start stops a previous run, if any, then launches the background goroutine.
// The goroutine exits when ctx is cancelled or Stop is called.
func (p *Periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.run(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.run(jobCtx)
			}
		}
	}()

	p.logger.Debug().Dur("interval", p.interval).Msg("worker started")
}

// Stop cancels the goroutine's context and waits for it to exit. Safe to call
// when the worker is not running.
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	p.wg.Wait()
	p.logger.Debug().Msg("worker stopped")
}

func (p *Periodic) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.task(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("task failed")
	}
}
