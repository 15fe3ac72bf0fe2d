// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curllabs/curllabs-client/internal/logger"
)

// countingTask counts its calls and returns err.
type countingTask struct {
	calls atomic.Int64
	err   error
}

func (c *countingTask) run(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestNewPeriodic_DefaultInterval(t *testing.T) {
	task := &countingTask{}

	assert.Equal(t, DefaultInterval, NewPeriodic("weather", 0, task.run, logger.Nop()).Interval())
	assert.Equal(t, DefaultInterval, NewPeriodic("weather", -time.Second, task.run, logger.Nop()).Interval())
	assert.Equal(t, time.Hour, NewPeriodic("weather", time.Hour, task.run, logger.Nop()).Interval())
}

func TestPeriodic_Start_RunsImmediately(t *testing.T) {
	task := &countingTask{}
	p := NewPeriodic("weather", time.Hour, task.run, logger.Nop())

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return task.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestPeriodic_Start_RunsOnEveryTick(t *testing.T) {
	task := &countingTask{}
	p := NewPeriodic("weather", 10*time.Millisecond, task.run, logger.Nop())

	// 10ms interval: one immediate run plus several ticks within 55ms
	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	got := task.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "task should run several times, ran %d", got)
}

func TestPeriodic_FailingTaskKeepsRunning(t *testing.T) {
	task := &countingTask{err: errors.New("backend down")}
	p := NewPeriodic("weather", 10*time.Millisecond, task.run, logger.Nop())

	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return task.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPeriodic_Stop_StopsGoroutine(t *testing.T) {
	task := &countingTask{}
	p := NewPeriodic("weather", 10*time.Millisecond, task.run, logger.Nop())

	p.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	callsAfterStop := task.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, task.calls.Load(), "no runs expected after Stop")
}

func TestPeriodic_Stop_BeforeStart_NoPanic(t *testing.T) {
	p := NewPeriodic("weather", time.Minute, (&countingTask{}).run, logger.Nop())

	assert.NotPanics(t, func() { p.Stop() })
}

func TestPeriodic_DoubleStop_NoPanic(t *testing.T) {
	p := NewPeriodic("weather", 10*time.Millisecond, (&countingTask{}).run, logger.Nop())

	p.Start(context.Background())
	p.Stop()

	assert.NotPanics(t, func() { p.Stop() })
}

func TestPeriodic_RestartReplacesRun(t *testing.T) {
	task := &countingTask{}
	p := NewPeriodic("weather", time.Hour, task.run, logger.Nop())

	p.Start(context.Background())
	require.Eventually(t, func() bool { return task.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	p.Start(context.Background())
	defer p.Stop()

	// each Start runs once immediately; the first goroutine has been stopped
	require.Eventually(t, func() bool { return task.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestPeriodic_CancelledContextStopsRuns(t *testing.T) {
	task := &countingTask{}
	p := NewPeriodic("weather", 10*time.Millisecond, task.run, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	calls := task.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, task.calls.Load())

	p.Stop()
}
